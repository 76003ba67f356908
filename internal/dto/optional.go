package dto

import "encoding/json"

// Optional distinguishes a field that was absent from the request body from
// one that was explicitly set (possibly to null or an empty value). Partial
// updates must only touch fields the caller actually sent.
type Optional[T any] struct {
	Set   bool
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	return json.Unmarshal(data, &o.Value)
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Value)
}
