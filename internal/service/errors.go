package service

import "errors"

// ErrNoteNotFound signals that the requested note id does not exist. It is a
// distinct result, not a storage failure; the HTTP layer maps it to 404.
var ErrNoteNotFound = errors.New("note not found")
