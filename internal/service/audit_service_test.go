package service

import (
	"context"
	"testing"
	"time"

	"notes-be/internal/dto"
	"notes-be/internal/repository/unitofwork"
	"notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditConsumerLogsLifecycleEvents(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	capture := &capturingLogger{}

	audit := NewAuditService(pubSub, "NOTE_EVENTS", capture)
	require.NoError(t, audit.Consume(ctx))

	publisher := NewPublisherService(pubSub, "NOTE_EVENTS")
	svc := NewNoteService(unitofwork.NewRepositoryFactory(db), publisher, capture)

	created, err := svc.Create(ctx, &dto.CreateNoteRequest{Title: "Audited", Content: "body"})
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, created.Id)
	require.NoError(t, err)
	require.True(t, removed)

	assert.Eventually(t, func() bool {
		var sawCreate, sawDelete bool
		for _, e := range capture.snapshot() {
			switch e.Message {
			case events.NoteCreated:
				sawCreate = true
			case events.NoteDeleted:
				sawDelete = true
			}
		}
		return sawCreate && sawDelete
	}, 2*time.Second, 10*time.Millisecond)
}
