package service

import (
	"context"
	"encoding/json"

	"notes-be/internal/pkg/logger"
	"notes-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IAuditService consumes note lifecycle events and writes them to the
// structured log. It only observes; it never mutates stored state.
type IAuditService interface {
	Consume(ctx context.Context) error
}

type auditService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewAuditService(pubSub *gochannel.GoChannel, topicName string, logger logger.ILogger) IAuditService {
	return &auditService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    logger,
	}
}

func (s *auditService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *auditService) processMessage(msg *message.Message) {
	var evt events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		s.logger.Warn("audit", "failed to unmarshal event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads are not retriable
		return
	}

	s.logger.Info("audit", evt.Type, map[string]interface{}{
		"data":        evt.Data,
		"occurred_at": evt.OccurredAt,
	})
	msg.Ack()
}
