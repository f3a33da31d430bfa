package service

import (
	"context"
	"encoding/json"
	"log"

	"nko-content-assistant/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IAuditConsumerService interface {
	Consume(ctx context.Context) error
}

// auditConsumerService drains the domain event topic into the isolated
// audit log. Losing an audit record is acceptable; blocking content
// creation on audit IO is not, hence the fire-and-forget goroutine.
type auditConsumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	auditLog  logger.ILogger
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	auditLog logger.ILogger,
) IAuditConsumerService {
	return &auditConsumerService{
		pubSub:    pubSub,
		topicName: topicName,
		auditLog:  auditLog,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *auditConsumerService) processMessage(msg *message.Message) {
	var payload struct {
		Type       string                 `json:"Type"`
		Data       map[string]interface{} `json:"Data"`
		OccurredAt string                 `json:"OccurredAt"`
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit event: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.auditLog.Info("audit", payload.Type, payload.Data)
	msg.Ack()
}
