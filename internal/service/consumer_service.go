package service

import (
	"context"
	"encoding/json"
	"time"

	"beauty-advisor-be/internal/entity"
	"beauty-advisor-be/internal/pkg/logger"
	"beauty-advisor-be/internal/repository/implementation"
	"beauty-advisor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IConsumerService drains the qualification-completed topic and persists
// follow-up records.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	recordRepo implementation.IQualificationRecordRepository
	log        logger.ILogger
}

// NewConsumerService wires the subscriber to the record repository.
// recordRepo may be nil when no database is configured; events are then
// logged and acked without persistence.
func NewConsumerService(
	subscriber message.Subscriber,
	recordRepo implementation.IQualificationRecordRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		recordRepo: recordRepo,
		log:        log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, events.TopicQualificationCompleted)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var event events.QualificationCompleted
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.log.Error("consumer", "failed to unmarshal completion event", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack invalid messages to prevent infinite retry.
		msg.Ack()
		return
	}

	if cs.recordRepo == nil {
		cs.log.Info("consumer", "qualification completed (no database configured, skipping record)", map[string]interface{}{
			"session_id": event.SessionId,
			"category":   event.Category,
		})
		msg.Ack()
		return
	}

	record := &entity.QualificationRecord{
		Id:                uuid.New(),
		SessionId:         event.SessionId,
		Category:          event.Category,
		Language:          event.Language,
		Contraindications: mustJSON(event.Contraindications),
		RequiredTags:      mustJSON(event.RequiredTags),
		DesiredTags:       mustJSON(event.DesiredTags),
		RecommendedIds:    mustJSON(event.RecommendedProductIds),
		CompletedAt:       event.CompletedAt,
		CreatedAt:         time.Now(),
	}

	if err := cs.recordRepo.Create(ctx, record); err != nil {
		cs.log.Error("consumer", "failed to persist qualification record", map[string]interface{}{
			"session_id": event.SessionId,
			"error":      err.Error(),
		})
		msg.Ack() // record loss is acceptable, the recommendation was already served
		return
	}

	cs.log.Info("consumer", "qualification record persisted", map[string]interface{}{
		"session_id": event.SessionId,
		"category":   event.Category,
	})
	msg.Ack()
}

func mustJSON(v []string) datatypes.JSON {
	if v == nil {
		v = []string{}
	}
	raw, _ := json.Marshal(v)
	return datatypes.JSON(raw)
}
