package service

import (
	"context"
	"encoding/json"

	"beauty-advisor-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

// IPublisherService publishes domain events on the in-process pubsub.
type IPublisherService interface {
	PublishQualificationCompleted(ctx context.Context, event *events.QualificationCompleted) error
}

type publisherService struct {
	publisher message.Publisher
}

func NewPublisherService(publisher message.Publisher) IPublisherService {
	return &publisherService{publisher: publisher}
}

func (p *publisherService) PublishQualificationCompleted(_ context.Context, event *events.QualificationCompleted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	return p.publisher.Publish(events.TopicQualificationCompleted, msg)
}
