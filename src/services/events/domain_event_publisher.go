package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"socialgraph/src/domain"
	"socialgraph/src/infra/kafka"
)

// MessageProducer é implementado por *kafka.KafkaClient.
type MessageProducer interface {
	Producer(messages []kafka.Message, topic string) error
}

type DomainEventPublisher struct {
	logger   *slog.Logger
	producer MessageProducer
	topic    string
}

func NewDomainEventPublisher(
	logger *slog.Logger,
	producer MessageProducer,
	topic string,
) *DomainEventPublisher {
	return &DomainEventPublisher{
		logger:   logger,
		producer: producer,
		topic:    topic,
	}
}

// Publish sends a batch of social events to Kafka, keyed by actor so every
// profile's events stay ordered within one partition.
func (p *DomainEventPublisher) Publish(ctx context.Context, events ...domain.SocialEvent) error {
	if len(events) == 0 {
		return nil
	}

	kafkaMessages := make([]kafka.Message, 0, len(events))

	for _, event := range events {
		eventBytes, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("DomainEventPublisher.Publish - failed to marshal event %s: %w", event.EventID, err)
		}

		kafkaMessages = append(kafkaMessages, kafka.Message{
			Key:     event.Actor,
			Value:   eventBytes,
			Headers: p.createEventHeaders(event),
		})

		p.logger.Debug("Prepared social event for publishing",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"actor", event.Actor)
	}

	if err := p.producer.Producer(kafkaMessages, p.topic); err != nil {
		return fmt.Errorf("DomainEventPublisher.Publish - failed to publish to topic %s: %w", p.topic, err)
	}

	p.logger.Debug("Published social events", "topic", p.topic, "events_count", len(kafkaMessages))

	return nil
}

// createEventHeaders permite filtrar eventos sem desserializar o payload.
func (p *DomainEventPublisher) createEventHeaders(event domain.SocialEvent) map[string]string {
	headers := map[string]string{
		"event_type":     string(event.EventType),
		"event_id":       event.EventID,
		"source_service": "socialgraph",
		"schema_version": "v1",
	}

	if category, _, found := strings.Cut(string(event.EventType), "."); found {
		headers["event_category"] = category
	}

	return headers
}
