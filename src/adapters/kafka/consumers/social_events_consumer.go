package consumers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"sync"

	"socialgraph/src/domain"
	"socialgraph/src/infra/kafka"
)

// SocialEventsConsumer lê o tópico de eventos sociais e mantém contadores por tipo.
type SocialEventsConsumer struct {
	logger *slog.Logger

	mu     sync.Mutex
	counts map[domain.EventType]int
}

func NewSocialEventsConsumer(logger *slog.Logger) *SocialEventsConsumer {
	return &SocialEventsConsumer{
		logger: logger,
		counts: make(map[domain.EventType]int),
	}
}

func (c *SocialEventsConsumer) Start(ctx context.Context, kafkaClient *kafka.KafkaClient, topic string) error {
	c.logger.Info("Starting social events consumer", "topic", topic)

	handler := func(messages []kafka.Message) error {
		return c.HandleMessages(ctx, messages)
	}

	return kafkaClient.Consumer(ctx, handler, topic)
}

// HandleMessages decodes a batch. A malformed message fails the whole batch so
// that nothing in it is committed.
func (c *SocialEventsConsumer) HandleMessages(ctx context.Context, messages []kafka.Message) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]domain.SocialEvent, 0, len(messages))
	for _, msg := range messages {
		var event domain.SocialEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.logger.Error("Failed to unmarshal message",
				"error", err,
				"key", msg.Key,
				"value", string(msg.Value))
			return fmt.Errorf("failed to unmarshal message with key %s: %w", msg.Key, err)
		}

		if event.EventID == "" || event.EventType == "" || event.Actor == "" {
			return fmt.Errorf("invalid message with key %s: event_id, event_type and actor are required", msg.Key)
		}

		batch = append(batch, event)
	}

	c.mu.Lock()
	for _, event := range batch {
		c.counts[event.EventType]++
	}
	c.mu.Unlock()

	for _, event := range batch {
		c.logger.InfoContext(ctx, "Social event",
			"event_id", event.EventID,
			"event_type", event.EventType,
			"actor", event.Actor,
			"target", event.Target,
			"occurred_at", event.OccurredAt)
	}

	return nil
}

// Counts returns how many events of each type were consumed so far.
func (c *SocialEventsConsumer) Counts() map[domain.EventType]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.counts)
}
