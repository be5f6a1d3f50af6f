package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/tum-cit/memo-bench/internal/logger"
	"github.com/tum-cit/memo-bench/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ContributionPublisher publishes contribution events for downstream dataset
// consumers. Publishing is best effort and never fails the originating request.
type ContributionPublisher struct {
	writer KafkaWriter
}

// NewContributionPublisher creates a publisher; writer may be nil to disable publishing.
func NewContributionPublisher(writer KafkaWriter) *ContributionPublisher {
	return &ContributionPublisher{writer: writer}
}

// Publish sends a contribution event to Kafka.
func (p *ContributionPublisher) Publish(ctx context.Context, event models.ContributionEvent) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal contribution event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish contribution event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Contribution event published", "event_id", event.EventID, "kind", event.Kind)
	}
}
