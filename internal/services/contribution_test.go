package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/tum-cit/memo-bench/internal/models"
	"github.com/tum-cit/memo-bench/internal/services"
)

func TestContributionPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewContributionPublisher(mockWriter)

	event := models.ContributionEvent{
		EventID:   uuid.NewString(),
		Timestamp: 1756684800,
		UserID:    uuid.NewString(),
		Kind:      "relationship",
		EntityID:  uuid.NewString(),
	}

	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)
			assert.Equal(t, event.EventID, string(msgs[0].Key))

			var got models.ContributionEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, event, got)
			return nil
		})

	publisher.Publish(context.Background(), event)
}

func TestContributionPublisher_Publish_AssignsEventID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewContributionPublisher(mockWriter)

	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			assert.NotEmpty(t, msgs[0].Key)
			return nil
		})

	publisher.Publish(context.Background(), models.ContributionEvent{Kind: "resource_link"})
}

func TestContributionPublisher_Publish_WriterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockKafkaWriter(ctrl)
	publisher := services.NewContributionPublisher(mockWriter)

	mockWriter.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unavailable"))

	// Publishing is best effort; a broker failure must not panic or propagate.
	publisher.Publish(context.Background(), models.ContributionEvent{Kind: "relationship"})
}

func TestContributionPublisher_Publish_NilWriter(t *testing.T) {
	publisher := services.NewContributionPublisher(nil)

	publisher.Publish(context.Background(), models.ContributionEvent{Kind: "relationship"})
}
