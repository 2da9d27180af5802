package events

import (
	"context"
	"encoding/json"
	"time"

	"repairhub/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher emits domain events to a single Kafka topic, keyed by the
// entity id so events for one record stay ordered within a partition.
//
// The publisher is optional infrastructure: when no broker is configured the
// usecases run without one.

type KafkaPublisher struct {
	writer *kafka.Writer
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

type envelope struct {
	Type    string      `json:"type"`
	Entity  string      `json:"entity_id"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

func NewKafkaPublisher(broker, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, eventType, entityID string, payload interface{}) error {
	value, err := json.Marshal(envelope{
		Type:    eventType,
		Entity:  entityID,
		At:      time.Now().UTC(),
		Payload: payload,
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(entityID),
		Value: value,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
