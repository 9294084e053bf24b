package services

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/tasteofindiazambia/backend/entity"
)

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
)

// OrderEvent is published on order creation and status changes. It feeds
// the optional Kafka topic and the staff websocket feed.
type OrderEvent struct {
	Type         string             `json:"type"`
	OrderID      uint               `json:"orderId"`
	OrderNumber  string             `json:"orderNumber"`
	RestaurantID uint               `json:"restaurantId"`
	Status       entity.OrderStatus `json:"status"`
	OrderType    string             `json:"orderType"`
	TotalAmount  float64            `json:"totalAmount"`
	OccurredAt   time.Time          `json:"occurredAt"`
}

// OrderNotifier receives order events for live delivery (websocket hub).
type OrderNotifier interface {
	NotifyOrder(evt OrderEvent)
}

// EventPublisher writes order events to Kafka. A nil publisher is valid
// and drops everything; order creation never depends on the broker.
type EventPublisher struct {
	Writer *kafka.Writer
}

func NewEventPublisher(broker, topic string) *EventPublisher {
	if broker == "" {
		return nil
	}
	return &EventPublisher{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *EventPublisher) Publish(ctx context.Context, evt OrderEvent) error {
	if p == nil || p.Writer == nil {
		return nil
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(evt.OrderID), 10)),
		Value: payload,
	})
}

func (p *EventPublisher) Close() error {
	if p == nil || p.Writer == nil {
		return nil
	}
	return p.Writer.Close()
}
