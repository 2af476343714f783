package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/H-Ngomijana/ERM/internal/domain/entity"
	amqp "github.com/rabbitmq/amqp091-go"
)

const detectionRoutingKey = "anpr.detection"

// DetectionPublisher mirrors accepted detections onto a topic exchange for
// site-local consumers. Publishing is best effort; the capture loop logs
// failures and moves on.
type DetectionPublisher struct {
	channel  *amqp.Channel
	exchange string
}

func NewDetectionPublisher(conn *amqp.Connection, exchange string) (*DetectionPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open publisher channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &DetectionPublisher{channel: ch, exchange: exchange}, nil
}

func (p *DetectionPublisher) PublishDetection(ctx context.Context, event entity.DetectionEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal detection event: %w", err)
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange,
		detectionRoutingKey,
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
		},
	)
}

func (p *DetectionPublisher) Close() error {
	return p.channel.Close()
}
