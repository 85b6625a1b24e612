package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"fitweek/internal/model"
)

// IntakePublisher enqueues protein log entries onto the durable persist
// queue. The intake worker on the other end owns the database insert.
type IntakePublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewIntakePublisher(conn *amqp.Connection, queueName string) *IntakePublisher {
	return &IntakePublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *IntakePublisher) Publish(ctx context.Context, entry model.ProteinLog) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		p.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue failed: %w", err)
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal intake payload failed: %w", err)
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
		},
	); err != nil {
		return fmt.Errorf("publish intake entry failed: %w", err)
	}
	return nil
}
