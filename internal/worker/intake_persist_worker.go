package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"fitweek/internal/model"
	"fitweek/internal/pkg/logger"
)

// IntakeInserter is the single write the worker performs.
type IntakeInserter interface {
	Create(entry *model.ProteinLog) error
}

// IntakePersistWorker drains the intake persist queue and inserts entries
// into MySQL. Failed deliveries are dropped (nack without requeue) after
// logging; the queue is durable, so a crashed worker loses nothing.
type IntakePersistWorker struct {
	conn      *amqp.Connection
	repo      IntakeInserter
	queueName string
	log       *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewIntakePersistWorker(conn *amqp.Connection, repo IntakeInserter, queueName string, log *logger.Logger) *IntakePersistWorker {
	if log == nil {
		log = logger.NewNop()
	}
	return &IntakePersistWorker{
		conn:      conn,
		repo:      repo,
		queueName: queueName,
		log:       log,
	}
}

func (w *IntakePersistWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(d)
			}
		}
	}()

	return nil
}

func (w *IntakePersistWorker) handleDelivery(d amqp.Delivery) {
	var entry model.ProteinLog
	if err := json.Unmarshal(d.Body, &entry); err != nil {
		w.log.Errorw("decode intake entry failed", "err", err)
		_ = d.Nack(false, false)
		return
	}

	if err := w.repo.Create(&entry); err != nil {
		w.log.Errorw("persist intake entry failed", "user_id", entry.UserID, "err", err)
		_ = d.Nack(false, false)
		return
	}

	_ = d.Ack(false)
}

func (w *IntakePersistWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
