package worker

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"fitweek/internal/model"
)

type fakeInserter struct {
	created []model.ProteinLog
	err     error
}

func (f *fakeInserter) Create(entry *model.ProteinLog) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *entry)
	return nil
}

type fakeAcknowledger struct {
	acked  bool
	nacked bool
}

func (f *fakeAcknowledger) Ack(_ uint64, _ bool) error     { f.acked = true; return nil }
func (f *fakeAcknowledger) Nack(_ uint64, _, _ bool) error { f.nacked = true; return nil }
func (f *fakeAcknowledger) Reject(_ uint64, _ bool) error  { return nil }

func delivery(body []byte) (amqp.Delivery, *fakeAcknowledger) {
	ack := &fakeAcknowledger{}
	return amqp.Delivery{Acknowledger: ack, Body: body}, ack
}

func TestHandleDeliveryPersistsEntry(t *testing.T) {
	repo := &fakeInserter{}
	w := NewIntakePersistWorker(nil, repo, "q", nil)

	entry := model.ProteinLog{UserID: 3, Food: "Eggs", Amount: 24, LoggedAt: time.Now()}
	body, _ := json.Marshal(entry)
	d, ack := delivery(body)

	w.handleDelivery(d)

	if len(repo.created) != 1 {
		t.Fatalf("created %d entries, want 1", len(repo.created))
	}
	if repo.created[0].UserID != 3 || repo.created[0].Amount != 24 {
		t.Errorf("persisted wrong entry: %+v", repo.created[0])
	}
	if !ack.acked || ack.nacked {
		t.Errorf("expected ack, got acked=%v nacked=%v", ack.acked, ack.nacked)
	}
}

func TestHandleDeliveryNacksGarbage(t *testing.T) {
	repo := &fakeInserter{}
	w := NewIntakePersistWorker(nil, repo, "q", nil)

	d, ack := delivery([]byte("not json"))
	w.handleDelivery(d)

	if len(repo.created) != 0 {
		t.Error("garbage payload reached the repository")
	}
	if !ack.nacked || ack.acked {
		t.Errorf("expected nack, got acked=%v nacked=%v", ack.acked, ack.nacked)
	}
}

func TestHandleDeliveryNacksOnInsertFailure(t *testing.T) {
	repo := &fakeInserter{err: errors.New("db down")}
	w := NewIntakePersistWorker(nil, repo, "q", nil)

	body, _ := json.Marshal(model.ProteinLog{UserID: 1, Food: "Eggs", Amount: 10})
	d, ack := delivery(body)
	w.handleDelivery(d)

	if !ack.nacked || ack.acked {
		t.Errorf("expected nack, got acked=%v nacked=%v", ack.acked, ack.nacked)
	}
}
