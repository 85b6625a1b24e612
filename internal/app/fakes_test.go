package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fitweek/internal/model"
)

type fakeUserStore struct {
	byID   map[uint]*model.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byID: map[uint]*model.User{}}
}

func (f *fakeUserStore) Create(user *model.User) error {
	f.nextID++
	user.ID = f.nextID
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

func (f *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id uint) (*model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserStore) Save(user *model.User) error {
	if _, ok := f.byID[user.ID]; !ok {
		return fmt.Errorf("user %d not found", user.ID)
	}
	clone := *user
	f.byID[user.ID] = &clone
	return nil
}

type fakeSessionStore struct {
	sessions map[string]uint
	counter  int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]uint{}}
}

func (f *fakeSessionStore) Create(_ context.Context, userID uint) (string, error) {
	f.counter++
	id := fmt.Sprintf("sess-%d", f.counter)
	f.sessions[id] = userID
	return id, nil
}

func (f *fakeSessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	_, ok := f.sessions[sessionID]
	return ok, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type fakeIntakeStore struct {
	entries []model.ProteinLog
}

func (f *fakeIntakeStore) ListByUserSince(userID uint, since time.Time) ([]model.ProteinLog, error) {
	var out []model.ProteinLog
	for _, e := range f.entries {
		if e.UserID == userID && !e.LoggedAt.Before(since) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LoggedAt.After(out[j].LoggedAt) })
	return out, nil
}

type fakePublisher struct {
	published []model.ProteinLog
	err       error
}

func (f *fakePublisher) Publish(_ context.Context, entry model.ProteinLog) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, entry)
	return nil
}

type fakeIntakeCache struct {
	week      map[uint][]model.ProteinLog
	dirty     map[uint]bool
	markCalls int
	dropCalls int
}

func newFakeIntakeCache() *fakeIntakeCache {
	return &fakeIntakeCache{week: map[uint][]model.ProteinLog{}, dirty: map[uint]bool{}}
}

func (f *fakeIntakeCache) GetWeek(_ context.Context, userID uint) ([]model.ProteinLog, bool, error) {
	entries, ok := f.week[userID]
	return entries, ok, nil
}

func (f *fakeIntakeCache) SetWeek(_ context.Context, userID uint, entries []model.ProteinLog) error {
	f.week[userID] = entries
	return nil
}

func (f *fakeIntakeCache) DeleteWeek(_ context.Context, userID uint) error {
	f.dropCalls++
	delete(f.week, userID)
	return nil
}

func (f *fakeIntakeCache) MarkDirty(_ context.Context, userID uint) error {
	f.markCalls++
	f.dirty[userID] = true
	return nil
}

func (f *fakeIntakeCache) IsDirty(_ context.Context, userID uint) (bool, error) {
	return f.dirty[userID], nil
}
