package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"fitweek/internal/model"
	"fitweek/internal/pkg/logger"
)

var ErrIntakeEnqueue = errors.New("intake enqueue failed")

// IntakeStore is the slice of the protein log repository the service reads
// through. Writes go through the publisher instead; the persist worker owns
// the inserts.
type IntakeStore interface {
	ListByUserSince(userID uint, since time.Time) ([]model.ProteinLog, error)
}

type IntakePublisher interface {
	Publish(ctx context.Context, entry model.ProteinLog) error
}

type IntakeCache interface {
	GetWeek(ctx context.Context, userID uint) ([]model.ProteinLog, bool, error)
	SetWeek(ctx context.Context, userID uint, entries []model.ProteinLog) error
	DeleteWeek(ctx context.Context, userID uint) error
	MarkDirty(ctx context.Context, userID uint) error
	IsDirty(ctx context.Context, userID uint) (bool, error)
}

type IntakeService struct {
	logs          IntakeStore
	publisher     IntakePublisher
	cache         IntakeCache
	log           *logger.Logger
	defaultTarget int
}

type WeeklyReport struct {
	Score         int     `json:"score"`
	WeeklyProtein float64 `json:"weekly_protein"`
	DailyTarget   int     `json:"protein_target"`
}

func NewIntakeService(logs IntakeStore, publisher IntakePublisher, cache IntakeCache, log *logger.Logger, defaultTarget int) *IntakeService {
	if defaultTarget <= 0 {
		defaultTarget = 120
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &IntakeService{
		logs:          logs,
		publisher:     publisher,
		cache:         cache,
		log:           log,
		defaultTarget: defaultTarget,
	}
}

// LogFood stamps the entry with the server clock and enqueues it for
// persistence. The entry returned to the caller is the optimistic echo; the
// row id is assigned later by the worker's insert.
func (s *IntakeService) LogFood(ctx context.Context, userID uint, food string, amount float64) (*model.ProteinLog, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	food = strings.TrimSpace(food)
	if food == "" || amount < 0 {
		return nil, ErrInvalidInput
	}

	entry := model.ProteinLog{
		UserID:   userID,
		Food:     food,
		Amount:   amount,
		LoggedAt: time.Now(),
	}

	if s.publisher == nil {
		return nil, ErrIntakeEnqueue
	}
	if s.cache != nil {
		if err := s.cache.MarkDirty(ctx, userID); err != nil {
			s.log.Warnw("mark intake cache dirty failed", "user_id", userID, "err", err)
		}
		if err := s.cache.DeleteWeek(ctx, userID); err != nil {
			s.log.Warnw("drop intake cache failed", "user_id", userID, "err", err)
		}
	}
	if err := s.publisher.Publish(ctx, entry); err != nil {
		s.log.Errorw("publish intake entry failed", "user_id", userID, "err", err)
		return nil, ErrIntakeEnqueue
	}

	return &entry, nil
}

// Report computes the rolling 7-day score for the user. The full window is
// re-read on every call; the cache only short-circuits the store query and
// is bypassed while dirty.
func (s *IntakeService) Report(ctx context.Context, user *model.User, now time.Time) (*WeeklyReport, error) {
	if user == nil || user.ID == 0 {
		return nil, ErrInvalidInput
	}

	dailyTarget := user.Profile.ProteinTarget
	if dailyTarget <= 0 {
		dailyTarget = s.defaultTarget
	}

	entries, err := s.weekEntries(ctx, user.ID, now)
	if err != nil {
		return nil, err
	}

	return &WeeklyReport{
		Score:         WeeklyScore(entries, now, dailyTarget),
		WeeklyProtein: WeeklyProtein(entries, now),
		DailyTarget:   dailyTarget,
	}, nil
}

// RecentEntries returns the user's last-7-day log, newest first.
func (s *IntakeService) RecentEntries(ctx context.Context, userID uint, now time.Time) ([]model.ProteinLog, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.weekEntries(ctx, userID, now)
}

func (s *IntakeService) weekEntries(ctx context.Context, userID uint, now time.Time) ([]model.ProteinLog, error) {
	if s.cache != nil {
		dirty, err := s.cache.IsDirty(ctx, userID)
		if err == nil && !dirty {
			if cached, hit, cacheErr := s.cache.GetWeek(ctx, userID); cacheErr == nil && hit {
				return cached, nil
			}
		}
	}

	entries, err := s.logs.ListByUserSince(userID, now.Add(-IntakeWindow))
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if dirty, dirtyErr := s.cache.IsDirty(ctx, userID); dirtyErr == nil && !dirty {
			if err := s.cache.SetWeek(ctx, userID, entries); err != nil {
				s.log.Warnw("set intake cache failed", "user_id", userID, "err", err)
			}
		}
	}
	return entries, nil
}
