package streak

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
	"github.com/vmfarias/readrush/internal/config"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

type Service interface {
	// Record registers one streak-relevant activity. It is the only
	// mutation path; there is no user-facing streak write endpoint.
	Record(ctx context.Context, userID uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) (*Streak, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Record(ctx context.Context, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	prev, err := s.repo.FindByUserID(userID)
	if err != nil {
		return err
	}

	next := Advance(s.now(), prev)

	if prev == nil {
		next.ID = uuid.New()
		next.UserID = userID
		if err := s.repo.Create(&next); err != nil {
			return err
		}
		log.Infof("Started streak for user %s", userID)
		return nil
	}

	if err := s.repo.Update(&next); err != nil {
		return err
	}

	log.Infof("Updated streak for user %s: current=%d longest=%d",
		userID, next.CurrentStreak, next.LongestStreak)
	return nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*Streak, error) {
	st, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		// No activity yet reads as a zero streak, not an error.
		return &Streak{UserID: userID}, nil
	}
	return st, nil
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit < 1 || limit > MaxLeaderboardLimit {
		return nil, apperr.Validationf("limit must be between 1 and %d", MaxLeaderboardLimit)
	}

	entries, err := s.repo.Leaderboard(limit)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
