package streak

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/vmfarias/readrush/internal/apperr"
)

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	t.Run("FirstActivity", func(t *testing.T) {
		now := date(2025, time.March, 10, 14)

		next := Advance(now, nil)

		if next.CurrentStreak != 1 || next.LongestStreak != 1 {
			t.Errorf("first activity: want 1/1, got %d/%d", next.CurrentStreak, next.LongestStreak)
		}
		if !next.LastActivityDate.Equal(now) {
			t.Errorf("wrong LastActivityDate: %v", next.LastActivityDate)
		}
	})

	t.Run("SameDayDoesNotDoubleCount", func(t *testing.T) {
		prev := &Streak{
			CurrentStreak:    3,
			LongestStreak:    7,
			LastActivityDate: date(2025, time.March, 10, 9),
		}

		next := Advance(date(2025, time.March, 10, 22), prev)

		if next.CurrentStreak != 3 || next.LongestStreak != 7 {
			t.Errorf("same day: want 3/7, got %d/%d", next.CurrentStreak, next.LongestStreak)
		}
		if !next.LastActivityDate.Equal(prev.LastActivityDate) {
			t.Error("same-day activity must not move LastActivityDate")
		}
	})

	t.Run("NextDayIncrements", func(t *testing.T) {
		prev := &Streak{
			CurrentStreak:    6,
			LongestStreak:    6,
			LastActivityDate: date(2025, time.March, 10, 23),
		}

		next := Advance(date(2025, time.March, 11, 0), prev)

		if next.CurrentStreak != 7 {
			t.Errorf("want current 7, got %d", next.CurrentStreak)
		}
		if next.LongestStreak != 7 {
			t.Errorf("longest must follow a new record, got %d", next.LongestStreak)
		}
	})

	t.Run("NextDayKeepsOldRecord", func(t *testing.T) {
		prev := &Streak{
			CurrentStreak:    2,
			LongestStreak:    10,
			LastActivityDate: date(2025, time.March, 10, 12),
		}

		next := Advance(date(2025, time.March, 11, 12), prev)

		if next.CurrentStreak != 3 || next.LongestStreak != 10 {
			t.Errorf("want 3/10, got %d/%d", next.CurrentStreak, next.LongestStreak)
		}
	})

	t.Run("GapResets", func(t *testing.T) {
		prev := &Streak{
			CurrentStreak:    9,
			LongestStreak:    9,
			LastActivityDate: date(2025, time.March, 10, 12),
		}

		next := Advance(date(2025, time.March, 14, 8), prev)

		if next.CurrentStreak != 1 {
			t.Errorf("gap: want current reset to 1, got %d", next.CurrentStreak)
		}
		if next.LongestStreak != 9 {
			t.Errorf("gap must not erase the record, got %d", next.LongestStreak)
		}
	})
}

type fakeRepo struct {
	stored  *Streak
	entries []LeaderboardEntry
}

func (f *fakeRepo) FindByUserID(userID uuid.UUID) (*Streak, error) { return f.stored, nil }
func (f *fakeRepo) Create(s *Streak) error                         { f.stored = s; return nil }
func (f *fakeRepo) Update(s *Streak) error                         { f.stored = s; return nil }
func (f *fakeRepo) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit < len(f.entries) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

func TestServiceRecord(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := &fakeRepo{}

	clock := date(2025, time.June, 1, 10)
	svc := &service{repo: repo, now: func() time.Time { return clock }}

	if err := svc.Record(ctx, userID); err != nil {
		t.Fatalf("first Record failed: %v", err)
	}
	if repo.stored == nil || repo.stored.CurrentStreak != 1 {
		t.Fatalf("first Record should create a streak of 1, got %+v", repo.stored)
	}
	if repo.stored.UserID != userID {
		t.Errorf("streak created for wrong user: %s", repo.stored.UserID)
	}

	// Second activity later the same day is a no-op.
	clock = date(2025, time.June, 1, 20)
	if err := svc.Record(ctx, userID); err != nil {
		t.Fatalf("same-day Record failed: %v", err)
	}
	if repo.stored.CurrentStreak != 1 {
		t.Errorf("same day must not increment, got %d", repo.stored.CurrentStreak)
	}

	clock = date(2025, time.June, 2, 7)
	if err := svc.Record(ctx, userID); err != nil {
		t.Fatalf("next-day Record failed: %v", err)
	}
	if repo.stored.CurrentStreak != 2 || repo.stored.LongestStreak != 2 {
		t.Errorf("next day: want 2/2, got %d/%d", repo.stored.CurrentStreak, repo.stored.LongestStreak)
	}

	clock = date(2025, time.June, 6, 7)
	if err := svc.Record(ctx, userID); err != nil {
		t.Fatalf("post-gap Record failed: %v", err)
	}
	if repo.stored.CurrentStreak != 1 || repo.stored.LongestStreak != 2 {
		t.Errorf("after gap: want 1/2, got %d/%d", repo.stored.CurrentStreak, repo.stored.LongestStreak)
	}
}

func TestServiceGet(t *testing.T) {
	userID := uuid.New()
	svc := NewService(&fakeRepo{})

	st, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if st.CurrentStreak != 0 || st.LongestStreak != 0 {
		t.Errorf("no activity should read as a zero streak, got %+v", st)
	}
	if st.UserID != userID {
		t.Errorf("zero streak carries wrong user: %s", st.UserID)
	}
}

func TestServiceLeaderboardLimit(t *testing.T) {
	svc := NewService(&fakeRepo{entries: []LeaderboardEntry{
		{UserID: uuid.New(), LongestStreak: 5},
		{UserID: uuid.New(), LongestStreak: 3},
	}})

	t.Run("RanksAreAssigned", func(t *testing.T) {
		entries, err := svc.Leaderboard(context.Background(), 10)
		if err != nil {
			t.Fatalf("Leaderboard failed: %v", err)
		}
		for i, e := range entries {
			if e.Rank != i+1 {
				t.Errorf("entry %d: want rank %d, got %d", i, i+1, e.Rank)
			}
		}
	})

	t.Run("ZeroMeansDefault", func(t *testing.T) {
		if _, err := svc.Leaderboard(context.Background(), 0); err != nil {
			t.Fatalf("limit 0 should fall back to the default, got: %v", err)
		}
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := svc.Leaderboard(context.Background(), MaxLeaderboardLimit+1)
		if apperr.KindOf(err) != apperr.KindValidation {
			t.Errorf("want validation error for oversized limit, got: %v", err)
		}
	})
}
