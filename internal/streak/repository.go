package streak

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	FindByUserID(userID uuid.UUID) (*Streak, error)
	Create(s *Streak) error
	Update(s *Streak) error
	Leaderboard(limit int) ([]LeaderboardEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(userID uuid.UUID) (*Streak, error) {
	var s Streak
	if err := r.db.First(&s, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) Create(s *Streak) error {
	return r.db.Create(s).Error
}

func (r *repository) Update(s *Streak) error {
	return r.db.Save(s).Error
}

// Leaderboard ranks active streaks. Ties on longest_streak break by
// user_id so the ordering is deterministic across reads.
func (r *repository) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := r.db.
		Table("streaks").
		Select("streaks.user_id, users.name AS user_name, streaks.current_streak, streaks.longest_streak").
		Joins("JOIN users ON users.id = streaks.user_id").
		Where("streaks.longest_streak > 0").
		Order("streaks.longest_streak DESC").
		Order("streaks.user_id ASC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
