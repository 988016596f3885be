package attempt

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// CreateWithAnswers persists the attempt and its answers in one
	// transaction, so a scored attempt can never miss answer rows.
	CreateWithAnswers(a *QuizAttempt) error
	FindByID(id uuid.UUID) (*QuizAttempt, error)
	FindAllByQuizAndUser(quizID, userID uuid.UUID) ([]QuizAttempt, error)
	Delete(id uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateWithAnswers(a *QuizAttempt) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		answers := a.Answers
		a.Answers = nil
		if err := tx.Create(a).Error; err != nil {
			return err
		}

		for i := range answers {
			answers[i].AttemptID = a.ID
		}
		if err := tx.Create(&answers).Error; err != nil {
			return err
		}

		a.Answers = answers
		return nil
	})
}

func (r *repository) FindByID(id uuid.UUID) (*QuizAttempt, error) {
	var a QuizAttempt
	if err := r.db.Preload("Answers").First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindAllByQuizAndUser(quizID, userID uuid.UUID) ([]QuizAttempt, error) {
	var attempts []QuizAttempt
	if err := r.db.
		Where("quiz_id = ? AND user_id = ?", quizID, userID).
		Order("created_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *repository) Delete(id uuid.UUID) error {
	return r.db.Delete(&QuizAttempt{}, "id = ?", id).Error
}
