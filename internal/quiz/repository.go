package quiz

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuizRepository interface {
	// CreateWithQuestions persists the quiz, its questions and their
	// options in one transaction. Nothing survives a mid-insert failure.
	CreateWithQuestions(q *Quiz) error
	GetByID(id uuid.UUID) (*Quiz, error)
	FindAllByDeckID(deckID uuid.UUID) ([]Quiz, error)
	Delete(id uuid.UUID) error
}

type quizRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) QuizRepository {
	return &quizRepository{db: db}
}

func (r *quizRepository) CreateWithQuestions(q *Quiz) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		questions := q.Questions
		q.Questions = nil
		if err := tx.Create(q).Error; err != nil {
			return err
		}

		for i := range questions {
			questions[i].QuizID = q.ID
			options := questions[i].Options
			questions[i].Options = nil
			if err := tx.Create(&questions[i]).Error; err != nil {
				return err
			}
			for j := range options {
				options[j].QuestionID = questions[i].ID
			}
			if err := tx.Create(&options).Error; err != nil {
				return err
			}
			questions[i].Options = options
		}

		q.Questions = questions
		return nil
	})
}

func (r *quizRepository) GetByID(id uuid.UUID) (*Quiz, error) {
	var q Quiz
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Questions.Options").
		First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *quizRepository) FindAllByDeckID(deckID uuid.UUID) ([]Quiz, error) {
	var quizzes []Quiz
	if err := r.db.
		Where("deck_id = ?", deckID).
		Order("created_at DESC").
		Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *quizRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Quiz{}, "id = ?", id).Error
}
