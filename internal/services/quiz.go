package services

import (
	"fmt"
	"math/rand"

	"github.com/vdoan98/trivia-web-application/internal/models"

	"gorm.io/gorm"
)

// AnyCategory selects questions from every category.
const AnyCategory uint = 0

type QuizService struct {
	db   *gorm.DB
	pick func(n int) int
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db, pick: rand.Intn}
}

// Next picks one question uniformly at random among those not in previous,
// restricted to categoryID unless it is AnyCategory. It returns nil when no
// question is left.
func (s *QuizService) Next(categoryID uint, previous []uint) (*models.Question, error) {
	query := s.db.Model(&models.Question{})
	if categoryID != AnyCategory {
		query = query.Where("category = ?", categoryID)
	}
	// NOT IN with an empty list would exclude every row.
	if len(previous) > 0 {
		query = query.Where("id NOT IN ?", previous)
	}

	var candidates []models.Question
	if err := query.Order("id ASC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("quiz candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	q := candidates[s.pick(len(candidates))]
	return &q, nil
}
