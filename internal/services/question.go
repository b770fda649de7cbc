package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vdoan98/trivia-web-application/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

func (in QuestionInput) validate() error {
	if strings.TrimSpace(in.Question) == "" || strings.TrimSpace(in.Answer) == "" {
		return ErrInvalidQuestion
	}
	if in.Difficulty < 1 || in.Category < 1 {
		return ErrInvalidQuestion
	}
	return nil
}

func (s *QuestionService) List() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) Count() (int64, error) {
	var n int64
	if err := s.db.Model(&models.Question{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (s *QuestionService) Get(id uint) (*models.Question, error) {
	var q models.Question
	if err := s.db.First(&q, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question %d: %w", id, err)
	}
	return &q, nil
}

func (s *QuestionService) Delete(id uint) error {
	q, err := s.Get(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(q).Error; err != nil {
		return fmt.Errorf("delete question %d: %w", id, err)
	}
	return nil
}

func (s *QuestionService) Create(in QuestionInput) (*models.Question, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	q := models.Question{
		Question:   strings.TrimSpace(in.Question),
		Answer:     strings.TrimSpace(in.Answer),
		Category:   uint(in.Category),
		Difficulty: in.Difficulty,
	}
	if err := s.db.Create(&q).Error; err != nil {
		return nil, fmt.Errorf("create question: %w", err)
	}
	return &q, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches term case-insensitively anywhere in the question text.
// LIKE wildcards in term are matched literally.
func (s *QuestionService) Search(term string) ([]models.Question, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"

	var questions []models.Question
	err := s.db.Where(`LOWER(question) LIKE LOWER(?) ESCAPE '\'`, pattern).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) ByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("questions for category %d: %w", categoryID, err)
	}
	return questions, nil
}
