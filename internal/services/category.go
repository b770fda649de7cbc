package services

import (
	"fmt"
	"strings"

	"github.com/vdoan98/trivia-web-application/internal/models"

	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) List() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Map returns every category as id -> type.
func (s *CategoryService) Map() (map[uint]string, error) {
	categories, err := s.List()
	if err != nil {
		return nil, err
	}
	return models.CategoryMap(categories), nil
}

func (s *CategoryService) Create(typ string) (*models.Category, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return nil, ErrInvalidCategory
	}

	cat := models.Category{Type: typ}
	if err := s.db.Create(&cat).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &cat, nil
}
