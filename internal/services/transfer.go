package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vdoan98/trivia-web-application/internal/models"

	"gorm.io/gorm"
)

type CatalogQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
}

type CatalogCategory struct {
	Type      string            `json:"type"`
	Questions []CatalogQuestion `json:"questions"`
}

// Catalog is the portable form of the store: questions grouped under the
// type of their category. Uncategorized holds questions whose category id
// matches no category.
type Catalog struct {
	Categories    []CatalogCategory `json:"categories"`
	Uncategorized []CatalogQuestion `json:"uncategorized,omitempty"`
}

type ImportResult struct {
	Questions  int `json:"imported_questions"`
	Categories int `json:"created_categories"`
}

func (s *QuestionService) Export() (*Catalog, error) {
	var categories []models.Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("export categories: %w", err)
	}
	questions, err := s.List()
	if err != nil {
		return nil, err
	}

	catalog := &Catalog{Categories: make([]CatalogCategory, len(categories))}
	index := make(map[uint]int, len(categories))
	for i, c := range categories {
		index[c.ID] = i
		catalog.Categories[i] = CatalogCategory{Type: c.Type, Questions: []CatalogQuestion{}}
	}

	for _, q := range questions {
		cq := CatalogQuestion{Question: q.Question, Answer: q.Answer, Difficulty: q.Difficulty}
		if i, ok := index[q.Category]; ok {
			catalog.Categories[i].Questions = append(catalog.Categories[i].Questions, cq)
		} else {
			catalog.Uncategorized = append(catalog.Uncategorized, cq)
		}
	}
	return catalog, nil
}

// Import writes a catalog in one transaction. Categories are matched by type
// and created when missing. Any invalid entry rolls the whole import back.
func (s *QuestionService) Import(catalog Catalog) (*ImportResult, error) {
	if len(catalog.Uncategorized) > 0 {
		return nil, ErrInvalidQuestion
	}

	result := &ImportResult{}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, cc := range catalog.Categories {
			typ := strings.TrimSpace(cc.Type)
			if typ == "" {
				return ErrInvalidCategory
			}

			var cat models.Category
			err := tx.Where("type = ?", typ).Order("id ASC").First(&cat).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				cat = models.Category{Type: typ}
				if err := tx.Create(&cat).Error; err != nil {
					return fmt.Errorf("create category %q: %w", typ, err)
				}
				result.Categories++
			} else if err != nil {
				return fmt.Errorf("find category %q: %w", typ, err)
			}

			for _, cq := range cc.Questions {
				in := QuestionInput{
					Question:   cq.Question,
					Answer:     cq.Answer,
					Difficulty: cq.Difficulty,
					Category:   int(cat.ID),
				}
				if err := in.validate(); err != nil {
					return err
				}
				q := models.Question{
					Question:   strings.TrimSpace(in.Question),
					Answer:     strings.TrimSpace(in.Answer),
					Category:   cat.ID,
					Difficulty: in.Difficulty,
				}
				if err := tx.Create(&q).Error; err != nil {
					return fmt.Errorf("import question: %w", err)
				}
				result.Questions++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
