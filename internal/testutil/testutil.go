// Package testutil provides an in-memory store and fixtures for tests.
package testutil

import (
	"testing"

	"github.com/vdoan98/trivia-web-application/internal/database"
	"github.com/vdoan98/trivia-web-application/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory SQLite store. The pool is pinned to a
// single connection so every query sees the same database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}
	return db
}

func CreateCategory(t *testing.T, db *gorm.DB, typ string) models.Category {
	t.Helper()

	c := models.Category{Type: typ}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("failed to create category %q: %v", typ, err)
	}
	return c
}

func CreateQuestion(t *testing.T, db *gorm.DB, question, answer string, category uint, difficulty int) models.Question {
	t.Helper()

	q := models.Question{
		Question:   question,
		Answer:     answer,
		Category:   category,
		Difficulty: difficulty,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("failed to create question %q: %v", question, err)
	}
	return q
}

// SeedTrivia loads a small fixed data set: categories Science (1), Art (2)
// and History (3), with 12 questions spread across them. Science holds the
// first 8 questions, Art the next 2, History the last 2.
func SeedTrivia(t *testing.T, db *gorm.DB) ([]models.Category, []models.Question) {
	t.Helper()

	categories := []models.Category{
		CreateCategory(t, db, "Science"),
		CreateCategory(t, db, "Art"),
		CreateCategory(t, db, "History"),
	}
	science, art, history := categories[0].ID, categories[1].ID, categories[2].ID

	rows := []struct {
		question, answer string
		category         uint
		difficulty       int
	}{
		{"What is H2O?", "Water", science, 1},
		{"What is the heaviest organ in the human body?", "The Liver", science, 4},
		{"Who discovered penicillin?", "Alexander Fleming", science, 3},
		{"Hematology is a branch of medicine involving the study of what?", "Blood", science, 4},
		{"What is the chemical symbol for gold?", "Au", science, 2},
		{"How many bones are in the adult human body?", "206", science, 3},
		{"What planet is known as the Red Planet?", "Mars", science, 1},
		{"What gas do plants absorb from the air?", "Carbon dioxide", science, 2},
		{"Which Dutch graphic artist was known for impossible constructions?", "Escher", art, 1},
		{"La Giaconda is better known as what?", "Mona Lisa", art, 3},
		{"Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", "Maya Angelou", history, 2},
		{"Which dung beetle was worshipped by the ancient Egyptians?", "Scarab", history, 4},
	}

	questions := make([]models.Question, 0, len(rows))
	for _, r := range rows {
		questions = append(questions, CreateQuestion(t, db, r.question, r.answer, r.category, r.difficulty))
	}
	return categories, questions
}
