package services

import (
	"testing"

	"github.com/vdoan98/trivia-web-application/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionServiceListAndCount(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, seeded := testutil.SeedTrivia(t, db)
	svc := NewQuestionService(db)

	questions, err := svc.List()
	require.NoError(t, err)
	require.Len(t, questions, len(seeded))
	assert.Equal(t, seeded[0].ID, questions[0].ID)

	n, err := svc.Count()
	require.NoError(t, err)
	assert.EqualValues(t, len(seeded), n)
}

func TestQuestionServiceDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, seeded := testutil.SeedTrivia(t, db)
	svc := NewQuestionService(db)

	target := seeded[3].ID
	require.NoError(t, svc.Delete(target))

	_, err := svc.Get(target)
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	n, err := svc.Count()
	require.NoError(t, err)
	assert.EqualValues(t, len(seeded)-1, n)

	assert.ErrorIs(t, svc.Delete(target), ErrQuestionNotFound)
	assert.ErrorIs(t, svc.Delete(1000), ErrQuestionNotFound)
}

func TestQuestionServiceCreate(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewQuestionService(db)

	q, err := svc.Create(QuestionInput{
		Question:   "Which house was Hannah Abbott sorted in?",
		Answer:     "Hufflepuff",
		Difficulty: 1,
		Category:   5,
	})
	require.NoError(t, err)
	assert.NotZero(t, q.ID)

	stored, err := svc.Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hufflepuff", stored.Answer)
	assert.EqualValues(t, 5, stored.Category)
}

func TestQuestionServiceCreateValidation(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewQuestionService(db)

	valid := QuestionInput{Question: "What is H2O?", Answer: "Water", Difficulty: 1, Category: 1}

	tests := []struct {
		name   string
		mutate func(*QuestionInput)
	}{
		{"empty question", func(in *QuestionInput) { in.Question = "" }},
		{"blank answer", func(in *QuestionInput) { in.Answer = "  " }},
		{"zero difficulty", func(in *QuestionInput) { in.Difficulty = 0 }},
		{"negative category", func(in *QuestionInput) { in.Category = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)
			_, err := svc.Create(in)
			assert.ErrorIs(t, err, ErrInvalidQuestion)
		})
	}

	n, err := svc.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQuestionServiceSearch(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedTrivia(t, db)
	testutil.CreateQuestion(t, db, "What does 100% mean?", "All of it", 1, 1)
	svc := NewQuestionService(db)

	found, err := svc.Search("WHAT is")
	require.NoError(t, err)
	require.Len(t, found, 3)
	assert.Equal(t, "What is H2O?", found[0].Question)

	found, err = svc.Search("100%")
	require.NoError(t, err)
	require.Len(t, found, 1)

	found, err = svc.Search("%")
	require.NoError(t, err)
	assert.Len(t, found, 1, "wildcards match literally")

	found, err = svc.Search("dsfjlsajfslj")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestQuestionServiceByCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	categories, _ := testutil.SeedTrivia(t, db)
	svc := NewQuestionService(db)

	art, err := svc.ByCategory(categories[1].ID)
	require.NoError(t, err)
	require.Len(t, art, 2)
	for _, q := range art {
		assert.Equal(t, categories[1].ID, q.Category)
	}

	none, err := svc.ByCategory(99)
	require.NoError(t, err)
	assert.Empty(t, none)
}
