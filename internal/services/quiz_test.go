package services

import (
	"testing"

	"github.com/vdoan98/trivia-web-application/internal/models"
	"github.com/vdoan98/trivia-web-application/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(questions []models.Question) []uint {
	out := make([]uint, 0, len(questions))
	for _, q := range questions {
		out = append(out, q.ID)
	}
	return out
}

func TestQuizServiceNextExhaustedCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	science := testutil.CreateCategory(t, db, "Science")
	q := testutil.CreateQuestion(t, db, "What is H2O?", "Water", science.ID, 1)
	svc := NewQuizService(db)

	next, err := svc.Next(science.ID, []uint{q.ID})
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestQuizServiceNextNeverRepeats(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, seeded := testutil.SeedTrivia(t, db)
	svc := NewQuizService(db)

	var previous []uint
	for range seeded {
		next, err := svc.Next(AnyCategory, previous)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.NotContains(t, previous, next.ID)
		previous = append(previous, next.ID)
	}

	assert.ElementsMatch(t, ids(seeded), previous)

	next, err := svc.Next(AnyCategory, previous)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestQuizServiceNextRestrictsCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	categories, _ := testutil.SeedTrivia(t, db)
	history := categories[2].ID
	svc := NewQuizService(db)

	var previous []uint
	for i := 0; i < 2; i++ {
		next, err := svc.Next(history, previous)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, history, next.Category)
		previous = append(previous, next.ID)
	}

	next, err := svc.Next(history, previous)
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestQuizServiceNextUsesPicker(t *testing.T) {
	db := testutil.NewTestDB(t)
	_, seeded := testutil.SeedTrivia(t, db)
	svc := NewQuizService(db)

	var gotN int
	svc.pick = func(n int) int {
		gotN = n
		return n - 1
	}

	next, err := svc.Next(AnyCategory, []uint{seeded[0].ID, seeded[1].ID})
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, len(seeded)-2, gotN)
	assert.Equal(t, seeded[len(seeded)-1].ID, next.ID)
}

func TestQuizServiceNextEmptyStore(t *testing.T) {
	svc := NewQuizService(testutil.NewTestDB(t))

	next, err := svc.Next(AnyCategory, nil)
	require.NoError(t, err)
	assert.Nil(t, next)
}
