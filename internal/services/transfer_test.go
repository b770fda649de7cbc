package services

import (
	"testing"

	"github.com/vdoan98/trivia-web-application/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionServiceExport(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.SeedTrivia(t, db)
	testutil.CreateQuestion(t, db, "Who painted Guernica?", "Picasso", 42, 2)
	svc := NewQuestionService(db)

	catalog, err := svc.Export()
	require.NoError(t, err)

	require.Len(t, catalog.Categories, 3)
	assert.Equal(t, "Science", catalog.Categories[0].Type)
	assert.Len(t, catalog.Categories[0].Questions, 8)
	assert.Equal(t, CatalogQuestion{Question: "La Giaconda is better known as what?", Answer: "Mona Lisa", Difficulty: 3}, catalog.Categories[1].Questions[1])
	assert.Equal(t, []CatalogQuestion{{Question: "Who painted Guernica?", Answer: "Picasso", Difficulty: 2}}, catalog.Uncategorized)
}

func TestQuestionServiceImportRoundTrip(t *testing.T) {
	src := testutil.NewTestDB(t)
	testutil.SeedTrivia(t, src)
	catalog, err := NewQuestionService(src).Export()
	require.NoError(t, err)

	dst := testutil.NewTestDB(t)
	testutil.CreateCategory(t, dst, "Art")
	svc := NewQuestionService(dst)

	result, err := svc.Import(*catalog)
	require.NoError(t, err)
	assert.Equal(t, 12, result.Questions)
	assert.Equal(t, 2, result.Categories, "Art already existed")

	categories, err := NewCategoryService(dst).Map()
	require.NoError(t, err)
	assert.Len(t, categories, 3)

	art, err := svc.ByCategory(1)
	require.NoError(t, err)
	assert.Len(t, art, 2)
}

func TestQuestionServiceImportRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewQuestionService(db)

	_, err := svc.Import(Catalog{Categories: []CatalogCategory{
		{Type: "Geography", Questions: []CatalogQuestion{{Question: "Capital of Peru?", Answer: "Lima", Difficulty: 2}}},
		{Type: "Sports", Questions: []CatalogQuestion{{Question: "", Answer: "Brazil", Difficulty: 3}}},
	}})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	n, err := svc.Count()
	require.NoError(t, err)
	assert.Zero(t, n)
	categories, err := NewCategoryService(db).List()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestQuestionServiceImportRejectsUncategorized(t *testing.T) {
	svc := NewQuestionService(testutil.NewTestDB(t))

	_, err := svc.Import(Catalog{Uncategorized: []CatalogQuestion{{Question: "Q", Answer: "A", Difficulty: 1}}})
	assert.ErrorIs(t, err, ErrInvalidQuestion)

	_, err = svc.Import(Catalog{Categories: []CatalogCategory{{Type: " "}}})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}
