package services

import (
	"testing"

	"github.com/vdoan98/trivia-web-application/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryServiceListEmpty(t *testing.T) {
	svc := NewCategoryService(testutil.NewTestDB(t))

	categories, err := svc.Map()
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestCategoryServiceCreateAndMap(t *testing.T) {
	svc := NewCategoryService(testutil.NewTestDB(t))

	science, err := svc.Create("Science")
	require.NoError(t, err)
	art, err := svc.Create("  Art ")
	require.NoError(t, err)

	assert.NotZero(t, science.ID)
	assert.Equal(t, "Art", art.Type)

	categories, err := svc.Map()
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{science.ID: "Science", art.ID: "Art"}, categories)
}

func TestCategoryServiceCreateRequiresType(t *testing.T) {
	svc := NewCategoryService(testutil.NewTestDB(t))

	for _, typ := range []string{"", "   "} {
		_, err := svc.Create(typ)
		assert.ErrorIs(t, err, ErrInvalidCategory)
	}

	categories, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, categories)
}
