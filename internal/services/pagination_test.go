package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := seq(23)

	tests := []struct {
		name string
		page int
		want []int
	}{
		{"first page", 1, seq(10)},
		{"second page", 2, items[10:20]},
		{"partial last page", 3, []int{21, 22, 23}},
		{"beyond last page", 4, []int{}},
		{"far beyond", 1000, []int{}},
		{"zero page", 0, []int{}},
		{"negative page", -2, []int{}},
		{"huge page", int(^uint(0) >> 1), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(items, tt.page)
			assert.Equal(t, tt.want, got)
			assert.NotNil(t, got)
		})
	}
}

func TestPaginateExactMultiple(t *testing.T) {
	items := seq(20)

	assert.Len(t, Paginate(items, 2), QuestionsPerPage)
	assert.Empty(t, Paginate(items, 3))
	assert.Empty(t, Paginate([]int(nil), 1))
}
