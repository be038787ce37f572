package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRange(t *testing.T) {
	tests := []struct {
		name    string
		current int
		total   int
		want    []string
	}{
		{"single page", 1, 1, nil},
		{"short range is not elided", 2, 4, []string{"1", "2", "3", "4"}},
		{"first page", 1, 10, []string{"1", "2", Ellipsis, "10"}},
		{"middle page", 5, 10, []string{"1", Ellipsis, "4", "5", "6", Ellipsis, "10"}},
		{"last page", 10, 10, []string{"1", Ellipsis, "9", "10"}},
		{"near the start", 4, 10, []string{"1", "2", "3", "4", "5", Ellipsis, "10"}},
		{"near the end", 7, 10, []string{"1", Ellipsis, "6", "7", "8", "9", "10"}},
		{"five pages", 3, 5, []string{"1", "2", "3", "4", "5"}},
		{"out of range is clamped", 42, 6, []string{"1", Ellipsis, "5", "6"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageRange(tt.current, tt.total))
		})
	}
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	window, meta, err := paginate(items, 2, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{3, 4}, window)
	assert.Equal(t, PageMeta{Total: 5, Page: 2, PageSize: 2, TotalPages: 3}, meta)

	window, _, err = paginate(items, 3, 2)
	assert.NoError(t, err)
	assert.Equal(t, []int{5}, window)

	_, _, err = paginate(items, 4, 2)
	assert.Error(t, err)

	window, meta, err = paginate([]int{}, 1, 20)
	assert.NoError(t, err)
	assert.Empty(t, window)
	assert.Equal(t, 0, meta.TotalPages)
}
