package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		total     int64
		wantPages int
		wantPrev  *int
		wantNext  *int
	}{
		{"empty", 1, 0, 0, nil, nil},
		{"single partial page", 1, 3, 1, nil, nil},
		{"exact pages", 2, 20, 2, intPtr(1), nil},
		{"middle page", 2, 25, 3, intPtr(1), intPtr(3)},
		{"beyond last page", 4, 25, 3, intPtr(3), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.total)
			assert.Equal(t, tt.page, p.CurrentPage)
			assert.Equal(t, tt.wantPages, p.TotalPages)
			assert.Equal(t, tt.wantPrev, p.PreviousPage)
			assert.Equal(t, tt.wantNext, p.NextPage)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1))
	assert.Equal(t, 20, Offset(3))
	assert.Equal(t, 0, Offset(0))
}

func TestOffset_HugePageNeverWraps(t *testing.T) {
	assert.Equal(t, (MaxPage-1)*PageSize, Offset(MaxPage))
	assert.Positive(t, Offset(MaxPage))

	for _, page := range []int{MaxPage + 1, math.MaxInt/PageSize + 2, math.MaxInt} {
		assert.Equal(t, math.MaxInt, Offset(page), "page %d", page)
	}
}

func TestNewListResponse_NilRows(t *testing.T) {
	res := NewListResponse[string](nil, 1, 0)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func intPtr(i int) *int { return &i }
