package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0, 3))
	assert.Equal(t, 3, Offset(1, 3))
	assert.Equal(t, 50, Offset(5, 10))
	assert.Equal(t, 0, Offset(-1, 3), "negative page should clamp to zero")
	assert.Equal(t, 0, Offset(2, 0), "zero size should clamp to zero")
	assert.Equal(t, math.MaxInt, Offset(3074457345618258603, 3), "overflowing offset should saturate")
	assert.Equal(t, math.MaxInt, Offset(math.MaxInt, math.MaxInt))
}

func TestBounds(t *testing.T) {
	tests := []struct {
		name              string
		total, page, size int
		wantStart         int
		wantEnd           int
	}{
		{"first full page", 7, 0, 3, 0, 3},
		{"middle page", 7, 1, 3, 3, 6},
		{"last partial page", 7, 2, 3, 6, 7},
		{"past the end", 7, 3, 3, 7, 7},
		{"far past the end", 7, 100, 3, 7, 7},
		{"empty set", 0, 0, 3, 0, 0},
		{"zero size", 7, 0, 0, 0, 0},
		{"negative page", 7, -2, 3, 0, 3},
		{"overflowing page", 7, 3074457345618258603, 3, 7, 7},
		{"huge size", 7, 0, math.MaxInt, 0, 7},
		{"huge page and size", 7, math.MaxInt, math.MaxInt, 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := Bounds(tt.total, tt.page, tt.size)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
