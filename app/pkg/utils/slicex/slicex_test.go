package slicex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	assert.Equal(t, 0, Sum([]int{}))
	assert.Equal(t, 23, Sum([]int{5, 4, -1, 7, 8}))
	assert.InDelta(t, 1.5, Sum([]float64{0.5, 0.25, 0.75}), 1e-9)
	assert.Equal(t, uint8(250), Sum([]uint8{200, 50}))
}

func TestMax(t *testing.T) {
	_, ok := Max([]int{})
	assert.False(t, ok)

	largest, ok := Max([]int{-3, -1, -2})
	assert.True(t, ok)
	assert.Equal(t, -1, largest)

	largestF, ok := Max([]float32{1.5})
	assert.True(t, ok)
	assert.Equal(t, float32(1.5), largestF)
}

func TestSignPredicates(t *testing.T) {
	tests := []struct {
		name        string
		arr         []int
		nonNegative bool
		negative    bool
	}{
		{"empty", []int{}, true, false},
		{"zeros", []int{0, 0}, true, false},
		{"positive", []int{5, 4, 7}, true, false},
		{"negative", []int{-5, -4, -7}, false, true},
		{"mixed", []int{-2, 1, -3}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nonNegative, AllNonNegative(tt.arr))
			assert.Equal(t, tt.negative, AllNegative(tt.arr))
		})
	}
}
