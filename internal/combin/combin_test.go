package combin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haxelion/gridcsp/internal/combin"
)

func TestCombinationsBasic(t *testing.T) {
	got := combin.Combinations(4, 2)
	want := [][]int{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}
	assert.Equal(t, want, got)
}

func TestCombinationsEdgeCases(t *testing.T) {
	assert.Equal(t, [][]int{{}}, combin.Combinations(5, 0))
	assert.Equal(t, [][]int{{0}, {1}, {2}}, combin.Combinations(3, 1))
	assert.Equal(t, [][]int{{0, 1, 2}}, combin.Combinations(3, 3))
	assert.Nil(t, combin.Combinations(2, 3))
	assert.Nil(t, combin.Combinations(3, -1))
}
