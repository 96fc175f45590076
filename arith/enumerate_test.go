package arith_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haxelion/gridcsp/arith"
)

func tuples(rows ...[]uint64) []arith.Tuple {
	out := make([]arith.Tuple, len(rows))
	for i, r := range rows {
		out[i] = arith.Tuple(r)
	}
	return out
}

func TestAddEnumerator(t *testing.T) {
	got := arith.Add(2, 5, 6)
	want := tuples([]uint64{1, 5}, []uint64{2, 4}, []uint64{3, 3})
	assert.Equal(t, want, got)
}

func TestAddEnumeratorThreeWay(t *testing.T) {
	got := arith.Add(3, 4, 6)
	want := tuples(
		[]uint64{1, 1, 4},
		[]uint64{1, 2, 3},
		[]uint64{2, 2, 2},
	)
	assert.Equal(t, want, got)
}

func TestSubEnumerator(t *testing.T) {
	got := arith.Sub(2, 5, 3)
	want := tuples([]uint64{1, 4}, []uint64{2, 5})
	assert.Equal(t, want, got)
}

func TestSubEnumeratorThreeWay(t *testing.T) {
	// sum of the first two plus target equals the third: 1+1+4 = 6.
	got := arith.Sub(3, 6, 4)
	want := tuples([]uint64{1, 1, 6})
	assert.Equal(t, want, got)
}

func TestMulEnumerator(t *testing.T) {
	got := arith.Mul(2, 9, 12)
	want := tuples([]uint64{2, 6}, []uint64{3, 4})
	assert.Equal(t, want, got)
}

func TestDivEnumerator(t *testing.T) {
	got := arith.Div(2, 9, 3)
	want := tuples([]uint64{1, 3}, []uint64{2, 6}, []uint64{3, 9})
	assert.Equal(t, want, got)
}

func TestEnumeratorsGuardDegenerateInputs(t *testing.T) {
	assert.Nil(t, arith.Add(1, 5, 3))
	assert.Nil(t, arith.Sub(1, 5, 3))
	assert.Nil(t, arith.Mul(2, 5, 0))
	assert.Nil(t, arith.Div(2, 5, 0))
	assert.Nil(t, arith.Mul(2, 0, 5))
}
