package encode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haxelion/gridcsp/encode"
	"github.com/haxelion/gridcsp/model"
)

func TestNewEncoderAllocatesGridVars(t *testing.T) {
	grid := model.NewGridDimensions(2, 2, 3)
	enc, err := encode.NewEncoder(grid)
	require.NoError(t, err)
	assert.Equal(t, 2*2*3, enc.VarCount())

	seen := map[int]bool{}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			for v := uint64(1); v <= 3; v++ {
				id := enc.CellVar(x, y, v)
				assert.False(t, seen[id], "variable id %d reused", id)
				seen[id] = true
			}
		}
	}
	assert.NotEmpty(t, enc.Clauses())
}

func TestCompileEqualPinsValue(t *testing.T) {
	grid := model.NewGridDimensions(1, 1, 3)
	enc, err := encode.NewEncoder(grid)
	require.NoError(t, err)

	p := model.NewProblem(grid)
	p.AddConstraint(model.Equal(2).Over(model.List(model.NewCell(0, 0))))
	require.NoError(t, enc.Compile(p))

	want := enc.CellVar(0, 0, 2)
	found := false
	for _, c := range enc.Clauses() {
		if len(c) == 1 && c[0] == want {
			found = true
		}
	}
	assert.True(t, found, "expected a unit clause pinning cell to value 2")
}

func TestCompileUniqueForbidsSharedValue(t *testing.T) {
	grid := model.NewGridDimensions(2, 1, 2)
	enc, err := encode.NewEncoder(grid)
	require.NoError(t, err)

	p := model.NewProblem(grid)
	p.AddConstraint(model.Unique().Over(model.Row(0)))
	require.NoError(t, enc.Compile(p))

	a := enc.CellVar(0, 0, 1)
	b := enc.CellVar(1, 0, 1)
	found := false
	for _, c := range enc.Clauses() {
		if len(c) == 2 && ((c[0] == -a && c[1] == -b) || (c[0] == -b && c[1] == -a)) {
			found = true
		}
	}
	assert.True(t, found, "expected a pairwise at-most-one clause for value 1")
}

func TestCompileAddUnsatisfiableEmitsEmptyClause(t *testing.T) {
	grid := model.NewGridDimensions(2, 1, 1)
	enc, err := encode.NewEncoder(grid)
	require.NoError(t, err)

	p := model.NewProblem(grid)
	// Only possible sum of two cells in [1,1] is 2; ask for something
	// impossible.
	p.AddConstraint(model.Add(5).Over(model.Row(0)))
	require.NoError(t, enc.Compile(p))

	foundEmpty := false
	for _, c := range enc.Clauses() {
		if len(c) == 0 {
			foundEmpty = true
		}
	}
	assert.True(t, foundEmpty, "expected an empty (always-false) clause for an impossible constraint")
}

// clauseSatisfied reports whether assignment (1-indexed variable -> bool)
// satisfies clause c.
func clauseSatisfied(c encode.Clause, assignment []bool) bool {
	if len(c) == 0 {
		return false
	}
	for _, lit := range c {
		v := lit
		if v < 0 {
			v = -v
		}
		val := assignment[v]
		if (lit > 0 && val) || (lit < 0 && !val) {
			return true
		}
	}
	return false
}

func allSatisfied(clauses []encode.Clause, assignment []bool) bool {
	for _, c := range clauses {
		if !clauseSatisfied(c, assignment) {
			return false
		}
	}
	return true
}

// TestExactlyOneCommanderEncodingIsLogicallyExact brute-forces every
// variable assignment for a 7-value single-cell domain (large enough to
// force the commander recursion to allocate auxiliary variables) and checks
// that the satisfying assignments projected onto the 7 domain literals are
// exactly those with precisely one true literal.
func TestExactlyOneCommanderEncodingIsLogicallyExact(t *testing.T) {
	const n = 7
	grid := model.NewGridDimensions(1, 1, n)
	enc, err := encode.NewEncoder(grid)
	require.NoError(t, err)

	domainVars := make([]int, n)
	for v := 0; v < n; v++ {
		domainVars[v] = enc.CellVar(0, 0, uint64(v+1))
	}

	total := enc.VarCount()
	clauses := enc.Clauses()

	satisfyingDomainPatterns := map[int]bool{}
	assignment := make([]bool, total+1)
	var recurse func(i int)
	recurse = func(i int) {
		if i > total {
			if allSatisfied(clauses, assignment) {
				mask := 0
				for v := 0; v < n; v++ {
					if assignment[domainVars[v]] {
						mask |= 1 << v
					}
				}
				satisfyingDomainPatterns[mask] = true
			}
			return
		}
		assignment[i] = false
		recurse(i + 1)
		assignment[i] = true
		recurse(i + 1)
	}
	recurse(1)

	for mask := range satisfyingDomainPatterns {
		bits := 0
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				bits++
			}
		}
		assert.Equal(t, 1, bits, "mask %b should set exactly one domain literal", mask)
	}
	for v := 0; v < n; v++ {
		assert.True(t, satisfyingDomainPatterns[1<<v], "value %d should be reachable", v+1)
	}
}
