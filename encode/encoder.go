// Package encode compiles a model.Problem into CNF: one set of literals per
// cell value, a per-cell exactly-one constraint via the Kleiner–Kwon
// commander encoding, and one clause family per constrained group (see
// constraints.go for the per-constraint-kind compilation).
package encode

import (
	"math"

	"github.com/haxelion/gridcsp/gridlog"
	"github.com/haxelion/gridcsp/model"
)

// Clause is a CNF clause: a disjunction of signed DIMACS literals (positive
// literal v means variable v true, negative means false). An empty clause
// is unsatisfiable by construction and is used to short-circuit a
// constrained group with no valid tuple.
type Clause []int

// Encoder accumulates variables and clauses for one grid. gridVars[x][y][v]
// is the DIMACS variable meaning "cell (x,y) holds value v+1".
type Encoder struct {
	Grid     model.GridDimensions
	varCount int
	gridVars [][][]int
	clauses  []Clause
}

// commanderGroupSize is the fan-out used by the commander encoding's
// recursive grouping; 3 is the value used in the Kleiner–Kwon construction.
const commanderGroupSize = 3

// NewEncoder allocates one variable per (cell, value) pair and emits the
// per-cell exactly-one constraint for every cell in the grid.
func NewEncoder(grid model.GridDimensions) (*Encoder, error) {
	e := &Encoder{Grid: grid}
	e.gridVars = make([][][]int, grid.Width)
	for x := 0; x < grid.Width; x++ {
		e.gridVars[x] = make([][]int, grid.Height)
		for y := 0; y < grid.Height; y++ {
			cellVars := make([]int, grid.NumberMax)
			for v := range cellVars {
				id, err := e.allocVar()
				if err != nil {
					return nil, err
				}
				cellVars[v] = id
			}
			e.gridVars[x][y] = cellVars
		}
	}
	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			e.exactlyOne(e.gridVars[x][y])
		}
	}
	gridlog.EncodeStep("init", "allocated %d variable(s) for %dx%d grid (number_max=%d)",
		e.varCount, grid.Width, grid.Height, grid.NumberMax)
	return e, nil
}

// allocVar hands out a fresh DIMACS variable id, failing once the id space
// the encoder can address is exhausted.
func (e *Encoder) allocVar() (int, error) {
	if e.varCount >= math.MaxInt32-1 {
		return 0, &model.TooManyVariablesError{Requested: int64(e.varCount) + 1}
	}
	e.varCount++
	return e.varCount, nil
}

// mustAllocVar is used internally where the caller has no error path (the
// commander encoding's recursion and compileAlternative's selector
// variables); it panics with allocVar's TooManyVariablesError once the
// variable id space is exhausted.
func (e *Encoder) mustAllocVar() int {
	id, err := e.allocVar()
	if err != nil {
		panic(err)
	}
	return id
}

// AddClause appends a clause as-is; an empty clause is a deliberate
// unsatisfiable marker.
func (e *Encoder) AddClause(lits ...int) {
	clause := make(Clause, len(lits))
	copy(clause, lits)
	e.clauses = append(e.clauses, clause)
}

// VarCount returns how many variables have been allocated so far.
func (e *Encoder) VarCount() int { return e.varCount }

// Clauses returns the accumulated clause list.
func (e *Encoder) Clauses() []Clause { return e.clauses }

// CellVar returns the DIMACS variable for cell (x, y) holding value v
// (1-indexed, v in [1, NumberMax]).
func (e *Encoder) CellVar(x, y int, v uint64) int {
	return e.gridVars[x][y][v-1]
}

func chunk(lits []int, size int) [][]int {
	var out [][]int
	for i := 0; i < len(lits); i += size {
		end := i + size
		if end > len(lits) {
			end = len(lits)
		}
		out = append(out, lits[i:end])
	}
	return out
}

// addAMOPairwise adds the naive O(n^2) at-most-one encoding; only ever
// called on commander group base cases (size <= commanderGroupSize), where
// the quadratic blowup is bounded by a constant.
func (e *Encoder) addAMOPairwise(lits []int) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			e.AddClause(-lits[i], -lits[j])
		}
	}
}

// atMostOne encodes "at most one of lits is true" using the commander
// construction: literals are partitioned into groups of commanderGroupSize,
// each group gets a commander variable that is forced true whenever any
// literal in the group is true, and at most one commander may be true,
// recursively. A group of size 1 passes its literal through as its own
// commander rather than allocating a redundant variable.
func (e *Encoder) atMostOne(lits []int) {
	if len(lits) <= 1 {
		return
	}
	if len(lits) <= commanderGroupSize {
		e.addAMOPairwise(lits)
		return
	}
	groups := chunk(lits, commanderGroupSize)
	commanders := make([]int, len(groups))
	for i, g := range groups {
		if len(g) == 1 {
			commanders[i] = g[0]
			continue
		}
		e.addAMOPairwise(g)
		c := e.mustAllocVar()
		for _, l := range g {
			e.AddClause(-l, c)
		}
		commanders[i] = c
	}
	e.atMostOne(commanders)
}

// exactlyOne encodes "exactly one of lits is true": at-most-one via the
// same commander partition, plus an at-least-one clause requiring the
// commander (or the group's own literal for size-1 groups) to witness the
// group actually holding the true literal. Recurses the same way atMostOne
// does.
func (e *Encoder) exactlyOne(lits []int) {
	if len(lits) == 0 {
		e.AddClause() // unsatisfiable: no value can be assigned
		return
	}
	if len(lits) <= commanderGroupSize {
		e.addExactlyOneBase(lits)
		return
	}
	groups := chunk(lits, commanderGroupSize)
	commanders := make([]int, len(groups))
	for i, g := range groups {
		if len(g) == 1 {
			commanders[i] = g[0]
			continue
		}
		e.addAMOPairwise(g)
		c := e.mustAllocVar()
		// c -> at least one of g
		clause := append([]int{-c}, g...)
		e.AddClause(clause...)
		// each literal in g implies c
		for _, l := range g {
			e.AddClause(-l, c)
		}
		commanders[i] = c
	}
	e.exactlyOne(commanders)
}

func (e *Encoder) addExactlyOneBase(lits []int) {
	e.AddClause(lits...)
	e.addAMOPairwise(lits)
}
