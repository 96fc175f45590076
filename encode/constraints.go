package encode

import (
	"github.com/haxelion/gridcsp/arith"
	"github.com/haxelion/gridcsp/gridlog"
	"github.com/haxelion/gridcsp/internal/combin"
	"github.com/haxelion/gridcsp/model"
)

// Compile emits the clauses for every constrained group in p. The caller is
// expected to have validated p already (model.Problem.Validate).
func (e *Encoder) Compile(p model.Problem) error {
	for _, cg := range p.Constraints {
		before := len(e.clauses)
		if err := e.compileOne(cg); err != nil {
			return err
		}
		gridlog.ClauseCount(constraintName(cg.Constraint.Kind), len(e.clauses)-before)
	}
	return nil
}

func constraintName(k model.ConstraintKind) string {
	switch k {
	case model.ConstraintUnique:
		return "unique"
	case model.ConstraintEqual:
		return "equal"
	case model.ConstraintAdd:
		return "add"
	case model.ConstraintSub:
		return "sub"
	case model.ConstraintMul:
		return "mul"
	case model.ConstraintDiv:
		return "div"
	default:
		return "unknown"
	}
}

func (e *Encoder) compileOne(cg model.ConstrainedGroup) error {
	cells := cg.Group.ToCells(e.Grid)
	switch cg.Constraint.Kind {
	case model.ConstraintUnique:
		e.compileUnique(cells)
	case model.ConstraintEqual:
		e.compileEqual(cells, cg.Constraint.Value)
	case model.ConstraintAdd:
		e.compileAlternative(cells, arith.Add(len(cells), e.Grid.NumberMax, cg.Constraint.Value))
	case model.ConstraintSub:
		e.compileAlternative(cells, arith.Sub(len(cells), e.Grid.NumberMax, cg.Constraint.Value))
	case model.ConstraintMul:
		e.compileAlternative(cells, arith.Mul(len(cells), e.Grid.NumberMax, cg.Constraint.Value))
	case model.ConstraintDiv:
		e.compileAlternative(cells, arith.Div(len(cells), e.Grid.NumberMax, cg.Constraint.Value))
	}
	return nil
}

// compileUnique forbids any two cells in the group from sharing a value: for
// every domain value, at most one cell in the group may hold it.
func (e *Encoder) compileUnique(cells []model.Cell) {
	for v := uint64(1); v <= e.Grid.NumberMax; v++ {
		lits := make([]int, len(cells))
		for i, c := range cells {
			lits[i] = e.CellVar(c.X, c.Y, v)
		}
		e.atMostOne(lits)
	}
}

// compileEqual pins every cell in the group to a fixed value.
func (e *Encoder) compileEqual(cells []model.Cell, v uint64) {
	for _, c := range cells {
		e.AddClause(e.CellVar(c.X, c.Y, v))
	}
}

// compileAlternative implements the alternative (selector + run-length +
// pigeonhole subset-cover) encoding for an arithmetic constraint's list of
// valid sorted tuples, avoiding the permutation explosion that would come
// from asserting one clause family per ordering of each tuple across the
// group's cells.
//
// For each valid tuple, a selector variable is allocated. Making the
// selector true forces, for every distinct value in the tuple, at least as
// many of the group's cells to hold that value as the tuple's run-length
// count for it. Since the per-value counts across a tuple sum to the group
// size, and each cell already holds exactly one value (via the per-cell
// exactly-one constraint from NewEncoder), forcing "at least count_v" for
// every value appearing in the tuple leaves no slack: the only way to
// satisfy all of them at once is for the cells to match the tuple exactly.
// An at-least-one clause over all selectors then requires some tuple to
// hold. If no tuple is valid at all, the group is unsatisfiable by
// construction and an empty clause is emitted directly.
func (e *Encoder) compileAlternative(cells []model.Cell, tuples []arith.Tuple) {
	k := len(cells)
	if len(tuples) == 0 {
		e.AddClause()
		return
	}

	selectors := make([]int, len(tuples))
	for i, tup := range tuples {
		s := e.mustAllocVar()
		selectors[i] = s
		for _, rl := range runLengths(tup) {
			e.addAtLeastCount(s, cells, rl.value, rl.count, k)
		}
	}
	e.AddClause(selectors...)
}

// runLength is one distinct value's occurrence count within a tuple.
type runLength struct {
	value uint64
	count int
}

// runLengths compresses a sorted tuple into an ordered value/occurrence-count
// list. It walks the tuple once left to right: since every arith enumerator
// returns tuples in non-decreasing order, equal values are always adjacent,
// so a single linear scan groups them without needing a map (and the
// resulting clause emission order in compileAlternative stays fixed across
// runs for identical input, instead of following Go's randomized map
// iteration order).
func runLengths(tup arith.Tuple) []runLength {
	var out []runLength
	for _, v := range tup {
		if n := len(out); n > 0 && out[n-1].value == v {
			out[n-1].count++
			continue
		}
		out = append(out, runLength{value: v, count: 1})
	}
	return out
}

// addAtLeastCount emits: selector -> at least `count` of `cells` hold value
// v, via the pigeonhole construction: any subset of (k-count+1) cells must
// contain at least one cell holding v, since only k-count cells could
// possibly avoid it.
func (e *Encoder) addAtLeastCount(selector int, cells []model.Cell, v uint64, count, k int) {
	if count == k {
		// Every cell must hold v; no subset machinery needed.
		for _, c := range cells {
			e.AddClause(-selector, e.CellVar(c.X, c.Y, v))
		}
		return
	}
	subsetSize := k - count + 1
	for _, subset := range combin.Combinations(k, subsetSize) {
		clause := make([]int, 0, len(subset)+1)
		clause = append(clause, -selector)
		for _, idx := range subset {
			c := cells[idx]
			clause = append(clause, e.CellVar(c.X, c.Y, v))
		}
		e.AddClause(clause...)
	}
}
