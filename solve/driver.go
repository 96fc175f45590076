package solve

import (
	"github.com/haxelion/gridcsp/encode"
	"github.com/haxelion/gridcsp/gridlog"
	"github.com/haxelion/gridcsp/model"
)

// satisfiable/unsatisfiable mirror gini's own Solve() result codes.
const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Solution is a decoded grid assignment: Values[x][y] holds the value
// assigned to cell (x, y).
type Solution struct {
	Values [][]uint64
}

// Options configures a Solve/SolveUnique call.
type Options struct {
	verbose bool
}

// Option mutates Options.
type Option func(*Options)

// WithEngineVerbose enables per-step Info-level logging of the solve pipeline
// (validate, encode, invoke engine, uniqueness check).
func WithEngineVerbose() Option {
	return func(o *Options) { o.verbose = true }
}

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Solve validates, encodes and solves p, returning the first solution found.
// Returns model.NoSolutionError if the problem is unsatisfiable.
func Solve(p model.Problem, opts ...Option) (*Solution, error) {
	o := buildOptions(opts)
	return solve(p, o, false)
}

// SolveUnique behaves like Solve but additionally asserts the solution is
// unique: after finding a model, it re-solves with a blocking clause that
// forbids the exact same assignment and checks no second model exists. The
// blocking clause is only ever added to this call's own engine instance,
// never leaked across calls.
func SolveUnique(p model.Problem, opts ...Option) (*Solution, error) {
	o := buildOptions(opts)
	return solve(p, o, true)
}

func solve(p model.Problem, o Options, requireUnique bool) (*Solution, error) {
	if o.verbose {
		gridlog.SolveStep("validate", "validating problem (%dx%d, number_max=%d, %d constraint(s))",
			p.Grid.Width, p.Grid.Height, p.Grid.NumberMax, len(p.Constraints))
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	enc, err := encode.NewEncoder(p.Grid)
	if err != nil {
		return nil, err
	}
	if o.verbose {
		gridlog.SolveStep("encode", "encoding %d constrained group(s)", len(p.Constraints))
	}
	if err := enc.Compile(p); err != nil {
		return nil, err
	}

	eng := newEngine(enc.VarCount())
	eng.addClauses(enc.Clauses())

	if o.verbose {
		gridlog.SolveStep("solve", "invoking SAT engine (%d variable(s), %d clause(s))", enc.VarCount(), len(enc.Clauses()))
	}
	res := eng.solve()
	if res == unsatisfiable {
		return nil, &model.NoSolutionError{}
	}
	if res != satisfiable {
		return nil, model.WrapSolverError(errUnexpectedResult(res))
	}

	solution, err := decode(enc, eng, p.Grid)
	if err != nil {
		return nil, err
	}

	if requireUnique {
		if o.verbose {
			gridlog.SolveStep("uniqueness", "checking for a second solution")
		}
		if err := checkUnique(enc, eng, solution); err != nil {
			return nil, err
		}
	}

	return solution, nil
}

// decode reads the engine's model back into a dense grid, failing with
// UnexpectedSolutionError if some cell does not have exactly one value set
// (a bug in the encoding, since the per-cell exactly-one clauses should
// make this impossible for any model the engine returns).
func decode(enc *encode.Encoder, eng *engine, grid model.GridDimensions) (*Solution, error) {
	values := make([][]uint64, grid.Width)
	for x := 0; x < grid.Width; x++ {
		values[x] = make([]uint64, grid.Height)
		for y := 0; y < grid.Height; y++ {
			set := uint64(0)
			count := 0
			for v := uint64(1); v <= grid.NumberMax; v++ {
				if eng.value(enc.CellVar(x, y, v)) {
					set = v
					count++
				}
			}
			if count != 1 {
				return nil, &model.UnexpectedSolutionError{Cell: model.NewCell(x, y), NumberSet: count}
			}
			values[x][y] = set
		}
	}
	return &Solution{Values: values}, nil
}

// checkUnique adds a clause blocking the exact assignment in solution, then
// re-solves; a second model means the original problem had more than one
// solution.
func checkUnique(enc *encode.Encoder, eng *engine, solution *Solution) error {
	blocking := make(encode.Clause, 0, enc.Grid.Width*enc.Grid.Height)
	for x := 0; x < enc.Grid.Width; x++ {
		for y := 0; y < enc.Grid.Height; y++ {
			v := solution.Values[x][y]
			blocking = append(blocking, -enc.CellVar(x, y, v))
		}
	}
	eng.addClause(blocking)

	res := eng.solve()
	switch res {
	case unsatisfiable:
		return nil
	case satisfiable:
		return &model.SolutionNotUniqueError{}
	default:
		return model.WrapSolverError(errUnexpectedResult(res))
	}
}

type unexpectedResultError int

func (e unexpectedResultError) Error() string {
	return "sat engine returned an unexpected result code"
}

func errUnexpectedResult(code int) error {
	return unexpectedResultError(code)
}
