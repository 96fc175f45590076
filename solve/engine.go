// Package solve wires model.Problem through encode.Encoder to an actual SAT
// engine and back. The engine is github.com/go-air/gini, the same CDCL
// solver used in production by operator-framework/operator-lifecycle-manager.
package solve

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/haxelion/gridcsp/encode"
)

// engine wraps a gini instance together with the DIMACS-variable -> z.Lit
// table the encoder's integer clause literals are translated through.
type engine struct {
	g    *gini.Gini
	vars []z.Lit // vars[v-1] is the positive literal for DIMACS variable v
}

func newEngine(varCount int) *engine {
	g := gini.New()
	vars := make([]z.Lit, varCount)
	for i := 0; i < varCount; i++ {
		vars[i] = g.Lit()
	}
	return &engine{g: g, vars: vars}
}

func (e *engine) litFor(dimacs int) z.Lit {
	v := dimacs
	neg := false
	if v < 0 {
		v = -v
		neg = true
	}
	lit := e.vars[v-1]
	if neg {
		lit = lit.Not()
	}
	return lit
}

// addClause feeds one CNF clause to the solver.
func (e *engine) addClause(c encode.Clause) {
	for _, lit := range c {
		e.g.Add(e.litFor(lit))
	}
	e.g.Add(z.LitNull)
}

// addClauses feeds every clause the encoder accumulated.
func (e *engine) addClauses(clauses []encode.Clause) {
	for _, c := range clauses {
		e.addClause(c)
	}
}

// solve runs the SAT search; satisfiable mirrors gini's own result codes (1
// for SAT, -1 for UNSAT, 0 for unknown/interrupted, which this package never
// produces since it never cancels the search).
func (e *engine) solve() int {
	return e.g.Solve()
}

// value reports the model's truth assignment for a DIMACS variable once
// solve() has returned satisfiable.
func (e *engine) value(dimacsVar int) bool {
	return e.g.Value(e.vars[dimacsVar-1])
}
