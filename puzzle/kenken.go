package puzzle

import "github.com/haxelion/gridcsp/model"

// Cage is one KenKen cage: an arithmetic (or fixed-value) constraint over an
// explicit, ordered set of cells.
type Cage struct {
	Cells      []model.Cell
	Constraint model.Constraint
}

// BuildKenKen builds a KenKen Problem: a gridSize x gridSize grid with
// every row and column Unique (the Latin-square backbone every KenKen
// puzzle shares with Sudoku), plus one constrained group per cage.
func BuildKenKen(gridSize int, cages []Cage) (model.Problem, error) {
	grid := model.NewGridDimensions(gridSize, gridSize, uint64(gridSize))
	p := model.NewProblem(grid)

	for y := 0; y < gridSize; y++ {
		p.AddConstraint(model.Unique().Over(model.Row(y)))
	}
	for x := 0; x < gridSize; x++ {
		p.AddConstraint(model.Unique().Over(model.Column(x)))
	}
	for _, cage := range cages {
		p.AddConstraint(cage.Constraint.Over(model.List(cage.Cells...)))
	}

	if err := p.Validate(); err != nil {
		return model.Problem{}, err
	}
	return p, nil
}
