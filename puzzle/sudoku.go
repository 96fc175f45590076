// Package puzzle adapts the three canonical grid puzzle families — Sudoku,
// KenKen, and magic squares — into model.Problem, building each family's
// constraint set from its own compact description.
package puzzle

import (
	"math"

	"github.com/haxelion/gridcsp/model"
)

// Givens maps a pre-filled cell to its fixed value.
type Givens map[model.Cell]uint64

// BuildSudoku builds a Sudoku Problem over a gridSize x gridSize grid.
// gridSize must be a perfect square (4, 9, 16, ...): each box is
// sqrt(gridSize) x sqrt(gridSize). Every row, column and box gets a
// Unique constraint; every given cell gets an Equal constraint.
func BuildSudoku(gridSize int, givens Givens) (model.Problem, error) {
	boxSize := int(math.Round(math.Sqrt(float64(gridSize))))
	if boxSize*boxSize != gridSize {
		return model.Problem{}, &model.UnsupportedSudokuSizeError{GridSize: gridSize}
	}

	grid := model.NewGridDimensions(gridSize, gridSize, uint64(gridSize))
	p := model.NewProblem(grid)

	for y := 0; y < gridSize; y++ {
		p.AddConstraint(model.Unique().Over(model.Row(y)))
	}
	for x := 0; x < gridSize; x++ {
		p.AddConstraint(model.Unique().Over(model.Column(x)))
	}
	for by := 0; by < gridSize; by += boxSize {
		for bx := 0; bx < gridSize; bx += boxSize {
			p.AddConstraint(model.Unique().Over(model.Square(bx, by, boxSize, boxSize)))
		}
	}
	for cell, v := range givens {
		p.AddConstraint(model.Equal(v).Over(model.List(cell)))
	}

	return p, nil
}
