package puzzle

import "github.com/haxelion/gridcsp/model"

// BuildMagicSquare builds a size x size magic square Problem: every value
// from 1 to size*size is used exactly once (Unique over the whole grid),
// and every row, column and both diagonals sum to the magic constant
// size*(size*size+1)/2.
func BuildMagicSquare(size int) model.Problem {
	numberMax := uint64(size * size)
	magic := uint64(size) * (numberMax + 1) / 2

	grid := model.NewGridDimensions(size, size, numberMax)
	p := model.NewProblem(grid)

	whole := make([]model.Cell, 0, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			whole = append(whole, model.NewCell(x, y))
		}
	}
	p.AddConstraint(model.Unique().Over(model.List(whole...)))

	for y := 0; y < size; y++ {
		p.AddConstraint(model.Add(magic).Over(model.Row(y)))
	}
	for x := 0; x < size; x++ {
		p.AddConstraint(model.Add(magic).Over(model.Column(x)))
	}

	diag1 := make([]model.Cell, size)
	diag2 := make([]model.Cell, size)
	for i := 0; i < size; i++ {
		diag1[i] = model.NewCell(i, i)
		diag2[i] = model.NewCell(i, size-1-i)
	}
	p.AddConstraint(model.Add(magic).Over(model.List(diag1...)))
	p.AddConstraint(model.Add(magic).Over(model.List(diag2...)))

	return p
}
