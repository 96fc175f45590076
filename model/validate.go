package model

// Validate checks every constrained group against the grid: cell bounds,
// row/column/square bounds, and arity limits. Equal pins single cells to a
// fixed value and is exempt from the minimum-size check; every other
// constraint kind needs at least 2 cells to mean anything, and a Unique
// group must not exceed number_max distinct values.
func (p Problem) Validate() error {
	grid := p.Grid
	for _, cg := range p.Constraints {
		if err := validateGroupBounds(cg.Group, grid); err != nil {
			return err
		}
		size := cg.Group.Size(grid)
		if cg.Constraint.Kind != ConstraintEqual && size < 2 {
			return &ConstrainedGroupTooSmallError{Kind: cg.Constraint.Kind, Size: size}
		}
		if cg.Constraint.Kind == ConstraintUnique && uint64(size) > grid.NumberMax {
			return &ConstrainedGroupTooBigError{Kind: cg.Constraint.Kind, Size: size, NumberMax: grid.NumberMax}
		}
	}
	return nil
}

func validateGroupBounds(g CellGroup, grid GridDimensions) error {
	switch g.Kind {
	case GroupRow:
		if g.Row < 0 || g.Row >= grid.Height {
			return &RowOutOfBoundError{Row: g.Row, Grid: grid}
		}
	case GroupColumn:
		if g.Column < 0 || g.Column >= grid.Width {
			return &ColumnOutOfBoundError{Column: g.Column, Grid: grid}
		}
	case GroupSquare:
		if g.X < 0 || g.Y < 0 || g.X+g.Width > grid.Width || g.Y+g.Height > grid.Height {
			return &SquareOutOfBoundError{Group: g, Grid: grid}
		}
	case GroupList:
		for _, c := range g.Cells {
			if !c.inBounds(grid) {
				return &CellOutOfBoundError{Cell: c, Grid: grid}
			}
		}
	}
	return nil
}
