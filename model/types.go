// Package model defines the grid/constraint data model that the encoder and
// solve driver operate on: dimensions, cells, cell groups, constraints and
// the problem they compose into. There is no per-cell solving state here,
// just the declarative shape of a puzzle, reshaped around a SAT-encoding
// pipeline instead of candidate propagation.
package model

// GridDimensions describes the shape of a puzzle grid and the domain each
// cell may take.
type GridDimensions struct {
	Width      int
	Height     int
	NumberMax  uint64
}

// NewGridDimensions builds a GridDimensions; number_max is the largest value
// a cell may hold (domain is [1, number_max]).
func NewGridDimensions(width, height int, numberMax uint64) GridDimensions {
	return GridDimensions{Width: width, Height: height, NumberMax: numberMax}
}

// Cell is a single grid coordinate.
type Cell struct {
	X int
	Y int
}

// NewCell builds a Cell.
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// inBounds reports whether the cell lies inside the given grid.
func (c Cell) inBounds(grid GridDimensions) bool {
	return c.X >= 0 && c.X < grid.Width && c.Y >= 0 && c.Y < grid.Height
}

// GroupKind tags which shape a CellGroup takes.
type GroupKind int

const (
	GroupRow GroupKind = iota
	GroupColumn
	GroupSquare
	GroupList
)

// CellGroup names a set of cells by one of four shapes. Only the fields
// relevant to Kind are meaningful; List carries an explicit ordered slice,
// and the encoder emits the group's clauses in that cell order.
type CellGroup struct {
	Kind   GroupKind
	Row    int    // GroupRow
	Column int    // GroupColumn
	X, Y   int    // GroupSquare origin
	Width  int    // GroupSquare
	Height int    // GroupSquare
	Cells  []Cell // GroupList
}

// Row builds a CellGroup selecting an entire row.
func Row(y int) CellGroup { return CellGroup{Kind: GroupRow, Row: y} }

// Column builds a CellGroup selecting an entire column.
func Column(x int) CellGroup { return CellGroup{Kind: GroupColumn, Column: x} }

// Square builds a CellGroup selecting the rectangle [x, x+width) x [y, y+height).
func Square(x, y, width, height int) CellGroup {
	return CellGroup{Kind: GroupSquare, X: x, Y: y, Width: width, Height: height}
}

// List builds a CellGroup from an explicit ordered cell sequence.
func List(cells ...Cell) CellGroup {
	return CellGroup{Kind: GroupList, Cells: cells}
}

// ToCells expands a CellGroup into its concrete, ordered cell sequence for a
// given grid. The encoder emits a group's clauses in this cell order.
func (g CellGroup) ToCells(grid GridDimensions) []Cell {
	switch g.Kind {
	case GroupColumn:
		cells := make([]Cell, grid.Height)
		for y := 0; y < grid.Height; y++ {
			cells[y] = Cell{X: g.Column, Y: y}
		}
		return cells
	case GroupRow:
		cells := make([]Cell, grid.Width)
		for x := 0; x < grid.Width; x++ {
			cells[x] = Cell{X: x, Y: g.Row}
		}
		return cells
	case GroupSquare:
		cells := make([]Cell, 0, g.Width*g.Height)
		for x := g.X; x < g.X+g.Width; x++ {
			for y := g.Y; y < g.Y+g.Height; y++ {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
		return cells
	case GroupList:
		cells := make([]Cell, len(g.Cells))
		copy(cells, g.Cells)
		return cells
	default:
		return nil
	}
}

// Size returns the number of cells the group covers without materialising
// them, used by validation to reject arity violations cheaply.
func (g CellGroup) Size(grid GridDimensions) int {
	switch g.Kind {
	case GroupColumn:
		return grid.Height
	case GroupRow:
		return grid.Width
	case GroupSquare:
		return g.Width * g.Height
	case GroupList:
		return len(g.Cells)
	default:
		return 0
	}
}

// ConstraintKind tags which arithmetic/logical relation a Constraint asserts.
type ConstraintKind int

const (
	ConstraintUnique ConstraintKind = iota
	ConstraintEqual
	ConstraintAdd
	ConstraintSub
	ConstraintMul
	ConstraintDiv
)

// Constraint is a tagged arithmetic/logical relation; Value is meaningful
// for every kind except Unique.
type Constraint struct {
	Kind  ConstraintKind
	Value uint64
}

// Unique builds the uniqueness constraint.
func Unique() Constraint { return Constraint{Kind: ConstraintUnique} }

// Equal builds the fixed-value constraint.
func Equal(v uint64) Constraint { return Constraint{Kind: ConstraintEqual, Value: v} }

// Add builds the sum constraint.
func Add(target uint64) Constraint { return Constraint{Kind: ConstraintAdd, Value: target} }

// Sub builds the difference constraint (see spec §4.A for the exact
// k-ary semantics: sum of the first k-1 plus target equals the last).
func Sub(target uint64) Constraint { return Constraint{Kind: ConstraintSub, Value: target} }

// Mul builds the product constraint.
func Mul(target uint64) Constraint { return Constraint{Kind: ConstraintMul, Value: target} }

// Div builds the quotient constraint (product of the first k-1, times
// target, equals the last).
func Div(target uint64) Constraint { return Constraint{Kind: ConstraintDiv, Value: target} }

// ConstrainedGroup pairs a constraint with the cell group it applies to.
type ConstrainedGroup struct {
	Constraint Constraint
	Group      CellGroup
}

// Over pairs a constraint with a group via a fluent "constraint.over(group)"
// style builder.
func (c Constraint) Over(group CellGroup) ConstrainedGroup {
	return ConstrainedGroup{Constraint: c, Group: group}
}

// Problem is a GenericProblem: grid dimensions plus the full list of
// constrained groups.
type Problem struct {
	Grid        GridDimensions
	Constraints []ConstrainedGroup
}

// NewProblem builds an empty Problem over the given grid.
func NewProblem(grid GridDimensions) Problem {
	return Problem{Grid: grid}
}

// AddConstraint appends a constrained group to the problem.
func (p *Problem) AddConstraint(cg ConstrainedGroup) {
	p.Constraints = append(p.Constraints, cg)
}
