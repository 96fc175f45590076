package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// CellOutOfBoundError reports a cell referenced outside the grid.
type CellOutOfBoundError struct {
	Cell Cell
	Grid GridDimensions
}

func (e *CellOutOfBoundError) Error() string {
	return fmt.Sprintf("cell (%d, %d) out of bound for grid %dx%d", e.Cell.X, e.Cell.Y, e.Grid.Width, e.Grid.Height)
}

// RowOutOfBoundError reports a row index outside the grid.
type RowOutOfBoundError struct {
	Row  int
	Grid GridDimensions
}

func (e *RowOutOfBoundError) Error() string {
	return fmt.Sprintf("row %d out of bound for grid height %d", e.Row, e.Grid.Height)
}

// ColumnOutOfBoundError reports a column index outside the grid.
type ColumnOutOfBoundError struct {
	Column int
	Grid   GridDimensions
}

func (e *ColumnOutOfBoundError) Error() string {
	return fmt.Sprintf("column %d out of bound for grid width %d", e.Column, e.Grid.Width)
}

// SquareOutOfBoundError reports a square region extending past the grid.
type SquareOutOfBoundError struct {
	Group CellGroup
	Grid  GridDimensions
}

func (e *SquareOutOfBoundError) Error() string {
	return fmt.Sprintf("square at (%d, %d) size %dx%d out of bound for grid %dx%d",
		e.Group.X, e.Group.Y, e.Group.Width, e.Group.Height, e.Grid.Width, e.Grid.Height)
}

// ConstrainedGroupTooSmallError reports a group with too few cells for its
// constraint kind (e.g. an arithmetic constraint over fewer than 2 cells).
type ConstrainedGroupTooSmallError struct {
	Kind ConstraintKind
	Size int
}

func (e *ConstrainedGroupTooSmallError) Error() string {
	return fmt.Sprintf("constrained group too small: kind %v has %d cell(s), need at least 2", e.Kind, e.Size)
}

// ConstrainedGroupTooBigError reports a group whose cell count exceeds
// number_max, which would make uniqueness unsatisfiable by construction.
type ConstrainedGroupTooBigError struct {
	Kind      ConstraintKind
	Size      int
	NumberMax uint64
}

func (e *ConstrainedGroupTooBigError) Error() string {
	return fmt.Sprintf("constrained group too big: kind %v has %d cell(s), exceeds number_max %d", e.Kind, e.Size, e.NumberMax)
}

// UnsupportedSudokuSizeError reports a Sudoku grid size that is not a
// perfect square.
type UnsupportedSudokuSizeError struct {
	GridSize int
}

func (e *UnsupportedSudokuSizeError) Error() string {
	return fmt.Sprintf("unsupported sudoku size %d: must be a perfect square", e.GridSize)
}

// TooManyVariablesError reports that the encoder ran out of variable IDs
// (the int32 literal space the SAT engine addresses was exhausted).
type TooManyVariablesError struct {
	Requested int64
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("too many variables requested: %d exceeds encoder capacity", e.Requested)
}

// SolverError wraps an underlying SAT engine failure.
type SolverError struct {
	Cause error
}

func (e *SolverError) Error() string { return fmt.Sprintf("solver error: %v", e.Cause) }
func (e *SolverError) Unwrap() error { return e.Cause }

// WrapSolverError wraps an engine-level error with a stack trace so the
// driver's caller can see where the failure was first observed.
func WrapSolverError(cause error) error {
	return errors.WithStack(&SolverError{Cause: cause})
}

// NoSolutionError reports that the problem is unsatisfiable.
type NoSolutionError struct{}

func (e *NoSolutionError) Error() string { return "no solution exists for this problem" }

// UnexpectedSolutionError reports that the SAT model, once decoded, did not
// assign exactly one value to some cell — a bug in the encoding, not in the
// input problem.
type UnexpectedSolutionError struct {
	Cell      Cell
	NumberSet int
}

func (e *UnexpectedSolutionError) Error() string {
	return fmt.Sprintf("unexpected solution: cell (%d, %d) has %d value(s) set, expected exactly 1", e.Cell.X, e.Cell.Y, e.NumberSet)
}

// SolutionNotUniqueError reports that a second, different solution was
// found after blocking the first (see solve.SolveUnique).
type SolutionNotUniqueError struct{}

func (e *SolutionNotUniqueError) Error() string { return "solution is not unique" }
