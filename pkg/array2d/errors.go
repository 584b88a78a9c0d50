package array2d

import "errors"

// Precondition violations panic with an error wrapping one of these. Checked
// accessors (Get, GetMut, Set, Line, LineMut) never panic on bad coordinates.
var (
	// ErrOutOfBounds is raised by At and SetAt for an index outside the grid.
	ErrOutOfBounds = errors.New("array2d: index out of bounds")
	// ErrStaleView is raised when a view is used after its borrow ended.
	ErrStaleView = errors.New("array2d: view used after its borrow ended")
	// ErrInvertedRange is raised when a crop range has end < start on an axis.
	ErrInvertedRange = errors.New("array2d: inverted crop range")
	// ErrNegativeSize is raised by constructors given a negative dimension.
	ErrNegativeSize = errors.New("array2d: negative size")
	// ErrSizeMismatch is returned by FromSlice when the slice does not match the size.
	ErrSizeMismatch = errors.New("array2d: slice length does not match size")
)
