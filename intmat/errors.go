package intmat

import "errors"

var (
	// ErrSingular indicates a zero determinant: the integer matrix has no
	// inverse. Symmetry generators triggering this are corrupt input.
	ErrSingular = errors.New("intmat: singular matrix")
)
