package spacegroup

import "errors"

var (
	// ErrInvalidSpaceGroupID indicates a space-group number outside 0..232
	// (0 stands for "unknown").
	ErrInvalidSpaceGroupID = errors.New("spacegroup: space group id must be in 0..232")

	// ErrLengthMismatch indicates that the rotation, translation and
	// magnetic-sign arrays do not have the same length.
	ErrLengthMismatch = errors.New("spacegroup: rotations, translations and magnetic signs must have equal length")

	// ErrEmptyLittleGroup indicates that no operation preserves the
	// queried wavevector. A well-formed group always contains the
	// identity, which preserves every k, so this flags corrupt input.
	ErrEmptyLittleGroup = errors.New("spacegroup: no symmetry operation preserves the wavevector")
)
