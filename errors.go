package discretize

import (
	"errors"

	"github.com/milosgajdos/go-discretize/sys"
)

var (
	// ErrUnknownAlgorithm is returned when the requested discretization
	// algorithm is not one of Default, Exact or Euler.
	ErrUnknownAlgorithm = errors.New("unknown discretization algorithm")
	// ErrInvalidSystemClass is returned when a system's time domain is
	// neither continuous nor discrete.
	ErrInvalidSystemClass = sys.ErrInvalidSystemClass
	// ErrShapeMismatch is returned when the shape of a dynamics term is
	// inconsistent with the state matrix dimension.
	ErrShapeMismatch = sys.ErrShapeMismatch
)
