package sys

import (
	"errors"
	"fmt"

	"github.com/milosgajdos/go-discretize/matrix"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrInvalidSystemClass is returned when a system's time domain is
	// neither continuous nor discrete.
	ErrInvalidSystemClass = errors.New("invalid system class")
	// ErrShapeMismatch is returned when the shape of a dynamics term is
	// inconsistent with the state matrix dimension.
	ErrShapeMismatch = errors.New("dynamics term shape mismatch")
	// ErrUnsupportedTerms is returned when a term subset does not match
	// any supported system shape.
	ErrUnsupportedTerms = errors.New("unsupported term subset")
)

// Domain is the time domain of a system.
type Domain int

const (
	// Continuous marks a continuous-time system.
	Continuous Domain = iota + 1
	// Discrete marks a discrete-time system.
	Discrete
)

// String implements the Stringer interface.
func (d Domain) String() string {
	switch d {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	}
	return fmt.Sprintf("domain(%d)", int(d))
}

// Counterpart returns the complementary time domain:
// continuous for discrete and discrete for continuous.
// It returns error if d is neither.
func Counterpart(d Domain) (Domain, error) {
	switch d {
	case Continuous:
		return Discrete, nil
	case Discrete:
		return Continuous, nil
	}
	return d, fmt.Errorf("%v: %w", d, ErrInvalidSystemClass)
}

// Shape identifies which dynamics terms a system declares
// beyond the always-present state matrix A.
type Shape int

const (
	// ShapeA is a linear system: x' = A*x
	ShapeA Shape = iota + 1
	// ShapeAB is a controlled linear system: x' = A*x + B*u
	ShapeAB
	// ShapeAc is an affine system: x' = A*x + c
	ShapeAc
	// ShapeABc is a controlled affine system: x' = A*x + B*u + c
	ShapeABc
	// ShapeABD is a controlled system with additive noise: x' = A*x + B*u + D*w
	ShapeABD
)

// String implements the Stringer interface.
func (s Shape) String() string {
	switch s {
	case ShapeA:
		return "A"
	case ShapeAB:
		return "AB"
	case ShapeAc:
		return "Ac"
	case ShapeABc:
		return "ABc"
	case ShapeABD:
		return "ABD"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Terms holds the dynamics terms of an affine system.
// A nil field marks an absent term.
type Terms struct {
	// A is the state matrix
	A *mat.Dense
	// B is the input matrix
	B *mat.Dense
	// C is the affine offset vector c
	C *mat.VecDense
	// D is the noise matrix
	D *mat.Dense
}

// Shape derives the system shape from the present terms.
// It returns error if the term subset is not a supported shape.
func (t Terms) Shape() (Shape, error) {
	switch {
	case t.A == nil:
		return 0, fmt.Errorf("state matrix must be defined: %w", ErrUnsupportedTerms)
	case t.B == nil && t.C == nil && t.D == nil:
		return ShapeA, nil
	case t.B != nil && t.C == nil && t.D == nil:
		return ShapeAB, nil
	case t.B == nil && t.C != nil && t.D == nil:
		return ShapeAc, nil
	case t.B != nil && t.C != nil && t.D == nil:
		return ShapeABc, nil
	case t.B != nil && t.C == nil && t.D != nil:
		return ShapeABD, nil
	}
	return 0, fmt.Errorf("B: %t, c: %t, D: %t: %w",
		t.B != nil, t.C != nil, t.D != nil, ErrUnsupportedTerms)
}

// Validate checks that the state matrix is square and that every present
// term agrees with its row count. It returns error if the term subset is
// unsupported or any present term has an inconsistent shape.
func (t Terms) Validate() error {
	if _, err := t.Shape(); err != nil {
		return err
	}

	if !matrix.IsSquare(t.A) {
		r, c := t.A.Dims()
		return fmt.Errorf("state matrix is [%d x %d]: %w", r, c, ErrShapeMismatch)
	}
	n, _ := t.A.Dims()

	if t.B != nil {
		if r, _ := t.B.Dims(); r != n {
			return fmt.Errorf("input matrix has %d rows, need %d: %w", r, n, ErrShapeMismatch)
		}
	}
	if t.C != nil {
		if l := t.C.Len(); l != n {
			return fmt.Errorf("affine offset has length %d, need %d: %w", l, n, ErrShapeMismatch)
		}
	}
	if t.D != nil {
		if r, _ := t.D.Dims(); r != n {
			return fmt.Errorf("noise matrix has %d rows, need %d: %w", r, n, ErrShapeMismatch)
		}
	}

	return nil
}

// clone returns a deep copy of the terms.
func (t Terms) clone() Terms {
	out := Terms{A: mat.DenseCopyOf(t.A)}
	if t.B != nil {
		out.B = mat.DenseCopyOf(t.B)
	}
	if t.C != nil {
		c := &mat.VecDense{}
		c.CloneFromVec(t.C)
		out.C = c
	}
	if t.D != nil {
		out.D = mat.DenseCopyOf(t.D)
	}
	return out
}

// System is an affine dynamical system
//
//	x' = A*x + B*u + c + D*w   (continuous domain)
//	x[k+1] = A*x[k] + B*u[k] + c + D*w[k]   (discrete domain)
//
// tagged by its time domain and term shape. Systems are immutable value
// objects: constructors copy the supplied terms and accessors return copies.
type System struct {
	domain Domain
	shape  Shape
	terms  Terms
	x      Set
	u      Set
	w      Set
}

// Option configures a System.
type Option func(*System)

// WithStateSet sets the admissible state set X.
func WithStateSet(x Set) Option {
	return func(s *System) { s.x = x }
}

// WithInputSet sets the admissible input set U.
func WithInputSet(u Set) Option {
	return func(s *System) { s.u = u }
}

// WithNoiseSet sets the admissible noise set W.
func WithNoiseSet(w Set) Option {
	return func(s *System) { s.w = w }
}

// New creates a new system in the given time domain from the given dynamics
// terms and returns it. The term subset must match one of the supported
// shapes and every present term must agree with the state matrix dimension.
func New(domain Domain, terms Terms, opts ...Option) (*System, error) {
	if domain != Continuous && domain != Discrete {
		return nil, fmt.Errorf("%v: %w", domain, ErrInvalidSystemClass)
	}

	shape, err := terms.Shape()
	if err != nil {
		return nil, err
	}

	if err := terms.Validate(); err != nil {
		return nil, err
	}

	s := &System{
		domain: domain,
		shape:  shape,
		terms:  terms.clone(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Domain returns the time domain of the system.
func (s *System) Domain() Domain {
	return s.domain
}

// Shape returns the term shape of the system.
func (s *System) Shape() Shape {
	return s.shape
}

// DynamicsTerms returns a copy of the system's dynamics terms
// in declared order: A, B, c, D. Absent terms are nil.
func (s *System) DynamicsTerms() Terms {
	return s.terms.clone()
}

// StructuralFields returns the system's structural set fields
// in declared order: X, U, W. Unset fields are nil.
func (s *System) StructuralFields() (x, u, w Set) {
	return s.x, s.u, s.w
}

// StateSet returns the admissible state set X or nil.
func (s *System) StateSet() Set { return s.x }

// InputSet returns the admissible input set U or nil.
func (s *System) InputSet() Set { return s.u }

// NoiseSet returns the admissible noise set W or nil.
func (s *System) NoiseSet() Set { return s.w }

// Dims returns the state dimension nx, the input vector length nu
// and the noise vector length nw. Absent terms report zero length.
func (s *System) Dims() (nx, nu, nw int) {
	nx, _ = s.terms.A.Dims()
	if s.terms.B != nil {
		_, nu = s.terms.B.Dims()
	}
	if s.terms.D != nil {
		_, nw = s.terms.D.Dims()
	}
	return nx, nu, nw
}

// String implements the Stringer interface.
func (s *System) String() string {
	return fmt.Sprintf("%v %v system", s.domain, s.shape)
}
