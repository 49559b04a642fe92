// Package discretize converts continuous-time affine systems
//
//	x' = A*x + B*u + c + D*w
//
// into their discrete-time equivalents over a fixed time step.
package discretize

import (
	"fmt"

	gomatrix "github.com/milosgajdos/matrix"
	"gonum.org/v1/gonum/mat"

	"github.com/milosgajdos/go-discretize/matrix"
	"github.com/milosgajdos/go-discretize/sys"
)

// Algorithm selects the discretization method.
type Algorithm int

const (
	// Default picks Exact when the state matrix is invertible and Euler otherwise.
	Default Algorithm = iota
	// Exact is the closed-form discretization via the matrix exponential.
	// It requires an invertible state matrix.
	Exact
	// Euler is the first-order explicit approximation,
	// valid for any state matrix.
	Euler
)

// String implements the Stringer interface.
func (a Algorithm) String() string {
	switch a {
	case Default:
		return "default"
	case Exact:
		return "exact"
	case Euler:
		return "euler"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// Discretize converts a continuous-time system into its discrete-time
// counterpart over the time step dt and returns it as a new system.
// The result declares the same term shape as s and carries the structural
// set fields X, U, W through untouched. The input system is not modified.
//
// Default algorithm selection is driven by the rank of the state matrix:
// full rank picks Exact, anything less picks Euler. Forcing Exact on a
// singular state matrix fails with the inversion error.
//
// dt must be non-negative. dt = 0 yields the identity transform: the
// discrete state matrix is the identity and every other term is zero.
func Discretize(s *sys.System, dt float64, alg Algorithm) (*sys.System, error) {
	if s == nil {
		return nil, fmt.Errorf("nil system")
	}

	if s.Domain() != sys.Continuous {
		return nil, fmt.Errorf("cannot discretize a %v system: %w", s.Domain(), ErrInvalidSystemClass)
	}

	dTerms, err := DiscretizeTerms(s.DynamicsTerms(), dt, alg)
	if err != nil {
		return nil, err
	}

	domain, err := sys.Counterpart(s.Domain())
	if err != nil {
		return nil, err
	}

	var opts []sys.Option
	x, u, w := s.StructuralFields()
	if x != nil {
		opts = append(opts, sys.WithStateSet(x))
	}
	if u != nil {
		opts = append(opts, sys.WithInputSet(u))
	}
	if w != nil {
		opts = append(opts, sys.WithNoiseSet(w))
	}

	return sys.New(domain, dTerms, opts...)
}

// DiscretizeTerms discretizes raw dynamics terms over the time step dt and
// returns the results gated by the same presence mask: a term absent from t
// is absent from the result. The state matrix must be present and square and
// every present term must agree with its dimension.
func DiscretizeTerms(t sys.Terms, dt float64, alg Algorithm) (sys.Terms, error) {
	switch alg {
	case Default, Exact, Euler:
	default:
		return sys.Terms{}, fmt.Errorf("%v: %w", alg, ErrUnknownAlgorithm)
	}

	if err := t.Validate(); err != nil {
		return sys.Terms{}, err
	}

	if dt < 0 {
		return sys.Terms{}, fmt.Errorf("negative time step: %v", dt)
	}

	n, _ := t.A.Dims()

	if alg == Default {
		rank, err := matrix.Rank(t.A)
		if err != nil {
			return sys.Terms{}, err
		}
		if rank == n {
			alg = Exact
		} else {
			alg = Euler
		}
	}

	// zero stand-ins for absent terms let the kernel compute one formula;
	// padded results are dropped below
	B, c, D := t.B, t.C, t.D
	if B == nil {
		B = mat.NewDense(n, 1, nil)
	}
	if c == nil {
		c = mat.NewVecDense(n, nil)
	}
	if D == nil {
		D = mat.NewDense(n, 1, nil)
	}

	Ad, Bd, cd, Dd, err := kernel(t.A, B, c, D, dt, alg)
	if err != nil {
		return sys.Terms{}, err
	}

	out := sys.Terms{A: Ad}
	if t.B != nil {
		out.B = Bd
	}
	if t.C != nil {
		out.C = cd
	}
	if t.D != nil {
		out.D = Dd
	}

	return out, nil
}

// kernel discretizes the full term set {A, B, c, D} over the time step dt.
// See Discrete-Time Control Systems by Katsuhiko Ogata,
// Eq. (5-73) and (5-74 bis), p. 315 Second Edition.
func kernel(A, B *mat.Dense, c *mat.VecDense, D *mat.Dense, dt float64, alg Algorithm) (Ad, Bd *mat.Dense, cd *mat.VecDense, Dd *mat.Dense, err error) {
	n, _ := A.Dims()

	eye, err := gomatrix.NewDenseValIdentity(n, 1.0)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	switch alg {
	case Exact:
		// Ad = exp(A*dt)
		Ad = mat.NewDense(n, n, nil)
		Ad.Scale(dt, A)
		Ad.Exp(Ad)

		// M = inv(A)*(Ad - I) is the integration factor
		// shared by every affine term
		Ainv := mat.NewDense(n, n, nil)
		if err := Ainv.Inverse(A); err != nil {
			return nil, nil, nil, nil, fmt.Errorf("exact discretization needs an invertible state matrix: %w", err)
		}
		M := mat.NewDense(n, n, nil)
		M.Sub(Ad, eye)
		M.Mul(Ainv, M)

		Bd = new(mat.Dense)
		Bd.Mul(M, B)

		cd = mat.NewVecDense(n, nil)
		cd.MulVec(M, c)

		Dd = new(mat.Dense)
		Dd.Mul(M, D)

	case Euler:
		// Ad = I + dt*A
		Ad = mat.NewDense(n, n, nil)
		Ad.Scale(dt, A)
		Ad.Add(Ad, eye)

		Bd = new(mat.Dense)
		Bd.Scale(dt, B)

		cd = mat.NewVecDense(n, nil)
		cd.ScaleVec(dt, c)

		Dd = new(mat.Dense)
		Dd.Scale(dt, D)

	default:
		return nil, nil, nil, nil, fmt.Errorf("%v: %w", alg, ErrUnknownAlgorithm)
	}

	return Ad, Bd, cd, Dd, nil
}
