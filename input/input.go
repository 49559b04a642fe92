// Package input provides sequences of external input values
// for simulators driving discrete-time systems.
package input

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Iterator walks a sequence of input vectors.
type Iterator interface {
	// Next returns the next input vector in the sequence.
	// It returns false when the sequence is exhausted.
	Next() (mat.Vector, bool)
}

// Constant is an input source that produces the same value forever.
type Constant struct {
	// u is the constant input value
	u *mat.VecDense
}

// NewConstant creates a new Constant input source and returns it.
func NewConstant(u mat.Vector) *Constant {
	v := &mat.VecDense{}
	v.CloneFromVec(u)

	return &Constant{u: v}
}

// Value returns the constant input value.
func (c *Constant) Value() mat.Vector {
	v := &mat.VecDense{}
	v.CloneFromVec(c.u)

	return v
}

// Iter returns an iterator over the next n input values. Every value is
// identical; values are produced lazily and each call starts a fresh
// iterator.
func (c *Constant) Iter(n int) Iterator {
	return &constIter{u: c.u, left: n}
}

type constIter struct {
	u    *mat.VecDense
	left int
}

// Next implements Iterator.
func (it *constIter) Next() (mat.Vector, bool) {
	if it.left <= 0 {
		return nil, false
	}
	it.left--

	out := &mat.VecDense{}
	out.CloneFromVec(it.u)

	return out, true
}

// Varying is an input source backed by a finite stored sequence of values.
type Varying struct {
	// vals stores the input values in order
	vals []*mat.VecDense
}

// NewVarying creates a new Varying input source from the given values in
// order and returns it. It returns error if no values are given or the
// values have inconsistent lengths.
func NewVarying(vals ...mat.Vector) (*Varying, error) {
	if len(vals) == 0 {
		return nil, fmt.Errorf("no input values given")
	}

	vs := make([]*mat.VecDense, len(vals))
	for i, val := range vals {
		if val.Len() != vals[0].Len() {
			return nil, fmt.Errorf("input %d has length %d, want %d", i, val.Len(), vals[0].Len())
		}
		v := &mat.VecDense{}
		v.CloneFromVec(val)
		vs[i] = v
	}

	return &Varying{vals: vs}, nil
}

// Len returns the number of stored input values.
func (v *Varying) Len() int {
	return len(v.vals)
}

// Iter returns an iterator over the next n input values in stored order.
// The iterator is bounded by the stored sequence length: it yields
// min(n, Len()) values. Each call starts a fresh iterator.
func (v *Varying) Iter(n int) Iterator {
	if n > len(v.vals) {
		n = len(v.vals)
	}
	return &varyingIter{vals: v.vals[:n]}
}

type varyingIter struct {
	vals []*mat.VecDense
	i    int
}

// Next implements Iterator.
func (it *varyingIter) Next() (mat.Vector, bool) {
	if it.i >= len(it.vals) {
		return nil, false
	}

	out := &mat.VecDense{}
	out.CloneFromVec(it.vals[it.i])
	it.i++

	return out, true
}
