package sys

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Set is a geometric set of admissible values: a state set X, an input set U
// or a noise set W. Sets are structural fields of a system: discretization
// carries them through untouched.
type Set interface {
	// Dim returns the dimension of the ambient space
	Dim() int
}

// Hyperrectangle is an axis-aligned box given by its center and
// its per-coordinate radius.
type Hyperrectangle struct {
	// center is the box center
	center *mat.VecDense
	// radius stores per-coordinate half-widths
	radius *mat.VecDense
}

// NewHyperrectangle creates a new Hyperrectangle with the given center and
// radius vectors and returns it. It returns error if the vectors have
// different lengths or if any radius coordinate is negative.
func NewHyperrectangle(center, radius mat.Vector) (*Hyperrectangle, error) {
	if center.Len() != radius.Len() {
		return nil, fmt.Errorf("center length %d does not match radius length %d", center.Len(), radius.Len())
	}

	for i := 0; i < radius.Len(); i++ {
		if radius.AtVec(i) < 0 {
			return nil, fmt.Errorf("negative radius %v in coordinate %d", radius.AtVec(i), i)
		}
	}

	c, r := &mat.VecDense{}, &mat.VecDense{}
	c.CloneFromVec(center)
	r.CloneFromVec(radius)

	return &Hyperrectangle{
		center: c,
		radius: r,
	}, nil
}

// Dim returns the dimension of the box.
func (h *Hyperrectangle) Dim() int {
	return h.center.Len()
}

// Center returns the box center.
func (h *Hyperrectangle) Center() mat.Vector {
	c := &mat.VecDense{}
	c.CloneFromVec(h.center)

	return c
}

// Radius returns the per-coordinate radius.
func (h *Hyperrectangle) Radius() mat.Vector {
	r := &mat.VecDense{}
	r.CloneFromVec(h.radius)

	return r
}

// Contains reports whether p lies inside the box.
// It returns false if p has a different dimension.
func (h *Hyperrectangle) Contains(p mat.Vector) bool {
	if p.Len() != h.Dim() {
		return false
	}

	for i := 0; i < p.Len(); i++ {
		lo := h.center.AtVec(i) - h.radius.AtVec(i)
		hi := h.center.AtVec(i) + h.radius.AtVec(i)
		if p.AtVec(i) < lo || p.AtVec(i) > hi {
			return false
		}
	}

	return true
}

// Sample draws a point uniformly from the box using the given random source
// and returns it. If src is nil the global source is used.
func (h *Hyperrectangle) Sample(src rand.Source) mat.Vector {
	out := mat.NewVecDense(h.Dim(), nil)

	for i := 0; i < h.Dim(); i++ {
		u := distuv.Uniform{
			Min: h.center.AtVec(i) - h.radius.AtVec(i),
			Max: h.center.AtVec(i) + h.radius.AtVec(i),
			Src: src,
		}
		out.SetVec(i, u.Rand())
	}

	return out
}
