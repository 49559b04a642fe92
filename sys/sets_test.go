package sys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
)

func TestNewHyperrectangle(t *testing.T) {
	assert := assert.New(t)

	h, err := NewHyperrectangle(mat.NewVecDense(2, []float64{1.0, -1.0}), mat.NewVecDense(2, []float64{0.5, 2.0}))
	assert.NotNil(h)
	assert.NoError(err)
	assert.Equal(2, h.Dim())

	_, err = NewHyperrectangle(mat.NewVecDense(2, nil), mat.NewVecDense(3, nil))
	assert.Error(err)

	_, err = NewHyperrectangle(mat.NewVecDense(1, nil), mat.NewVecDense(1, []float64{-0.1}))
	assert.Error(err)
}

func TestHyperrectangleContains(t *testing.T) {
	assert := assert.New(t)

	h, err := NewHyperrectangle(mat.NewVecDense(2, []float64{1.0, -1.0}), mat.NewVecDense(2, []float64{0.5, 2.0}))
	assert.NoError(err)

	assert.True(h.Contains(mat.NewVecDense(2, []float64{1.0, -1.0})))
	assert.True(h.Contains(mat.NewVecDense(2, []float64{1.5, 1.0})))
	assert.False(h.Contains(mat.NewVecDense(2, []float64{1.6, 0.0})))
	assert.False(h.Contains(mat.NewVecDense(3, nil)))
}

func TestHyperrectangleSample(t *testing.T) {
	assert := assert.New(t)

	h, err := NewHyperrectangle(mat.NewVecDense(2, []float64{0.0, 5.0}), mat.NewVecDense(2, []float64{1.0, 0.5}))
	assert.NoError(err)

	src := rand.NewSource(1)
	for i := 0; i < 10; i++ {
		p := h.Sample(src)
		assert.Equal(2, p.Len())
		assert.True(h.Contains(p))
	}
}

func TestHyperrectangleAccessors(t *testing.T) {
	assert := assert.New(t)

	center := mat.NewVecDense(2, []float64{1.0, 2.0})
	radius := mat.NewVecDense(2, []float64{3.0, 4.0})

	h, err := NewHyperrectangle(center, radius)
	assert.NoError(err)

	// accessor results are copies
	out := h.Center().(*mat.VecDense)
	out.SetVec(0, 100.0)
	assert.Equal(1.0, h.Center().AtVec(0))

	assert.True(mat.Equal(radius, h.Radius()))
}
