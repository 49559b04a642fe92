package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// IsSquare reports whether m has as many rows as columns.
// It panics if m is nil.
func IsSquare(m mat.Matrix) bool {
	r, c := m.Dims()
	return r == c
}

// Rank returns the rank of m computed from its singular values.
// A singular value is counted as nonzero when it exceeds
// max(rows, cols) * eps * sigma_max, the standard float64 tolerance.
// It fails with error if the SVD factorization fails.
func Rank(m mat.Matrix) (int, error) {
	var svd mat.SVD
	if ok := svd.Factorize(m, mat.SVDNone); !ok {
		return 0, fmt.Errorf("SVD factorization failed")
	}

	vals := svd.Values(nil)
	if len(vals) == 0 {
		return 0, nil
	}

	r, c := m.Dims()
	// vals are ordered descending so vals[0] is the largest singular value
	tol := float64(max(r, c)) * math.Pow(2, -52) * vals[0]

	rank := 0
	for _, v := range vals {
		if v > tol {
			rank++
		}
	}

	return rank, nil
}
