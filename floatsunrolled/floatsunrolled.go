// floatsunrolled is inspired by the SIMD blog post
// https://github.com/camdencheek/simd_blog/blob/main/main.go
//
// The kernels process UnrollBatch elements per loop iteration and finish any remaining
// tail elements one at a time, so inputs of any length are accepted.
package floatsunrolled

import (
	"errors"
)

const UnrollBatch = 4

var (
	ErrSliceLengthMismatch       = errors.New("slices must have equal lengths")
	ErrOutputSliceLengthMismatch = errors.New("output slice length not the same as input")
)

// head returns the length of the prefix that can be processed in full unrolled batches
func head(n int) int {
	return n - n%UnrollBatch
}

// Sum returns the sum of all elements of s
func Sum(s []float64) float64 {
	h := head(len(s))

	var s0, s1, s2, s3 float64
	for i := 0; i < h; i += UnrollBatch {
		sTmp := s[i : i+UnrollBatch : i+UnrollBatch]
		s0 += sTmp[0]
		s1 += sTmp[1]
		s2 += sTmp[2]
		s3 += sTmp[3]
	}
	sum := s0 + s1 + s2 + s3
	for i := h; i < len(s); i++ {
		sum += s[i]
	}
	return sum
}

// Dot returns the dot product of a and b
func Dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(ErrSliceLengthMismatch)
	}
	h := head(len(a))

	var sum float64
	for i := 0; i < h; i += UnrollBatch {
		aTmp := a[i : i+UnrollBatch : i+UnrollBatch]
		bTmp := b[i : i+UnrollBatch : i+UnrollBatch]
		s0 := aTmp[0] * bTmp[0]
		s1 := aTmp[1] * bTmp[1]
		s2 := aTmp[2] * bTmp[2]
		s3 := aTmp[3] * bTmp[3]
		sum += s0 + s1 + s2 + s3
	}
	for i := h; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// ResidualTo stores intercept + slope*x[i] - y[i] into dst. A nil dst is allocated.
func ResidualTo(dst []float64, intercept, slope float64, x, y []float64) []float64 {
	if len(x) != len(y) {
		panic(ErrSliceLengthMismatch)
	}

	if dst == nil {
		dst = make([]float64, len(x))
	} else if len(dst) != len(x) {
		panic(ErrOutputSliceLengthMismatch)
	}

	h := head(len(x))
	for i := 0; i < h; i += UnrollBatch {
		dstTmp := dst[i : i+UnrollBatch : i+UnrollBatch]
		xTmp := x[i : i+UnrollBatch : i+UnrollBatch]
		yTmp := y[i : i+UnrollBatch : i+UnrollBatch]
		dstTmp[0] = intercept + slope*xTmp[0] - yTmp[0]
		dstTmp[1] = intercept + slope*xTmp[1] - yTmp[1]
		dstTmp[2] = intercept + slope*xTmp[2] - yTmp[2]
		dstTmp[3] = intercept + slope*xTmp[3] - yTmp[3]
	}
	for i := h; i < len(x); i++ {
		dst[i] = intercept + slope*x[i] - y[i]
	}

	return dst
}
