package blas

import "math"

// GoBackend is the pure-Go reference backend. It carries no state and is
// safe to share freely.
type GoBackend struct{}

// Dasum returns the sum of absolute values.
func (GoBackend) Dasum(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += math.Abs(v)
	}
	return sum
}

// Ddot returns the dot product of x and y.
func (GoBackend) Ddot(x, y []float64) float64 {
	var sum float64
	for i := range x {
		sum += x[i] * y[i]
	}
	return sum
}

// Dnrm2 returns the Euclidean norm of x.
//
// Values are scaled by the running maximum magnitude so that squaring never
// overflows or underflows prematurely (the netlib dnrm2 approach).
func (GoBackend) Dnrm2(x []float64) float64 {
	var scale, ssq float64
	ssq = 1
	for _, v := range x {
		if v == 0 {
			continue
		}
		av := math.Abs(v)
		if scale < av {
			r := scale / av
			ssq = 1 + ssq*r*r
			scale = av
		} else {
			r := av / scale
			ssq += r * r
		}
	}
	return scale * math.Sqrt(ssq)
}

// Dscal scales x by alpha in place.
func (GoBackend) Dscal(alpha float64, x []float64) {
	for i := range x {
		x[i] *= alpha
	}
}

// Daxpy accumulates y += alpha*x in place.
func (GoBackend) Daxpy(alpha float64, x, y []float64) {
	for i := range x {
		y[i] += alpha * x[i]
	}
}

// Dgemv computes y = alpha*A*x + beta*y (or A transposed) over a column-major
// m×n buffer.
func (GoBackend) Dgemv(trans bool, m, n int, alpha float64, a []float64, x []float64, beta float64, y []float64) {
	switch beta {
	case 0:
		// Overwrite rather than scale, as reference dgemv does.
		for i := range y {
			y[i] = 0
		}
	case 1:
	default:
		for i := range y {
			y[i] *= beta
		}
	}
	if alpha == 0 {
		return
	}
	if trans {
		// y[j] += alpha * sum_i a[i+j*m] * x[i]
		for j := 0; j < n; j++ {
			col := a[j*m : j*m+m]
			var sum float64
			for i := 0; i < m; i++ {
				sum += col[i] * x[i]
			}
			y[j] += alpha * sum
		}
		return
	}
	// Walk column by column so the buffer is read sequentially.
	for j := 0; j < n; j++ {
		col := a[j*m : j*m+m]
		ax := alpha * x[j]
		for i := 0; i < m; i++ {
			y[i] += ax * col[i]
		}
	}
}
