package blas

// Backend implements the dense inner loops of the kernel over raw float64
// slices. Implementations must be stateless with respect to calls: the only
// memory they touch is the slices they are handed. Slice lengths are already
// validated by the Kernel; backends may assume they agree.
//
// The gemv buffer a is column-major with leading dimension m (element (i, j)
// at a[i+j*m]), matching the historical Fortran calling convention.
type Backend interface {
	Dasum(x []float64) float64
	Ddot(x, y []float64) float64
	Dnrm2(x []float64) float64
	Dscal(alpha float64, x []float64)
	Daxpy(alpha float64, x, y []float64)
	Dgemv(trans bool, m, n int, alpha float64, a []float64, x []float64, beta float64, y []float64)
}

// defaultKernel is the process-wide kernel used by the package-level
// functions. It is constructed once and read-only afterwards, so sharing it
// across goroutines needs no synchronization.
var defaultKernel = NewKernel(GoBackend{})

// Default returns the process-wide kernel.
func Default() *Kernel {
	return defaultKernel
}

// Kernel dispatches vector-variant combinations and size checks, delegating
// dense inner loops to its backend. A Kernel is immutable after construction.
type Kernel struct {
	backend Backend
}

// NewKernel creates a kernel around the given backend. A nil backend falls
// back to the pure-Go reference implementation.
func NewKernel(backend Backend) *Kernel {
	if backend == nil {
		backend = GoBackend{}
	}
	return &Kernel{backend: backend}
}
