// Package eigen finds the positive roots of the transcendental equation
//
//	λ·cos(λ) + h0·sin(λ) = 0
//
// arising from the Robin boundary condition of transient conduction in a
// sphere. One root is sought per bracket of width π along the positive axis;
// brackets with no sign change are expected for some h0 and yield [NoRoot].
package eigen

import "math"

// NoRoot marks a bracket in which the characteristic function does not
// change sign. Callers must tolerate gaps in the returned sequence.
const NoRoot = -1.0

const (
	// DefaultCount is the number of series terms used by the temperature field.
	DefaultCount = 44

	convergence = 1e-8
	// brackets are shrunk by this margin at both ends so the endpoint
	// evaluation never lands on a zero of cos(λ).
	edgeMargin = 1e-7
)

func characteristic(lambda, h0 float64) float64 {
	return lambda*math.Cos(lambda) + h0*math.Sin(lambda)
}

// Roots returns up to n positive roots, one candidate per bracket
// [iπ, (i+0.5)π], shifted up by π/2 when h0 > 0. Entries are NoRoot where the
// bracket holds no sign change; found roots are strictly increasing.
func Roots(h0 float64, n int) []float64 {
	roots := make([]float64, n)
	for i := range roots {
		roots[i] = NoRoot
	}

	// At h0 = 0 the characteristic reduces to λ·cos(λ), whose positive roots
	// sit exactly on the bracket endpoints (i+0.5)π that the edge margin
	// excludes. Return the closed-form spectrum instead of bisecting.
	if h0 == 0.0 {
		for i := range roots {
			roots[i] = (float64(i) + 0.5) * math.Pi
		}
		return roots
	}

	for i := 0; i < n; i++ {
		left := float64(i)*math.Pi + edgeMargin
		right := (float64(i+1)-0.5)*math.Pi - edgeMargin
		if h0 > 0.0 {
			left += 0.5 * math.Pi
			right += 0.5 * math.Pi
		}

		fLeft := characteristic(left, h0)
		fRight := characteristic(right, h0)
		if fLeft*fRight >= 0.0 {
			continue
		}

		for right-left > convergence {
			mid := 0.5 * (left + right)
			fMid := characteristic(mid, h0)
			if fLeft*fMid < 0.0 {
				right = mid
				fRight = characteristic(right, h0)
			} else {
				left = mid
				fLeft = characteristic(left, h0)
			}
		}
		roots[i] = left
	}

	return roots
}
