// Package arith enumerates the sorted value-tuples that satisfy an
// arithmetic constraint (Add, Sub, Mul, Div) over a cell group. Every
// enumerator returns tuples in non-decreasing order, which the alternative
// encoding (see package encode) relies on when it groups equal values of a
// tuple into runs.
package arith

import "math/bits"

// Tuple is a sorted (non-decreasing) assignment of values to the cells of a
// constrained group.
type Tuple []uint64

func cloneAppend(t Tuple, v uint64) Tuple {
	out := make(Tuple, len(t)+1)
	copy(out, t)
	out[len(t)] = v
	return out
}

// checkedAdd returns a+b and false if it overflowed uint64 (true otherwise).
func checkedAdd(a, b uint64) (uint64, bool) {
	sum := a + b
	return sum, sum >= a
}

// checkedMul returns a*b and false if it overflowed uint64 (true otherwise).
func checkedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// Add enumerates sorted k-tuples of values in [1, max] whose sum equals
// target.
func Add(k int, max, target uint64) []Tuple {
	if k < 2 || max == 0 {
		return nil
	}
	var results []Tuple
	var rec func(cur Tuple, lo uint64, remaining int, remainingTarget uint64)
	rec = func(cur Tuple, lo uint64, remaining int, remainingTarget uint64) {
		if remaining == 0 {
			if remainingTarget == 0 {
				results = append(results, cur)
			}
			return
		}
		// Prune: the smallest possible sum of the rest (remaining*lo) must
		// not exceed remainingTarget, and the largest possible sum
		// (remaining*max) must not fall short of it.
		if uint64(remaining)*lo > remainingTarget {
			return
		}
		if uint64(remaining)*max < remainingTarget {
			return
		}
		hi := remainingTarget
		if hi > max {
			hi = max
		}
		for v := lo; v <= hi; v++ {
			rec(cloneAppend(cur, v), v, remaining-1, remainingTarget-v)
		}
	}
	rec(Tuple{}, 1, k, target)
	return results
}

// Sub enumerates sorted k-tuples of values in [1, max] such that the sum of
// the first k-1 values plus target equals the last (largest) value.
func Sub(k int, max, target uint64) []Tuple {
	if k < 2 || max == 0 {
		return nil
	}
	var results []Tuple
	var rec func(cur Tuple, lo uint64, remaining int, sum uint64)
	rec = func(cur Tuple, lo uint64, remaining int, sum uint64) {
		if remaining == 0 {
			last, ok := checkedAdd(sum, target)
			if !ok || last > max || last < lo {
				return
			}
			results = append(results, cloneAppend(cur, last))
			return
		}
		for v := lo; v <= max; v++ {
			newSum, ok := checkedAdd(sum, v)
			if !ok {
				break
			}
			rec(cloneAppend(cur, v), v, remaining-1, newSum)
		}
	}
	rec(Tuple{}, 1, k-1, 0)
	return results
}

// divisorsUpTo returns the sorted divisors of n that are <= max (n must be
// > 0). It walks candidate divisors directly rather than factorising n,
// since number_max-bounded grids keep n small enough that this stays cheap
// and it avoids a second combinatorial subset-of-primes enumeration.
func divisorsUpTo(n, max uint64) []uint64 {
	if n == 0 || max == 0 {
		return nil
	}
	var out []uint64
	for d := uint64(1); d <= max && d <= n; d++ {
		if n%d == 0 {
			out = append(out, d)
		}
	}
	return out
}

// Mul enumerates sorted k-tuples of values in [1, max] whose product equals
// target. Each position is drawn from the divisors of target, which keeps
// the search to candidates that can possibly divide evenly rather than
// walking every value in [1, max].
func Mul(k int, max, target uint64) []Tuple {
	if k < 2 || max == 0 || target == 0 {
		return nil
	}
	divs := divisorsUpTo(target, max)
	var results []Tuple
	var rec func(cur Tuple, startIdx int, remaining int, remainingTarget uint64)
	rec = func(cur Tuple, startIdx int, remaining int, remainingTarget uint64) {
		if remaining == 0 {
			if remainingTarget == 1 {
				results = append(results, cur)
			}
			return
		}
		for i := startIdx; i < len(divs); i++ {
			d := divs[i]
			if remainingTarget%d != 0 {
				continue
			}
			rec(cloneAppend(cur, d), i, remaining-1, remainingTarget/d)
		}
	}
	rec(Tuple{}, 0, k, target)
	return results
}

// Div enumerates sorted k-tuples of values in [1, max] such that the
// product of the first k-1 values, multiplied by target, equals the last
// (largest) value.
func Div(k int, max, target uint64) []Tuple {
	if k < 2 || max == 0 || target == 0 {
		return nil
	}
	var results []Tuple
	var rec func(cur Tuple, lo uint64, remaining int, product uint64)
	rec = func(cur Tuple, lo uint64, remaining int, product uint64) {
		if remaining == 0 {
			last, ok := checkedMul(product, target)
			if !ok || last == 0 || last > max || last < lo {
				return
			}
			results = append(results, cloneAppend(cur, last))
			return
		}
		for v := lo; v <= max; v++ {
			newProduct, ok := checkedMul(product, v)
			if !ok {
				break
			}
			// Once product*target would already exceed max, no larger v
			// can help either.
			if bound, ok := checkedMul(newProduct, target); ok && bound > max {
				break
			}
			rec(cloneAppend(cur, v), v, remaining-1, newProduct)
		}
	}
	rec(Tuple{}, 1, k-1, 1)
	return results
}
