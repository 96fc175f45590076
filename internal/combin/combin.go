// Package combin generates index combinations. The encoder's alternative
// encoding uses it to enumerate the subsets of an arithmetic group's cells
// that its pigeonhole clauses cover.
package combin

// Combinations returns every k-element subset of {0, ..., n-1}, each subset
// given as an ascending slice of indices. Returns nil if k is out of
// [0, n] range.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	if k == 0 {
		return [][]int{{}}
	}

	var results [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		combo := make([]int, k)
		copy(combo, idx)
		results = append(results, combo)

		// Find the rightmost index that can still be incremented.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return results
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
