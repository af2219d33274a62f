package search

// substringDistance returns the minimum edit distance between pattern and any
// substring of text (Sellers' algorithm). The position of the match inside
// text carries no cost. The result is at most len(pattern).
func substringDistance(pattern, text []rune) int {
	m := len(pattern)
	if m == 0 {
		return 0
	}

	// prev[i] is the cheapest alignment of pattern[:i] ending at the previous text rune.
	prev := make([]int, m+1)
	cur := make([]int, m+1)
	for i := range prev {
		prev[i] = i
	}
	best := m

	for _, tc := range text {
		cur[0] = 0
		for i := 1; i <= m; i++ {
			cost := 1
			if pattern[i-1] == tc {
				cost = 0
			}
			cur[i] = min(prev[i-1]+cost, prev[i]+1, cur[i-1]+1)
		}
		if cur[m] < best {
			best = cur[m]
			if best == 0 {
				return 0
			}
		}
		prev, cur = cur, prev
	}
	return best
}
