package match

// MinSimilarity is the lowest similarity Suggest accepts.
const MinSimilarity = 0.5

// Suggest returns the candidate most similar to name. Ties go to the earlier
// candidate. It reports false when no candidate reaches MinSimilarity or
// name itself is a candidate.
func Suggest(name string, candidates []string) (string, bool) {
	var (
		best      string
		bestScore float64
	)

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		if score := Similarity(name, c); score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}
