package handanalyzer

import "holdem-server/pkg/deck"

// straightTop returns the top rank of a five-card straight, or 0 if the ranks are not a straight
// ranks must be sorted descending. The wheel (A-2-3-4-5) is topped by the 5.
func straightTop(ranks []int) int {
	if len(ranks) != 5 {
		return 0
	}

	if isRun(ranks) {
		return ranks[0]
	}

	if ranks[0] == deck.Ace {
		lowAce := append(append(make([]int, 0, 5), ranks[1:]...), deck.LowAce)
		if isRun(lowAce) {
			return lowAce[0]
		}
	}

	return 0
}

// isRun returns true if every rank is exactly one below the previous
func isRun(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]-1 {
			return false
		}
	}

	return true
}
