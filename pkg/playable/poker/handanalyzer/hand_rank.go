package handanalyzer

import (
	"fmt"
	"holdem-server/pkg/deck"
	"strings"
)

// Owner is whoever an evaluated hand belongs to
type Owner interface {
	ID() string
}

// HandRank is the strength of a single five-card hand
// Ranks compare by hand category first, then by the tiebreak ranks, most significant first.
type HandRank struct {
	Hand     Hand      `json:"hand"`
	Tiebreak []int     `json:"tiebreak"`
	Cards    deck.Hand `json:"cards"`
	Owner    Owner     `json:"-"`
}

// Compare returns -1, 0, or 1 if h is weaker, equal to, or stronger than other
// A missing tiebreak position counts as 0.
func (h *HandRank) Compare(other *HandRank) int {
	if other == nil {
		return 1
	}

	if h.Hand != other.Hand {
		if h.Hand < other.Hand {
			return -1
		}

		return 1
	}

	n := len(h.Tiebreak)
	if len(other.Tiebreak) > n {
		n = len(other.Tiebreak)
	}

	for i := 0; i < n; i++ {
		a, b := tiebreakAt(h.Tiebreak, i), tiebreakAt(other.Tiebreak, i)
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
	}

	return 0
}

func tiebreakAt(ranks []int, i int) int {
	if i < len(ranks) {
		return ranks[i]
	}

	return 0
}

// String returns a description such as "Pair (13, 14, 12, 11)"
func (h *HandRank) String() string {
	ranks := make([]string, len(h.Tiebreak))
	for i, r := range h.Tiebreak {
		ranks[i] = fmt.Sprint(r)
	}

	return fmt.Sprintf("%s (%s)", h.Hand, strings.Join(ranks, ", "))
}
