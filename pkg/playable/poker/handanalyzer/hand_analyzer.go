package handanalyzer

import (
	"holdem-server/pkg/combination"
	"holdem-server/pkg/deck"
	"sort"
)

// HandSize is the number of cards that make up a poker hand
const HandSize = 5

// Contender is an owner with hole cards who is still contesting a pot
type Contender interface {
	Owner
	HoleCards() deck.Hand
}

type rankGroup struct {
	rank  int
	count int
}

// Evaluate returns the best hand that can be made from the cards
// Every five-card combination is tried in a fixed order and the strongest kept, so equal hands
// always resolve to the same five cards. With fewer than five cards the cards are ranked as-is.
func Evaluate(cards []*deck.Card, owner Owner) *HandRank {
	if len(cards) <= HandSize {
		return evaluateCards(cards, owner)
	}

	var best *HandRank
	combos := combination.New(cards, HandSize)
	for combos.Next() {
		if hr := evaluateCards(combos.Value(), owner); best == nil || hr.Compare(best) > 0 {
			best = hr
		}
	}

	return best
}

// evaluateCards classifies a hand of at most five cards
func evaluateCards(cards []*deck.Card, owner Owner) *HandRank {
	sorted := deck.Hand(cards).Clone()
	sort.Sort(sorted)

	ranks := make([]int, len(sorted))
	for i, card := range sorted {
		ranks[i] = card.Rank
	}

	isFlush := len(sorted) == HandSize
	for _, card := range sorted {
		if card.Suit != sorted[0].Suit {
			isFlush = false
			break
		}
	}

	top := straightTop(ranks)
	groups := groupRanks(ranks)

	newRank := func(hand Hand, tiebreak ...int) *HandRank {
		return &HandRank{
			Hand:     hand,
			Tiebreak: tiebreak,
			Cards:    sorted,
			Owner:    owner,
		}
	}

	switch {
	case top > 0 && isFlush:
		return newRank(StraightFlush, top)
	case groups[0].count == 4:
		return newRank(FourOfAKind, append([]int{groups[0].rank}, kickers(groups)...)...)
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count >= 2:
		return newRank(FullHouse, groups[0].rank, groups[1].rank)
	case isFlush:
		return newRank(Flush, ranks...)
	case top > 0:
		return newRank(Straight, top)
	case groups[0].count == 3:
		return newRank(ThreeOfAKind, append([]int{groups[0].rank}, kickers(groups)...)...)
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		// groups are sorted by rank within a count, so the high pair is first
		return newRank(TwoPair, append([]int{groups[0].rank, groups[1].rank}, kickers(groups)...)...)
	case groups[0].count == 2:
		return newRank(OnePair, append([]int{groups[0].rank}, kickers(groups)...)...)
	}

	return newRank(HighCard, ranks...)
}

// groupRanks counts each rank and orders the groups by count, then rank, both descending
func groupRanks(ranks []int) []rankGroup {
	counts := make(map[int]int)
	for _, r := range ranks {
		counts[r]++
	}

	groups := make([]rankGroup, 0, len(counts))
	for rank, count := range counts {
		groups = append(groups, rankGroup{rank: rank, count: count})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}

		return groups[i].rank > groups[j].rank
	})

	if len(groups) == 0 {
		groups = append(groups, rankGroup{})
	}

	return groups
}

// kickers returns the unmatched ranks, highest first
func kickers(groups []rankGroup) []int {
	k := make([]int, 0, len(groups))
	for _, g := range groups {
		if g.count == 1 {
			k = append(k, g.rank)
		}
	}

	return k
}

// Rank evaluates every contender's hole cards together with the board
// The returned ranks are in the same order as contenders.
func Rank(contenders []Contender, board deck.Hand) []*HandRank {
	ranks := make([]*HandRank, len(contenders))
	for i, c := range contenders {
		cards := append(c.HoleCards().Clone(), board...)
		ranks[i] = Evaluate(cards, c)
	}

	return ranks
}

// Winners returns every rank that ties for the best
// More than one winner means the pot is split.
func Winners(ranks []*HandRank) []*HandRank {
	var best *HandRank
	for _, r := range ranks {
		if best == nil || r.Compare(best) > 0 {
			best = r
		}
	}

	winners := make([]*HandRank, 0, 1)
	for _, r := range ranks {
		if r.Compare(best) == 0 {
			winners = append(winners, r)
		}
	}

	return winners
}
