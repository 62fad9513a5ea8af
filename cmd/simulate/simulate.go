package main

import (
	"fmt"
	"holdem-server/internal/rng"
	"holdem-server/internal/util"
	"holdem-server/pkg/playable/poker/action"
	"holdem-server/pkg/playable/poker/texasholdem"
	"math/rand"

	"github.com/sirupsen/logrus"
)

type simulation struct {
	Hands   int
	Players int
	Stack   int
	Seed    int64
	Options texasholdem.Options
}

type summary struct {
	HandsPlayed  int
	Dropped      int
	Participants []*texasholdem.Participant
	Names        map[string]string
	Wins         map[string]int
	Categories   map[string]int
}

func botNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s #%d", util.GetRandomName(), i+1)
	}

	return names
}

// run plays hands between bots that pick a random legal action every turn
// Chip conservation is checked after every action; a violation stops the run with an error.
func (s simulation) run(logger logrus.FieldLogger) (*summary, error) {
	var generator rng.Generator
	if s.Seed != 0 {
		generator = rng.Seeded(s.Seed)
	}

	round, err := texasholdem.NewRound(logger, s.Options, generator)
	if err != nil {
		return nil, err
	}

	rnd := rand.New(rand.NewSource(s.Seed))
	sum := &summary{
		Names:      make(map[string]string),
		Wins:       make(map[string]int),
		Categories: make(map[string]int),
	}

	for i, name := range botNames(s.Players) {
		p := texasholdem.NewParticipant(fmt.Sprintf("bot-%d", i+1), s.Stack)
		sum.Participants = append(sum.Participants, p)
		sum.Names[p.PlayerID] = name
	}

	total := s.Stack * s.Players
	checkChips := func(when string) error {
		chips := round.Pot() + sum.Dropped
		for _, p := range sum.Participants {
			chips += p.Stack
		}

		if chips != total {
			return fmt.Errorf("chips not conserved %s in hand %d: have %d, want %d", when, round.HandsPlayed()+1, chips, total)
		}

		return nil
	}

	for hand := 0; hand < s.Hands; hand++ {
		if !round.StartRound(sum.Participants, round.DealerSeat()) {
			break
		}

		for round.InProgress() {
			if round.AwaitingAdvance() {
				round.TryAdvanceStreet()
				continue
			}

			seat := round.ActingSeat()
			p := sum.Participants[seat]
			if len(round.ActionsForParticipant(p.PlayerID)) == 0 {
				return nil, fmt.Errorf("%s is on the clock without any actions", sum.Names[p.PlayerID])
			}

			a, amount := pickAction(rnd, round, p)
			if err := round.ApplyAction(seat, a, amount); err != nil {
				return nil, fmt.Errorf("%s could not %s: %w", sum.Names[p.PlayerID], a, err)
			}

			if err := checkChips("after " + string(a)); err != nil {
				return nil, err
			}
		}

		result := round.Result()
		sum.Dropped += result.Dropped
		for _, id := range result.Winners {
			sum.Wins[id]++
			if hr, ok := result.Hands[id]; ok {
				sum.Categories[hr.Hand.String()]++
			}
		}

		if err := checkChips("after settling"); err != nil {
			return nil, err
		}

		round.Events()
		round.LogMessages()
	}

	if n := round.DeckExhaustions(); n > 0 {
		return nil, fmt.Errorf("deck ran out %d times", n)
	}

	sum.HandsPlayed = round.HandsPlayed()
	return sum, nil
}

// pickAction picks one of the legal actions, folding less often than anything else
func pickAction(rnd *rand.Rand, round *texasholdem.Round, p *texasholdem.Participant) (action.Action, int) {
	actions := round.ActionsForParticipant(p.PlayerID)

	a := actions[rnd.Intn(len(actions))]
	if a == action.Fold && len(actions) > 1 && rnd.Intn(2) == 0 {
		a = actions[0]
	}

	if a != action.Bet && a != action.Raise {
		return a, 0
	}

	minimum := round.CurrentBet() - p.Bet + 1
	if minimum < round.Options().BigBlind && p.Stack >= round.Options().BigBlind {
		minimum = round.Options().BigBlind
	}

	// usually a small raise, occasionally a shove
	if rnd.Intn(10) == 0 {
		return a, p.Stack
	}

	limit := minimum * 3
	if limit > p.Stack {
		limit = p.Stack
	}

	return a, minimum + rnd.Intn(limit-minimum+1)
}
