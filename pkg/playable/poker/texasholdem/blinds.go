package texasholdem

import (
	"errors"
	"time"
)

// blindMultipliers is the escalation ladder applied to the base blinds
var blindMultipliers = []int{1, 2, 3, 5, 8, 10, 15, 20, 30, 50}

// Options configures how a Round is played
type Options struct {
	SmallBlind int
	BigBlind   int

	// OrbitsPerLevel is how many trips around the table are played before the blinds go up
	// Zero keeps the blinds fixed.
	OrbitsPerLevel int

	// RevealDelay is the advisory pause before and after the showdown is revealed
	RevealDelay time.Duration
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		SmallBlind:     10,
		BigBlind:       20,
		OrbitsPerLevel: 2,
		RevealDelay:    time.Millisecond * 500,
	}
}

func validateOptions(opts Options) error {
	if opts.SmallBlind <= 0 {
		return errors.New("small blind must be > 0")
	}

	if opts.BigBlind < opts.SmallBlind {
		return errors.New("big blind must be >= the small blind")
	}

	if opts.OrbitsPerLevel < 0 {
		return errors.New("orbits per level must be >= 0")
	}

	if opts.RevealDelay < 0 {
		return errors.New("reveal delay must be >= 0")
	}

	return nil
}

// BlindLevel returns the zero-based level of the blind schedule
// The level goes up every OrbitsPerLevel orbits, where an orbit is one hand per seated player.
func (o Options) BlindLevel(handsPlayed, playerCount int) int {
	if playerCount <= 0 || o.OrbitsPerLevel <= 0 {
		return 0
	}

	level := handsPlayed / playerCount / o.OrbitsPerLevel
	if level >= len(blindMultipliers) {
		level = len(blindMultipliers) - 1
	}

	return level
}

// Blinds returns the small and big blind for the hand about to be played
func (o Options) Blinds(handsPlayed, playerCount int) (small, big int) {
	m := blindMultipliers[o.BlindLevel(handsPlayed, playerCount)]
	return o.SmallBlind * m, o.BigBlind * m
}
