package util

import (
	"fmt"
	"math/rand"
	"time"
)

var adjectives = []string{
	"Lucky", "Tight", "Loose", "Bluffing", "Stoic", "Tilted", "Patient", "Reckless", "Grinding", "Sharp",
	"Sly", "Calm", "Fearless", "Cagey", "Chasing", "Slowplaying", "Shoving", "Folding", "Nitty", "Wild",
}

var animals = []string{
	"Dog", "Cat", "Mouse", "Alligator", "Shark", "Hippo", "Giraffe", "Lion", "Tiger", "Bear", "Otter",
	"Dolphin", "Porcupine", "Hedgehog", "Eagle", "Wolf", "Fox", "Armadillo", "Rhino", "Panda",
}

var random = rand.New(rand.NewSource(time.Now().UnixNano())) // nolint:gosec

// GetRandomName returns a random name by combining an adjective with an animal
// Names are only used to label bots, so math/rand is good enough.
func GetRandomName() string {
	adjectivesIndex := random.Intn(len(adjectives))
	animalsIndex := random.Intn(len(animals))

	return fmt.Sprintf("%s %s", adjectives[adjectivesIndex], animals[animalsIndex])
}
