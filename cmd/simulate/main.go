package main

import (
	"flag"
	"fmt"
	"holdem-server/internal/config"
	"holdem-server/pkg/playable/poker/texasholdem"
	"os"
	"sort"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
)

var hands = flag.Int("hands", 500, "the number of hands to play")
var players = flag.Int("players", 6, "the number of bots at the table")
var seed = flag.Int64("seed", 0, "seed for a reproducible run, 0 shuffles with crypto/rand")
var verbose = flag.Bool("v", false, "log every hand")

func main() {
	flag.Parse()

	logrus.SetLevel(logrus.WarnLevel)
	if *verbose {
		logrus.SetLevel(logrus.InfoLevel)
	}

	cfg := config.Instance()
	sim := simulation{
		Hands:   *hands,
		Players: *players,
		Stack:   cfg.Game.StartingStack,
		Seed:    *seed,
		Options: texasholdem.Options{
			SmallBlind:     cfg.Game.SmallBlind,
			BigBlind:       cfg.Game.BigBlind,
			OrbitsPerLevel: cfg.Game.OrbitsPerLevel,
		},
	}

	pterm.DefaultHeader.Println(texasholdem.NameFromOptions(sim.Options))
	pterm.Info.Printfln("%d bots, %d chips each, up to %d hands", sim.Players, sim.Stack, sim.Hands)

	sum, err := sim.run(logrus.StandardLogger())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	if err := render(sum); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	pterm.Success.Printfln("%d hands played, every chip accounted for (%d dropped on split pots)", sum.HandsPlayed, sum.Dropped)
}

func render(sum *summary) error {
	participants := make([]*texasholdem.Participant, len(sum.Participants))
	copy(participants, sum.Participants)
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Stack > participants[j].Stack
	})

	data := pterm.TableData{{"Bot", "Stack", "Pots won"}}
	for _, p := range participants {
		stack := pterm.LightGreen(p.Stack)
		if p.Stack == 0 {
			stack = pterm.LightRed("busted")
		}

		data = append(data, []string{sum.Names[p.PlayerID], stack, fmt.Sprint(sum.Wins[p.PlayerID])})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	if len(sum.Categories) == 0 {
		return nil
	}

	categories := make([]string, 0, len(sum.Categories))
	for name := range sum.Categories {
		categories = append(categories, name)
	}

	sort.Strings(categories)

	bars := make([]pterm.Bar, len(categories))
	for i, name := range categories {
		bars[i] = pterm.Bar{Label: name, Value: sum.Categories[name]}
	}

	pterm.DefaultSection.Println("Winning hands at showdown")
	return pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().Render()
}
