package texasholdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParticipant_commit(t *testing.T) {
	a := assert.New(t)

	p := NewParticipant("p0", 100)
	p.Active = true

	a.Equal(30, p.commit(30))
	a.Equal(70, p.Stack)
	a.Equal(30, p.Bet)
	a.False(p.IsAllIn())
	a.True(p.canAct())

	a.Equal(70, p.commit(500), "capped at the stack")
	a.Equal(0, p.Stack)
	a.Equal(100, p.Bet)
	a.True(p.IsAllIn())
	a.False(p.canAct())

	a.Equal(0, p.commit(-10))
	a.Equal(100, p.Bet)
}

func TestParticipant_AdjustBalance(t *testing.T) {
	a := assert.New(t)

	p := NewParticipant("p0", 0)
	a.False(p.IsAllIn(), "inactive players are not all-in")

	p.AdjustBalance(25)
	a.Equal(25, p.Stack)
	a.Equal("p0", p.ID())
	a.Nil(p.HoleCards())
}
