package table

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const maxNameLength = 40

// Options describe how a table is set up
type Options struct {
	MaxPlayers    int `json:"maxPlayers"`
	StartingStack int `json:"startingStack"`
}

// Table represents a poker table
// A table has many seated players. Tables only live in memory.
type Table struct {
	UUID    string    `json:"uuid"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
	Options Options   `json:"options"`

	lock    sync.RWMutex
	players []*Player
}

func newTable(name string, opts Options) *Table {
	return &Table{
		UUID:    uuid.New().String(),
		Name:    name,
		Created: time.Now(),
		Options: opts,
	}
}

// Seat seats a new player at the table
func (t *Table) Seat(name string) (*Player, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return nil, ErrInvalidName
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	if t.Options.MaxPlayers > 0 && len(t.players) >= t.Options.MaxPlayers {
		return nil, ErrTableFull
	}

	for _, p := range t.players {
		if strings.EqualFold(p.Name, name) {
			return nil, ErrNameTaken
		}
	}

	p := &Player{
		ID:     uuid.New().String(),
		Name:   name,
		Joined: time.Now(),
	}

	t.players = append(t.players, p)
	return p, nil
}

// Unseat removes the player from the table
func (t *Table) Unseat(playerID string) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	for i, p := range t.players {
		if p.ID == playerID {
			t.players = append(t.players[:i], t.players[i+1:]...)
			return nil
		}
	}

	return ErrPlayerNotAtTable
}

// GetPlayer returns the seated player
func (t *Table) GetPlayer(playerID string) (*Player, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	for _, p := range t.players {
		if p.ID == playerID {
			return p, nil
		}
	}

	return nil, ErrPlayerNotAtTable
}

// Players returns the seated players in seat order
func (t *Table) Players() []*Player {
	t.lock.RLock()
	defer t.lock.RUnlock()

	players := make([]*Player, len(t.players))
	copy(players, t.players)
	return players
}
