package action

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Action represents a betting action a player can take
type Action string

// action constants
const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
	Raise Action = "raise"
)

var allowedActions = map[Action]bool{
	Fold:  true,
	Check: true,
	Call:  true,
	Bet:   true,
	Raise: true,
}

// FromString returns an action for the given string
// Matching is case-insensitive, so "Call" and "call" are the same action.
func FromString(s string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := allowedActions[a]; ok {
		return a, nil
	}

	return "", fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a {
	case Fold:
		return "Fold"
	case Check:
		return "Check"
	case Call:
		return "Call"
	case Bet:
		return "Bet"
	case Raise:
		return "Raise"
	}

	panic("unknown action")
}

// MarshalJSON encodes the action into JSON
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{
		ID:   string(a),
		Name: a.String(),
	})
}

// IsValid returns true if the action is permitted
func (a Action) IsValid() bool {
	_, ok := allowedActions[a]
	return ok
}

// IsAggressive returns true for actions that put a new bet in front of the table
func (a Action) IsAggressive() bool {
	return a == Bet || a == Raise
}

// LogMessage returns a message formatted for the log
// amount is the number of chips the action moved.
func (a Action) LogMessage(amount int) string {
	switch a {
	case Fold:
		return "folded"
	case Check:
		if amount > 0 {
			return fmt.Sprintf("called ${%d}", amount)
		}

		return "checked"
	case Call:
		return fmt.Sprintf("called ${%d}", amount)
	case Bet:
		return fmt.Sprintf("bet ${%d}", amount)
	case Raise:
		return fmt.Sprintf("raised ${%d}", amount)
	}

	return ""
}
