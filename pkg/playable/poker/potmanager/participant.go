package potmanager

// Participant provides an interface for crediting a participant's balance
type Participant interface {
	ID() string
	AdjustBalance(amount int)
}
