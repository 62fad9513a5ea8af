package table

import "time"

// Player is somebody seated at a table
type Player struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Joined time.Time `json:"joined"`
}
