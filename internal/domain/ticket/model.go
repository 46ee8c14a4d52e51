package ticket

import (
	"math/rand"
	"time"
)

// Ticket is a generated memento of a journal entry: an opaque encoded image
// plus a display rotation. Tickets carry no owner since the store belongs to
// a single device.
type Ticket struct {
	ID        int64     `json:"id"`
	Image     string    `json:"image"`
	Rotation  float64   `json:"rotation"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewID() int64 {
	return time.Now().UnixMilli()
}

// RandomRotation picks a display tilt in the -10..10 degree range.
func RandomRotation() float64 {
	return float64(rand.Intn(21) - 10)
}
