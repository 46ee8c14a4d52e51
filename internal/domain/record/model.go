package record

import "time"

// AllFriends is the sharing sentinel meaning "visible to anyone who has
// friended me", not "visible to everyone".
const AllFriends = "ALL_FRIENDS"

// Record is one dated journal entry. OwnerID is empty only for records
// persisted before per-record ownership existed ("legacy" records). Media
// fields are opaque references the core never interprets.
type Record struct {
	ID            int64             `json:"id"`
	OwnerID       string            `json:"ownerId,omitempty"`
	Date          string            `json:"date"`
	Title         string            `json:"title,omitempty"`
	Category      string            `json:"category"`
	Location      string            `json:"location,omitempty"`
	ReleaseYear   string            `json:"releaseYear,omitempty"`
	Rating        string            `json:"rating,omitempty"`
	Mood          string            `json:"mood,omitempty"`
	Review        string            `json:"review,omitempty"`
	Details       map[string]string `json:"details,omitempty"`
	SharedWith    []string          `json:"sharedWith"`
	Image         string            `json:"image,omitempty"`
	YouTube       string            `json:"youtube,omitempty"`
	Audio         string            `json:"audio,omitempty"`
	DominantColor string            `json:"dominantColor,omitempty"`
}

// NewID returns a creation-timestamp id, unique enough for a single-device
// store writing at human speed.
func NewID() int64 {
	return time.Now().UnixMilli()
}

// SharedWithAll reports whether the record is shared via the AllFriends
// sentinel.
func (r *Record) SharedWithAll() bool {
	for _, id := range r.SharedWith {
		if id == AllFriends {
			return true
		}
	}
	return false
}
