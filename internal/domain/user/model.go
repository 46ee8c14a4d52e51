package user

import "time"

// User is one directory account. Friends holds the ids this user has added;
// the relation is directed and never made reciprocal automatically.
type User struct {
	ID           string    `json:"id"`
	PasswordHash string    `json:"-"`
	Friends      []string  `json:"friends"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HasFriended reports whether this user has added the given id.
func (u *User) HasFriended(id string) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}
