package model

import "time"

// User represents a registered account.
//
// Password is stored and compared as plaintext. This mirrors the legacy data
// the site was built around; hashing is deliberately out of scope and the
// field is flagged as a known defect rather than silently migrated.
type User struct {
	Username     string // unique login name (immutable)
	Password     string // plaintext credential (legacy)
	WantToGoList []DestinationCode
	CreatedAt    time.Time
}

// Wants reports whether code is already on the user's want-to-go list.
func (u *User) Wants(code DestinationCode) bool {
	for _, c := range u.WantToGoList {
		if c == code {
			return true
		}
	}
	return false
}
