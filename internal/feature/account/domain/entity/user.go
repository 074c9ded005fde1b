// Package entity defines the domain entities for the account feature.
package entity

// User represents a registered user.
type User struct {
	// ID is assigned by the store and never reused within a running store.
	ID uint `gorm:"primaryKey"`

	// Username must be unique across all users.
	Username string `gorm:"uniqueIndex;size:255;not null"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password, never the plaintext.
	Password string `gorm:"size:255;not null"`
}

// UserSummary is the public projection of a User. It never carries the password.
type UserSummary struct {
	ID       uint
	Username string
	Email    string
}

// Summary returns the public projection of u.
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
