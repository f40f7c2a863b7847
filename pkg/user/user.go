package user

import "time"

type User struct {
	ID    string
	Email string
	// PasswordHash is the bcrypt hash of the user's password. It is never
	// serialized in any response.
	PasswordHash string
	Username     string
	UserImageURL string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
