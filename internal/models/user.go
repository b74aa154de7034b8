package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/pzaremba/book-library-api/internal/validation"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"user_id"`       // Primary key
	Username     string    `db:"username"`      // Unique username
	Email        string    `db:"email"`         // Unique email
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never the original
	CreatedAt    time.Time `db:"created_at"`    // Creation timestamp
}

// UserInput is the JSON body for user registration.
type UserInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ValidateUserInput applies the registration field rules to v.
// The upper password bound is the bcrypt input limit.
func ValidateUserInput(v *validation.Validator, in UserInput) {
	v.Check(in.Username != "", "username", "Missing data for required field.")
	v.Check(len(in.Username) <= 50, "username", "Longer than maximum length 50.")
	v.Check(in.Email != "", "email", "Missing data for required field.")
	if in.Email != "" {
		v.Check(validation.Matches(in.Email, validation.EmailRX), "email", "Not a valid email address.")
	}
	v.Check(in.Password != "", "password", "Missing data for required field.")
	if in.Password != "" {
		v.Check(len(in.Password) >= 6, "password", "Shorter than minimum length 6.")
		v.Check(len(in.Password) <= 72, "password", "Longer than maximum length 72.")
	}
}
