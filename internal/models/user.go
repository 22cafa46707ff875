package models

import (
	"regexp"
	"time"
	"unicode"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pbrandao-dev/bookshelf-api/internal/validator"
)

// User represents a user account document. The password hash is never
// serialized to clients.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    *time.Time         `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

var usernameRX = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)

// ValidateRegistration checks a registration payload: username shape,
// email syntax, and password strength.
func ValidateRegistration(v *validator.Validator, username, email, password string) {
	v.Check(username != "", "username", "must be provided")
	if username != "" {
		v.Check(validator.Matches(username, usernameRX), "username",
			"must be 3-30 characters of letters, digits or underscore")
	}

	v.Check(email != "", "email", "must be provided")
	if email != "" {
		v.Check(validator.Matches(email, validator.EmailRX), "email", "must be a valid email address")
	}

	v.Check(password != "", "password", "must be provided")
	if password != "" {
		v.Check(len(password) >= 6, "password", "must be at least 6 characters long")
		v.Check(passwordStrongEnough(password), "password",
			"must contain a lowercase letter, an uppercase letter and a digit")
	}
}

func passwordStrongEnough(password string) bool {
	var lower, upper, digit bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}
