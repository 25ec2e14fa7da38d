package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Password length limits. The lower bound matches the registration rules;
// the upper bound is bcrypt's input limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// usernameRegex accepts a simple local@domain.tld shape. Usernames are
// compared case-sensitively; no normalization happens here.
var usernameRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered account in the article management system.
// The plaintext Password field is only populated transiently during
// registration and password changes; it is never persisted or serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Password       string    `json:"-"` // Plaintext, transient only
	HashedPassword string    `json:"-"` // Never expose the hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with a fresh UUID and timestamps.
// The caller is responsible for hashing the password before storing the user.
func NewUser(username, password, firstName, lastName string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the user's fields against the domain rules.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}

	if err := ValidateUsername(u.Username); err != nil {
		return err
	}

	// Existing users loaded from the store carry only the hash; the
	// plaintext rules apply only when a plaintext password is present.
	if u.Password != "" {
		if err := ValidatePassword(u.Password); err != nil {
			return err
		}
	} else if u.HashedPassword == "" {
		return NewValidationError("password", "cannot be empty", ErrValidation)
	}

	return nil
}

// ValidateUsername checks that a username is email-shaped.
func ValidateUsername(username string) error {
	if username == "" {
		return NewValidationError("username", "is required", ErrValidation)
	}
	if !usernameRegex.MatchString(username) {
		return NewValidationError("username", "must be a valid email address", ErrInvalidUsername)
	}
	return nil
}

// ValidatePassword checks a plaintext password against the length rules.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return NewValidationError("password", "is too short", ErrPasswordTooShort)
	}
	if len(password) > MaxPasswordLength {
		return NewValidationError("password", "is too long", ErrPasswordTooLong)
	}
	return nil
}
