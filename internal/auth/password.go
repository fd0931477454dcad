package auth

import (
	"errors"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

var bcryptPattern = regexp.MustCompile(`^\$2([ayb])?\$(\d\d)\$[./0-9A-Za-z]{53}$`)

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value. Stored values
// that do not look like bcrypt output are rejected outright rather than
// handed to the library.
func ComparePassword(hashed, plain string) error {
	if plain == "" {
		return errors.New("raw password can not be empty")
	}
	if !bcryptPattern.MatchString(hashed) {
		return errors.New("encoded password does not look like bcrypt")
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
