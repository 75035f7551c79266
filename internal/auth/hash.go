// Package auth implements the credential primitives of the checkdaily
// server: one-way password hashing and the signed-token codec. Both are
// read-only after construction and safe for concurrent use.
package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPassword is returned by HashPassword when the input is empty.
// Empty passwords are rejected before any hashing work is done.
var ErrEmptyPassword = errors.New("password must not be empty")

// Hasher derives and verifies bcrypt password hashes.
// Cost is the bcrypt work factor; zero selects bcrypt.DefaultCost.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher with the given bcrypt cost.
// A cost outside the valid bcrypt range falls back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// HashPassword derives a salted bcrypt hash from the given password.
//
// bcrypt embeds a fresh random salt in every output, so two hashes of the
// same password differ while both still verify. Returns ErrEmptyPassword
// on empty input.
func (h *Hasher) HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
//
// The comparison is constant-time inside bcrypt. A mismatch, an empty
// input, or a malformed stored hash all yield false; the function never
// returns an error to the caller so that failure reasons cannot be
// distinguished.
func (h *Hasher) VerifyPassword(password, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)) == nil
}
