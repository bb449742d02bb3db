// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"cookify/config"
	"cookify/internal/domain/service"
)

const (
	defaultBcryptCost     = 12
	defaultMinPasswordLen = 8
	defaultMaxPasswordLen = 72 // bcrypt truncates beyond 72 bytes
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength *config.PasswordStrengthConfig
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := defaultBcryptCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	var strength *config.PasswordStrengthConfig
	if cfg != nil {
		strength = cfg.PasswordStrength
	}

	return &bcryptHasher{
		cost:     cost,
		strength: strength,
	}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	// err is nil if the password and hash match.
	return err == nil
}

// ValidatePasswordStrength rejects passwords that do not meet the configured
// strength requirements. Without configuration only a length check applies.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	minLen := defaultMinPasswordLen
	maxLen := defaultMaxPasswordLen
	if h.strength != nil {
		if h.strength.MinLength > 0 {
			minLen = h.strength.MinLength
		}
		if h.strength.MaxLength > 0 && h.strength.MaxLength < maxLen {
			maxLen = h.strength.MaxLength
		}
	}

	if len(password) < minLen {
		return fmt.Errorf("password must be at least %d characters", minLen)
	}
	if len(password) > maxLen {
		return fmt.Errorf("password must be at most %d characters", maxLen)
	}

	if h.strength == nil {
		return nil
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsNumber(r):
			hasNumber = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	if h.strength.RequireUppercase && !hasUpper {
		return fmt.Errorf("password must contain an uppercase letter")
	}
	if h.strength.RequireLowercase && !hasLower {
		return fmt.Errorf("password must contain a lowercase letter")
	}
	if h.strength.RequireNumbers && !hasNumber {
		return fmt.Errorf("password must contain a number")
	}
	if h.strength.RequireSpecial && !hasSpecial {
		return fmt.Errorf("password must contain a special character")
	}

	return nil
}
