package auth

// PASSWORD STORAGE:
// Users register with a plaintext password; only its bcrypt hash reaches the
// users table. bcrypt embeds a random salt and the cost in its output:
//
//	$2a$10$<22-char salt><31-char hash>
//
// so the single stored string is enough to verify a login later.

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/sakif/forum-api/internal/apperror"
)

const (
	// defaultCost is the bcrypt work factor used in production. Hashing at
	// cost 10 takes roughly 60-100ms, which bounds registration and login latency.
	defaultCost = 10

	// maxPasswordBytes is bcrypt's input limit. Longer passwords would be
	// silently truncated, so they are rejected instead.
	maxPasswordBytes = 72

	msgWrongCredentials = "kredensial yang Anda masukkan salah"
)

// PasswordService hashes and compares passwords.
//
// The cost is a field so tests can drop it to bcrypt.MinCost.
type PasswordService struct {
	cost int
}

// NewPasswordService creates a PasswordService with the default cost.
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: defaultCost}
}

// NewPasswordServiceForTest creates a PasswordService with a custom cost.
// Other packages' tests pass bcrypt.MinCost (4). Never use it in production.
func NewPasswordServiceForTest(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash returns the bcrypt hash of plaintext.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", apperror.InvariantField("password", "password tidak boleh lebih dari 72 byte")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// ComparePassword checks plaintext against a stored hash. A mismatch is an
// authentication error (401) rather than a boolean, so callers just return it.
//
// bcrypt compares in constant time; response timing does not leak how much of
// the password was right.
func (p *PasswordService) ComparePassword(plaintext, hash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return apperror.Authentication(msgWrongCredentials)
	}
	return fmt.Errorf("auth: comparing password hash: %w", err)
}
