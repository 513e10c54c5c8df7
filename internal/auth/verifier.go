// Package auth classifies a password into a session role by digest comparison.
//
// The reference digests ship inside the binary, so this is a convenience gate
// and not a security boundary. Real deployments need server-side authorization.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
)

const (
	// AdminDigest is the lowercase hex SHA-256 of the admin password.
	AdminDigest = "240be518fabd2724ddb6f04eeb1da5967448d7e831c08c8fa822809f74c720a9"
	// WorkerDigest is the lowercase hex SHA-256 of the worker password.
	WorkerDigest = "b631165cb4668df72a440e69d9544c4146e507198884244243b676a08605c446"
)

// ErrRejected reports a password that matches neither reference digest.
var ErrRejected = errors.New("credential rejected")

// Verifier compares password digests against the admin and worker references.
type Verifier struct {
	adminDigest  string
	workerDigest string
}

// NewVerifier returns a Verifier using the built-in reference digests.
func NewVerifier() *Verifier {
	return NewVerifierWithDigests(AdminDigest, WorkerDigest)
}

// NewVerifierWithDigests returns a Verifier using the provided lowercase hex digests.
func NewVerifierWithDigests(adminDigest string, workerDigest string) *Verifier {
	return &Verifier{adminDigest: adminDigest, workerDigest: workerDigest}
}

// Digest returns the lowercase hex SHA-256 of plaintext.
func Digest(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Verify returns the role whose digest matches plaintext, or ErrRejected.
// Admin is checked first, so it wins if both references were ever equal.
// Attempts are not counted or throttled.
func (v *Verifier) Verify(plaintext string) (Role, error) {
	role := v.Classify(Digest(plaintext))
	if role == RoleNone {
		return RoleNone, ErrRejected
	}
	return role, nil
}

// Classify reports the role for an already computed digest without rejecting.
func (v *Verifier) Classify(digest string) Role {
	switch {
	case digestEqual(digest, v.adminDigest):
		return RoleAdmin
	case digestEqual(digest, v.workerDigest):
		return RoleWorker
	default:
		return RoleNone
	}
}

func digestEqual(a string, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
