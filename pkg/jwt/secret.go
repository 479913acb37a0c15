package jwt

import (
	"crypto/rand"
	"encoding/hex"
	"io"
)

// DefaultSecretSize is the number of random bytes CreateSecret reads when
// no positive size is given.
const DefaultSecretSize = 32

// CreateSecret returns n cryptographically secure random bytes as a
// lowercase hex string of 2n characters. The same secret must be stored and
// reused to verify the tokens it signed.
func CreateSecret(n int) (string, error) {
	return CreateSecretFrom(rand.Reader, n)
}

// CreateSecretFrom is CreateSecret reading from r.
func CreateSecretFrom(r io.Reader, n int) (string, error) {
	if n <= 0 {
		n = DefaultSecretSize
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", &Error{Reason: ReasonRandomnessUnavailable, Err: err}
	}

	return hex.EncodeToString(buf), nil
}
