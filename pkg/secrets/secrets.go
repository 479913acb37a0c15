package secrets

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeySize is the length of derived keys in bytes.
const KeySize = 32

// info binds derived keys to their purpose so the same application secret
// can feed other HKDF consumers without producing colliding keys.
const info = "jwtkit/hs256-signing-key/v1"

var (
	ErrEmptyAppKey         = errors.New("secrets: application key is empty")
	ErrEmptyTenant         = errors.New("secrets: tenant is empty")
	ErrKeyDerivationFailed = errors.New("secrets: key derivation failed")
)

// Derive returns a KeySize-byte signing key for tenant.
func Derive(appKey []byte, tenant string) ([]byte, error) {
	if len(appKey) == 0 {
		return nil, ErrEmptyAppKey
	}
	if tenant == "" {
		return nil, ErrEmptyTenant
	}

	// The tenant is the salt; the application key is the input keying material.
	r := hkdf.New(sha256.New, appKey, []byte(tenant), []byte(info))

	key := make([]byte, KeySize)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyDerivationFailed, err)
	}

	return key, nil
}

// DeriveHex is Derive returning a lowercase hex string.
func DeriveHex(appKey []byte, tenant string) (string, error) {
	key, err := Derive(appKey, tenant)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}
