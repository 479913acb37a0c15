package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Algorithm is the only signing algorithm this package executes. The alg
// header is written for interoperability and never read back to pick a verifier.
const Algorithm = "HS256"

// Sign returns the raw HMAC-SHA256 digest of message keyed with the service secret.
func (s *Service) Sign(message []byte) []byte {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write(message) // hash.Hash writes never fail
	return mac.Sum(nil)
}

func (s *Service) signature(p Parts) string {
	return encodeRaw(s.Sign([]byte(p.SigningInput())))
}

// ValidateSignature checks that token was signed with the service secret.
// A leading "Bearer " is ignored.
func (s *Service) ValidateSignature(token string) error {
	p, err := s.split(token)
	if err != nil {
		return err
	}
	return s.verify(p)
}

// verify compares the encoded signatures in constant time, so the check is
// against exactly the characters that were transmitted.
func (s *Service) verify(p Parts) error {
	if !hmac.Equal([]byte(s.signature(p)), []byte(p.Signature)) {
		return &Error{Reason: ReasonInvalidSignature}
	}
	return nil
}
