package jwt

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// Service encodes and verifies HS256 tokens with a single secret.
//
// The header and payload stores are mutated in place by the setters and by
// Encode without locking, so a Service being built must not be shared across
// goroutines. Decode, Verify, ValidateSignature, ValidateClaims and Sign only
// read the secret and options and are safe for concurrent use once the
// service is no longer mutated.
type Service struct {
	secret       []byte
	header       Fields
	payload      Fields
	now          func() time.Time
	rules        claimRules
	maxTokenSize int
}

// Token is the structured result of Decode.
type Token struct {
	Header  map[string]any `json:"header"`
	Payload Claims         `json:"payload"`
	// Signature is the raw signature segment, still base64url-encoded.
	Signature string `json:"signature"`
}

// New creates a Service that signs with secret. The secret is copied.
func New(secret []byte, opts ...Option) (*Service, error) {
	if len(secret) == 0 {
		return nil, ErrMissingSigningKey
	}

	s := &Service{
		secret: bytes.Clone(secret),
		header: NewFields(F("typ", "JWT"), F("alg", Algorithm)),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromString is New for string secrets, such as those from CreateSecret.
func NewFromString(secret string, opts ...Option) (*Service, error) {
	return New([]byte(secret), opts...)
}

// Header returns a copy of the current header.
func (s *Service) Header() Fields {
	return s.header.Clone()
}

// Payload returns a copy of the current payload.
func (s *Service) Payload() Fields {
	return s.payload.Clone()
}

// SetHeader merges fields into the header.
func (s *Service) SetHeader(fields ...Field) *Service {
	s.header.Set(fields...)
	return s
}

// MergeHeader merges a map into the header.
func (s *Service) MergeHeader(m map[string]any) *Service {
	s.header.Merge(m)
	return s
}

// RemoveHeader deletes a header key if present.
func (s *Service) RemoveHeader(key string) *Service {
	s.header.Remove(key)
	return s
}

// SetPayload merges fields into the payload.
func (s *Service) SetPayload(fields ...Field) *Service {
	s.payload.Set(fields...)
	return s
}

// MergePayload merges a map into the payload.
func (s *Service) MergePayload(m map[string]any) *Service {
	s.payload.Merge(m)
	return s
}

// RemovePayload deletes a payload key if present.
func (s *Service) RemovePayload(key string) *Service {
	s.payload.Remove(key)
	return s
}

// Aud sets the audience claim.
func (s *Service) Aud(aud string) *Service { return s.SetPayload(F(ClaimAudience, aud)) }

// Exp sets the expiration time claim in Unix seconds.
func (s *Service) Exp(exp int64) *Service { return s.SetPayload(F(ClaimExpiresAt, exp)) }

// Iat sets the issued-at claim in Unix seconds.
func (s *Service) Iat(iat int64) *Service { return s.SetPayload(F(ClaimIssuedAt, iat)) }

// Iss sets the issuer claim.
func (s *Service) Iss(iss string) *Service { return s.SetPayload(F(ClaimIssuer, iss)) }

// Jti sets the token ID claim.
func (s *Service) Jti(jti string) *Service { return s.SetPayload(F(ClaimID, jti)) }

// Nbf sets the not-before claim in Unix seconds.
func (s *Service) Nbf(nbf int64) *Service { return s.SetPayload(F(ClaimNotBefore, nbf)) }

// Sub sets the subject claim.
func (s *Service) Sub(sub string) *Service { return s.SetPayload(F(ClaimSubject, sub)) }

// ExpiresIn sets exp to the service clock plus d.
func (s *Service) ExpiresIn(d time.Duration) *Service {
	return s.Exp(s.now().Add(d).Unix())
}

// IssuedNow sets iat to the service clock.
func (s *Service) IssuedNow() *Service {
	return s.Iat(s.now().Unix())
}

// NewID returns a random UUID suitable for the jti claim.
func NewID() string {
	return uuid.NewString()
}

// Encode returns a signed token for the current header and payload.
//
// Extra fields are merged into the stored payload before encoding and stay
// there for later calls.
func (s *Service) Encode(extra ...Field) (string, error) {
	if len(extra) > 0 {
		s.payload.Set(extra...)
	}
	return s.encode()
}

// EncodeMap is Encode with a plain map, merged the same way as MergePayload.
func (s *Service) EncodeMap(extra map[string]any) (string, error) {
	s.payload.Merge(extra)
	return s.encode()
}

func (s *Service) encode() (string, error) {
	header, err := EncodeSegment(s.header)
	if err != nil {
		return "", err
	}
	payload, err := EncodeSegment(s.payload)
	if err != nil {
		return "", err
	}

	p := Parts{Header: header, Payload: payload}
	return p.SigningInput() + "." + s.signature(p), nil
}

// Decode splits token and returns its header, payload and raw signature.
//
// With validate set, the signature and then the time claims are checked
// first and the first failure is returned. With validate unset only the
// structure is checked: the returned content is unverified and must not be
// trusted unless the token was authenticated some other way.
func (s *Service) Decode(token string, validate bool) (*Token, error) {
	p, err := s.split(token)
	if err != nil {
		return nil, err
	}

	if validate {
		if err := s.verify(p); err != nil {
			return nil, err
		}
	}

	payload, err := decodePart("payload", p.Payload)
	if err != nil {
		return nil, err
	}

	if validate {
		if err := s.rules.validate(payload, s.now()); err != nil {
			return nil, err
		}
	}

	header, err := decodePart("header", p.Header)
	if err != nil {
		return nil, err
	}

	return &Token{
		Header:    header,
		Payload:   payload,
		Signature: p.Signature,
	}, nil
}

// DecodeUnverified reads a token without a secret. Only the structure is
// checked, so the result must not be trusted. Malformed segments are
// reported as ErrInvalidStructure, as in Decode.
func DecodeUnverified(token string) (*Token, error) {
	p, err := SplitToken(token)
	if err != nil {
		return nil, err
	}
	payload, err := decodePart("payload", p.Payload)
	if err != nil {
		return nil, err
	}
	header, err := decodePart("header", p.Header)
	if err != nil {
		return nil, err
	}
	return &Token{Header: header, Payload: payload, Signature: p.Signature}, nil
}

// Verify is Decode with validation.
func (s *Service) Verify(token string) (*Token, error) {
	return s.Decode(token, true)
}

// ValidateClaims checks the iat, nbf and exp claims of token against a
// single reading of the service clock. The signature is not checked.
func (s *Service) ValidateClaims(token string) error {
	p, err := s.split(token)
	if err != nil {
		return err
	}
	payload, err := decodePart("payload", p.Payload)
	if err != nil {
		return err
	}
	return s.rules.validate(payload, s.now())
}

func (s *Service) split(token string) (Parts, error) {
	if s.maxTokenSize > 0 && len(token) > s.maxTokenSize {
		return Parts{}, &Error{
			Reason: ReasonInvalidStructure,
			Err:    errTokenTooLarge{size: len(token), max: s.maxTokenSize},
		}
	}
	return SplitToken(token)
}
