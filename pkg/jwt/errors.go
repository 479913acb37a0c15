package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Reason classifies why a token was rejected.
type Reason int

const (
	// ReasonInvalidStructure means the token is not three decodable segments.
	ReasonInvalidStructure Reason = iota + 1
	// ReasonInvalidSignature means the recomputed signature does not match.
	ReasonInvalidSignature
	// ReasonInvalidIat means the iat claim lies in the future.
	ReasonInvalidIat
	// ReasonInvalidNbf means the nbf claim lies in the future.
	ReasonInvalidNbf
	// ReasonInvalidExp means the exp claim lies in the past.
	ReasonInvalidExp
	// ReasonRandomnessUnavailable means secure random bytes could not be read.
	ReasonRandomnessUnavailable
)

// String returns the reason name used in error messages and logs.
func (r Reason) String() string {
	switch r {
	case ReasonInvalidStructure:
		return "invalid_structure"
	case ReasonInvalidSignature:
		return "invalid_signature"
	case ReasonInvalidIat:
		return "invalid_iat"
	case ReasonInvalidNbf:
		return "invalid_nbf"
	case ReasonInvalidExp:
		return "invalid_exp"
	case ReasonRandomnessUnavailable:
		return "randomness_unavailable"
	default:
		return "unknown"
	}
}

// Error is returned for every token rejection. Compare against the sentinel
// values with errors.Is; use errors.As to read the structured context.
type Error struct {
	Reason Reason

	// Claim is the time claim that failed (iat, nbf, exp).
	Claim string
	// At is the instant carried by Claim.
	At time.Time
	// Now is the instant the claim was compared against.
	Now time.Time

	// Segment names the segment that failed to decode (header, payload).
	Segment string
	// Segments is the number of segments found when the split failed.
	Segments int

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("jwt: ")
	b.WriteString(e.message())

	switch {
	case e.Claim != "" && !e.At.IsZero():
		fmt.Fprintf(&b, ": %s=%d now=%d", e.Claim, e.At.Unix(), e.Now.Unix())
	case e.Segment != "":
		fmt.Fprintf(&b, ": %s segment", e.Segment)
	case e.Reason == ReasonInvalidStructure && e.Segments > 0:
		fmt.Fprintf(&b, ": got %d segments, want %d", e.Segments, segmentCount)
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) message() string {
	switch e.Reason {
	case ReasonInvalidStructure:
		return "invalid structure"
	case ReasonInvalidSignature:
		return "invalid signature"
	case ReasonInvalidIat:
		return "invalid iat claim"
	case ReasonInvalidNbf:
		return "invalid nbf claim"
	case ReasonInvalidExp:
		return "invalid exp claim"
	case ReasonRandomnessUnavailable:
		return "secure randomness unavailable"
	default:
		return "token error"
	}
}

// Is reports whether target is a token error with the same reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Reason == e.Reason
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Sentinel token errors, one per reason.
var (
	ErrInvalidStructure      = &Error{Reason: ReasonInvalidStructure}
	ErrInvalidSignature      = &Error{Reason: ReasonInvalidSignature}
	ErrInvalidIat            = &Error{Reason: ReasonInvalidIat}
	ErrInvalidNbf            = &Error{Reason: ReasonInvalidNbf}
	ErrInvalidExp            = &Error{Reason: ReasonInvalidExp}
	ErrRandomnessUnavailable = &Error{Reason: ReasonRandomnessUnavailable}
)

var (
	// ErrMissingSigningKey is returned when a service is created without a secret.
	ErrMissingSigningKey = errors.New("jwt: signing key is required")
	// ErrClaimType is wrapped by a time claim error when strict claim types are
	// enabled and the claim is not an integer.
	ErrClaimType = errors.New("claim is not an integer unix timestamp")
)

// errTokenTooLarge is the cause attached when a token exceeds WithMaxTokenSize.
type errTokenTooLarge struct {
	size int
	max  int
}

func (e errTokenTooLarge) Error() string {
	return fmt.Sprintf("token size %d exceeds maximum %d bytes", e.size, e.max)
}

// ReasonOf extracts the rejection reason from err. It returns false when err
// is not a token error.
func ReasonOf(err error) (Reason, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Reason, true
	}
	return 0, false
}
