package jwt

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"time"
)

// Registered claim names.
const (
	ClaimAudience  = "aud"
	ClaimExpiresAt = "exp"
	ClaimIssuedAt  = "iat"
	ClaimIssuer    = "iss"
	ClaimID        = "jti"
	ClaimNotBefore = "nbf"
	ClaimSubject   = "sub"
)

// Claims is a decoded payload.
type Claims map[string]any

// Subject returns the sub claim if it is a string.
func (c Claims) Subject() string { return c.str(ClaimSubject) }

// Issuer returns the iss claim if it is a string.
func (c Claims) Issuer() string { return c.str(ClaimIssuer) }

// ID returns the jti claim if it is a string.
func (c Claims) ID() string { return c.str(ClaimID) }

// Audience returns the aud claim. Both the single string and the array form
// are accepted; non-string array members are skipped.
func (c Claims) Audience() []string {
	switch v := c[ClaimAudience].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, a := range v {
			if s, ok := a.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	default:
		return nil
	}
}

// ExpiresAt returns the exp claim as a time.
func (c Claims) ExpiresAt() (time.Time, bool) { return c.time(ClaimExpiresAt) }

// NotBefore returns the nbf claim as a time.
func (c Claims) NotBefore() (time.Time, bool) { return c.time(ClaimNotBefore) }

// IssuedAt returns the iat claim as a time.
func (c Claims) IssuedAt() (time.Time, bool) { return c.time(ClaimIssuedAt) }

func (c Claims) str(key string) string {
	s, _ := c[key].(string)
	return s
}

func (c Claims) time(key string) (time.Time, bool) {
	sec, ok := unixSeconds(c[key])
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0).UTC(), true
}

// ValidateClaimsAt checks iat, nbf and exp against now, in that order, and
// returns the first failure. Absent or non-integer claims are skipped.
func ValidateClaimsAt(claims Claims, now time.Time) error {
	return claimRules{}.validate(claims, now)
}

// claimRules carries the service options that affect time validation.
type claimRules struct {
	leeway time.Duration
	strict bool
}

func (r claimRules) validate(claims Claims, now time.Time) error {
	lee := int64(r.leeway / time.Second)
	cur := now.Unix()

	checks := []struct {
		claim  string
		reason Reason
		failed func(at int64) bool
	}{
		{ClaimIssuedAt, ReasonInvalidIat, func(at int64) bool { return at > cur+lee }},
		{ClaimNotBefore, ReasonInvalidNbf, func(at int64) bool { return at > cur+lee }},
		{ClaimExpiresAt, ReasonInvalidExp, func(at int64) bool { return at < cur-lee }},
	}

	for _, chk := range checks {
		raw, present := claims[chk.claim]
		if !present || raw == nil {
			continue
		}

		at, ok := unixSeconds(raw)
		if !ok {
			if r.strict {
				return &Error{Reason: chk.reason, Claim: chk.claim, Now: now, Err: ErrClaimType}
			}
			continue
		}

		if chk.failed(at) {
			return &Error{
				Reason: chk.reason,
				Claim:  chk.claim,
				At:     time.Unix(at, 0).UTC(),
				Now:    now,
			}
		}
	}

	return nil
}

// unixSeconds accepts json.Number, Go integers and whole floats.
func unixSeconds(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		// Out-of-range literals parse to ±Inf with ErrRange and saturate below.
		f, err := strconv.ParseFloat(string(n), 64)
		if err != nil && (!errors.Is(err, strconv.ErrRange) || !math.IsInf(f, 0)) {
			return 0, false
		}
		return wholeFloat(f)
	case float64:
		return wholeFloat(n)
	case float32:
		return wholeFloat(float64(n))
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintSeconds(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintSeconds(n)
	default:
		return 0, false
	}
}

// wholeFloat converts an integral float, saturating values outside the
// int64 range so they still compare as far past or far future.
func wholeFloat(f float64) (int64, bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	case f != math.Trunc(f):
		return 0, false
	}
	return int64(f), true
}

func uintSeconds(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return math.MaxInt64, true
	}
	return int64(u), true
}
