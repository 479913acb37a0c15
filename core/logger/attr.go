package logger

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

// Helpers that take optional input return an empty slog.Attr when the input
// is empty, and slog drops empty attrs from the record.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Error logs err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Performance and Timing
// ============================================================================

// Duration logs how long an operation took.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// ============================================================================
// Network and HTTP
// ============================================================================

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path creates an attribute for URL paths.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// StatusCode creates an attribute for HTTP status codes.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event names a discrete occurrence, e.g. "token_rejected".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Action creates an attribute for action names.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result logs an outcome such as "valid" or "rejected".
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

// ============================================================================
// Tokens
// ============================================================================

// TokenID creates an attribute for the jti claim.
func TokenID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("token_id", id)
}

// Subject creates an attribute for the sub claim.
func Subject(sub string) slog.Attr {
	if sub == "" {
		return slog.Attr{}
	}
	return slog.String("subject", sub)
}

// Issuer creates an attribute for the iss claim.
func Issuer(iss string) slog.Attr {
	if iss == "" {
		return slog.Attr{}
	}
	return slog.String("issuer", iss)
}

// Reason creates an attribute for the rejection reason of a token error.
// Returns empty Attr for errors that did not come from token validation.
func Reason(err error) slog.Attr {
	r, ok := jwt.ReasonOf(err)
	if !ok {
		return slog.Attr{}
	}
	return slog.String("reason", r.String())
}

// Claims groups the identifying claims of a decoded token.
func Claims(c jwt.Claims) slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	for _, a := range []slog.Attr{Subject(c.Subject()), Issuer(c.Issuer()), TokenID(c.ID())} {
		if !a.Equal(slog.Attr{}) {
			attrs = append(attrs, a)
		}
	}
	if len(attrs) == 0 {
		return slog.Attr{}
	}
	return Group("claims", attrs...)
}
