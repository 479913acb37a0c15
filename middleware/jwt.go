package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/jwtkit/core/logger"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

// jwtTokenContextKey is used as a key for storing the decoded token in request context.
type jwtTokenContextKey struct{}

// TokenExtractor pulls a raw token out of a request. It returns "" when absent.
type TokenExtractor func(r *http.Request) string

// JWTConfig configures the JWT authentication middleware.
type JWTConfig struct {
	// Service verifies and decodes tokens. Required.
	Service *jwt.Service
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// TokenExtractor defines how to extract the token from the request (default: from Authorization header)
	TokenExtractor TokenExtractor
	// ErrorHandler writes the response for a rejected request (default: 401 JSON)
	ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)
	// Logger receives a warn record per rejected request (default: discard)
	Logger *slog.Logger
	// StoreInContext determines whether to store the decoded token in request context
	StoreInContext bool
	// Issuer, when set, must equal the iss claim.
	Issuer string
	// Audience, when set, must be one of the aud claim values.
	Audience string
}

// JWT creates a JWT authentication middleware with a signing key.
// The decoded token is stored in the request context.
// Panics if the signing key is empty.
//
// Usage:
//
//	mux := http.NewServeMux()
//	mux.Handle("/profile", middleware.JWT("your-secret-signing-key")(profileHandler))
//
//	func profileHandler(w http.ResponseWriter, r *http.Request) {
//		claims, _ := middleware.GetClaims(r.Context())
//		fmt.Fprintln(w, claims.Subject())
//	}
func JWT(signingKey string) func(http.Handler) http.Handler {
	service, err := jwt.NewFromString(signingKey)
	if err != nil {
		panic("jwt middleware: " + err.Error())
	}

	return JWTWithConfig(JWTConfig{
		Service:        service,
		StoreInContext: true,
	})
}

// JWTWithConfig creates a JWT authentication middleware with custom configuration.
// Every request is checked for signature, time claims and, when configured,
// issuer and audience. Panics if the service is not provided.
//
// The service is only read by the middleware, so it must not be mutated
// through its builder methods once the middleware is serving requests.
//
//	cfg := middleware.JWTConfig{
//		Service:  service,
//		Issuer:   "auth.example.com",
//		Logger:   log,
//		TokenExtractor: middleware.JWTFromMultiple(
//			middleware.JWTFromAuthHeader(),
//			middleware.JWTFromCookie("auth_token"),
//		),
//		Skip: func(r *http.Request) bool {
//			return r.URL.Path == "/health"
//		},
//	}
//	handler := middleware.JWTWithConfig(cfg)(mux)
func JWTWithConfig(cfg JWTConfig) func(http.Handler) http.Handler {
	if cfg.Service == nil {
		panic("jwt middleware: service is required")
	}

	if cfg.TokenExtractor == nil {
		cfg.TokenExtractor = JWTFromAuthHeader()
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = defaultJWTErrorHandler
	}

	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			tok, err := authenticate(cfg, r)
			if err != nil {
				rw := &statusWriter{ResponseWriter: w}
				cfg.ErrorHandler(rw, r, err)
				cfg.Logger.WarnContext(r.Context(), "token rejected",
					logger.Component("middleware.jwt"),
					logger.Event("token_rejected"),
					logger.Method(r.Method),
					logger.Path(r.URL.Path),
					logger.StatusCode(rw.status()),
					logger.Duration(time.Since(start)),
					logger.Reason(err),
					logger.Error(err),
				)
				return
			}

			if cfg.StoreInContext {
				r = r.WithContext(context.WithValue(r.Context(), jwtTokenContextKey{}, tok))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// statusWriter records the status written by the error handler.
type statusWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusWriter) WriteHeader(statusCode int) {
	if w.statusCode == 0 {
		w.statusCode = statusCode
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		w.statusCode = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) status() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}

func authenticate(cfg JWTConfig, r *http.Request) (*jwt.Token, error) {
	raw := cfg.TokenExtractor(r)
	if raw == "" {
		return nil, ErrMissingToken
	}

	tok, err := cfg.Service.Decode(raw, true)
	if err != nil {
		return nil, err
	}

	if cfg.Issuer != "" && tok.Payload.Issuer() != cfg.Issuer {
		return nil, fmt.Errorf("%w: iss %q", ErrClaimMismatch, tok.Payload.Issuer())
	}
	if cfg.Audience != "" && !slices.Contains(tok.Payload.Audience(), cfg.Audience) {
		return nil, fmt.Errorf("%w: aud does not contain %q", ErrClaimMismatch, cfg.Audience)
	}

	return tok, nil
}

func defaultJWTErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	httpErr := ErrUnauthorized.WithMessage(err.Error())
	switch reason, ok := jwt.ReasonOf(err); {
	case ok:
		httpErr = httpErr.WithDetail("reason", reason.String())
	case errors.Is(err, ErrClaimMismatch):
		httpErr = httpErr.WithDetail("reason", "claim_mismatch")
	case errors.Is(err, ErrMissingToken):
		httpErr = httpErr.WithDetail("reason", "missing_token")
	}
	WriteError(w, httpErr)
}

// GetToken retrieves the decoded token stored by the middleware.
func GetToken(ctx context.Context) (*jwt.Token, bool) {
	tok, ok := ctx.Value(jwtTokenContextKey{}).(*jwt.Token)
	if !ok || tok == nil {
		return nil, false
	}
	return tok, true
}

// GetClaims retrieves the payload claims of the token stored by the middleware.
func GetClaims(ctx context.Context) (jwt.Claims, bool) {
	tok, ok := GetToken(ctx)
	if !ok {
		return nil, false
	}
	return tok.Payload, true
}

// Token Extractors
//
// The following functions provide various strategies for extracting tokens
// from HTTP requests. They can be used individually or combined using JWTFromMultiple.

// JWTFromAuthHeader returns an extractor that reads the Authorization header.
// The value is returned as is, so the codec strips a leading "Bearer " itself
// and a bare token without scheme is accepted too.
func JWTFromAuthHeader() TokenExtractor {
	return func(r *http.Request) string {
		return r.Header.Get("Authorization")
	}
}

// JWTFromAuthHeaderWithScheme returns an extractor that looks for the token in the Authorization header
// with a custom scheme (e.g., "JWT", "Token"). Values with another scheme are ignored.
func JWTFromAuthHeaderWithScheme(scheme string) TokenExtractor {
	prefix := scheme + " "
	return func(r *http.Request) string {
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, prefix) {
			return ""
		}
		return auth[len(prefix):]
	}
}

// JWTFromHeader returns an extractor that looks for the token in a custom header.
func JWTFromHeader(headerName string) TokenExtractor {
	return func(r *http.Request) string {
		return r.Header.Get(headerName)
	}
}

// JWTFromQuery returns an extractor that looks for the token in a URL query parameter.
func JWTFromQuery(paramName string) TokenExtractor {
	return func(r *http.Request) string {
		return r.URL.Query().Get(paramName)
	}
}

// JWTFromCookie returns an extractor that looks for the token in an HTTP cookie.
func JWTFromCookie(cookieName string) TokenExtractor {
	return func(r *http.Request) string {
		cookie, err := r.Cookie(cookieName)
		if err != nil {
			return ""
		}
		return cookie.Value
	}
}

// JWTFromMultiple returns an extractor that tries multiple extractors in order
// and returns the first non-empty token found.
func JWTFromMultiple(extractors ...TokenExtractor) TokenExtractor {
	return func(r *http.Request) string {
		for _, extractor := range extractors {
			if token := extractor(r); token != "" {
				return token
			}
		}
		return ""
	}
}
