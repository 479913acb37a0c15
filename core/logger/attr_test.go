package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/core/logger"
	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestSimpleAttrs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		attr slog.Attr
		key  string
		want any
	}{
		{logger.Duration(5 * time.Second), "duration", 5 * time.Second},
		{logger.Method("GET"), "method", "GET"},
		{logger.Path("/api"), "path", "/api"},
		{logger.StatusCode(401), "status_code", int64(401)},
		{logger.Component("middleware.jwt"), "component", "middleware.jwt"},
		{logger.Event("token_rejected"), "event", "token_rejected"},
		{logger.Action("verify"), "action", "verify"},
		{logger.Result("success"), "result", "success"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.key, tc.attr.Key)
		assert.Equal(t, tc.want, tc.attr.Value.Any(), tc.key)
	}
}

func TestTokenAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "token_id", logger.TokenID("abc").Key)
	assert.Equal(t, "subject", logger.Subject("user").Key)
	assert.Equal(t, "issuer", logger.Issuer("me").Key)
	assert.True(t, logger.TokenID("").Equal(slog.Attr{}))
	assert.True(t, logger.Subject("").Equal(slog.Attr{}))
	assert.True(t, logger.Issuer("").Equal(slog.Attr{}))
}

func TestReason(t *testing.T) {
	t.Parallel()

	attr := logger.Reason(&jwt.Error{Reason: jwt.ReasonInvalidExp})
	require.Equal(t, "reason", attr.Key)
	assert.Equal(t, "invalid_exp", attr.Value.String())

	assert.True(t, logger.Reason(errors.New("other")).Equal(slog.Attr{}))
	assert.True(t, logger.Reason(nil).Equal(slog.Attr{}))
}

func TestClaims(t *testing.T) {
	t.Parallel()

	attr := logger.Claims(jwt.Claims{"sub": "user", "jti": "id-1", "exp": 10})
	require.Equal(t, "claims", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "subject", g[0].Key)
	assert.Equal(t, "token_id", g[1].Key)

	assert.True(t, logger.Claims(jwt.Claims{}).Equal(slog.Attr{}))
}
