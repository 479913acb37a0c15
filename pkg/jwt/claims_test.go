package jwt_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

func TestValidateClaimsAt(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour).Unix()
	future := now.Add(time.Hour).Unix()

	cases := []struct {
		name   string
		claims jwt.Claims
		want   error
	}{
		{"empty", jwt.Claims{}, nil},
		{"float64 valid", jwt.Claims{"exp": float64(future), "nbf": float64(past), "iat": float64(past)}, nil},
		{"json.Number valid", jwt.Claims{"exp": json.Number("9999999999")}, nil},
		{"int64 expired", jwt.Claims{"exp": past}, jwt.ErrInvalidExp},
		{"json.Number expired", jwt.Claims{"exp": json.Number("1")}, jwt.ErrInvalidExp},
		{"exponent form expired", jwt.Claims{"exp": json.Number("1e3")}, jwt.ErrInvalidExp},
		{"int nbf future", jwt.Claims{"nbf": int(future)}, jwt.ErrInvalidNbf},
		{"uint64 iat future", jwt.Claims{"iat": uint64(future)}, jwt.ErrInvalidIat},
		{"wrong types skipped", jwt.Claims{"exp": "x", "nbf": true, "iat": []string{"y"}}, nil},
		{"invalid json.Number skipped", jwt.Claims{"exp": json.Number("abc")}, nil},
		{"huge uint exp in future", jwt.Claims{"exp": uint64(1 << 63)}, nil},
		{"huge uint nbf", jwt.Claims{"nbf": uint64(1 << 63)}, jwt.ErrInvalidNbf},
		{"out of range nbf", jwt.Claims{"nbf": json.Number("99999999999999999999")}, jwt.ErrInvalidNbf},
		{"out of range iat float", jwt.Claims{"iat": float64(1e30)}, jwt.ErrInvalidIat},
		{"out of range iat exponent", jwt.Claims{"iat": json.Number("1e30")}, jwt.ErrInvalidIat},
		{"overflowing iat literal", jwt.Claims{"iat": json.Number("1e400")}, jwt.ErrInvalidIat},
		{"out of range exp", jwt.Claims{"exp": json.Number("-99999999999999999999")}, jwt.ErrInvalidExp},
		{"negative overflow exp", jwt.Claims{"exp": json.Number("-1e400")}, jwt.ErrInvalidExp},
		{"fractional exp skipped", jwt.Claims{"exp": json.Number("1.5")}, nil},
		{"underflowing exp skipped", jwt.Claims{"exp": json.Number("1e-400")}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := jwt.ValidateClaimsAt(tc.claims, now)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestClaimsAccessors(t *testing.T) {
	t.Parallel()

	c := jwt.Claims{
		"sub": "user",
		"iss": "issuer",
		"jti": "id",
		"aud": []any{"a", 1, "b"},
		"exp": json.Number("1700000000"),
		"nbf": float64(1600000000),
		"iat": "nope",
	}

	assert.Equal(t, "user", c.Subject())
	assert.Equal(t, "issuer", c.Issuer())
	assert.Equal(t, "id", c.ID())
	assert.Equal(t, []string{"a", "b"}, c.Audience())

	exp, ok := c.ExpiresAt()
	assert.True(t, ok)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), exp)

	nbf, ok := c.NotBefore()
	assert.True(t, ok)
	assert.Equal(t, int64(1600000000), nbf.Unix())

	_, ok = c.IssuedAt()
	assert.False(t, ok)

	assert.Equal(t, []string{"api"}, jwt.Claims{"aud": "api"}.Audience())
	assert.Nil(t, jwt.Claims{}.Audience())
	assert.Empty(t, jwt.Claims{"sub": 5}.Subject())
}
