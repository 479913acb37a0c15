package jwt_test

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

var hexPattern = regexp.MustCompile(`^[0-9a-f]+$`)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy pool exhausted")
}

func TestCreateSecret(t *testing.T) {
	t.Parallel()

	a, err := jwt.CreateSecret(32)
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.Regexp(t, hexPattern, a)

	b, err := jwt.CreateSecret(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	c, err := jwt.CreateSecret(0)
	require.NoError(t, err)
	assert.Len(t, c, 2*jwt.DefaultSecretSize)
}

func TestCreateSecretFrom(t *testing.T) {
	t.Parallel()

	s, err := jwt.CreateSecretFrom(bytes.NewReader([]byte{0x00, 0xab, 0xff}), 3)
	require.NoError(t, err)
	assert.Equal(t, "00abff", s)

	_, err = jwt.CreateSecretFrom(failingReader{}, 16)
	require.ErrorIs(t, err, jwt.ErrRandomnessUnavailable)
	assert.Contains(t, err.Error(), "entropy pool exhausted")

	_, err = jwt.CreateSecretFrom(bytes.NewReader([]byte{1}), 4)
	require.ErrorIs(t, err, jwt.ErrRandomnessUnavailable)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestCreateSecretUsableAsKey(t *testing.T) {
	t.Parallel()

	secret, err := jwt.CreateSecret(16)
	require.NoError(t, err)

	s, err := jwt.NewFromString(secret)
	require.NoError(t, err)
	token, err := s.Sub("user").Encode()
	require.NoError(t, err)

	other, err := jwt.NewFromString(secret)
	require.NoError(t, err)
	assert.NoError(t, other.ValidateSignature(token))
}
