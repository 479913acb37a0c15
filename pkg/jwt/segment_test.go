package jwt_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/jwtkit/pkg/jwt"
)

func TestSplitToken(t *testing.T) {
	t.Parallel()

	p, err := jwt.SplitToken("Bearer aaa.bbb.ccc")
	require.NoError(t, err)
	assert.Equal(t, jwt.Parts{Header: "aaa", Payload: "bbb", Signature: "ccc"}, p)
	assert.Equal(t, "aaa.bbb", p.SigningInput())

	p, err = jwt.SplitToken("aaa..")
	require.NoError(t, err, "empty segments still count")
	assert.Equal(t, "aaa", p.Header)

	_, err = jwt.SplitToken("x Bearer aaa.bbb.ccc.ddd")
	require.ErrorIs(t, err, jwt.ErrInvalidStructure)

	var te *jwt.Error
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 4, te.Segments)
	assert.Contains(t, err.Error(), "got 4 segments, want 3")
}

func TestSplitTokenStripsOnlyLeadingPrefix(t *testing.T) {
	t.Parallel()

	p, err := jwt.SplitToken("Bearer Bearer a.b.c")
	require.NoError(t, err)
	assert.Equal(t, "Bearer a", p.Header)
}

func TestEncodeSegment(t *testing.T) {
	t.Parallel()

	seg, err := jwt.EncodeSegment(map[string]any{"a": "?>"})
	require.NoError(t, err)
	assert.NotContains(t, seg, "=")

	// {"x":"~~~"} contains '+' and padding in standard base64.
	seg, err = jwt.EncodeSegment(map[string]string{"x": "~~~"})
	require.NoError(t, err)
	assert.Equal(t, "eyJ4Ijoifn5-In0", seg)

	_, err = jwt.EncodeSegment(func() {})
	assert.Error(t, err)
}

func TestDecodeSegment(t *testing.T) {
	t.Parallel()

	t.Run("unpadded", func(t *testing.T) {
		t.Parallel()
		m, err := jwt.DecodeSegment("eyJ4Ijoifn5-In0")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"x": "~~~"}, m)
	})

	t.Run("padded", func(t *testing.T) {
		t.Parallel()
		m, err := jwt.DecodeSegment("eyJ4Ijoifn5-In0=")
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"x": "~~~"}, m)
	})

	t.Run("numbers keep precision", func(t *testing.T) {
		t.Parallel()
		seg, err := jwt.EncodeSegment(map[string]any{"n": int64(9007199254740993)})
		require.NoError(t, err)

		m, err := jwt.DecodeSegment(seg)
		require.NoError(t, err)
		assert.Equal(t, json.Number("9007199254740993"), m["n"])
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		for _, in := range []string{"***", "bnVsbA", "WzFd", "e30gZXh0cmE"} {
			_, err := jwt.DecodeSegment(in)
			assert.Error(t, err, in)
		}
	})
}
