package secret

import (
	"strings"
	"testing"

	"github.com/GehirnInc/crypt/sha512_crypt"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	pw, err := Generate(24)
	require.NoError(t, err)
	require.Len(t, pw, 24)
	for _, r := range pw {
		require.True(t, strings.ContainsRune(alphabet, r), "unexpected character %q", r)
	}
}

func TestGenerateDefaultLength(t *testing.T) {
	pw, err := Generate(0)
	require.NoError(t, err)
	require.Len(t, pw, DefaultLength)
}

func TestGenerateNotConstant(t *testing.T) {
	a, err := Generate(16)
	require.NoError(t, err)
	b, err := Generate(16)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}

func TestHashRoundTrip(t *testing.T) {
	h, err := Hash("s3cret")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(h, "$6$"), "expected sha512-crypt, got %s", h)
	require.NoError(t, sha512_crypt.New().Verify(h, []byte("s3cret")))
	require.Error(t, sha512_crypt.New().Verify(h, []byte("wrong")))
}
