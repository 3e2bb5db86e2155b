package auth

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_Hash(t *testing.T) {
	t.Parallel()

	hasher := NewSHA256Hasher()

	credential, err := hasher.Hash("Secure8Pass")
	require.NoError(t, err)

	// Salt is 16 random bytes, hex-encoded.
	saltBytes, err := hex.DecodeString(credential.Salt)
	require.NoError(t, err)
	assert.Len(t, saltBytes, saltLength)

	// Digest is a SHA-256 sum, hex-encoded.
	hashBytes, err := hex.DecodeString(credential.Hash)
	require.NoError(t, err)
	assert.Len(t, hashBytes, 32)
}

func TestSHA256Hasher_Hash_UniqueSalt(t *testing.T) {
	t.Parallel()

	hasher := NewSHA256Hasher()

	first, err := hasher.Hash("Secure8Pass")
	require.NoError(t, err)

	second, err := hasher.Hash("Secure8Pass")
	require.NoError(t, err)

	assert.NotEqual(t, first.Salt, second.Salt)
	assert.NotEqual(t, first.Hash, second.Hash)
}

func TestSHA256Hasher_Verify(t *testing.T) {
	t.Parallel()

	hasher := NewSHA256Hasher()

	credential, err := hasher.Hash("Secure8Pass")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("Secure8Pass", credential.Hash, credential.Salt))
	assert.False(t, hasher.Verify("Secure8Pasz", credential.Hash, credential.Salt))
	assert.False(t, hasher.Verify("secure8pass", credential.Hash, credential.Salt))
	assert.False(t, hasher.Verify("", credential.Hash, credential.Salt))
}

func TestSHA256Hasher_Verify_WrongSalt(t *testing.T) {
	t.Parallel()

	hasher := NewSHA256Hasher()

	credential, err := hasher.Hash("Secure8Pass")
	require.NoError(t, err)

	other, err := hasher.Hash("Secure8Pass")
	require.NoError(t, err)

	assert.False(t, hasher.Verify("Secure8Pass", credential.Hash, other.Salt))
}
