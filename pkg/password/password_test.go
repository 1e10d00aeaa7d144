package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyRoundTrip(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.Equal(t, Success, h.Verify(hash, "s3cret-password"))
	assert.Equal(t, Failed, h.Verify(hash, "wrong-password"))
}

func TestVerifySignalsRehashOnCostChange(t *testing.T) {
	old := NewBcryptHasher(4)
	hash, err := old.Hash("s3cret-password")
	require.NoError(t, err)

	// Same password, stronger configured cost: match but stale hash.
	current := NewBcryptHasher(5)
	assert.Equal(t, SuccessRehashNeeded, current.Verify(hash, "s3cret-password"))

	// Wrong password wins over staleness.
	assert.Equal(t, Failed, current.Verify(hash, "wrong-password"))
}

func TestVerifyGarbageHashFails(t *testing.T) {
	h := NewBcryptHasher(4)
	assert.Equal(t, Failed, h.Verify("not-a-bcrypt-hash", "anything"))
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	h := NewBcryptHasher(900)
	hash, err := h.Hash("pw")
	require.NoError(t, err)
	assert.Equal(t, Success, h.Verify(hash, "pw"))
}
