package ids

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsUnixMillis(t *testing.T) {
	id := New()
	n, err := strconv.ParseInt(id, 10, 64)
	require.NoError(t, err)
	assert.Greater(t, n, int64(0))
}

func TestNewSuffixedFormat(t *testing.T) {
	id := NewSuffixed()
	require.GreaterOrEqual(t, len(id), 9+13)

	suffix := id[len(id)-9:]
	for _, r := range suffix {
		assert.True(t, (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z'), "unexpected rune %q", r)
	}
	_, err := strconv.ParseInt(id[:len(id)-9], 10, 64)
	assert.NoError(t, err)
}

func TestNewSuffixedBurstIsUnique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := NewSuffixed()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
