package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitRatePct(t *testing.T) {
	assert.Equal(t, 0.0, hitRatePct(0, 0))
	assert.Equal(t, 75.0, hitRatePct(3, 1))
	assert.Equal(t, 100.0, hitRatePct(10, 0))
	assert.Equal(t, 0.0, hitRatePct(0, 7))
	assert.Equal(t, 33.33, hitRatePct(1, 2))
}

func TestParseInfo(t *testing.T) {
	raw := "# Stats\r\nkeyspace_hits:42\r\nkeyspace_misses:8\r\n\r\nconnected_clients:3\r\n"

	info := parseInfo(raw)

	assert.Equal(t, "42", info["keyspace_hits"])
	assert.Equal(t, "8", info["keyspace_misses"])
	assert.Equal(t, "3", info["connected_clients"])
	assert.NotContains(t, info, "# Stats")
}

func TestParseCounter(t *testing.T) {
	assert.Equal(t, int64(42), parseCounter("42"))
	assert.Equal(t, int64(0), parseCounter(""))
	assert.Equal(t, int64(0), parseCounter("N/A"))
}
