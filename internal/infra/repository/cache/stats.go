package cache

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

type Stats struct {
	Enabled          bool    `json:"enabled"`
	Message          string  `json:"message,omitempty"`
	TotalKeys        int     `json:"total_keys"`
	Hits             int64   `json:"hits"`
	Misses           int64   `json:"misses"`
	HitRatePct       float64 `json:"hit_rate_pct"`
	MemoryUsed       string  `json:"memory_used"`
	ConnectedClients int64   `json:"connected_clients"`
}

// Stats reads hit/miss counters and memory usage from the store. The key
// count is scoped to this application's namespace so a shared Redis does not
// inflate it.
func (c *Cache) Stats(ctx context.Context) Stats {
	if !c.Enabled(ctx) {
		return Stats{
			Enabled: false,
			Message: "cache store not available",
		}
	}

	info := make(map[string]string)
	for _, section := range []string{"stats", "memory", "clients"} {
		raw, err := c.redisClient.Info(ctx, section).Result()
		if err != nil {
			logrus.WithError(err).WithField("section", section).Warn("Cache INFO failed")
			continue
		}
		for k, v := range parseInfo(raw) {
			info[k] = v
		}
	}

	appKeys, err := c.redisClient.Keys(ctx, c.namespace+":*").Result()
	if err != nil {
		logrus.WithError(err).Warn("Cache key count failed")
	}

	hits := parseCounter(info["keyspace_hits"])
	misses := parseCounter(info["keyspace_misses"])

	memory := info["used_memory_human"]
	if memory == "" {
		memory = "N/A"
	}

	return Stats{
		Enabled:          true,
		TotalKeys:        len(appKeys),
		Hits:             hits,
		Misses:           misses,
		HitRatePct:       hitRatePct(hits, misses),
		MemoryUsed:       memory,
		ConnectedClients: parseCounter(info["connected_clients"]),
	}
}

// hitRatePct is hits/(hits+misses) as a percentage rounded to two decimals,
// defined as 0.0 when there has been no traffic at all.
func hitRatePct(hits, misses int64) float64 {
	total := hits + misses
	if total == 0 {
		return 0.0
	}
	rate := float64(hits) / float64(total) * 100
	return math.Round(rate*100) / 100
}

// parseInfo turns the "key:value" lines of a redis INFO reply into a map.
func parseInfo(raw string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

func parseCounter(raw string) int64 {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
