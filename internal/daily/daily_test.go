package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("x", -5*3600)
	assert.Equal(t, "2026-03-02", DateKey(time.Date(2026, 3, 1, 22, 0, 0, 0, loc)))
}

func TestSeed(t *testing.T) {
	morning := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 1, 23, 0, 0, 0, time.UTC)
	tomorrow := morning.Add(24 * time.Hour)

	s := Seed(morning, "salt", "crane/gyxxx")
	assert.Equal(t, s, Seed(evening, "salt", "crane/gyxxx"))
	assert.NotEqual(t, s, Seed(tomorrow, "salt", "crane/gyxxx"))
	assert.NotEqual(t, s, Seed(morning, "pepper", "crane/gyxxx"))
	assert.NotEqual(t, s, Seed(morning, "salt", "slate/xxxxx"))
	assert.GreaterOrEqual(t, s, int64(0))
}
