package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a deterministic seed from HMAC(salt, date|key), so the same
// key gets the same seed for a whole UTC day.
func Seed(date time.Time, salt, key string) int64 {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	h.Write([]byte{'|'})
	h.Write([]byte(key))
	sum := h.Sum(nil)
	// first 8 bytes, sign bit cleared for rand.NewSource
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}
