package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision. Values in this
// layout sort lexically in time order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the bare calendar date form accepted for range bounds.
const DateLayout = "2006-01-02"

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// NormalizeDateBound validates a date range bound and returns the form it must be
// compared in. A bare date stays a bare date so it matches the whole day when
// compared against the same-length prefix of a timestamp.
func NormalizeDateBound(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}

	if _, err := time.Parse(DateLayout, raw); err == nil {
		return raw, nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return "", errors.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", raw)
	}

	return FormatTimestamp(parsed), nil
}

// PrefixCompare compares the same-length prefix of key against bound.
func PrefixCompare(key, bound string) int {
	if len(key) > len(bound) {
		key = key[:len(bound)]
	}

	return strings.Compare(key, bound)
}

// Round2 rounds to two decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// HashKey returns the hex SHA-256 of s. Used to derive fixed-length storage keys
// from unbounded strings such as tokens and emails.
func HashKey(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
