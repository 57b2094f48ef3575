package util

import (
	"fmt"
	"time"
)

// tokenPrefixLength is how much of a device token may appear in logs.
const tokenPrefixLength = 10

// MaskToken shortens a push token to a loggable prefix (e.g., "fGx1c2Vy-A…").
func MaskToken(token string) string {
	if len(token) <= tokenPrefixLength {
		return token
	}

	return token[:tokenPrefixLength] + "…"
}

// FormatDuration formats duration into human readable format (e.g., "250ms", "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

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
