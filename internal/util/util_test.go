package util

import (
	"testing"
	"time"
)

func TestMaskToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "empty token", token: "", expected: ""},
		{name: "short token kept", token: "abc", expected: "abc"},
		{name: "exact prefix length kept", token: "0123456789", expected: "0123456789"},
		{name: "long token truncated", token: "0123456789abcdef", expected: "0123456789…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := MaskToken(tt.token); got != tt.expected {
				t.Fatalf("MaskToken(%q) = %s, want %s", tt.token, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub second", duration: 250 * time.Millisecond, expected: "250ms"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
