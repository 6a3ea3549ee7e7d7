package utils

import (
	"fmt"
	"time"
)

// FormatSeconds renders a tracked duration the way the solidtime UI does, e.g. 1h 05min.
func FormatSeconds(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	d := time.Duration(seconds) * time.Second
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h == 0 {
		return fmt.Sprintf("%dmin", m)
	}
	return fmt.Sprintf("%dh %02dmin", h, m)
}

// DerefString returns the pointed to string, or fallback for nil.
func DerefString(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

// FormatCents renders an amount in cents with two decimals.
func FormatCents(cents int, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}
