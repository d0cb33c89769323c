package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// formatTime renders a relative timestamp for listing displays.
func formatTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if
// needed. maxLen below 2 yields a bare ellipsis.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen < 2 {
		return "…"
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// formatPrice renders a nightly rate, e.g. "₹800/night".
func formatPrice(p int) string {
	return fmt.Sprintf("₹%d/night", p)
}

// ratingStars renders a rating as filled and hollow stars plus the numeric
// value, e.g. "★★★★☆ 4.2". A zero rating reads "no reviews yet".
func ratingStars(rating float64, reviews int) string {
	if reviews == 0 {
		return "no reviews yet"
	}
	filled := int(rating + 0.5)
	if filled > 5 {
		filled = 5
	}
	stars := strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
	return fmt.Sprintf("%s %.1f (%d)", stars, rating, reviews)
}
