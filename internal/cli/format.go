// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"

	"github.com/theirongolddev/hallo/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatValue formats an approximate value with thousands separators.
// e.g., 20000 -> "20,000"
func FormatValue(v uint32) string {
	return printer.Sprintf("%d", v)
}

// FormatDate formats a day as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(model.DateLayout)
}

// FormatDays formats a signed day count, using weeks when it divides evenly.
// e.g., 28 -> "4w", 10 -> "10d", -2 -> "-2d"
func FormatDays(days int) string {
	if days != 0 && days%7 == 0 {
		return fmt.Sprintf("%dw", days/7)
	}
	return fmt.Sprintf("%dd", days)
}

// FormatDayOfWeek returns a 3-letter day abbreviation.
func FormatDayOfWeek(d time.Time) string {
	return d.Weekday().String()[:3]
}

// FormatActive renders an activity flag.
func FormatActive(active bool) string {
	if active {
		return "active"
	}
	return "idle"
}
