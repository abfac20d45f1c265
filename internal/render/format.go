package render

import (
	"fmt"
	"strconv"
	"time"
)

// placeholder fills in for fields the user left empty
const placeholder = "___"

// FormatEuro renders a monetary value with two decimals and the euro glyph
func FormatEuro(v float64) string {
	return fmt.Sprintf("%.2f€", v)
}

// FormatDate renders a date in the French day/month/year style
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatPercent renders a percentage without trailing zeros (10 -> "10%", 2.5 -> "2.5%")
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + "%"
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
