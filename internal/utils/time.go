package utils

import (
	"strings"
	"time"

	"travelplanner/internal/domain"
)

const layoutDate = "2006-01-02"

// NowUTC returns the current instant as stored in created_at/updated_at.
func NowUTC() domain.Timestamp {
	return domain.NewTimestamp(time.Now())
}

// FormatDateLong renders a YYYY-MM-DD value as "Mon, 02 Jan 2006"; other input is returned trimmed.
func FormatDateLong(s string) string {
	s = strings.TrimSpace(s)
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return s
	}
	return t.Format("Mon, 02 Jan 2006")
}

// DateRange joins two optional dates for display.
func DateRange(from, to *string) string {
	f, t := "", ""
	if from != nil {
		f = FormatDateLong(*from)
	}
	if to != nil {
		t = FormatDateLong(*to)
	}
	switch {
	case f != "" && t != "":
		return f + " - " + t
	case f != "":
		return "from " + f
	case t != "":
		return "until " + t
	default:
		return ""
	}
}
