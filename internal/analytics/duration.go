// Package analytics is the pure computation core of the sleep dashboard:
// duration arithmetic, date-range filtering, aggregate statistics, and
// per-date grouping. Every function is a side-effect-free computation over
// already-fetched records; malformed input is absorbed into defined
// fallback values instead of errors, so a single bad record never blanks
// out a whole chart.
package analytics

import (
	"fmt"
	"log"
	"time"
)

const (
	// DateLayout is the calendar-date format records carry (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// ClockLayout is the naive local clock-time format (HH:MM, 24-hour).
	ClockLayout = "15:04"

	instantLayout = "2006-01-02 15:04"
)

// DurationMinutes computes the elapsed minutes between falling asleep and
// waking up, anchored to the given calendar date. A wake clock-time that
// numerically precedes the sleep clock-time is taken to mean the next day
// (overnight rollover); that is the only heuristic, so multi-day spans are
// not detected. Missing or unparseable input yields 0. All arithmetic is
// naive local-clock arithmetic with no timezone adjustment.
func DurationMinutes(sleepTime, wakeTime, date string) int {
	if sleepTime == "" || wakeTime == "" || date == "" {
		log.Printf("analytics: duration input missing (sleep=%q wake=%q date=%q)", sleepTime, wakeTime, date)
		return 0
	}

	sleepAt, err := time.Parse(instantLayout, date+" "+sleepTime)
	if err != nil {
		log.Printf("analytics: unparseable sleep instant %q %q: %v", date, sleepTime, err)
		return 0
	}
	wakeAt, err := time.Parse(instantLayout, date+" "+wakeTime)
	if err != nil {
		log.Printf("analytics: unparseable wake instant %q %q: %v", date, wakeTime, err)
		return 0
	}

	// Wake clock-time before sleep clock-time means the sleep wrapped past
	// midnight into the next calendar day.
	if wakeAt.Before(sleepAt) {
		wakeAt = wakeAt.AddDate(0, 0, 1)
	}

	minutes := int(wakeAt.Sub(sleepAt).Minutes())
	if minutes < 0 {
		// Unreachable given the rollover rule, kept as a clamp for malformed input.
		minutes = 0
	}
	return minutes
}

// FormatDuration renders minutes as a human-readable label such as
// 7小時30分鐘, omitting the minutes component when it is exactly zero.
func FormatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%d小時", hours)
	}
	return fmt.Sprintf("%d小時%d分鐘", hours, mins)
}

// DurationLabel is the formatted counterpart of DurationMinutes.
func DurationLabel(sleepTime, wakeTime, date string) string {
	return FormatDuration(DurationMinutes(sleepTime, wakeTime, date))
}

// FormatDate re-renders a YYYY-MM-DD date string in the given layout.
// Unparseable input is returned unchanged as the display fallback.
func FormatDate(date, layout string) string {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		log.Printf("analytics: unparseable date %q: %v", date, err)
		return date
	}
	return d.Format(layout)
}
