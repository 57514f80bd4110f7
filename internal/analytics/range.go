package analytics

import (
	"log"
	"time"

	"github.com/sleepitron/sleepitron/internal/domain"
)

// DateRange is an inclusive closed interval of calendar dates. Comparison
// happens on start-of-day instants, so the time-of-day components of Start
// and End are irrelevant.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Window renders the range as a pair of YYYY-MM-DD strings.
func (r DateRange) Window() domain.AnalyticsWindow {
	return domain.AnalyticsWindow{
		From: r.Start.Format(DateLayout),
		To:   r.End.Format(DateLayout),
	}
}

// startOfDay maps an instant to its calendar date, normalized to UTC
// midnight so it compares cleanly against time.Parse(DateLayout, …) output.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FilterByRange selects the records whose date falls inside the range,
// inclusive on both ends, preserving the input order. Records with an
// unparseable date are excluded.
func FilterByRange(records []domain.SleepRecord, r DateRange) []domain.SleepRecord {
	start := startOfDay(r.Start)
	end := startOfDay(r.End)

	var filtered []domain.SleepRecord
	for _, rec := range records {
		d, err := time.Parse(DateLayout, rec.Date)
		if err != nil {
			log.Printf("analytics: skipping record %s with unparseable date %q", rec.ID, rec.Date)
			continue
		}
		if !d.Before(start) && !d.After(end) {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// VisitsInRange selects the doctor visits whose date falls inside the
// range, inclusive on both ends, preserving the input order.
func VisitsInRange(visits []domain.DoctorVisit, r DateRange) []domain.DoctorVisit {
	start := startOfDay(r.Start)
	end := startOfDay(r.End)

	var filtered []domain.DoctorVisit
	for _, visit := range visits {
		d, err := time.Parse(DateLayout, visit.Date)
		if err != nil {
			log.Printf("analytics: skipping visit %s with unparseable date %q", visit.ID, visit.Date)
			continue
		}
		if !d.Before(start) && !d.After(end) {
			filtered = append(filtered, visit)
		}
	}
	return filtered
}

// LastNDaysRange returns the window of exactly n calendar days ending
// today: [today-(n-1), today]. Values below 1 are treated as 1.
func LastNDaysRange(n int) DateRange {
	if n < 1 {
		n = 1
	}
	today := startOfDay(time.Now())
	return DateRange{
		Start: today.AddDate(0, 0, -(n - 1)),
		End:   today,
	}
}

// SinceLastVisitRange returns the window from the most recent doctor visit
// through today. The second return value is false when no visit with a
// parseable date exists, in which case the range is undefined.
func SinceLastVisitRange(visits []domain.DoctorVisit) (DateRange, bool) {
	var last time.Time
	found := false
	for _, visit := range visits {
		d, err := time.Parse(DateLayout, visit.Date)
		if err != nil {
			log.Printf("analytics: skipping visit %s with unparseable date %q", visit.ID, visit.Date)
			continue
		}
		if !found || d.After(last) {
			last = d
			found = true
		}
	}
	if !found {
		return DateRange{}, false
	}
	return DateRange{Start: last, End: startOfDay(time.Now())}, true
}
