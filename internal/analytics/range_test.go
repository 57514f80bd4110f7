package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sleepitron/sleepitron/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func recordOn(date string) domain.SleepRecord {
	return domain.SleepRecord{
		ID:        uuid.New(),
		Date:      date,
		SleepTime: "23:00",
		WakeTime:  "07:00",
		Quality:   7,
	}
}

func TestFilterByRange(t *testing.T) {
	records := []domain.SleepRecord{
		recordOn("2024-02-29"), // one day before the start
		recordOn("2024-03-01"), // on the start bound
		recordOn("2024-03-03"),
		recordOn("2024-03-05"), // on the end bound
		recordOn("2024-03-06"), // one day after the end
		recordOn("garbage"),    // unparseable, excluded
	}
	r := DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 5)}

	got := FilterByRange(records, r)
	if len(got) != 3 {
		t.Fatalf("FilterByRange() returned %d records, want 3", len(got))
	}

	// Bounds are inclusive and the original relative order is preserved.
	wantDates := []string{"2024-03-01", "2024-03-03", "2024-03-05"}
	for i, rec := range got {
		if rec.Date != wantDates[i] {
			t.Errorf("FilterByRange()[%d].Date = %q, want %q", i, rec.Date, wantDates[i])
		}
	}
}

func TestFilterByRange_TimeOfDayIgnored(t *testing.T) {
	records := []domain.SleepRecord{recordOn("2024-03-01")}

	// Range instants carry late clock times; comparison is start-of-day only.
	r := DateRange{
		Start: time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC),
	}
	if got := FilterByRange(records, r); len(got) != 1 {
		t.Errorf("FilterByRange() = %d records, want 1", len(got))
	}
}

func TestVisitsInRange(t *testing.T) {
	visits := []domain.DoctorVisit{
		{ID: uuid.New(), Date: "2024-01-15"},
		{ID: uuid.New(), Date: "2024-02-15"},
		{ID: uuid.New(), Date: "2024-03-15"},
	}
	r := DateRange{Start: day(2024, 2, 1), End: day(2024, 2, 28)}

	got := VisitsInRange(visits, r)
	if len(got) != 1 || got[0].Date != "2024-02-15" {
		t.Errorf("VisitsInRange() = %+v, want single visit on 2024-02-15", got)
	}
}

func TestLastNDaysRange(t *testing.T) {
	tests := []struct {
		n        int
		wantDays int
	}{
		{7, 7},
		{14, 14},
		{30, 30},
		{1, 1},
		{0, 1}, // clamped to a single-day window
	}

	for _, tt := range tests {
		r := LastNDaysRange(tt.n)

		days := int(r.End.Sub(r.Start).Hours()/24) + 1
		if days != tt.wantDays {
			t.Errorf("LastNDaysRange(%d) spans %d days, want %d", tt.n, days, tt.wantDays)
		}

		now := time.Now()
		y, m, d := now.Date()
		today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		if !r.End.Equal(today) {
			t.Errorf("LastNDaysRange(%d).End = %v, want today %v", tt.n, r.End, today)
		}
	}
}

func TestSinceLastVisitRange(t *testing.T) {
	t.Run("no visits", func(t *testing.T) {
		if _, ok := SinceLastVisitRange(nil); ok {
			t.Error("SinceLastVisitRange(nil) ok = true, want false")
		}
	})

	t.Run("picks most recent visit", func(t *testing.T) {
		visits := []domain.DoctorVisit{
			{ID: uuid.New(), Date: "2024-02-14"},
			{ID: uuid.New(), Date: "2024-03-14"},
			{ID: uuid.New(), Date: "2024-01-14"},
		}
		r, ok := SinceLastVisitRange(visits)
		if !ok {
			t.Fatal("SinceLastVisitRange() ok = false, want true")
		}
		if !r.Start.Equal(day(2024, 3, 14)) {
			t.Errorf("SinceLastVisitRange().Start = %v, want 2024-03-14", r.Start)
		}
	})

	t.Run("only unparseable dates", func(t *testing.T) {
		visits := []domain.DoctorVisit{{ID: uuid.New(), Date: "???"}}
		if _, ok := SinceLastVisitRange(visits); ok {
			t.Error("SinceLastVisitRange() ok = true for unparseable dates, want false")
		}
	})
}

func TestDateRangeWindow(t *testing.T) {
	r := DateRange{Start: day(2024, 3, 1), End: day(2024, 3, 5)}
	w := r.Window()
	if w.From != "2024-03-01" || w.To != "2024-03-05" {
		t.Errorf("Window() = %+v, want 2024-03-01..2024-03-05", w)
	}
}
