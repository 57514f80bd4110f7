package analytics

import (
	"github.com/sleepitron/sleepitron/internal/domain"
)

// NoPersonalityData is the sentinel ModalPersonality returns when the
// collection holds no personality intervals at all.
const NoPersonalityData = "無數據"

// AverageQuality computes the arithmetic mean of quality ratings. An empty
// collection deliberately yields 0 rather than NaN so chart consumers can
// key a placeholder state off the record count alone.
func AverageQuality(records []domain.SleepRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range records {
		sum += rec.Quality
	}
	return float64(sum) / float64(len(records))
}

// AverageDuration computes the mean per-record sleep duration in minutes;
// 0 for an empty collection.
func AverageDuration(records []domain.SleepRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	total := 0
	for _, rec := range records {
		total += DurationMinutes(rec.SleepTime, rec.WakeTime, rec.Date)
	}
	return float64(total) / float64(len(records))
}

// ModalPersonality returns the label occurring most often across all
// personality intervals embedded in the records, or NoPersonalityData when
// none exist. Ties break to the label whose first occurrence came earliest
// in traversal order (records in input order, each record's intervals in
// slice order), which keeps the result deterministic.
func ModalPersonality(records []domain.SleepRecord) string {
	counts := make(map[domain.Personality]int)
	var seen []domain.Personality

	for _, rec := range records {
		for _, interval := range rec.Personalities {
			if counts[interval.Personality] == 0 {
				seen = append(seen, interval.Personality)
			}
			counts[interval.Personality]++
		}
	}

	if len(seen) == 0 {
		return NoPersonalityData
	}

	best := seen[0]
	for _, p := range seen[1:] {
		if counts[p] > counts[best] {
			best = p
		}
	}
	return string(best)
}

// PersonalityDistribution counts interval occurrences per label, in the
// canonical label order. Labels with zero occurrences are omitted.
func PersonalityDistribution(records []domain.SleepRecord) []domain.PersonalityCount {
	counts := make(map[domain.Personality]int)
	for _, rec := range records {
		for _, interval := range rec.Personalities {
			counts[interval.Personality]++
		}
	}

	var distribution []domain.PersonalityCount
	for _, p := range domain.AllPersonalities {
		if counts[p] > 0 {
			distribution = append(distribution, domain.PersonalityCount{Personality: p, Count: counts[p]})
		}
	}
	return distribution
}

// TotalDurationForDate sums the durations of every record carrying exactly
// the given date string. Multiple records on one date represent separate
// sleep segments (a nap plus the main session).
func TotalDurationForDate(records []domain.SleepRecord, date string) int {
	total := 0
	for _, rec := range records {
		if rec.Date == date {
			total += DurationMinutes(rec.SleepTime, rec.WakeTime, rec.Date)
		}
	}
	return total
}
