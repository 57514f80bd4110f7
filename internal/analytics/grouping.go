package analytics

import (
	"math"
	"sort"

	"github.com/sleepitron/sleepitron/internal/domain"
)

// segmentPalette colors chart segments by their index within a date.
var segmentPalette = []string{"#4299e1", "#48bb78", "#9f7aea", "#ed8936", "#f56565"}

// RecordResponse renders a record as its API shape with the computed
// duration fields filled in.
func RecordResponse(rec domain.SleepRecord) domain.SleepRecordResponse {
	resp := rec.ToResponse()
	resp.DurationMinutes = DurationMinutes(rec.SleepTime, rec.WakeTime, rec.Date)
	resp.DurationLabel = FormatDuration(resp.DurationMinutes)
	return resp
}

// GroupByDate partitions records into per-calendar-date buckets, ordered by
// date ascending. Grouping is by literal date-string equality, so records
// with inconsistent date formats never share a bucket. Within a bucket,
// records are ordered by sleep time ascending (lexicographic on HH:MM,
// which is numerically correct for zero-padded 24-hour times), and each
// record contributes one chart segment plus its share of the bucket total.
func GroupByDate(records []domain.SleepRecord) []domain.DateBucket {
	sorted := make([]domain.SleepRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	var buckets []domain.DateBucket
	index := make(map[string]int)
	grouped := make(map[string][]domain.SleepRecord)

	for _, rec := range sorted {
		if _, ok := index[rec.Date]; !ok {
			index[rec.Date] = len(buckets)
			buckets = append(buckets, domain.DateBucket{
				Date:  rec.Date,
				Label: FormatDate(rec.Date, "01/02"),
			})
		}
		grouped[rec.Date] = append(grouped[rec.Date], rec)
	}

	for i := range buckets {
		members := grouped[buckets[i].Date]
		sort.SliceStable(members, func(a, b int) bool {
			return members[a].SleepTime < members[b].SleepTime
		})

		total := 0.0
		buckets[i].Records = make([]domain.SleepRecordResponse, len(members))
		buckets[i].Segments = make([]domain.SleepSegment, len(members))
		for j, rec := range members {
			minutes := DurationMinutes(rec.SleepTime, rec.WakeTime, rec.Date)
			hours := roundToTenth(float64(minutes) / 60.0)

			buckets[i].Records[j] = RecordResponse(rec)

			buckets[i].Segments[j] = domain.SleepSegment{
				ID:              rec.ID,
				SleepTime:       rec.SleepTime,
				WakeTime:        rec.WakeTime,
				DurationHours:   hours,
				DurationMinutes: minutes,
				Label:           FormatDuration(minutes),
				Color:           segmentPalette[j%len(segmentPalette)],
			}
			total += hours
		}
		buckets[i].TotalHours = roundToTenth(total)
	}

	return buckets
}

// QualitySeries produces the per-record quality trend, ordered by date then
// sleep time ascending.
func QualitySeries(records []domain.SleepRecord) []domain.QualityPoint {
	sorted := make([]domain.SleepRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Date != sorted[j].Date {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].SleepTime < sorted[j].SleepTime
	})

	points := make([]domain.QualityPoint, len(sorted))
	for i, rec := range sorted {
		points[i] = domain.QualityPoint{
			Date:            rec.Date,
			Quality:         rec.Quality,
			DurationMinutes: DurationMinutes(rec.SleepTime, rec.WakeTime, rec.Date),
		}
	}
	return points
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
