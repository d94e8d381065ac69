package services

import (
	"sort"
	"time"

	"github.com/securefit/ecard/models"
)

// MonthBucket is one results-view group: all records whose issue date falls
// in the same calendar month
type MonthBucket struct {
	Label   string // e.g. "March 2024"
	Year    int
	Month   time.Month
	Count   int
	Records []models.FitTestRecord
}

// GroupByMonth sorts records by issue date descending and buckets them by
// (year, month). Records whose issue date is missing or unparsable sort after
// every dated record, keeping their source order, and contribute to no
// bucket. Buckets come out ordered descending by (year, month).
func GroupByMonth(records []models.FitTestRecord) []MonthBucket {
	type keyed struct {
		record models.FitTestRecord
		date   time.Time
		dated  bool
	}

	sorted := make([]keyed, 0, len(records))
	for _, record := range records {
		date, err := models.ParseIssueDate(record.IssueDate)
		sorted = append(sorted, keyed{record: record, date: date, dated: err == nil})
	}

	// Dated records first, newest first; ties and dateless records keep
	// their source order
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.dated != b.dated {
			return a.dated
		}
		if !a.dated {
			return false
		}
		return a.date.After(b.date)
	})

	var buckets []MonthBucket
	for _, entry := range sorted {
		if !entry.dated {
			continue
		}
		year, month := entry.date.Year(), entry.date.Month()

		if n := len(buckets); n == 0 || buckets[n-1].Year != year || buckets[n-1].Month != month {
			buckets = append(buckets, MonthBucket{
				Label: entry.date.Format("January 2006"),
				Year:  year,
				Month: month,
			})
		}

		last := &buckets[len(buckets)-1]
		last.Records = append(last.Records, entry.record)
		last.Count++
	}

	return buckets
}
