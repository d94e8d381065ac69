package services

import (
	"testing"

	"github.com/securefit/ecard/models"
)

func datedRecord(id, issueDate string) models.FitTestRecord {
	return models.FitTestRecord{ID: id, IssueDate: issueDate, ClientName: "Client " + id}
}

func TestGroupByMonth(t *testing.T) {
	records := []models.FitTestRecord{
		datedRecord("a", "03/01/2024"),
		datedRecord("b", "01/15/2024"),
		datedRecord("c", "03/10/2024"),
		datedRecord("d", ""),
	}

	buckets := GroupByMonth(records)

	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}

	if buckets[0].Label != "March 2024" {
		t.Errorf("expected first bucket March 2024, got %q", buckets[0].Label)
	}
	if buckets[1].Label != "January 2024" {
		t.Errorf("expected second bucket January 2024, got %q", buckets[1].Label)
	}

	// Within March, newest first
	if buckets[0].Count != 2 {
		t.Fatalf("expected 2 records in March, got %d", buckets[0].Count)
	}
	if buckets[0].Records[0].ID != "c" || buckets[0].Records[1].ID != "a" {
		t.Errorf("expected March order [c a], got [%s %s]",
			buckets[0].Records[0].ID, buckets[0].Records[1].ID)
	}

	// The dateless record lands in no bucket
	for _, bucket := range buckets {
		for _, record := range bucket.Records {
			if record.ID == "d" {
				t.Error("dateless record should not appear in any bucket")
			}
		}
	}
}

func TestGroupByMonth_UnparsableDatesSkipped(t *testing.T) {
	records := []models.FitTestRecord{
		datedRecord("a", "13/45/2024"),
		datedRecord("b", "02/20/2024"),
		datedRecord("c", "not a date"),
	}

	buckets := GroupByMonth(records)

	if len(buckets) != 1 {
		t.Fatalf("expected 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Count != 1 || buckets[0].Records[0].ID != "b" {
		t.Errorf("expected only record b bucketed, got %+v", buckets[0])
	}
}

func TestGroupByMonth_Empty(t *testing.T) {
	if buckets := GroupByMonth(nil); len(buckets) != 0 {
		t.Errorf("expected no buckets for empty input, got %d", len(buckets))
	}
}

func TestGroupByMonth_SameMonthAcrossYears(t *testing.T) {
	records := []models.FitTestRecord{
		datedRecord("a", "03/05/2023"),
		datedRecord("b", "03/05/2024"),
	}

	buckets := GroupByMonth(records)

	if len(buckets) != 2 {
		t.Fatalf("expected separate buckets per year, got %d", len(buckets))
	}
	if buckets[0].Label != "March 2024" || buckets[1].Label != "March 2023" {
		t.Errorf("expected [March 2024, March 2023], got [%s, %s]",
			buckets[0].Label, buckets[1].Label)
	}
}
