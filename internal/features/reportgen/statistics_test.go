package reportgen

import (
	"fmt"
	"reflect"
	"testing"

	"bbt-connect/internal/features/report"
)

func makeReport(month string, year int, books ...report.BookEntry) report.MonthlyReport {
	r := report.MonthlyReport{Month: month, Year: year, Books: books}
	r.ComputeTotals()
	return r
}

func TestComputeStatisticsEmptyInput(t *testing.T) {
	stats := ComputeStatistics(nil)

	if stats.TotalReports != 0 || stats.TotalBooksDistributed != 0 || stats.TotalPointsEarned != 0 {
		t.Errorf("expected zero totals, got %+v", stats)
	}
	if stats.AverageBooksPerReport != 0 || stats.AveragePointsPerReport != 0 {
		t.Errorf("expected zero averages, got %+v", stats)
	}
	if stats.BBTVsOtherBooks.BBTPercentage != 0 {
		t.Errorf("expected zero BBT percentage, got %v", stats.BBTVsOtherBooks.BBTPercentage)
	}
	// Lists must be empty, not nil, so JSON encodes them as []
	if stats.TopPublishers == nil || stats.MonthlyBreakdown == nil || stats.TopBooks == nil || stats.ReportsByYear == nil {
		t.Error("expected empty slices, got nil")
	}
	if len(stats.TopPublishers) != 0 || len(stats.TopBooks) != 0 {
		t.Errorf("expected empty rankings, got %+v", stats)
	}
}

func TestComputeStatisticsTotals(t *testing.T) {
	reports := []report.MonthlyReport{
		makeReport("January", 2025,
			report.BookEntry{Title: "Bhagavad-gita As It Is", Quantity: 10, Points: 2, Publisher: "BBT", IsBBTBook: true},
			report.BookEntry{Title: "Back to Godhead Magazine", Quantity: 5, Points: 1, Publisher: "Back to Godhead"},
		),
		makeReport("February", 2025,
			report.BookEntry{Title: "Bhagavad-gita As It Is", Quantity: 4, Points: 2, Publisher: "BBT", IsBBTBook: true},
		),
	}

	stats := ComputeStatistics(reports)

	if stats.TotalReports != 2 {
		t.Errorf("TotalReports = %d, want 2", stats.TotalReports)
	}
	if stats.TotalBooksDistributed != 19 {
		t.Errorf("TotalBooksDistributed = %d, want 19", stats.TotalBooksDistributed)
	}
	if stats.TotalPointsEarned != 33 {
		t.Errorf("TotalPointsEarned = %d, want 33", stats.TotalPointsEarned)
	}
	if stats.AverageBooksPerReport != 9.5 {
		t.Errorf("AverageBooksPerReport = %v, want 9.5", stats.AverageBooksPerReport)
	}
	if stats.AveragePointsPerReport != 16.5 {
		t.Errorf("AveragePointsPerReport = %v, want 16.5", stats.AveragePointsPerReport)
	}

	want := BBTBreakdown{BBT: 14, Other: 5, BBTPercentage: float64(14) / 19 * 100}
	if !reflect.DeepEqual(stats.BBTVsOtherBooks, want) {
		t.Errorf("BBTVsOtherBooks = %+v, want %+v", stats.BBTVsOtherBooks, want)
	}
}

func TestComputeStatisticsIgnoresStoredTotals(t *testing.T) {
	// Stored totals are a cached hint; aggregation recomputes from lines
	r := makeReport("March", 2025,
		report.BookEntry{Title: "Chant and Be Happy", Quantity: 3, Points: 1},
	)
	r.TotalBooks = 999
	r.TotalPoints = 999

	stats := ComputeStatistics([]report.MonthlyReport{r})

	if stats.TotalBooksDistributed != 3 {
		t.Errorf("TotalBooksDistributed = %d, want 3", stats.TotalBooksDistributed)
	}
	if stats.TotalPointsEarned != 3 {
		t.Errorf("TotalPointsEarned = %d, want 3", stats.TotalPointsEarned)
	}
}

func TestComputeStatisticsPublisherRanking(t *testing.T) {
	reports := []report.MonthlyReport{
		makeReport("January", 2025,
			report.BookEntry{Title: "A", Quantity: 2, Points: 1, Publisher: "Alpha"},
			report.BookEntry{Title: "B", Quantity: 5, Points: 1, Publisher: "Beta"},
			report.BookEntry{Title: "C", Quantity: 3, Points: 1, Publisher: ""},
			report.BookEntry{Title: "D", Quantity: 5, Points: 1, Publisher: "Gamma"},
		),
	}

	stats := ComputeStatistics(reports)

	// Empty publisher is skipped from the ranking but still counts toward
	// the percentage denominator
	if len(stats.TopPublishers) != 3 {
		t.Fatalf("len(TopPublishers) = %d, want 3", len(stats.TopPublishers))
	}

	// Beta and Gamma tie on 5; Beta was encountered first
	if stats.TopPublishers[0].Publisher != "Beta" || stats.TopPublishers[1].Publisher != "Gamma" {
		t.Errorf("tie order wrong: got %s, %s", stats.TopPublishers[0].Publisher, stats.TopPublishers[1].Publisher)
	}
	if stats.TopPublishers[2].Publisher != "Alpha" {
		t.Errorf("last = %s, want Alpha", stats.TopPublishers[2].Publisher)
	}

	wantPct := float64(5) / 15 * 100
	if stats.TopPublishers[0].Percentage != wantPct {
		t.Errorf("Percentage = %v, want %v", stats.TopPublishers[0].Percentage, wantPct)
	}
}

func TestComputeStatisticsPublisherCap(t *testing.T) {
	var entries []report.BookEntry
	for i := 0; i < 14; i++ {
		entries = append(entries, report.BookEntry{
			Title:     fmt.Sprintf("Book %d", i),
			Quantity:  i + 1,
			Points:    1,
			Publisher: fmt.Sprintf("Publisher %d", i),
		})
	}

	stats := ComputeStatistics([]report.MonthlyReport{makeReport("April", 2025, entries...)})

	if len(stats.TopPublishers) != topPublishersLimit {
		t.Errorf("len(TopPublishers) = %d, want %d", len(stats.TopPublishers), topPublishersLimit)
	}
	if stats.TopPublishers[0].Publisher != "Publisher 13" {
		t.Errorf("top = %s, want Publisher 13", stats.TopPublishers[0].Publisher)
	}
}

func TestComputeStatisticsTitleGroupingCaseSensitive(t *testing.T) {
	reports := []report.MonthlyReport{
		makeReport("May", 2025,
			report.BookEntry{Title: "Bhagavad-gita", Quantity: 2, Points: 2},
			report.BookEntry{Title: "bhagavad-gita", Quantity: 3, Points: 2},
		),
	}

	stats := ComputeStatistics(reports)

	if len(stats.TopBooks) != 2 {
		t.Fatalf("len(TopBooks) = %d, want 2 distinct titles", len(stats.TopBooks))
	}
	if stats.TopBooks[0].Title != "bhagavad-gita" || stats.TopBooks[0].TotalQuantity != 3 {
		t.Errorf("top book = %+v", stats.TopBooks[0])
	}
}

func TestComputeStatisticsTopBooksCap(t *testing.T) {
	var entries []report.BookEntry
	for i := 0; i < 25; i++ {
		entries = append(entries, report.BookEntry{
			Title:    fmt.Sprintf("Title %d", i),
			Quantity: 25 - i,
			Points:   1,
		})
	}

	stats := ComputeStatistics([]report.MonthlyReport{makeReport("June", 2025, entries...)})

	if len(stats.TopBooks) != topBooksLimit {
		t.Errorf("len(TopBooks) = %d, want %d", len(stats.TopBooks), topBooksLimit)
	}
	if stats.TopBooks[0].Title != "Title 0" {
		t.Errorf("top = %s, want Title 0", stats.TopBooks[0].Title)
	}
}

func TestComputeStatisticsDuplicateMonthsSummed(t *testing.T) {
	reports := []report.MonthlyReport{
		makeReport("July", 2025, report.BookEntry{Title: "A", Quantity: 2, Points: 1}),
		makeReport("July", 2025, report.BookEntry{Title: "B", Quantity: 3, Points: 2}),
	}

	stats := ComputeStatistics(reports)

	if len(stats.MonthlyBreakdown) != 1 {
		t.Fatalf("len(MonthlyBreakdown) = %d, want 1 merged group", len(stats.MonthlyBreakdown))
	}
	got := stats.MonthlyBreakdown[0]
	if got.Books != 5 || got.Points != 8 {
		t.Errorf("merged group = %+v, want Books 5 Points 8", got)
	}

	if len(stats.ReportsByYear) != 1 || stats.ReportsByYear[0].Reports != 2 {
		t.Errorf("ReportsByYear = %+v, want one year with 2 reports", stats.ReportsByYear)
	}
}

func TestComputeStatisticsMonthlyOrder(t *testing.T) {
	reports := []report.MonthlyReport{
		makeReport("January", 2024, report.BookEntry{Title: "A", Quantity: 1, Points: 1}),
		makeReport("December", 2024, report.BookEntry{Title: "A", Quantity: 1, Points: 1}),
		makeReport("February", 2025, report.BookEntry{Title: "A", Quantity: 1, Points: 1}),
	}

	stats := ComputeStatistics(reports)

	// Newest first: year descending, then calendar month descending
	wantOrder := []string{"February 2025", "December 2024", "January 2024"}
	for i, want := range wantOrder {
		got := fmt.Sprintf("%s %d", stats.MonthlyBreakdown[i].Month, stats.MonthlyBreakdown[i].Year)
		if got != want {
			t.Errorf("MonthlyBreakdown[%d] = %s, want %s", i, got, want)
		}
	}

	if stats.ReportsByYear[0].Year != 2025 || stats.ReportsByYear[1].Year != 2024 {
		t.Errorf("ReportsByYear order wrong: %+v", stats.ReportsByYear)
	}
}

func TestComputeStatisticsIdempotent(t *testing.T) {
	reports := []report.MonthlyReport{
		makeReport("August", 2025,
			report.BookEntry{Title: "A", Quantity: 7, Points: 2, Publisher: "BBT", IsBBTBook: true},
			report.BookEntry{Title: "B", Quantity: 1, Points: 1, Publisher: "Other"},
		),
		makeReport("September", 2025,
			report.BookEntry{Title: "A", Quantity: 2, Points: 2, Publisher: "BBT", IsBBTBook: true},
		),
	}

	first := ComputeStatistics(reports)
	second := ComputeStatistics(reports)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs:\nfirst  %+v\nsecond %+v", first, second)
	}
}
