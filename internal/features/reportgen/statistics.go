package reportgen

import (
	"sort"
	"strconv"

	"bbt-connect/internal/features/report"
)

const (
	topPublishersLimit = 10
	topBooksLimit      = 20
)

type bookTotals struct {
	quantity int
	points   int
}

// ComputeStatistics aggregates a set of monthly reports into a single
// statistics summary. It is a pure function: no validation, no side effects,
// and safe for empty input (all scalars zero, all lists empty, no division
// by zero).
//
// Top-level totals are always recomputed from the book lines rather than
// read from the stored report totals; the stored fields are a cached hint
// written at submission time and could desync if the lines were ever edited.
// Title grouping is case-sensitive by exact string match. Ties in the
// rankings keep first-encountered order.
func ComputeStatistics(reports []report.MonthlyReport) ReportStatistics {
	stats := ReportStatistics{
		TopPublishers:    []PublisherStat{},
		MonthlyBreakdown: []MonthlyStat{},
		TopBooks:         []BookStat{},
		ReportsByYear:    []YearStat{},
	}

	stats.TotalReports = len(reports)

	publisherCounts := make(map[string]int)
	var publisherOrder []string

	titleTotals := make(map[string]*bookTotals)
	var titleOrder []string

	monthly := make(map[string]*MonthlyStat)
	var monthlyOrder []string

	yearly := make(map[int]*YearStat)
	var yearOrder []int

	totalUnits := 0

	for _, r := range reports {
		reportBooks, reportPoints := 0, 0

		for _, b := range r.Books {
			reportBooks += b.Quantity
			reportPoints += b.LineTotal()
			totalUnits += b.Quantity

			if b.IsBBTBook {
				stats.BBTVsOtherBooks.BBT += b.Quantity
			} else {
				stats.BBTVsOtherBooks.Other += b.Quantity
			}

			if b.Publisher != "" {
				if _, seen := publisherCounts[b.Publisher]; !seen {
					publisherOrder = append(publisherOrder, b.Publisher)
				}
				publisherCounts[b.Publisher] += b.Quantity
			}

			if _, seen := titleTotals[b.Title]; !seen {
				titleOrder = append(titleOrder, b.Title)
				titleTotals[b.Title] = &bookTotals{}
			}
			titleTotals[b.Title].quantity += b.Quantity
			titleTotals[b.Title].points += b.LineTotal()
		}

		stats.TotalBooksDistributed += reportBooks
		stats.TotalPointsEarned += reportPoints

		monthKey := r.Month + " " + strconv.Itoa(r.Year)
		if _, seen := monthly[monthKey]; !seen {
			monthlyOrder = append(monthlyOrder, monthKey)
			monthly[monthKey] = &MonthlyStat{Month: r.Month, Year: r.Year}
		}
		monthly[monthKey].Books += reportBooks
		monthly[monthKey].Points += reportPoints

		if _, seen := yearly[r.Year]; !seen {
			yearOrder = append(yearOrder, r.Year)
			yearly[r.Year] = &YearStat{Year: r.Year}
		}
		yearly[r.Year].Reports++
		yearly[r.Year].Books += reportBooks
		yearly[r.Year].Points += reportPoints
	}

	if stats.TotalReports > 0 {
		stats.AverageBooksPerReport = float64(stats.TotalBooksDistributed) / float64(stats.TotalReports)
		stats.AveragePointsPerReport = float64(stats.TotalPointsEarned) / float64(stats.TotalReports)
	}

	if bbtTotal := stats.BBTVsOtherBooks.BBT + stats.BBTVsOtherBooks.Other; bbtTotal > 0 {
		stats.BBTVsOtherBooks.BBTPercentage = float64(stats.BBTVsOtherBooks.BBT) / float64(bbtTotal) * 100
	}

	for _, publisher := range publisherOrder {
		stat := PublisherStat{Publisher: publisher, Count: publisherCounts[publisher]}
		if totalUnits > 0 {
			stat.Percentage = float64(stat.Count) / float64(totalUnits) * 100
		}
		stats.TopPublishers = append(stats.TopPublishers, stat)
	}
	sort.SliceStable(stats.TopPublishers, func(i, j int) bool {
		return stats.TopPublishers[i].Count > stats.TopPublishers[j].Count
	})
	if len(stats.TopPublishers) > topPublishersLimit {
		stats.TopPublishers = stats.TopPublishers[:topPublishersLimit]
	}

	for _, title := range titleOrder {
		t := titleTotals[title]
		stats.TopBooks = append(stats.TopBooks, BookStat{
			Title:         title,
			TotalQuantity: t.quantity,
			TotalPoints:   t.points,
		})
	}
	sort.SliceStable(stats.TopBooks, func(i, j int) bool {
		return stats.TopBooks[i].TotalQuantity > stats.TopBooks[j].TotalQuantity
	})
	if len(stats.TopBooks) > topBooksLimit {
		stats.TopBooks = stats.TopBooks[:topBooksLimit]
	}

	for _, key := range monthlyOrder {
		stats.MonthlyBreakdown = append(stats.MonthlyBreakdown, *monthly[key])
	}
	sort.SliceStable(stats.MonthlyBreakdown, func(i, j int) bool {
		a, b := stats.MonthlyBreakdown[i], stats.MonthlyBreakdown[j]
		if a.Year != b.Year {
			return a.Year > b.Year
		}
		return report.MonthIndex(a.Month) > report.MonthIndex(b.Month)
	})

	for _, year := range yearOrder {
		stats.ReportsByYear = append(stats.ReportsByYear, *yearly[year])
	}
	sort.SliceStable(stats.ReportsByYear, func(i, j int) bool {
		return stats.ReportsByYear[i].Year > stats.ReportsByYear[j].Year
	})

	return stats
}
