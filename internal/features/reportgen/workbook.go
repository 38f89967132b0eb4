package reportgen

import (
	"bbt-connect/internal/features/report"

	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary     = "Summary"
	sheetPublishers  = "Top Publishers"
	sheetMonthly     = "Monthly Breakdown"
	sheetTopBooks    = "Top Books"
	sheetYears       = "Reports by Year"
	sheetAllReports  = "All Reports"
	sheetBookEntries = "All Book Entries"
)

// WorkbookRenderer produces the multi-sheet XLSX report. Numeric cells are
// written as numbers; formatting is a presentation concern left to the
// spreadsheet application.
type WorkbookRenderer struct{}

func NewWorkbookRenderer() *WorkbookRenderer {
	return &WorkbookRenderer{}
}

// Render produces the complete workbook artifact or a RenderError
func (w *WorkbookRenderer) Render(reports []report.MonthlyReport, stats ReportStatistics) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return nil, &RenderError{Format: FormatExcel, Err: err}
	}

	b := &workbookBuilder{file: f, headerStyle: headerStyle}

	b.summarySheet(stats)

	if len(stats.TopPublishers) > 0 {
		b.addSheet(sheetPublishers, []string{"Publisher", "Books", "Percentage"}, func(add func(...interface{})) {
			for _, p := range stats.TopPublishers {
				add(p.Publisher, p.Count, p.Percentage)
			}
		})
	}

	if len(stats.MonthlyBreakdown) > 0 {
		b.addSheet(sheetMonthly, []string{"Month", "Year", "Books", "Points"}, func(add func(...interface{})) {
			for _, m := range stats.MonthlyBreakdown {
				add(m.Month, m.Year, m.Books, m.Points)
			}
		})
	}

	if len(stats.TopBooks) > 0 {
		// Unlike the PDF's top-15 cap, the workbook carries the full top-20 list
		b.addSheet(sheetTopBooks, []string{"Title", "Total Quantity", "Total Points"}, func(add func(...interface{})) {
			for _, t := range stats.TopBooks {
				add(t.Title, t.TotalQuantity, t.TotalPoints)
			}
		})
	}

	if len(stats.ReportsByYear) > 0 {
		b.addSheet(sheetYears, []string{"Year", "Reports", "Books", "Points"}, func(add func(...interface{})) {
			for _, y := range stats.ReportsByYear {
				add(y.Year, y.Reports, y.Books, y.Points)
			}
		})
	}

	b.addSheet(sheetAllReports, []string{"Month", "Year", "File Name", "Total Books", "Total Points", "Uploaded At"}, func(add func(...interface{})) {
		for _, r := range reports {
			add(r.Month, r.Year, r.FileName, r.TotalBooks, r.TotalPoints, r.UploadedAt.Format("2006-01-02 15:04:05"))
		}
	})

	b.addSheet(sheetBookEntries, []string{"Month", "Year", "Title", "Quantity", "Points per Unit", "Line Total", "Publisher", "BBT", "Book ID"}, func(add func(...interface{})) {
		for _, r := range reports {
			for _, e := range r.Books {
				bbt := "No"
				if e.IsBBTBook {
					bbt = "Yes"
				}
				add(r.Month, r.Year, e.Title, e.Quantity, e.Points, e.LineTotal(), e.Publisher, bbt, e.BookID)
			}
		}
	})

	if b.err != nil {
		return nil, &RenderError{Format: FormatExcel, Err: b.err}
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, &RenderError{Format: FormatExcel, Err: err}
	}
	return buffer.Bytes(), nil
}

// workbookBuilder keeps the sheet-writing boilerplate in one place and
// records the first error instead of threading returns through every cell
type workbookBuilder struct {
	file        *excelize.File
	headerStyle int
	err         error
}

func (b *workbookBuilder) summarySheet(stats ReportStatistics) {
	// The default sheet becomes the summary so it opens first
	b.check(b.file.SetSheetName("Sheet1", sheetSummary))

	b.writeRow(sheetSummary, 1, true, "Metric", "Value")
	b.writeRow(sheetSummary, 2, false, "Total Reports", stats.TotalReports)
	b.writeRow(sheetSummary, 3, false, "Total Books Distributed", stats.TotalBooksDistributed)
	b.writeRow(sheetSummary, 4, false, "Total Points Earned", stats.TotalPointsEarned)
	b.writeRow(sheetSummary, 5, false, "Average Books per Report", stats.AverageBooksPerReport)
	b.writeRow(sheetSummary, 6, false, "Average Points per Report", stats.AveragePointsPerReport)

	b.writeRow(sheetSummary, 8, true, "Category", "Books", "Percentage")
	bbtTotal := stats.BBTVsOtherBooks.BBT + stats.BBTVsOtherBooks.Other
	otherPercentage := 0.0
	if bbtTotal > 0 {
		otherPercentage = 100 - stats.BBTVsOtherBooks.BBTPercentage
	}
	b.writeRow(sheetSummary, 9, false, "BBT Books", stats.BBTVsOtherBooks.BBT, stats.BBTVsOtherBooks.BBTPercentage)
	b.writeRow(sheetSummary, 10, false, "Other Books", stats.BBTVsOtherBooks.Other, otherPercentage)

	b.setWidths(sheetSummary, 2, 28)
}

func (b *workbookBuilder) addSheet(name string, header []string, fill func(add func(...interface{}))) {
	if b.err != nil {
		return
	}
	if _, err := b.file.NewSheet(name); err != nil {
		b.err = err
		return
	}

	b.writeRow(name, 1, true, toAny(header)...)

	row := 1
	fill(func(values ...interface{}) {
		row++
		b.writeRow(name, row, false, values...)
	})

	b.setWidths(name, len(header), 18)
}

func (b *workbookBuilder) writeRow(sheet string, row int, header bool, values ...interface{}) {
	if b.err != nil {
		return
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			b.err = err
			return
		}
		b.check(b.file.SetCellValue(sheet, cell, v))
		if header {
			b.check(b.file.SetCellStyle(sheet, cell, cell, b.headerStyle))
		}
	}
}

func (b *workbookBuilder) setWidths(sheet string, cols int, width float64) {
	for i := 0; i < cols; i++ {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			b.check(err)
			return
		}
		b.check(b.file.SetColWidth(sheet, col, col, width))
	}
}

func (b *workbookBuilder) check(err error) {
	if b.err == nil && err != nil {
		b.err = err
	}
}

func toAny(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
