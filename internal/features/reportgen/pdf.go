package reportgen

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"bbt-connect/internal/features/report"

	"github.com/go-pdf/fpdf"
)

const (
	docTitle       = "BBT Africa Connect - Book Distribution Report"
	docAttribution = "Generated by BBT Africa Connect"

	pdfPublisherRows = 10
	pdfMonthlyRows   = 12
	pdfTopBookRows   = 15

	detailTitleBudget = 30
	tableTitleBudget  = 45
)

// DocumentRenderer produces the paginated PDF report. The table-drawing
// strategy is selected once at construction: the grid renderer when a
// capability probe passes, the manual renderer otherwise. A grid failure
// during a render also falls back to the manual strategy and re-renders
// the whole document, so callers never receive partial output.
type DocumentRenderer struct {
	table    TableRenderer
	fallback TableRenderer
	strategy string
}

// NewDocumentRenderer probes the grid strategy and keeps the manual
// renderer as fallback.
func NewDocumentRenderer() *DocumentRenderer {
	return newDocumentRenderer(&GridTableRenderer{}, &ManualTableRenderer{})
}

func newDocumentRenderer(primary, fallback TableRenderer) *DocumentRenderer {
	r := &DocumentRenderer{fallback: fallback}
	if err := probeTableRenderer(primary); err != nil {
		r.table = fallback
	} else {
		r.table = primary
	}
	r.strategy = r.table.Name()
	return r
}

// probeTableRenderer draws a one-row table on a scratch document to verify
// the strategy works in this environment.
func probeTableRenderer(tr TableRenderer) error {
	doc := newPDF()
	doc.AddPage()
	if err := tr.Render(doc, Table{Header: []string{"probe"}, Rows: [][]string{{"ok"}}}); err != nil {
		return err
	}
	return doc.Error()
}

// Strategy reports which table-drawing strategy produced the last output,
// for diagnostics. Callers never need to branch on it.
func (d *DocumentRenderer) Strategy() string {
	return d.strategy
}

// Render produces the complete PDF artifact or a RenderError, never both
// and never partial output.
func (d *DocumentRenderer) Render(reports []report.MonthlyReport, stats ReportStatistics, mode Mode) ([]byte, error) {
	doc, err := d.build(d.table, reports, stats, mode)
	if err != nil && d.table != d.fallback {
		doc, err = d.build(d.fallback, reports, stats, mode)
		if err == nil {
			d.strategy = d.fallback.Name()
		}
	}
	if err != nil {
		return nil, &RenderError{Format: FormatPDF, Err: err}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &RenderError{Format: FormatPDF, Err: err}
	}
	return buf.Bytes(), nil
}

func newPDF() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	// Page breaks are handled by the table renderers and section headers
	doc.SetAutoPageBreak(false, footerReserve)
	return doc
}

func (d *DocumentRenderer) build(tr TableRenderer, reports []report.MonthlyReport, stats ReportStatistics, mode Mode) (*fpdf.Fpdf, error) {
	doc := newPDF()
	doc.SetTitle(docTitle, false)
	doc.AliasNbPages("")
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Arial", "I", 8)
		doc.SetTextColor(128, 128, 128)
		doc.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", doc.PageNo()), "", 1, "C", false, 0, "")
		doc.CellFormat(0, 5, docAttribution, "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	doc.SetFont("Arial", "B", 18)
	doc.SetTextColor(33, 33, 33)
	doc.CellFormat(0, 12, docTitle, "", 1, "C", false, 0, "")
	doc.SetFont("Arial", "I", 9)
	doc.SetTextColor(96, 96, 96)
	doc.CellFormat(0, 6, "Generated on "+time.Now().Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	doc.Ln(4)

	sectionHeader(doc, "Executive Summary")
	if err := tr.Render(doc, summaryTable(stats)); err != nil {
		return nil, err
	}

	if len(stats.TopPublishers) > 0 {
		sectionHeader(doc, "Top Publishers")
		if err := tr.Render(doc, publishersTable(stats)); err != nil {
			return nil, err
		}
	}

	if len(stats.MonthlyBreakdown) > 0 {
		sectionHeader(doc, "Monthly Distribution Breakdown")
		if err := tr.Render(doc, monthlyTable(stats)); err != nil {
			return nil, err
		}
	}

	if len(stats.TopBooks) > 0 {
		sectionHeader(doc, "Top Distributed Books")
		if err := tr.Render(doc, topBooksTable(stats)); err != nil {
			return nil, err
		}
	}

	if mode == ModeDetailed {
		for _, r := range reports {
			sectionHeader(doc, fmt.Sprintf("%s %d - %s", r.Month, r.Year, r.FileName))
			if err := tr.Render(doc, reportDetailTable(r)); err != nil {
				return nil, err
			}
			if !rowFits(doc, tableRowHeight) {
				doc.AddPage()
			}
			doc.SetFont("Arial", "B", 9)
			doc.SetTextColor(33, 33, 33)
			doc.CellFormat(0, 7, fmt.Sprintf("Total books: %d    Total points: %d", r.TotalBooks, r.TotalPoints), "", 1, "R", false, 0, "")
		}
	}

	return doc, doc.Error()
}

func sectionHeader(doc *fpdf.Fpdf, title string) {
	// Header plus at least two table rows must fit, or start a new page
	if !rowFits(doc, 12+tableRowHeight*2) {
		doc.AddPage()
	}
	doc.Ln(3)
	doc.SetFont("Arial", "B", 13)
	doc.SetTextColor(41, 98, 155)
	doc.CellFormat(0, 8, fitText(doc, title, contentWidth(doc)), "", 1, "L", false, 0, "")
	doc.Ln(1)
}

func summaryTable(stats ReportStatistics) Table {
	return Table{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Reports", strconv.Itoa(stats.TotalReports)},
			{"Total Books Distributed", strconv.Itoa(stats.TotalBooksDistributed)},
			{"Total Points Earned", strconv.Itoa(stats.TotalPointsEarned)},
			{"Average Books per Report", fmt.Sprintf("%.1f", stats.AverageBooksPerReport)},
			{"Average Points per Report", fmt.Sprintf("%.1f", stats.AveragePointsPerReport)},
			{"BBT Book Share", fmt.Sprintf("%.1f%%", stats.BBTVsOtherBooks.BBTPercentage)},
		},
		Widths: []float64{3, 2},
		Aligns: []string{"L", "R"},
	}
}

func publishersTable(stats ReportStatistics) Table {
	t := Table{
		Header: []string{"Publisher", "Books", "Share"},
		Widths: []float64{3, 1, 1},
		Aligns: []string{"L", "R", "R"},
	}
	for _, p := range capPublishers(stats.TopPublishers, pdfPublisherRows) {
		t.Rows = append(t.Rows, []string{
			p.Publisher,
			strconv.Itoa(p.Count),
			fmt.Sprintf("%.1f%%", p.Percentage),
		})
	}
	return t
}

func monthlyTable(stats ReportStatistics) Table {
	t := Table{
		Header: []string{"Month", "Year", "Books", "Points"},
		Aligns: []string{"L", "R", "R", "R"},
	}
	breakdown := stats.MonthlyBreakdown
	if len(breakdown) > pdfMonthlyRows {
		breakdown = breakdown[:pdfMonthlyRows]
	}
	for _, m := range breakdown {
		t.Rows = append(t.Rows, []string{
			m.Month,
			strconv.Itoa(m.Year),
			strconv.Itoa(m.Books),
			strconv.Itoa(m.Points),
		})
	}
	return t
}

func topBooksTable(stats ReportStatistics) Table {
	t := Table{
		Header: []string{"Book Title", "Quantity", "Points"},
		Widths: []float64{3, 1, 1},
		Aligns: []string{"L", "R", "R"},
	}
	books := stats.TopBooks
	if len(books) > pdfTopBookRows {
		books = books[:pdfTopBookRows]
	}
	for _, b := range books {
		t.Rows = append(t.Rows, []string{
			truncate(b.Title, tableTitleBudget),
			strconv.Itoa(b.TotalQuantity),
			strconv.Itoa(b.TotalPoints),
		})
	}
	return t
}

func reportDetailTable(r report.MonthlyReport) Table {
	t := Table{
		Header: []string{"Title", "Qty", "Points/Unit", "Total", "Publisher", "BBT"},
		Widths: []float64{4, 1, 1.2, 1, 2, 0.8},
		Aligns: []string{"L", "R", "R", "R", "L", "C"},
	}
	for _, b := range r.Books {
		bbt := "No"
		if b.IsBBTBook {
			bbt = "Yes"
		}
		t.Rows = append(t.Rows, []string{
			truncate(b.Title, detailTitleBudget),
			strconv.Itoa(b.Quantity),
			strconv.Itoa(b.Points),
			strconv.Itoa(b.LineTotal()),
			b.Publisher,
			bbt,
		})
	}
	return t
}

func capPublishers(list []PublisherStat, n int) []PublisherStat {
	if len(list) > n {
		return list[:n]
	}
	return list
}

// truncate cuts s after n runes, appending an ellipsis when shortened
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
