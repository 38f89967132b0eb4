package reportgen

import (
	"bytes"
	"fmt"
	"testing"

	"bbt-connect/internal/features/report"

	"github.com/go-pdf/fpdf"
)

// failingTableRenderer fails after a configurable number of successful
// renders, so both probe failures and mid-document failures can be staged
type failingTableRenderer struct {
	succeedFirst int
	calls        int
}

func (f *failingTableRenderer) Name() string { return "failing" }

func (f *failingTableRenderer) Render(doc *fpdf.Fpdf, t Table) error {
	f.calls++
	if f.calls <= f.succeedFirst {
		return (&ManualTableRenderer{}).Render(doc, t)
	}
	return fmt.Errorf("staged failure on call %d", f.calls)
}

// recordingTableRenderer captures every table it is asked to draw
type recordingTableRenderer struct {
	tables []Table
}

func (r *recordingTableRenderer) Name() string { return "recording" }

func (r *recordingTableRenderer) Render(doc *fpdf.Fpdf, t Table) error {
	r.tables = append(r.tables, t)
	return nil
}

func sampleReports(n, entriesPer int) []report.MonthlyReport {
	var reports []report.MonthlyReport
	for i := 0; i < n; i++ {
		var entries []report.BookEntry
		for j := 0; j < entriesPer; j++ {
			entries = append(entries, report.BookEntry{
				Title:     fmt.Sprintf("Book %d-%d", i, j),
				Quantity:  j + 1,
				Points:    2,
				Publisher: "BBT",
				IsBBTBook: j%2 == 0,
			})
		}
		r := makeReport(report.Months[i%12], 2020+i/12, entries...)
		r.FileName = fmt.Sprintf("report-%d.xlsx", i)
		reports = append(reports, r)
	}
	return reports
}

func TestNewDocumentRendererPrefersGrid(t *testing.T) {
	d := NewDocumentRenderer()
	if d.Strategy() != "grid" {
		t.Errorf("Strategy() = %s, want grid", d.Strategy())
	}
}

func TestNewDocumentRendererFallsBackOnProbeFailure(t *testing.T) {
	d := newDocumentRenderer(&failingTableRenderer{}, &ManualTableRenderer{})
	if d.Strategy() != "manual" {
		t.Errorf("Strategy() = %s, want manual after failed probe", d.Strategy())
	}

	reports := sampleReports(2, 3)
	data, err := d.Render(reports, ComputeStatistics(reports), ModeSummary)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
}

func TestRenderFallsBackMidDocument(t *testing.T) {
	// Probe passes, then the grid strategy dies partway through. The
	// document must be re-rendered whole with the fallback, never partial.
	primary := &failingTableRenderer{succeedFirst: 3}
	d := newDocumentRenderer(primary, &ManualTableRenderer{})
	if d.Strategy() != "failing" {
		t.Fatalf("Strategy() = %s, want failing after passed probe", d.Strategy())
	}

	reports := sampleReports(3, 4)
	data, err := d.Render(reports, ComputeStatistics(reports), ModeDetailed)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if d.Strategy() != "manual" {
		t.Errorf("Strategy() = %s, want manual after mid-render fallback", d.Strategy())
	}
}

func TestRenderErrorWhenAllStrategiesFail(t *testing.T) {
	always := &failingTableRenderer{}
	d := &DocumentRenderer{table: always, fallback: always, strategy: always.Name()}

	reports := sampleReports(1, 1)
	_, err := d.Render(reports, ComputeStatistics(reports), ModeSummary)
	if err == nil {
		t.Fatal("expected error when every strategy fails")
	}
	if _, ok := err.(*RenderError); !ok {
		t.Errorf("error type = %T, want *RenderError", err)
	}
}

func TestDetailedModePaginates(t *testing.T) {
	d := NewDocumentRenderer()
	reports := sampleReports(20, 50)
	stats := ComputeStatistics(reports)

	doc, err := d.build(d.table, reports, stats, ModeDetailed)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if doc.PageCount() < 20 {
		t.Errorf("PageCount() = %d, want at least 20 for 20 detailed reports", doc.PageCount())
	}

	summaryDoc, err := d.build(d.table, reports, stats, ModeSummary)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	if summaryDoc.PageCount() >= doc.PageCount() {
		t.Errorf("summary has %d pages, detailed %d; detailed should be longer", summaryDoc.PageCount(), doc.PageCount())
	}
}

// bottomPinnedRenderer draws nothing and leaves the cursor inside the
// footer band, as a table ending flush with the page bottom would
type bottomPinnedRenderer struct{}

func (b *bottomPinnedRenderer) Name() string { return "pinned" }

func (b *bottomPinnedRenderer) Render(doc *fpdf.Fpdf, t Table) error {
	_, pageH := doc.GetPageSize()
	doc.SetY(pageH - 22)
	return nil
}

func TestDetailedTotalsLineStartsNewPageNearFooter(t *testing.T) {
	pinned := &bottomPinnedRenderer{}
	d := &DocumentRenderer{table: pinned, fallback: pinned, strategy: pinned.Name()}

	// No book lines, so only the summary and monthly sections render
	// before the per-report detail section
	reports := []report.MonthlyReport{makeReport("January", 2025)}
	stats := ComputeStatistics(reports)

	doc, err := d.build(pinned, reports, stats, ModeDetailed)
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}

	// Summary on page 1, monthly on 2, detail table on 3; the totals line
	// must not be squeezed into the footer band after the pinned table,
	// so it opens page 4
	if doc.PageCount() != 4 {
		t.Errorf("PageCount() = %d, want 4", doc.PageCount())
	}
}

func TestBuildSectionContent(t *testing.T) {
	rec := &recordingTableRenderer{}
	d := &DocumentRenderer{table: rec, fallback: rec, strategy: rec.Name()}

	reports := sampleReports(2, 3)
	stats := ComputeStatistics(reports)

	if _, err := d.build(rec, reports, stats, ModeDetailed); err != nil {
		t.Fatalf("build() error = %v", err)
	}

	// Summary, publishers, monthly, top books, then one detail per report
	if len(rec.tables) != 4+len(reports) {
		t.Fatalf("rendered %d tables, want %d", len(rec.tables), 4+len(reports))
	}

	summary := rec.tables[0]
	if summary.Header[0] != "Metric" || len(summary.Rows) != 6 {
		t.Errorf("summary table = %+v", summary)
	}

	detail := rec.tables[4]
	if len(detail.Header) != 6 || len(detail.Rows) != 3 {
		t.Errorf("detail table header %d cols, %d rows; want 6 and 3", len(detail.Header), len(detail.Rows))
	}
}

func TestGridAndManualProduceSameDocuments(t *testing.T) {
	reports := sampleReports(4, 10)
	stats := ComputeStatistics(reports)

	grid, err := (&DocumentRenderer{}).build(&GridTableRenderer{}, reports, stats, ModeDetailed)
	if err != nil {
		t.Fatalf("grid build error = %v", err)
	}
	manual, err := (&DocumentRenderer{}).build(&ManualTableRenderer{}, reports, stats, ModeDetailed)
	if err != nil {
		t.Fatalf("manual build error = %v", err)
	}

	// Same content at lower fidelity should not change the page structure much
	diff := grid.PageCount() - manual.PageCount()
	if diff < -1 || diff > 1 {
		t.Errorf("page counts diverge: grid %d, manual %d", grid.PageCount(), manual.PageCount())
	}
}

func TestPublisherTableCap(t *testing.T) {
	var entries []report.BookEntry
	for i := 0; i < 12; i++ {
		entries = append(entries, report.BookEntry{
			Title:     fmt.Sprintf("Book %d", i),
			Quantity:  i + 1,
			Points:    1,
			Publisher: fmt.Sprintf("Publisher %d", i),
		})
	}
	stats := ComputeStatistics([]report.MonthlyReport{makeReport("January", 2025, entries...)})

	table := publishersTable(stats)
	if len(table.Rows) != pdfPublisherRows {
		t.Errorf("publisher rows = %d, want %d", len(table.Rows), pdfPublisherRows)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 30, "short"},
		{"abcdefghij", 5, "abcde..."},
		{"", 5, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestFitText(t *testing.T) {
	doc := newPDF()
	doc.AddPage()
	doc.SetFont("Arial", "", 9)

	long := "An Exceedingly Long Book Title That Cannot Possibly Fit In A Narrow Cell"
	got := fitText(doc, long, 20)
	if got == long {
		t.Error("expected shortened text")
	}
	if doc.GetStringWidth(got) > 20-2*cellPadding {
		t.Errorf("fitText result %q still too wide", got)
	}

	if got := fitText(doc, "ok", 20); got != "ok" {
		t.Errorf("fitText(%q) = %q, want unchanged", "ok", got)
	}
}
