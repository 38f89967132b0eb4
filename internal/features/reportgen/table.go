package reportgen

import (
	"fmt"

	"github.com/go-pdf/fpdf"
)

const (
	tableRowHeight = 7.0
	footerReserve  = 20.0 // keep the footer band clear of table rows
	cellPadding    = 2.0
)

// Table is the renderer-independent content of one drawn table. Both
// renderers must produce the same headers and rows in the same order;
// only visual fidelity differs.
type Table struct {
	Header []string
	Rows   [][]string
	Widths []float64 // relative column weights; equal split when empty
	Aligns []string  // per-column alignment ("L"/"C"/"R"); "L" when empty
}

// TableRenderer draws one table into the document at the current cursor,
// starting new pages as needed so that no row is split across a boundary.
type TableRenderer interface {
	Name() string
	Render(doc *fpdf.Fpdf, t Table) error
}

func contentWidth(doc *fpdf.Fpdf) float64 {
	pageW, _ := doc.GetPageSize()
	left, _, right, _ := doc.GetMargins()
	return pageW - left - right
}

func resolveWidths(t Table, avail float64) []float64 {
	n := len(t.Header)
	widths := make([]float64, n)
	if len(t.Widths) != n {
		for i := range widths {
			widths[i] = avail / float64(n)
		}
		return widths
	}
	total := 0.0
	for _, w := range t.Widths {
		total += w
	}
	for i, w := range t.Widths {
		widths[i] = avail * w / total
	}
	return widths
}

func alignFor(t Table, col int) string {
	if col < len(t.Aligns) && t.Aligns[col] != "" {
		return t.Aligns[col]
	}
	return "L"
}

// fitText shortens s with a trailing ellipsis until it fits the cell width
func fitText(doc *fpdf.Fpdf, s string, cellW float64) string {
	max := cellW - 2*cellPadding
	if doc.GetStringWidth(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + "..."
		if doc.GetStringWidth(candidate) <= max {
			return candidate
		}
	}
	return "..."
}

func rowFits(doc *fpdf.Fpdf, h float64) bool {
	_, pageH := doc.GetPageSize()
	_, _, _, bottom := doc.GetMargins()
	return doc.GetY()+h <= pageH-bottom-footerReserve
}

// GridTableRenderer is the primary strategy: a styled grid with a filled
// header row and zebra-striped data rows.
type GridTableRenderer struct{}

func (g *GridTableRenderer) Name() string { return "grid" }

func (g *GridTableRenderer) Render(doc *fpdf.Fpdf, t Table) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("table has no header")
	}
	widths := resolveWidths(t, contentWidth(doc))

	drawHeader := func() {
		doc.SetFont("Arial", "B", 9)
		doc.SetFillColor(41, 98, 155)
		doc.SetTextColor(255, 255, 255)
		for i, h := range t.Header {
			doc.CellFormat(widths[i], tableRowHeight, fitText(doc, h, widths[i]), "1", 0, "C", true, 0, "")
		}
		doc.Ln(-1)
		doc.SetFont("Arial", "", 9)
		doc.SetTextColor(33, 33, 33)
		doc.SetFillColor(240, 244, 248)
	}

	if !rowFits(doc, tableRowHeight*2) {
		doc.AddPage()
	}
	drawHeader()

	for idx, row := range t.Rows {
		if !rowFits(doc, tableRowHeight) {
			doc.AddPage()
			drawHeader()
		}
		fill := idx%2 == 1
		for i := range t.Header {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			doc.CellFormat(widths[i], tableRowHeight, fitText(doc, cell, widths[i]), "1", 0, alignFor(t, i), fill, 0, "")
		}
		doc.Ln(-1)
	}

	return doc.Error()
}

// ManualTableRenderer is the fallback strategy: fixed row height, equal
// column widths and hand-drawn cell borders. Content matches the grid
// renderer exactly; only styling differs.
type ManualTableRenderer struct{}

func (m *ManualTableRenderer) Name() string { return "manual" }

func (m *ManualTableRenderer) Render(doc *fpdf.Fpdf, t Table) error {
	if len(t.Header) == 0 {
		return fmt.Errorf("table has no header")
	}
	avail := contentWidth(doc)
	colW := avail / float64(len(t.Header))
	left, _, _, _ := doc.GetMargins()

	drawRow := func(cells []string, bold bool) {
		if bold {
			doc.SetFont("Arial", "B", 9)
		} else {
			doc.SetFont("Arial", "", 9)
		}
		y := doc.GetY()
		for i := range t.Header {
			x := left + float64(i)*colW
			doc.Rect(x, y, colW, tableRowHeight, "D")
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			doc.SetXY(x+cellPadding/2, y)
			doc.CellFormat(colW-cellPadding, tableRowHeight, fitText(doc, cell, colW), "", 0, "L", false, 0, "")
		}
		doc.SetXY(left, y+tableRowHeight)
	}

	if !rowFits(doc, tableRowHeight*2) {
		doc.AddPage()
	}
	doc.SetTextColor(33, 33, 33)
	drawRow(t.Header, true)

	for _, row := range t.Rows {
		if !rowFits(doc, tableRowHeight) {
			doc.AddPage()
			drawRow(t.Header, true)
		}
		drawRow(row, false)
	}

	return doc.Error()
}
