package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

type ReportService interface {
	CreateReport(ctx context.Context, report *MonthlyReport) error
	GetReport(ctx context.Context, id string) (*MonthlyReport, error)
	ListReports(ctx context.Context) ([]MonthlyReport, error)
	ListReportsByYear(ctx context.Context, year int) ([]MonthlyReport, error)
	UploadReport(ctx context.Context, file io.Reader, filename, month string, year int, uploadedBy string) (*MonthlyReport, error)
}

type ReportServiceImpl struct {
	ReportRepo ReportRepository
}

func NewReportService(reportRepo ReportRepository) ReportService {
	return &ReportServiceImpl{ReportRepo: reportRepo}
}

// CreateReport validates and persists a manually entered monthly report.
// Totals are always recomputed server-side from the book lines; any
// client-supplied totals are discarded.
func (s *ReportServiceImpl) CreateReport(ctx context.Context, report *MonthlyReport) error {
	if err := validateReport(report); err != nil {
		return err
	}

	report.ComputeTotals()

	if report.FileName == "" {
		report.FileName = fmt.Sprintf("Manual Entry - %s %d", report.Month, report.Year)
	}

	return s.ReportRepo.Create(ctx, report)
}

func (s *ReportServiceImpl) GetReport(ctx context.Context, id string) (*MonthlyReport, error) {
	return s.ReportRepo.Get(ctx, id)
}

func (s *ReportServiceImpl) ListReports(ctx context.Context) ([]MonthlyReport, error) {
	return s.ReportRepo.List(ctx)
}

func (s *ReportServiceImpl) ListReportsByYear(ctx context.Context, year int) ([]MonthlyReport, error) {
	return s.ReportRepo.ListByYear(ctx, year)
}

// UploadReport parses a CSV or XLSX file of book lines and creates one
// monthly report from it. Expected columns: Title, Quantity, Points,
// Publisher, IsBBT.
func (s *ReportServiceImpl) UploadReport(ctx context.Context, file io.Reader, filename, month string, year int, uploadedBy string) (*MonthlyReport, error) {
	var books []BookEntry
	var err error

	lower := strings.ToLower(filename)
	switch {
	case strings.HasSuffix(lower, ".csv"):
		books, err = parseCSV(file)
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xls"):
		books, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", filename)
	}
	if err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		Month:      month,
		Year:       year,
		Books:      books,
		UploadedBy: uploadedBy,
		FileName:   filename,
	}
	if err := validateReport(report); err != nil {
		return nil, err
	}
	report.ComputeTotals()

	if err := s.ReportRepo.Create(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func validateReport(report *MonthlyReport) error {
	if MonthIndex(report.Month) == 0 {
		return fmt.Errorf("invalid month: %q", report.Month)
	}
	if report.Year < 1900 || report.Year > 9999 {
		return fmt.Errorf("invalid year: %d", report.Year)
	}
	for i, b := range report.Books {
		if strings.TrimSpace(b.Title) == "" {
			return fmt.Errorf("book entry %d: title is required", i+1)
		}
		if b.Quantity < 0 {
			return fmt.Errorf("book entry %d: quantity must be non-negative", i+1)
		}
		if b.Points < 0 {
			return fmt.Errorf("book entry %d: points must be non-negative", i+1)
		}
	}
	return nil
}

func parseCSV(file io.Reader) ([]BookEntry, error) {
	reader := csv.NewReader(file)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	var books []BookEntry
	rowNum := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		rowNum++

		row := make(map[string]string)
		for i, value := range rec {
			if i < len(headers) {
				row[normalizeHeader(headers[i])] = value
			}
		}

		entry, err := rowToEntry(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		books = append(books, entry)
	}

	return books, nil
}

func parseExcel(file io.Reader) ([]BookEntry, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in Excel file")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read Excel rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("Excel file is empty")
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = normalizeHeader(h)
	}

	var books []BookEntry
	for rowNum, rec := range rows[1:] {
		row := make(map[string]string)
		for i, value := range rec {
			if i < len(headers) {
				row[headers[i]] = value
			}
		}
		if len(row) == 0 {
			continue
		}

		entry, err := rowToEntry(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum+2, err)
		}
		books = append(books, entry)
	}

	return books, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(h), " ", "_"))
}

func rowToEntry(row map[string]string) (BookEntry, error) {
	entry := BookEntry{
		Title:     strings.TrimSpace(row["title"]),
		Publisher: strings.TrimSpace(row["publisher"]),
	}
	if entry.Title == "" {
		return entry, fmt.Errorf("title is required")
	}

	if v := strings.TrimSpace(row["quantity"]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return entry, fmt.Errorf("invalid quantity %q", v)
		}
		entry.Quantity = n
	}
	if v := strings.TrimSpace(row["points"]); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return entry, fmt.Errorf("invalid points %q", v)
		}
		entry.Points = n
	}

	switch strings.ToLower(strings.TrimSpace(row["is_bbt"])) {
	case "yes", "true", "1", "y":
		entry.IsBBTBook = true
	}

	return entry, nil
}
