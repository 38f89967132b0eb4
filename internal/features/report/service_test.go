package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

type fakeReportRepo struct {
	created []*MonthlyReport
	err     error
}

func (f *fakeReportRepo) Create(ctx context.Context, r *MonthlyReport) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, r)
	return nil
}
func (f *fakeReportRepo) Get(ctx context.Context, id string) (*MonthlyReport, error) {
	return nil, f.err
}
func (f *fakeReportRepo) List(ctx context.Context) ([]MonthlyReport, error) { return nil, f.err }
func (f *fakeReportRepo) ListByYear(ctx context.Context, year int) ([]MonthlyReport, error) {
	return nil, f.err
}

func TestCreateReportRecomputesTotals(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	r := &MonthlyReport{
		Month: "January",
		Year:  2025,
		// Client-supplied totals are discarded
		TotalBooks:  999,
		TotalPoints: 999,
		Books: []BookEntry{
			{Title: "Bhagavad-gita As It Is", Quantity: 4, Points: 2},
			{Title: "Chant and Be Happy", Quantity: 6, Points: 1},
		},
	}
	if err := svc.CreateReport(context.Background(), r); err != nil {
		t.Fatalf("CreateReport() error = %v", err)
	}

	if r.TotalBooks != 10 || r.TotalPoints != 14 {
		t.Errorf("totals = %d books %d points, want 10 and 14", r.TotalBooks, r.TotalPoints)
	}
	if r.FileName != "Manual Entry - January 2025" {
		t.Errorf("FileName = %q", r.FileName)
	}
	if len(repo.created) != 1 {
		t.Errorf("created %d reports, want 1", len(repo.created))
	}
}

func TestCreateReportValidation(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	tests := []struct {
		name    string
		report  MonthlyReport
		wantErr string
	}{
		{
			name:    "invalid month",
			report:  MonthlyReport{Month: "Januray", Year: 2025},
			wantErr: "invalid month",
		},
		{
			name:    "month not canonical case",
			report:  MonthlyReport{Month: "january", Year: 2025},
			wantErr: "invalid month",
		},
		{
			name:    "year out of range",
			report:  MonthlyReport{Month: "January", Year: 189},
			wantErr: "invalid year",
		},
		{
			name: "entry without title",
			report: MonthlyReport{Month: "January", Year: 2025, Books: []BookEntry{
				{Title: "  ", Quantity: 1, Points: 1},
			}},
			wantErr: "title is required",
		},
		{
			name: "negative quantity",
			report: MonthlyReport{Month: "January", Year: 2025, Books: []BookEntry{
				{Title: "A", Quantity: -1, Points: 1},
			}},
			wantErr: "quantity must be non-negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.report
			err := svc.CreateReport(context.Background(), &r)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestUploadReportCSV(t *testing.T) {
	repo := &fakeReportRepo{}
	svc := NewReportService(repo)

	csvData := "Title,Quantity,Points,Publisher,Is BBT\n" +
		"Bhagavad-gita As It Is,10,2,BBT,Yes\n" +
		"Back to Godhead Magazine,5,1,Back to Godhead,No\n"

	r, err := svc.UploadReport(context.Background(), strings.NewReader(csvData), "june.csv", "June", 2025, "admin")
	if err != nil {
		t.Fatalf("UploadReport() error = %v", err)
	}

	if len(r.Books) != 2 {
		t.Fatalf("parsed %d entries, want 2", len(r.Books))
	}
	first := r.Books[0]
	if first.Title != "Bhagavad-gita As It Is" || first.Quantity != 10 || first.Points != 2 || !first.IsBBTBook {
		t.Errorf("first entry = %+v", first)
	}
	if r.Books[1].IsBBTBook {
		t.Error("second entry should not be BBT")
	}
	if r.TotalBooks != 15 || r.TotalPoints != 25 {
		t.Errorf("totals = %d books %d points, want 15 and 25", r.TotalBooks, r.TotalPoints)
	}
	if r.FileName != "june.csv" || r.UploadedBy != "admin" {
		t.Errorf("metadata = %q by %q", r.FileName, r.UploadedBy)
	}
}

func TestUploadReportCSVBadRow(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	csvData := "Title,Quantity,Points\nGood Book,3,1\nBad Book,many,1\n"
	_, err := svc.UploadReport(context.Background(), strings.NewReader(csvData), "bad.csv", "June", 2025, "admin")
	if err == nil || !strings.Contains(err.Error(), "row 3") {
		t.Errorf("error = %v, want row 3 failure", err)
	}
}

func TestUploadReportExcel(t *testing.T) {
	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Title", "Quantity", "Points", "Publisher", "Is BBT"},
		{"Science of Self Realization", 7, 1, "BBT", "yes"},
		{"Local Magazine", 2, 1, "Local Press", ""},
	}
	for i, row := range rows {
		for j, v := range row {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			if err := f.SetCellValue("Sheet1", cell, v); err != nil {
				t.Fatal(err)
			}
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}

	svc := NewReportService(&fakeReportRepo{})
	r, err := svc.UploadReport(context.Background(), bytes.NewReader(buf.Bytes()), "july.xlsx", "July", 2025, "admin")
	if err != nil {
		t.Fatalf("UploadReport() error = %v", err)
	}

	if len(r.Books) != 2 {
		t.Fatalf("parsed %d entries, want 2", len(r.Books))
	}
	if !r.Books[0].IsBBTBook || r.Books[0].Quantity != 7 {
		t.Errorf("first entry = %+v", r.Books[0])
	}
	if r.TotalBooks != 9 {
		t.Errorf("TotalBooks = %d, want 9", r.TotalBooks)
	}
}

func TestUploadReportUnsupportedFormat(t *testing.T) {
	svc := NewReportService(&fakeReportRepo{})

	_, err := svc.UploadReport(context.Background(), strings.NewReader(""), "report.txt", "June", 2025, "admin")
	if err == nil || !strings.Contains(err.Error(), "unsupported file format") {
		t.Errorf("error = %v, want unsupported file format", err)
	}
}

func TestMonthIndex(t *testing.T) {
	if got := MonthIndex("January"); got != 1 {
		t.Errorf("MonthIndex(January) = %d, want 1", got)
	}
	if got := MonthIndex("December"); got != 12 {
		t.Errorf("MonthIndex(December) = %d, want 12", got)
	}
	if got := MonthIndex("january"); got != 0 {
		t.Errorf("MonthIndex(january) = %d, want 0", got)
	}
}
