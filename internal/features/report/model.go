package report

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Months lists the canonical month names accepted on a MonthlyReport,
// in calendar order.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthIndex returns the 1-based calendar position of a canonical month
// name, or 0 if the name is not canonical.
func MonthIndex(month string) int {
	for i, m := range Months {
		if m == month {
			return i + 1
		}
	}
	return 0
}

// BookEntry is one line item within a monthly report
type BookEntry struct {
	BookID    string `json:"book_id,omitempty" bson:"book_id,omitempty"` // Set only when the book exists in the catalog
	Title     string `json:"title" bson:"title"`
	Quantity  int    `json:"quantity" bson:"quantity"`
	Points    int    `json:"points" bson:"points"` // Points awarded per unit
	Publisher string `json:"publisher" bson:"publisher"`
	IsBBTBook bool   `json:"is_bbt_book" bson:"is_bbt_book"`
}

// LineTotal is quantity times points-per-unit, computed on demand
func (b BookEntry) LineTotal() int {
	return b.Quantity * b.Points
}

// MonthlyReport is one submitted distribution record for a calendar month.
// Reports are created once and never updated or deleted. Duplicate
// (month, year) submissions are allowed and summed by the statistics layer.
type MonthlyReport struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Month       string             `json:"month" bson:"month"`
	Year        int                `json:"year" bson:"year"`
	TotalBooks  int                `json:"total_books" bson:"total_books"`
	TotalPoints int                `json:"total_points" bson:"total_points"`
	Books       []BookEntry        `json:"books" bson:"books"`
	UploadedBy  string             `json:"uploaded_by" bson:"uploaded_by"`
	UploadedAt  time.Time          `json:"uploaded_at" bson:"uploaded_at"`
	FileName    string             `json:"file_name" bson:"file_name"`
}

// ComputeTotals derives the stored totals from the book lines. The stored
// fields are a cached hint only; every consumer that cares recomputes.
func (r *MonthlyReport) ComputeTotals() {
	books, points := 0, 0
	for _, b := range r.Books {
		books += b.Quantity
		points += b.LineTotal()
	}
	r.TotalBooks = books
	r.TotalPoints = points
}
