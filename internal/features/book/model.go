package book

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Book is one entry of the central catalog
type Book struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Publisher string             `json:"publisher" bson:"publisher"`
	Points    int                `json:"points" bson:"points"` // Points awarded per distributed unit
	IsBBTBook bool               `json:"is_bbt_book" bson:"is_bbt_book"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	Language  string             `json:"language,omitempty" bson:"language,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
