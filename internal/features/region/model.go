package region

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Region groups reading clubs and WhatsApp groups for one geographic area.
// The ID arrays are denormalized: they are kept in sync by the club and
// whatsapp services whenever a child document is created, re-assigned or
// deleted. There are no transactions; the write sequence is child first,
// parent second.
type Region struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name             string             `json:"name" bson:"name"`
	Slug             string             `json:"slug" bson:"slug"`
	Country          string             `json:"country" bson:"country"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	ReadingClubIDs   []string           `json:"reading_club_ids" bson:"reading_club_ids"`
	WhatsappGroupIDs []string           `json:"whatsapp_group_ids" bson:"whatsapp_group_ids"`
	CreatedAt        time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at" bson:"updated_at"`
}
