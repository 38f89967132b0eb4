package club

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReadingClub is one community reading club, optionally assigned to a
// region and linked to a WhatsApp group
type ReadingClub struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	RegionID        string             `json:"region_id,omitempty" bson:"region_id,omitempty"`
	WhatsappGroupID string             `json:"whatsapp_group_id,omitempty" bson:"whatsapp_group_id,omitempty"`
	MeetingDay      string             `json:"meeting_day,omitempty" bson:"meeting_day,omitempty"`
	MeetingTime     string             `json:"meeting_time,omitempty" bson:"meeting_time,omitempty"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}
