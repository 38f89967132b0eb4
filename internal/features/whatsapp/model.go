package whatsapp

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Group is one community WhatsApp group
type Group struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	InviteLink  string             `json:"invite_link" bson:"invite_link"`
	RegionID    string             `json:"region_id,omitempty" bson:"region_id,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Language    string             `json:"language,omitempty" bson:"language,omitempty"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}
