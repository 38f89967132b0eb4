package temple

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Temple struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	City      string             `json:"city" bson:"city"`
	Country   string             `json:"country" bson:"country"`
	Address   string             `json:"address,omitempty" bson:"address,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Website   string             `json:"website,omitempty" bson:"website,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
