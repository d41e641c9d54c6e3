package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Debate defines a single debate topic record
type Debate struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Topic       string             `bson:"topic" json:"topic"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatorName string             `bson:"creatorName" json:"creatorName"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
