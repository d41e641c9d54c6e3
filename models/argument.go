package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Side is the position an argument supports.
type Side string

const (
	SideFor     Side = "for"
	SideAgainst Side = "against"
)

// ValidSide reports whether s is one of the two accepted sides.
// Arguments must be rejected before persistence when this is false.
func ValidSide(s Side) bool {
	return s == SideFor || s == SideAgainst
}

// Argument defines a single "for"/"against" contribution to a debate
type Argument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	DebateID   primitive.ObjectID `bson:"debateId" json:"debateId"`
	Side       Side               `bson:"side" json:"side"`
	Text       string             `bson:"text" json:"text"`
	AuthorName string             `bson:"authorName" json:"authorName"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
