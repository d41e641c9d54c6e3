package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a registered account
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email"`
	DisplayName  string             `bson:"displayName" json:"displayName"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Bio          string             `bson:"bio,omitempty" json:"bio,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// PasswordReset holds a pending password-reset code for an email address
type PasswordReset struct {
	Email     string    `bson:"email" json:"email"`
	Code      string    `bson:"code" json:"-"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}
