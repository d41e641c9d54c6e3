package utils

import (
	"context"
	"strings"
	"time"

	"agorahub/db"
	"agorahub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SeedDebateData populates the debates and arguments collections with
// sample data so a fresh install has something to show. Skipped when
// debates already exist.
func SeedDebateData() {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.MongoDatabase.Collection("debates").CountDocuments(dbCtx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	creatorID := primitive.NewObjectID()
	if alice, err := db.UserByEmail(dbCtx, "alice@example.com"); err == nil {
		creatorID = alice.ID
	}

	now := time.Now()
	debate := models.Debate{
		ID:          primitive.NewObjectID(),
		Topic:       "Should social media require age verification?",
		Description: "Weighing child safety against privacy and anonymity.",
		CreatedBy:   creatorID,
		CreatorName: "Alice Johnson",
		CreatedAt:   now.Add(-time.Hour * 24 * 7),
	}
	db.MongoDatabase.Collection("debates").InsertOne(dbCtx, debate)

	sampleArguments := []models.Argument{
		{
			DebateID:   debate.ID,
			Side:       models.SideFor,
			Text:       "Age verification keeps minors away from content designed to be addictive. " + strings.Repeat("Platforms have shown they will not self-regulate. ", 2),
			AuthorName: "Alice Johnson",
			CreatedAt:  now.Add(-time.Hour * 24 * 6),
		},
		{
			DebateID:   debate.ID,
			Side:       models.SideAgainst,
			Text:       "Verification means identity collection, which ends online anonymity for everyone.",
			AuthorName: "Bob Smith",
			CreatedAt:  now.Add(-time.Hour * 24 * 5),
		},
		{
			DebateID:   debate.ID,
			Side:       models.SideFor,
			Text:       "Other regulated industries already check age without collapsing.",
			AuthorName: "Carol Davis",
			CreatedAt:  now.Add(-time.Hour * 24 * 4),
		},
	}
	for _, arg := range sampleArguments {
		db.MongoDatabase.Collection("arguments").InsertOne(dbCtx, arg)
	}
}

// PopulateTestUsers inserts sample users into the database
func PopulateTestUsers() {
	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.MongoDatabase.Collection("users")
	count, err := collection.CountDocuments(dbCtx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	hash, err := HashPassword("changeme123")
	if err != nil {
		return
	}

	users := []models.User{
		{
			ID:           primitive.NewObjectID(),
			Email:        "alice@example.com",
			DisplayName:  "Alice Johnson",
			PasswordHash: hash,
			Bio:          "Debate enthusiast",
			CreatedAt:    time.Now(),
		},
		{
			ID:           primitive.NewObjectID(),
			Email:        "bob@example.com",
			DisplayName:  "Bob Smith",
			PasswordHash: hash,
			Bio:          "Argument master",
			CreatedAt:    time.Now(),
		},
		{
			ID:           primitive.NewObjectID(),
			Email:        "carol@example.com",
			DisplayName:  "Carol Davis",
			PasswordHash: hash,
			Bio:          "Wordsmith",
			CreatedAt:    time.Now(),
		},
	}

	for _, user := range users {
		collection.InsertOne(dbCtx, user)
	}
}
