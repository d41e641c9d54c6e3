package db

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"time"

	"agorahub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var MongoClient *mongo.Client
var MongoDatabase *mongo.Database

// GetCollection returns a collection by name
func GetCollection(collectionName string) *mongo.Collection {
	return MongoDatabase.Collection(collectionName)
}

// extractDBName parses the database name from the URI, defaulting to "agorahub"
func extractDBName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return "agorahub"
	}
	if u.Path != "" && u.Path != "/" {
		return u.Path[1:] // Trim leading '/'
	}
	return "agorahub"
}

// ConnectMongoDB establishes a connection to MongoDB using the provided URI
func ConnectMongoDB(uri string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Verify connection with a ping
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	MongoClient = client
	dbName := extractDBName(uri)
	log.Printf("Using database: %s", dbName)

	MongoDatabase = client.Database(dbName)
	return nil
}

// EnsureIndexes creates the indexes the queries below rely on.
func EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := MongoDatabase.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	_, err = MongoDatabase.Collection("arguments").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "debateId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create arguments index: %w", err)
	}

	return nil
}

// ArgumentsForDebate returns a debate's arguments ordered by creation time ascending
func ArgumentsForDebate(ctx context.Context, debateID primitive.ObjectID) ([]models.Argument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := MongoDatabase.Collection("arguments").Find(ctx, bson.M{"debateId": debateID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch arguments: %w", err)
	}
	defer cursor.Close(ctx)

	arguments := []models.Argument{}
	if err := cursor.All(ctx, &arguments); err != nil {
		return nil, fmt.Errorf("failed to decode arguments: %w", err)
	}
	return arguments, nil
}

// UserByEmail looks up a user document by email address
func UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := MongoDatabase.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
