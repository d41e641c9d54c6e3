package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"agorahub/db"
	"agorahub/models"
	"agorahub/services"
	"agorahub/structs"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type debateWithStats struct {
	models.Debate `json:",inline"`
	Stats         services.DebateStats `json:"stats"`
}

// CreateDebateHandler handles POST /debates and creates a new debate topic.
func CreateDebateHandler(c *gin.Context) {
	var request structs.CreateDebateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	email, exists := c.Get("email")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: user email not found"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	user, err := db.UserByEmail(ctx, email.(string))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	debate := models.Debate{
		ID:          primitive.NewObjectID(),
		Topic:       request.Topic,
		Description: request.Description,
		CreatedBy:   user.ID,
		CreatorName: user.DisplayName,
		CreatedAt:   time.Now(),
	}

	if _, err := db.GetCollection("debates").InsertOne(ctx, debate); err != nil {
		log.Printf("Failed to create debate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create debate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"debate": debate})
}

// ListDebatesHandler handles GET /debates. Every debate embeds its
// statistics, recomputed from the current arguments.
func ListDebatesHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := db.GetCollection("debates").Find(ctx, bson.M{}, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch debates"})
		return
	}
	defer cursor.Close(ctx)

	var debates []models.Debate
	if err := cursor.All(ctx, &debates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode debates"})
		return
	}

	responses := make([]debateWithStats, 0, len(debates))
	for _, debate := range debates {
		arguments, err := db.ArgumentsForDebate(ctx, debate.ID)
		if err != nil {
			log.Printf("Failed to fetch arguments for debate %s: %v", debate.ID.Hex(), err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch debates"})
			return
		}
		responses = append(responses, debateWithStats{
			Debate: debate,
			Stats:  services.ComputeStats(arguments),
		})
	}

	c.JSON(http.StatusOK, gin.H{"debates": responses})
}

// GetDebateHandler handles GET /debates/:id and returns the debate, its
// arguments in creation order, and its statistics.
func GetDebateHandler(c *gin.Context) {
	debateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debate ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var debate models.Debate
	err = db.GetCollection("debates").FindOne(ctx, bson.M{"_id": debateID}).Decode(&debate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch debate"})
		return
	}

	arguments, err := db.ArgumentsForDebate(ctx, debateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch arguments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"debate":    debate,
		"arguments": arguments,
		"stats":     services.ComputeStats(arguments),
	})
}

// DeleteDebateHandler handles DELETE /debates/:id. Only the creator may delete.
func DeleteDebateHandler(c *gin.Context) {
	debateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debate ID"})
		return
	}

	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: user not found"})
		return
	}
	callerID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: invalid user id"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var debate models.Debate
	err = db.GetCollection("debates").FindOne(ctx, bson.M{"_id": debateID}).Decode(&debate)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch debate"})
		return
	}

	if debate.CreatedBy != callerID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the creator can delete a debate"})
		return
	}

	if _, err := db.GetCollection("debates").DeleteOne(ctx, bson.M{"_id": debateID}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete debate"})
		return
	}
	if _, err := db.GetCollection("arguments").DeleteMany(ctx, bson.M{"debateId": debateID}); err != nil {
		log.Printf("Failed to delete arguments for debate %s: %v", debateID.Hex(), err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Debate deleted"})
}
