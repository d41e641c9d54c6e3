package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"agorahub/db"
	"agorahub/internal/ratelimit"
	"agorahub/models"
	"agorahub/structs"
	"agorahub/websocket"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateArgumentHandler handles POST /debates/:id/arguments. The side is
// validated here; the scorer downstream assumes it is well-formed.
func CreateArgumentHandler(c *gin.Context) {
	debateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debate ID"})
		return
	}

	var request structs.CreateArgumentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "message": err.Error()})
		return
	}

	side := models.Side(strings.ToLower(request.Side))
	if !models.ValidSide(side) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Side must be 'for' or 'against'"})
		return
	}

	if strings.TrimSpace(request.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Argument text is required"})
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

	// Make sure the debate exists before accepting an argument for it.
	err = db.GetCollection("debates").FindOne(ctx, bson.M{"_id": debateID}).Err()
	if err != nil {
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch debate"})
		return
	}

	limiter := ratelimit.NewLimiter()
	limitConfig := ratelimit.DefaultConfig()
	allowed, err := limiter.AllowArgument(debateID.Hex(), user.ID.Hex(), limitConfig)
	if err != nil {
		log.Printf("Rate limit check failed: %v", err)
	} else if !allowed {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many arguments, slow down"})
		return
	}

	argument := models.Argument{
		ID:         primitive.NewObjectID(),
		DebateID:   debateID,
		Side:       side,
		Text:       request.Text,
		AuthorName: user.DisplayName,
		CreatedAt:  time.Now(),
	}

	if _, err := db.GetCollection("arguments").InsertOne(ctx, argument); err != nil {
		log.Printf("Failed to insert argument: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit argument"})
		return
	}

	if err := limiter.RecordArgument(debateID.Hex(), user.ID.Hex(), limitConfig); err != nil {
		log.Printf("Failed to record rate limit entry: %v", err)
	}

	websocket.BroadcastArgument(debateID.Hex(), argument)

	c.JSON(http.StatusCreated, gin.H{"argument": argument})
}

// ListArgumentsHandler handles GET /debates/:id/arguments, ordered by
// creation time ascending.
func ListArgumentsHandler(c *gin.Context) {
	debateID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid debate ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	arguments, err := db.ArgumentsForDebate(ctx, debateID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch arguments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"arguments": arguments})
}
