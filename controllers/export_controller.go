package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"agorahub/db"
	"agorahub/models"
	"agorahub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ExportDebateHandler handles GET /debates/:id/export and returns the
// debate with its arguments as an XML document.
func ExportDebateHandler(c *gin.Context) {
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

	out, err := services.MarshalDebateExport(services.BuildDebateExport(debate, arguments))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export debate"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="debate-%s.xml"`, debateID.Hex()))
	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}
