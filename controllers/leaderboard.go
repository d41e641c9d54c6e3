package controllers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"agorahub/db"
	"agorahub/models"
	"agorahub/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// Debater represents a leaderboard entry
type Debater struct {
	Rank      int    `json:"rank"`
	Name      string `json:"name"`
	Points    int    `json:"points"`
	Arguments int    `json:"arguments"`
	Debates   int    `json:"debates"`
}

// GetLeaderboard ranks authors by the total points their arguments have
// earned across all debates, using the same point rule as debate stats.
func GetLeaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.GetCollection("arguments").Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard data"})
		return
	}
	defer cursor.Close(ctx)

	var arguments []models.Argument
	if err := cursor.All(ctx, &arguments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode leaderboard data"})
		return
	}

	type tally struct {
		points    int
		arguments int
		debates   map[string]struct{}
	}
	tallies := make(map[string]*tally)

	for _, arg := range arguments {
		entry, ok := tallies[arg.AuthorName]
		if !ok {
			entry = &tally{debates: make(map[string]struct{})}
			tallies[arg.AuthorName] = entry
		}
		entry.points += services.ArgumentPoints(arg)
		entry.arguments++
		entry.debates[arg.DebateID.Hex()] = struct{}{}
	}

	debaters := make([]Debater, 0, len(tallies))
	for name, entry := range tallies {
		debaters = append(debaters, Debater{
			Name:      name,
			Points:    entry.points,
			Arguments: entry.arguments,
			Debates:   len(entry.debates),
		})
	}

	sort.Slice(debaters, func(i, j int) bool {
		if debaters[i].Points != debaters[j].Points {
			return debaters[i].Points > debaters[j].Points
		}
		return debaters[i].Name < debaters[j].Name
	})
	for i := range debaters {
		debaters[i].Rank = i + 1
	}

	c.JSON(http.StatusOK, gin.H{"debaters": debaters})
}
