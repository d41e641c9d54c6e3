package routes

import (
	"agorahub/controllers"
	"agorahub/websocket"

	"github.com/gin-gonic/gin"
)

// SetupDebateRoutes registers the debate, argument, export and
// leaderboard endpoints on an authenticated group.
func SetupDebateRoutes(router *gin.RouterGroup) {
	router.POST("/debates", controllers.CreateDebateHandler)
	router.GET("/debates", controllers.ListDebatesHandler)
	router.GET("/debates/:id", controllers.GetDebateHandler)
	router.DELETE("/debates/:id", controllers.DeleteDebateHandler)

	router.POST("/debates/:id/arguments", controllers.CreateArgumentHandler)
	router.GET("/debates/:id/arguments", controllers.ListArgumentsHandler)

	router.GET("/debates/:id/export", controllers.ExportDebateHandler)

	router.GET("/leaderboard", controllers.GetLeaderboard)
}

// SetupFeedRoutes registers the live argument feed. The websocket
// handler validates the token itself since it arrives as a query
// parameter rather than a header.
func SetupFeedRoutes(router *gin.Engine) {
	router.GET("/ws/debates/:id", websocket.DebateFeedHandler)
}
