package structs

type CreateDebateRequest struct {
	Topic       string `json:"topic" binding:"required"`
	Description string `json:"description"`
}

type CreateArgumentRequest struct {
	Side string `json:"side" binding:"required"`
	Text string `json:"text" binding:"required"`
}
