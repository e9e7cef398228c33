package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finai/internal/engine"
)

// InsightHandler handles insight requests
type InsightHandler struct {
	engine *engine.Manager
}

// NewInsightHandler creates a new InsightHandler
func NewInsightHandler(eng *engine.Manager) *InsightHandler {
	return &InsightHandler{engine: eng}
}

// ListInsights returns the user's active (non-dismissed) insights
// @Summary     List active insights
// @Description Get rule-engine insights that have not been dismissed
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Insight "Active insights"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /insights [get]
func (h *InsightHandler) ListInsights(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": h.engine.Session(userID).ActiveInsights()})
}

// DismissInsight hides an insight from the active view
// @Summary     Dismiss an insight
// @Description Hide an insight; dismissing an unknown id is a no-op
// @Tags        insights
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Insight ID"
// @Success     204 "Dismissed"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /insights/{id}/dismiss [post]
func (h *InsightHandler) DismissInsight(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.engine.Session(userID).DismissInsight(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
