package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finai/internal/engine"
	apperrors "finai/internal/errors"
	"finai/internal/models"
)

// DashboardHandler serves the derived dashboard bundle and income settings
type DashboardHandler struct {
	engine *engine.Manager
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(eng *engine.Manager) *DashboardHandler {
	return &DashboardHandler{engine: eng}
}

// UpdateIncomeRequest represents the income settings payload
type UpdateIncomeRequest struct {
	MonthlyIncome *float64 `json:"monthlyIncome" binding:"omitempty,gte=0"`
	Frequency     *string  `json:"frequency" binding:"omitempty,frequency"`
	FrequencyDays int      `json:"frequencyDays" binding:"omitempty,gt=0"`
}

// GetDashboard returns the derived dashboard bundle
// @Summary     Get dashboard
// @Description Get derived metrics, advisory suggestions, monthly trends, income settings, and the debt payoff plan
// @Tags        dashboard
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Dashboard bundle"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	session := h.engine.Session(userID)
	income, freq := session.Income()
	c.JSON(http.StatusOK, gin.H{
		"metrics":         session.Metrics(),
		"suggestions":     session.Suggestions(),
		"monthlyTrends":   session.MonthlyTrends(),
		"monthlyIncome":   income,
		"incomeFrequency": freq,
		"payoffPlan":      session.PayoffPlan(),
	})
}

// UpdateIncome updates the monthly income and/or income frequency
// @Summary     Update income settings
// @Description Set monthly income and how often income arrives
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateIncomeRequest true "Income settings"
// @Success     200 {object} map[string]interface{} "Updated income settings"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /income [put]
func (h *DashboardHandler) UpdateIncome(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	if req.MonthlyIncome == nil && req.Frequency == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "Nothing to update"))
		return
	}

	session := h.engine.Session(userID)
	if req.MonthlyIncome != nil {
		if err := session.UpdateMonthlyIncome(*req.MonthlyIncome); err != nil {
			respondWithError(c, err)
			return
		}
	}
	if req.Frequency != nil {
		freq := models.IncomeFrequency{Type: models.Frequency(*req.Frequency), Days: req.FrequencyDays}
		if err := session.SetIncomeFrequency(freq); err != nil {
			respondWithError(c, err)
			return
		}
	}

	income, freq := session.Income()
	c.JSON(http.StatusOK, gin.H{
		"monthlyIncome":   income,
		"incomeFrequency": freq,
	})
}
