package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finai/internal/engine"
	apperrors "finai/internal/errors"
	"finai/internal/models"
)

// GoalHandler handles savings goal requests
type GoalHandler struct {
	engine *engine.Manager
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(eng *engine.Manager) *GoalHandler {
	return &GoalHandler{engine: eng}
}

// CreateGoalRequest represents the goal creation payload
type CreateGoalRequest struct {
	Name                string      `json:"name" binding:"required,max=100"`
	Description         string      `json:"description" binding:"max=500"`
	Current             float64     `json:"current" binding:"gte=0"`
	Target              float64     `json:"target" binding:"required,gt=0"`
	TargetDate          models.Date `json:"targetDate"`
	Category            string      `json:"category" binding:"max=100"`
	MonthlyContribution float64     `json:"monthlyContribution" binding:"gte=0"`
	Color               string      `json:"color" binding:"omitempty,hex_color"`
}

// UpdateGoalRequest represents a partial goal update payload
type UpdateGoalRequest struct {
	Name                *string      `json:"name" binding:"omitempty,max=100"`
	Description         *string      `json:"description" binding:"omitempty,max=500"`
	Current             *float64     `json:"current" binding:"omitempty,gte=0"`
	Target              *float64     `json:"target" binding:"omitempty,gt=0"`
	TargetDate          *models.Date `json:"targetDate"`
	Category            *string      `json:"category" binding:"omitempty,max=100"`
	MonthlyContribution *float64     `json:"monthlyContribution" binding:"omitempty,gte=0"`
	Color               *string      `json:"color" binding:"omitempty,hex_color"`
}

// AddMoneyRequest represents a contribution toward a goal
type AddMoneyRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// ListGoals returns the user's savings goals
// @Summary     List savings goals
// @Description Get all savings goals for the authenticated user
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.SavingsGoal "Savings goals"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": h.engine.Session(userID).SavingsGoals()})
}

// CreateGoal creates a savings goal
// @Summary     Create a savings goal
// @Description Create a new savings goal with a target amount
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal data"
// @Success     201 {object} models.SavingsGoal "Created goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.engine.Session(userID).AddSavingsGoal(engine.SavingsGoalInput{
		Name:                req.Name,
		Description:         req.Description,
		Current:             req.Current,
		Target:              req.Target,
		TargetDate:          req.TargetDate,
		Category:            req.Category,
		MonthlyContribution: req.MonthlyContribution,
		Color:               req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// UpdateGoal applies a partial update to a savings goal
// @Summary     Update a savings goal
// @Description Update fields of an existing savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Goal ID"
// @Param       request body UpdateGoalRequest true "Fields to update"
// @Success     200 {object} models.SavingsGoal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.engine.Session(userID).UpdateSavingsGoal(c.Param("id"), engine.SavingsGoalPatch{
		Name:                req.Name,
		Description:         req.Description,
		Current:             req.Current,
		Target:              req.Target,
		TargetDate:          req.TargetDate,
		Category:            req.Category,
		MonthlyContribution: req.MonthlyContribution,
		Color:               req.Color,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}
	if goal == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "Goal not found"))
		return
	}

	c.JSON(http.StatusOK, goal)
}

// DeleteGoal removes a savings goal
// @Summary     Delete a savings goal
// @Description Delete a savings goal
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     204 "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.engine.Session(userID).DeleteSavingsGoal(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AddMoney contributes money toward a goal
// @Summary     Add money to a goal
// @Description Add a contribution; the balance is capped at the target
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Goal ID"
// @Param       request body AddMoneyRequest true "Contribution amount"
// @Success     200 {object} models.SavingsGoal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Router      /goals/{id}/money [post]
func (h *GoalHandler) AddMoney(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.engine.Session(userID).AddMoneyToGoal(c.Param("id"), req.Amount)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if goal == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "Goal not found"))
		return
	}

	c.JSON(http.StatusOK, goal)
}
