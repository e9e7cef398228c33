package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finai/internal/engine"
	apperrors "finai/internal/errors"
	"finai/internal/models"
)

// DebtHandler handles debt tracking requests
type DebtHandler struct {
	engine *engine.Manager
}

// NewDebtHandler creates a new DebtHandler
func NewDebtHandler(eng *engine.Manager) *DebtHandler {
	return &DebtHandler{engine: eng}
}

// CreateDebtRequest represents the debt creation payload
type CreateDebtRequest struct {
	Amount       float64     `json:"amount" binding:"required,gt=0"`
	Creditor     string      `json:"creditor" binding:"required,max=100"`
	Type         string      `json:"type" binding:"required,debt_type"`
	Description  string      `json:"description" binding:"max=500"`
	StartDate    models.Date `json:"startDate"`
	DueDate      models.Date `json:"dueDate"`
	Frequency    string      `json:"frequency" binding:"required,frequency"`
	InterestRate float64     `json:"interestRate" binding:"gte=0"`
}

// UpdateDebtRequest represents a partial debt update payload
type UpdateDebtRequest struct {
	Amount       *float64     `json:"amount" binding:"omitempty,gt=0"`
	Creditor     *string      `json:"creditor" binding:"omitempty,max=100"`
	Type         *string      `json:"type" binding:"omitempty,debt_type"`
	Description  *string      `json:"description" binding:"omitempty,max=500"`
	StartDate    *models.Date `json:"startDate"`
	DueDate      *models.Date `json:"dueDate"`
	Frequency    *string      `json:"frequency" binding:"omitempty,frequency"`
	InterestRate *float64     `json:"interestRate" binding:"omitempty,gte=0"`
}

// CreatePaymentRequest represents a payment toward a debt
type CreatePaymentRequest struct {
	Amount float64     `json:"amount" binding:"required,gt=0"`
	Date   models.Date `json:"date"`
}

// ListDebts returns the user's debts
// @Summary     List debts
// @Description Get all tracked debts with their payment history
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.Debt "Debts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts [get]
func (h *DebtHandler) ListDebts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debts": h.engine.Session(userID).Debts()})
}

// CreateDebt creates a debt
// @Summary     Create a debt
// @Description Track a new debt owed to a creditor
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateDebtRequest true "Debt data"
// @Success     201 {object} models.Debt "Created debt"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts [post]
func (h *DebtHandler) CreateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.engine.Session(userID).AddDebt(engine.DebtInput{
		Amount:       req.Amount,
		Creditor:     req.Creditor,
		Type:         models.DebtType(req.Type),
		Description:  req.Description,
		StartDate:    req.StartDate,
		DueDate:      req.DueDate,
		Frequency:    models.Frequency(req.Frequency),
		InterestRate: req.InterestRate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, debt)
}

// UpdateDebt applies a partial update to a debt
// @Summary     Update a debt
// @Description Update fields of an existing debt; changing the amount recomputes the remaining balance
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Debt ID"
// @Param       request body UpdateDebtRequest true "Fields to update"
// @Success     200 {object} models.Debt "Updated debt"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id} [put]
func (h *DebtHandler) UpdateDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := engine.DebtPatch{
		Amount:       req.Amount,
		Creditor:     req.Creditor,
		Description:  req.Description,
		StartDate:    req.StartDate,
		DueDate:      req.DueDate,
		InterestRate: req.InterestRate,
	}
	if req.Type != nil {
		dt := models.DebtType(*req.Type)
		patch.Type = &dt
	}
	if req.Frequency != nil {
		f := models.Frequency(*req.Frequency)
		patch.Frequency = &f
	}

	debt, err := h.engine.Session(userID).UpdateDebt(c.Param("id"), patch)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if debt == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "Debt not found"))
		return
	}

	c.JSON(http.StatusOK, debt)
}

// DeleteDebt removes a debt and its payment history
// @Summary     Delete a debt
// @Description Delete a debt along with its payments
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Debt ID"
// @Success     204 "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts/{id} [delete]
func (h *DebtHandler) DeleteDebt(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.engine.Session(userID).DeleteDebt(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePayment records a payment toward a debt
// @Summary     Record a debt payment
// @Description Append a payment; overpayment leaves a negative remaining balance
// @Tags        debts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string               true "Debt ID"
// @Param       request body CreatePaymentRequest true "Payment data"
// @Success     200 {object} models.Debt "Updated debt"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Debt not found"
// @Router      /debts/{id}/payments [post]
func (h *DebtHandler) CreatePayment(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	debt, err := h.engine.Session(userID).AddDebtPayment(c.Param("id"), req.Amount, req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if debt == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "Debt not found"))
		return
	}

	c.JSON(http.StatusOK, debt)
}

// GetPayoffPlan returns the snowball and avalanche payoff orderings
// @Summary     Get debt payoff plan
// @Description Get snowball and avalanche payoff orderings with debt totals
// @Tags        debts
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} engine.PayoffPlan "Payoff plan"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /debts/payoff-plan [get]
func (h *DebtHandler) GetPayoffPlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.engine.Session(userID).PayoffPlan())
}
