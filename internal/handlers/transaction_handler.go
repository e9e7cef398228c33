package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finai/internal/engine"
	apperrors "finai/internal/errors"
	"finai/internal/models"
	"finai/internal/pagination"
)

// TransactionHandler handles transaction requests
type TransactionHandler struct {
	engine *engine.Manager
}

// NewTransactionHandler creates a new TransactionHandler
func NewTransactionHandler(eng *engine.Manager) *TransactionHandler {
	return &TransactionHandler{engine: eng}
}

// CreateTransactionRequest represents the transaction creation payload
type CreateTransactionRequest struct {
	Amount       float64      `json:"amount" binding:"required,gt=0"`
	Category     string       `json:"category" binding:"max=100"`
	Description  string       `json:"description" binding:"max=500"`
	Date         models.Date  `json:"date"`
	Type         string       `json:"type" binding:"required,transaction_type"`
	IsRecurring  bool         `json:"isRecurring"`
	Recurrence   string       `json:"recurrence" binding:"omitempty,frequency"`
	IntervalDays int          `json:"recurrenceIntervalDays" binding:"omitempty,gt=0"`
	EndDate      *models.Date `json:"recurrenceEndDate"`
}

// ListTransactions returns one page of the user's transactions
// @Summary     List transactions
// @Description Get transactions for the authenticated user, most recent first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number"  default(1)
// @Param       page_size query int false "Page size"    default(20)
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Transactions page"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	c.JSON(http.StatusOK, h.engine.Session(userID).Transactions(page))
}

// CreateTransaction records a transaction
// @Summary     Create a transaction
// @Description Record an income or expense transaction; expenses count against the matching budget category
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction data"
// @Success     201 {object} models.Transaction "Created transaction"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.engine.Session(userID).AddTransaction(engine.TransactionInput{
		Amount:                 req.Amount,
		Category:               req.Category,
		Description:            req.Description,
		Date:                   req.Date,
		Type:                   models.TransactionType(req.Type),
		IsRecurring:            req.IsRecurring,
		Recurrence:             models.Frequency(req.Recurrence),
		RecurrenceIntervalDays: req.IntervalDays,
		RecurrenceEndDate:      req.EndDate,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tx)
}
