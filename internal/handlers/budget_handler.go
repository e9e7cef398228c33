package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"finai/internal/engine"
	apperrors "finai/internal/errors"
	"finai/internal/models"
)

// BudgetHandler handles budget category requests
type BudgetHandler struct {
	engine *engine.Manager
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(eng *engine.Manager) *BudgetHandler {
	return &BudgetHandler{engine: eng}
}

// CreateCategoryRequest represents the category creation payload
type CreateCategoryRequest struct {
	Name   string  `json:"name" binding:"required,max=100"`
	Budget float64 `json:"budget" binding:"required,gt=0"`
	Color  string  `json:"color" binding:"omitempty,hex_color"`
}

// UpdateCategoryRequest represents a partial category update payload
type UpdateCategoryRequest struct {
	Name   *string  `json:"name" binding:"omitempty,max=100"`
	Budget *float64 `json:"budget" binding:"omitempty,gt=0"`
	Spent  *float64 `json:"spent" binding:"omitempty,gte=0"`
	Color  *string  `json:"color" binding:"omitempty,hex_color"`
	Trend  *string  `json:"trend" binding:"omitempty,trend"`
}

// ListCategories returns the user's budget categories
// @Summary     List budget categories
// @Description Get all budget categories for the authenticated user
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} models.BudgetCategory "Budget categories"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets [get]
func (h *BudgetHandler) ListCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	session := h.engine.Session(userID)
	c.JSON(http.StatusOK, gin.H{"categories": session.BudgetCategories()})
}

// CreateCategory creates a budget category
// @Summary     Create a budget category
// @Description Create a new budget category with a spending target
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category data"
// @Success     201 {object} models.BudgetCategory "Created category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets [post]
func (h *BudgetHandler) CreateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	cat, err := h.engine.Session(userID).AddBudgetCategory(req.Name, req.Budget, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, cat)
}

// UpdateCategory applies a partial update to a budget category
// @Summary     Update a budget category
// @Description Update fields of an existing budget category
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string                true "Category ID"
// @Param       request body UpdateCategoryRequest true "Fields to update"
// @Success     200 {object} models.BudgetCategory "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /budgets/{id} [put]
func (h *BudgetHandler) UpdateCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := engine.BudgetCategoryPatch{
		Name:   req.Name,
		Budget: req.Budget,
		Spent:  req.Spent,
		Color:  req.Color,
	}
	if req.Trend != nil {
		trend := models.Trend(*req.Trend)
		patch.Trend = &trend
	}

	cat, err := h.engine.Session(userID).UpdateBudgetCategory(c.Param("id"), patch)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if cat == nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "Category not found"))
		return
	}

	c.JSON(http.StatusOK, cat)
}

// DeleteCategory removes a budget category
// @Summary     Delete a budget category
// @Description Delete a budget category; historical transactions are kept
// @Tags        budgets
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     204 "Deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /budgets/{id} [delete]
func (h *BudgetHandler) DeleteCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.engine.Session(userID).DeleteBudgetCategory(c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
