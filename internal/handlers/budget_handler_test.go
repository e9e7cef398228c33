package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupBudgetRouter(handler *BudgetHandler) *gin.Engine {
	r := gin.New()
	auth := r.Group("", injectUserID(testUserID))
	auth.GET("/budgets", handler.ListCategories)
	auth.POST("/budgets", handler.CreateCategory)
	auth.PUT("/budgets/:id", handler.UpdateCategory)
	auth.DELETE("/budgets/:id", handler.DeleteCategory)
	return r
}

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(newTestEngine()))

		rec := doRequest(r, http.MethodPost, "/budgets",
			`{"name":"Groceries","budget":500,"color":"#3b82f6"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["name"] != "Groceries" || body["spent"] != float64(0) {
			t.Errorf("unexpected response: %v", body)
		}
	})

	t.Run("missing_budget", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(newTestEngine()))

		rec := doRequest(r, http.MethodPost, "/budgets", `{"name":"Groceries"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("bad_color", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(newTestEngine()))

		rec := doRequest(r, http.MethodPost, "/budgets",
			`{"name":"Groceries","budget":500,"color":"blue"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestListCategories(t *testing.T) {
	eng := newTestEngine()
	r := setupBudgetRouter(NewBudgetHandler(eng))

	eng.Session(testUserID).AddBudgetCategory("Groceries", 500, "#3b82f6")
	eng.Session(testUserID).AddBudgetCategory("Rent", 1200, "#ef4444")

	rec := doRequest(r, http.MethodGet, "/budgets", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := parseJSON(t, rec)
	cats := body["categories"].([]interface{})
	if len(cats) != 2 {
		t.Errorf("expected 2 categories, got %d", len(cats))
	}
}

func TestUpdateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		eng := newTestEngine()
		r := setupBudgetRouter(NewBudgetHandler(eng))
		cat, _ := eng.Session(testUserID).AddBudgetCategory("Groceries", 500, "")

		rec := doRequest(r, http.MethodPut, fmt.Sprintf("/budgets/%s", cat.ID),
			`{"budget":650}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		body := parseJSON(t, rec)
		if body["budget"] != float64(650) {
			t.Errorf("expected budget 650, got %v", body["budget"])
		}
	})

	t.Run("unknown_id", func(t *testing.T) {
		r := setupBudgetRouter(NewBudgetHandler(newTestEngine()))

		rec := doRequest(r, http.MethodPut, "/budgets/missing", `{"budget":650}`)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	eng := newTestEngine()
	r := setupBudgetRouter(NewBudgetHandler(eng))
	cat, _ := eng.Session(testUserID).AddBudgetCategory("Groceries", 500, "")

	rec := doRequest(r, http.MethodDelete, fmt.Sprintf("/budgets/%s", cat.ID), "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if len(eng.Session(testUserID).BudgetCategories()) != 0 {
		t.Error("expected category removed")
	}
}
