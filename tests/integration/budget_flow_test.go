package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestBudgetFlow_SpendLinkageAndInsights(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "budget@test.com", "password123")

	// Create a category.
	rec := app.request("POST", "/api/v1/budgets",
		`{"name":"Dining","budget":100,"color":"#ef4444"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category failed: %d %s", rec.Code, rec.Body.String())
	}
	catID := parseJSON(t, rec)["id"].(string)

	// An expense in that category (case-insensitive) raises spent.
	rec = app.request("POST", "/api/v1/transactions",
		`{"amount":150,"category":"dining","description":"Dinner","type":"expense"}`, token)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create transaction failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/budgets", "", token)
	cats := parseJSON(t, rec)["categories"].([]interface{})
	cat := cats[0].(map[string]interface{})
	if cat["spent"] != float64(150) {
		t.Errorf("expected spent 150, got %v", cat["spent"])
	}

	// Over-budget spend produced an insight with a stable id.
	rec = app.request("GET", "/api/v1/insights", "", token)
	insights := parseJSON(t, rec)["insights"].([]interface{})
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	insight := insights[0].(map[string]interface{})
	if insight["id"] != "budget:"+catID {
		t.Errorf("expected insight id budget:%s, got %v", catID, insight["id"])
	}

	// Dismissing hides it.
	rec = app.request("POST", fmt.Sprintf("/api/v1/insights/%s/dismiss", insight["id"]), "", token)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("dismiss failed: %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/insights", "", token)
	if left := parseJSON(t, rec)["insights"].([]interface{}); len(left) != 0 {
		t.Errorf("expected no active insights after dismiss, got %d", len(left))
	}

	// And a notification flags the overage.
	rec = app.request("GET", "/api/v1/notifications", "", token)
	notes := parseJSON(t, rec)["notifications"].([]interface{})
	if len(notes) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notes))
	}
}

func TestBudgetFlow_StateSurvivesLogout(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "persist@test.com", "password123")

	app.request("POST", "/api/v1/budgets", `{"name":"Rent","budget":1200}`, token)

	rec := app.request("POST", "/api/v1/auth/logout", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", rec.Code)
	}

	// A new login reloads the persisted snapshot.
	newToken := app.loginUser(t, "persist@test.com", "password123")
	rec = app.request("GET", "/api/v1/budgets", "", newToken)
	cats := parseJSON(t, rec)["categories"].([]interface{})
	if len(cats) != 1 {
		t.Fatalf("expected persisted category after logout/login, got %d", len(cats))
	}
}

func TestBudgetFlow_UserIsolation(t *testing.T) {
	app := setupApp(t)
	token1, _ := app.registerUser(t, "iso1@test.com", "password123")
	token2, _ := app.registerUser(t, "iso2@test.com", "password123")

	app.request("POST", "/api/v1/budgets", `{"name":"Groceries","budget":500}`, token1)

	rec := app.request("GET", "/api/v1/budgets", "", token2)
	cats := parseJSON(t, rec)["categories"].([]interface{})
	if len(cats) != 0 {
		t.Errorf("second user must not see first user's categories, got %d", len(cats))
	}
}

func TestDashboardFlow(t *testing.T) {
	app := setupApp(t)
	token, _ := app.registerUser(t, "dash@test.com", "password123")

	app.request("PUT", "/api/v1/income", `{"monthlyIncome":5000}`, token)
	app.request("POST", "/api/v1/budgets", `{"name":"Rent","budget":2000}`, token)
	app.request("POST", "/api/v1/transactions",
		`{"amount":1500,"category":"Rent","description":"June rent","type":"expense"}`, token)

	rec := app.request("GET", "/api/v1/dashboard", "", token)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard failed: %d %s", rec.Code, rec.Body.String())
	}
	body := parseJSON(t, rec)

	metrics := body["metrics"].(map[string]interface{})
	if metrics["totalSpent"] != float64(1500) {
		t.Errorf("expected total spent 1500, got %v", metrics["totalSpent"])
	}
	if metrics["savingsRate"] != float64(70) {
		t.Errorf("expected savings rate 70, got %v", metrics["savingsRate"])
	}
	if _, ok := body["suggestions"].([]interface{}); !ok {
		t.Error("expected suggestions in dashboard bundle")
	}
	if _, ok := body["monthlyTrends"].([]interface{}); !ok {
		t.Error("expected monthly trends in dashboard bundle")
	}
}
