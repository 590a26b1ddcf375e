package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sabbir-mahmud/expense-backend/models"
)

func setupIntegrationServer(t *testing.T) *gin.Engine {
	// integration tests are opt-in. Set DB_DSN_TEST=1 and DB_DSN to run them.
	if os.Getenv("DB_DSN_TEST") != "1" {
		t.Skip("integration tests are disabled; set DB_DSN_TEST=1 to enable")
	}
	gin.SetMode(gin.TestMode)
	cfg := LoadConfig()
	db, err := initDB(cfg)
	if err != nil {
		t.Fatalf("initDB failed: %v", err)
	}
	app := newApp(cfg, db)
	r := gin.New()
	app.setupRoutes(r)
	return r
}

func TestFullFlow(t *testing.T) {
	r := setupIntegrationServer(t)

	email := fmt.Sprintf("it-%d@example.com", time.Now().UnixNano())

	// 1. Register
	resp := performRequest(r, http.MethodPost, "/api/v1/register", gin.H{"email": email, "password": "secret1"}, "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("register failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 2. Login
	resp = performRequest(r, http.MethodPost, "/api/v1/login", gin.H{"email": email, "password": "secret1"}, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("login failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var loginResp map[string]any
	_ = json.Unmarshal(resp.Body.Bytes(), &loginResp)
	token, _ := loginResp["token"].(string)
	if token == "" {
		t.Fatalf("empty token in login response: %+v", loginResp)
	}

	// 3. Create expense
	date := time.Now().UTC().Format(time.RFC3339)
	resp = performRequest(r, http.MethodPost, "/api/v1/expense",
		gin.H{"date": date, "details": "integration", "amount": 12.5, "type": "expense"}, token)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create expense failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var created struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(resp.Body.Bytes(), &created)
	if created.ID == "" {
		t.Fatalf("empty id in create response: %s", resp.Body.String())
	}

	// 4. List
	resp = performRequest(r, http.MethodGet, "/api/v1/expenses", nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("list failed status=%d body=%s", resp.Code, resp.Body.String())
	}
	var list []models.Expense
	_ = json.Unmarshal(resp.Body.Bytes(), &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 expense got %d", len(list))
	}

	// 5. Summary
	resp = performRequest(r, http.MethodGet, "/api/v1/financial-summary", nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("summary failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 6. Update
	resp = performRequest(r, http.MethodPatch, "/api/v1/expense/"+created.ID,
		gin.H{"date": date, "details": "integration-updated", "amount": 13.0, "type": "expense"}, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("update failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 7. Delete
	resp = performRequest(r, http.MethodDelete, "/api/v1/expense/"+created.ID, nil, token)
	if resp.Code != http.StatusOK {
		t.Fatalf("delete failed status=%d body=%s", resp.Code, resp.Body.String())
	}

	// 8. Unauthorized access to a protected endpoint is 401
	unauth := performRequest(r, http.MethodGet, "/api/v1/expenses", nil, "")
	if unauth.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthorized list got %d", unauth.Code)
	}
}
