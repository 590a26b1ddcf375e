package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sabbir-mahmud/expense-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

const claimsKey = "authClaims"

func (a *App) setupRoutes(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.POST("/register", a.registerHandler)
	api.POST("/login", a.loginHandler)

	authed := api.Group("")
	authed.Use(a.requireAuth())
	authed.POST("/expense", a.createExpenseHandler)
	authed.GET("/expenses", a.listExpensesHandler)
	authed.PATCH("/expense/:id", a.updateExpenseHandler)
	authed.DELETE("/expense/:id", a.deleteExpenseHandler)
	authed.GET("/financial-summary", a.financialSummaryHandler)

	r.GET("/dashboard", a.requireAuth(), a.dashboardHandler)
}

// requireAuth gates protected routes. A missing token is 401; a token that is
// present but invalid, expired, or tampered is 403. On success the decoded
// claims are attached to the request context for handlers to pass on.
func (a *App) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token missing"})
			return
		}
		claims, err := a.verifyToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid token"})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// authClaims returns the identity attached by requireAuth.
func authClaims(c *gin.Context) *Claims {
	v, _ := c.Get(claimsKey)
	claims, _ := v.(*Claims)
	return claims
}

func (a *App) registerHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}
	if err := a.RegisterUser(req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, ErrUserExists):
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		case errors.Is(err, ErrWeakPassword), errors.Is(err, ErrEmailRequired):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error registering user"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (a *App) loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}
	user, err := a.Authenticate(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email or password"})
		return
	}
	token, err := a.issueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

// expenseRequest is the mutable part of an expense; owner and id never come
// from the request body.
type expenseRequest struct {
	Date    time.Time `json:"date" binding:"required"`
	Details string    `json:"details" binding:"required"`
	Amount  *float64  `json:"amount" binding:"required"`
	Type    string    `json:"type" binding:"required"`
}

func (r *expenseRequest) validate() error {
	if !models.ValidType(r.Type) {
		return errors.New(`Invalid type. Must be "earn" or "expense"`)
	}
	if *r.Amount < 0 {
		return errors.New("Amount must be non-negative")
	}
	return nil
}

func (a *App) createExpenseHandler(c *gin.Context) {
	claims := authClaims(c)
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date, details, amount and type are required"})
		return
	}
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	// owner is always the authenticated caller
	expense := models.NewExpense(claims.UserID, req.Date, req.Details, *req.Amount, req.Type)
	if err := a.db.Create(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error saving expense"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Expense recorded successfully", "id": expense.ID})
}

func (a *App) listExpensesHandler(c *gin.Context) {
	claims := authClaims(c)
	expenses := []models.Expense{}
	err := a.db.Where("user_id = ?", claims.UserID).
		Order("date desc").
		Limit(100).
		Find(&expenses).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching expenses"})
		return
	}
	c.JSON(http.StatusOK, expenses)
}

func (a *App) updateExpenseHandler(c *gin.Context) {
	claims := authClaims(c)
	id := c.Param("id")
	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "date, details, amount and type are required"})
		return
	}
	// reject bad input before touching the store
	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	// existence and ownership collapse into one outcome so other users'
	// record ids are never disclosed
	var expense models.Expense
	if err := a.db.Where("id = ? AND user_id = ?", id, claims.UserID).First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found or not authorized"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating expense"})
		return
	}
	expense.Date = req.Date
	expense.Details = req.Details
	expense.Amount = *req.Amount
	expense.Type = req.Type
	if err := a.db.Save(&expense).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating expense"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense updated successfully", "expense": expense})
}

func (a *App) deleteExpenseHandler(c *gin.Context) {
	claims := authClaims(c)
	id := c.Param("id")
	res := a.db.Where("id = ? AND user_id = ?", id, claims.UserID).Delete(&models.Expense{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting expense"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Expense not found or not authorized"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

func (a *App) financialSummaryHandler(c *gin.Context) {
	claims := authClaims(c)
	var expenses []models.Expense
	if err := a.db.Where("user_id = ?", claims.UserID).Find(&expenses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error calculating financial summary"})
		return
	}
	c.JSON(http.StatusOK, summarize(expenses, a.now()))
}

func (a *App) dashboardHandler(c *gin.Context) {
	claims := authClaims(c)
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Welcome, %s", claims.Email)})
}
