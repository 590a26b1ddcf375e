package main

import (
	"time"

	"github.com/sabbir-mahmud/expense-backend/models"
)

// Summary holds the all-time and current-month aggregates for one user.
type Summary struct {
	TotalEarn        float64 `json:"totalEarn"`
	TotalExpense     float64 `json:"totalExpense"`
	ThisMonthEarn    float64 `json:"thisMonthEarn"`
	ThisMonthExpense float64 `json:"thisMonthExpense"`
	Balance          float64 `json:"balance"`
}

// summarize aggregates a user's expenses in memory. The current month is the
// half-open window [first of month, first of next month) in now's location,
// which includes both calendar boundaries of the month.
func summarize(expenses []models.Expense, now time.Time) Summary {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonthStart := monthStart.AddDate(0, 1, 0)

	var s Summary
	for _, e := range expenses {
		inMonth := !e.Date.Before(monthStart) && e.Date.Before(nextMonthStart)
		switch e.Type {
		case models.TypeEarn:
			s.TotalEarn += e.Amount
			if inMonth {
				s.ThisMonthEarn += e.Amount
			}
		case models.TypeExpense:
			s.TotalExpense += e.Amount
			if inMonth {
				s.ThisMonthExpense += e.Amount
			}
		}
	}
	s.Balance = s.TotalEarn - s.TotalExpense
	return s
}
