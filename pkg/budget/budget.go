package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is a spending allowance for one user in one city over a date range.
// At most one budget exists per (user, city) pair.
type Budget struct {
	ID           string
	City         string
	BudgetAmount decimal.Decimal
	Currency     string
	StartDate    time.Time
	// EndDate is optional; the zero value means the budget is open-ended.
	EndDate time.Time
	UserID  string
}

// Patch carries a partial update. Only non-nil fields overwrite the stored
// budget; absent fields are left untouched.
type Patch struct {
	City         *string
	BudgetAmount *decimal.Decimal
	Currency     *string
	StartDate    *time.Time
	EndDate      *time.Time
}

// Apply merges the patch into b field by field.
func (p Patch) Apply(b Budget) Budget {
	if p.City != nil {
		b.City = *p.City
	}
	if p.BudgetAmount != nil {
		b.BudgetAmount = *p.BudgetAmount
	}
	if p.Currency != nil {
		b.Currency = *p.Currency
	}
	if p.StartDate != nil {
		b.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		b.EndDate = *p.EndDate
	}
	return b
}
