package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spending event recorded by a user against a category,
// optionally carrying a geolocation.
type Expense struct {
	ID          string
	Amount      decimal.Decimal
	Currency    string
	Description string
	Date        time.Time
	City        string
	Latitude    *float64
	Longitude   *float64
	Notes       string
	Source      string
	UserID      string
	CategoryID  string
}

// Filter narrows an expense listing. Zero values mean "no constraint";
// the date range is inclusive on both ends.
type Filter struct {
	City       string
	CategoryID string
	StartDate  time.Time
	EndDate    time.Time
}

// Patch carries a partial update. Only non-nil fields overwrite the stored
// expense; absent fields are left untouched.
type Patch struct {
	Amount      *decimal.Decimal
	Currency    *string
	Description *string
	Date        *time.Time
	City        *string
	Latitude    *float64
	Longitude   *float64
	Notes       *string
	Source      *string
	CategoryID  *string
}

// Apply merges the patch into e field by field.
func (p Patch) Apply(e Expense) Expense {
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Currency != nil {
		e.Currency = *p.Currency
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.City != nil {
		e.City = *p.City
	}
	if p.Latitude != nil {
		e.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		e.Longitude = p.Longitude
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Source != nil {
		e.Source = *p.Source
	}
	if p.CategoryID != nil {
		e.CategoryID = *p.CategoryID
	}
	return e
}
