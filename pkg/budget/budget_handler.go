package budget

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Lilia-Brown/expensy-api/internal/rest"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	ID           string          `json:"id"`
	City         string          `json:"city"`
	BudgetAmount decimal.Decimal `json:"budgetAmount"`
	Currency     string          `json:"currency"`
	StartDate    string          `json:"startDate"`
	EndDate      string          `json:"endDate,omitempty"`
	UserID       string          `json:"userId"`
}

type createBudgetDTO struct {
	City         string           `json:"city"`
	BudgetAmount *decimal.Decimal `json:"budgetAmount"`
	Currency     string           `json:"currency"`
	StartDate    string           `json:"startDate"`
	EndDate      string           `json:"endDate"`
}

// patchBudgetDTO models a merge-patch body: a nil field was absent from the
// request and must leave the stored value untouched.
type patchBudgetDTO struct {
	City         *string          `json:"city"`
	BudgetAmount *decimal.Decimal `json:"budgetAmount"`
	Currency     *string          `json:"currency"`
	StartDate    *string          `json:"startDate"`
	EndDate      *string          `json:"endDate"`
}

type BudgetHandler struct {
	budgetService BudgetService
}

func NewBudgetHandler(budgetService BudgetService) *BudgetHandler {
	return &BudgetHandler{budgetService}
}

// GetAll handles GET /budgets: the caller's budgets, most recent start date first.
func (handler *BudgetHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	budgets, err := handler.budgetService.GetAll(r.Context())
	if err != nil {
		log.Errorf("failed to fetch budgets: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to fetch budgets.")
		return
	}

	dtos := make([]BudgetDTO, 0, len(budgets))
	for _, budget := range budgets {
		dtos = append(dtos, BudgetToDTO(budget))
	}
	rest.JSON(w, http.StatusOK, dtos)
}

// Get handles GET /budgets/{id}.
func (handler *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	budget, err := handler.budgetService.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		rest.Error(w, http.StatusNotFound, "Budget not found or not authorized to view.")
		return
	} else if err != nil {
		log.Errorf("failed to fetch budget: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to fetch budget.")
		return
	}

	rest.JSON(w, http.StatusOK, BudgetToDTO(budget))
}

// GetByCity handles GET /budgets/city/{cityName}: the unique (user, city) budget.
func (handler *BudgetHandler) GetByCity(w http.ResponseWriter, r *http.Request) {
	city := mux.Vars(r)["cityName"]

	budget, err := handler.budgetService.GetByCity(r.Context(), city)
	if errors.Is(err, ErrNotFound) {
		rest.Error(w, http.StatusNotFound, fmt.Sprintf("Budget not found for city: %s and authenticated user.", city))
		return
	} else if err != nil {
		log.Errorf("failed to fetch budget by city: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to fetch budget by city.")
		return
	}

	rest.JSON(w, http.StatusOK, BudgetToDTO(budget))
}

// Create handles POST /budgets.
func (handler *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new budget")

	var dto createBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if dto.City == "" || dto.BudgetAmount == nil || dto.Currency == "" || dto.StartDate == "" {
		rest.Error(w, http.StatusBadRequest, "Missing required fields: city, budgetAmount, currency, startDate")
		return
	}

	startDate, err := rest.ParseDate(dto.StartDate)
	if err != nil {
		rest.Error(w, http.StatusBadRequest, "Invalid startDate format.")
		return
	}
	var endDate time.Time
	if dto.EndDate != "" {
		endDate, err = rest.ParseDate(dto.EndDate)
		if err != nil {
			rest.Error(w, http.StatusBadRequest, "Invalid endDate format.")
			return
		}
	}

	created, err := handler.budgetService.Create(r.Context(), Budget{
		City:         dto.City,
		BudgetAmount: *dto.BudgetAmount,
		Currency:     dto.Currency,
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if errors.Is(err, ErrCityExists) {
		rest.Error(w, http.StatusInternalServerError, "Failed to create budget. A budget for this city already exists.")
		return
	} else if err != nil {
		log.Errorf("failed to create budget: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to create budget. Check if userId exist.")
		return
	}

	rest.JSON(w, http.StatusCreated, BudgetToDTO(created))
}

// Update handles PUT /budgets/{id} with merge-patch semantics.
func (handler *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var dto patchBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	patch := Patch{
		City:         dto.City,
		BudgetAmount: dto.BudgetAmount,
		Currency:     dto.Currency,
	}
	if dto.StartDate != nil {
		startDate, err := rest.ParseDate(*dto.StartDate)
		if err != nil {
			rest.Error(w, http.StatusBadRequest, "Invalid startDate format.")
			return
		}
		patch.StartDate = &startDate
	}
	if dto.EndDate != nil {
		endDate, err := rest.ParseDate(*dto.EndDate)
		if err != nil {
			rest.Error(w, http.StatusBadRequest, "Invalid endDate format.")
			return
		}
		patch.EndDate = &endDate
	}

	updated, err := handler.budgetService.Update(r.Context(), id, patch)
	if errors.Is(err, ErrNotFound) {
		rest.Error(w, http.StatusNotFound, "Budget not found or not authorized to update.")
		return
	} else if err != nil {
		log.Errorf("failed to update budget: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to update budget. Check input data or IDs.")
		return
	}

	rest.JSON(w, http.StatusOK, BudgetToDTO(updated))
}

// Delete handles DELETE /budgets/{id}. A repeated delete of the same id is 404.
func (handler *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := handler.budgetService.Delete(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		rest.Error(w, http.StatusNotFound, "Budget not found.")
		return
	} else if err != nil {
		log.Errorf("failed to delete budget: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to delete budget.")
		return
	}

	// 204 No Content for successful deletion with no response body
	w.WriteHeader(http.StatusNoContent)
}

func BudgetToDTO(budget Budget) BudgetDTO {
	var endDate string
	if !budget.EndDate.IsZero() {
		endDate = budget.EndDate.Format("2006-01-02")
	}
	return BudgetDTO{
		ID:           budget.ID,
		City:         budget.City,
		BudgetAmount: budget.BudgetAmount,
		Currency:     budget.Currency,
		StartDate:    budget.StartDate.Format("2006-01-02"),
		EndDate:      endDate,
		UserID:       budget.UserID,
	}
}
