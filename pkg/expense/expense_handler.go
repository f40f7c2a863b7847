package expense

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Lilia-Brown/expensy-api/internal/rest"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type ExpenseDTO struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
	City        string          `json:"city"`
	Latitude    *float64        `json:"latitude,omitempty"`
	Longitude   *float64        `json:"longitude,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	Source      string          `json:"source,omitempty"`
	UserID      string          `json:"userId"`
	CategoryID  string          `json:"categoryId"`
}

type createExpenseDTO struct {
	Amount      *decimal.Decimal `json:"amount"`
	Currency    string           `json:"currency"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	City        string           `json:"city"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Notes       string           `json:"notes"`
	Source      string           `json:"source"`
	CategoryID  string           `json:"categoryId"`
}

// patchExpenseDTO models a merge-patch body: a nil field was absent from the
// request and must leave the stored value untouched.
type patchExpenseDTO struct {
	Amount      *decimal.Decimal `json:"amount"`
	Currency    *string          `json:"currency"`
	Description *string          `json:"description"`
	Date        *string          `json:"date"`
	City        *string          `json:"city"`
	Latitude    *float64         `json:"latitude"`
	Longitude   *float64         `json:"longitude"`
	Notes       *string          `json:"notes"`
	Source      *string          `json:"source"`
	CategoryID  *string          `json:"categoryId"`
}

type ExpenseHandler struct {
	expenseService ExpenseService
}

func NewExpenseHandler(expenseService ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService}
}

// GetAll handles GET /expenses with optional city, categoryId, startDate and
// endDate query filters. The date range is inclusive.
func (handler *ExpenseHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := Filter{
		City:       query.Get("city"),
		CategoryID: query.Get("categoryId"),
	}
	if value := query.Get("startDate"); value != "" {
		startDate, err := rest.ParseDate(value)
		if err != nil {
			rest.Error(w, http.StatusBadRequest, "Invalid startDate format.")
			return
		}
		filter.StartDate = startDate
	}
	if value := query.Get("endDate"); value != "" {
		endDate, err := rest.ParseDate(value)
		if err != nil {
			rest.Error(w, http.StatusBadRequest, "Invalid endDate format.")
			return
		}
		filter.EndDate = endDate
	}

	expenses, err := handler.expenseService.GetAll(r.Context(), filter)
	if err != nil {
		log.Errorf("failed to fetch expenses: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to fetch expenses.")
		return
	}

	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, expense := range expenses {
		dtos = append(dtos, ExpenseToDTO(expense))
	}
	rest.JSON(w, http.StatusOK, dtos)
}

// Get handles GET /expenses/{id}.
func (handler *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	expense, err := handler.expenseService.Get(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		rest.Error(w, http.StatusNotFound, "Expense not found or not authorized to view.")
		return
	} else if err != nil {
		log.Errorf("failed to fetch expense: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to fetch expense.")
		return
	}

	rest.JSON(w, http.StatusOK, ExpenseToDTO(expense))
}

// Create handles POST /expenses.
func (handler *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Registering new expense")

	var dto createExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if dto.Amount == nil || dto.Currency == "" || dto.Date == "" || dto.City == "" || dto.CategoryID == "" {
		rest.Error(w, http.StatusBadRequest, "Missing required fields: amount, currency, date, city, categoryId")
		return
	}

	date, err := rest.ParseDate(dto.Date)
	if err != nil {
		rest.Error(w, http.StatusBadRequest, "Invalid date format.")
		return
	}

	created, err := handler.expenseService.Create(r.Context(), Expense{
		Amount:      *dto.Amount,
		Currency:    dto.Currency,
		Description: dto.Description,
		Date:        date,
		City:        dto.City,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Notes:       dto.Notes,
		Source:      dto.Source,
		CategoryID:  dto.CategoryID,
	})
	if err != nil {
		log.Errorf("failed to create expense: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to create expense. Check if userId or categoryId exist.")
		return
	}

	rest.JSON(w, http.StatusCreated, ExpenseToDTO(created))
}

// Update handles PUT /expenses/{id} with merge-patch semantics.
func (handler *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var dto patchExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	patch := Patch{
		Amount:      dto.Amount,
		Currency:    dto.Currency,
		Description: dto.Description,
		City:        dto.City,
		Latitude:    dto.Latitude,
		Longitude:   dto.Longitude,
		Notes:       dto.Notes,
		Source:      dto.Source,
		CategoryID:  dto.CategoryID,
	}
	if dto.Date != nil {
		date, err := rest.ParseDate(*dto.Date)
		if err != nil {
			rest.Error(w, http.StatusBadRequest, "Invalid date format.")
			return
		}
		patch.Date = &date
	}

	updated, err := handler.expenseService.Update(r.Context(), id, patch)
	if errors.Is(err, ErrNotFound) {
		rest.Error(w, http.StatusNotFound, "Expense not found or not authorized to update.")
		return
	} else if err != nil {
		log.Errorf("failed to update expense: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to update expense. Check input data or IDs.")
		return
	}

	rest.JSON(w, http.StatusOK, ExpenseToDTO(updated))
}

// Delete handles DELETE /expenses/{id}. A repeated delete of the same id is 404.
func (handler *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := handler.expenseService.Delete(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		rest.Error(w, http.StatusNotFound, "Expense not found.")
		return
	} else if err != nil {
		log.Errorf("failed to delete expense: %v", err)
		rest.Error(w, http.StatusInternalServerError, "Failed to delete expense.")
		return
	}

	// 204 No Content for successful deletion with no response body
	w.WriteHeader(http.StatusNoContent)
}

func ExpenseToDTO(expense Expense) ExpenseDTO {
	return ExpenseDTO{
		ID:          expense.ID,
		Amount:      expense.Amount,
		Currency:    expense.Currency,
		Description: expense.Description,
		Date:        expense.Date,
		City:        expense.City,
		Latitude:    expense.Latitude,
		Longitude:   expense.Longitude,
		Notes:       expense.Notes,
		Source:      expense.Source,
		UserID:      expense.UserID,
		CategoryID:  expense.CategoryID,
	}
}
