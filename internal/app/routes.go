package app

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints. Routes on the protected
// subrouter require a valid bearer token.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	r.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Welcome to Expensy!"))
	}).Methods("GET")

	// Registration & login
	r.HandleFunc("/users", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/auth/login", deps.AuthHandler.Login).Methods("POST")

	// Categories (shared, no ownership)
	r.HandleFunc("/categories", deps.CategoryHandler.GetAll).Methods("GET")
	r.HandleFunc("/categories", deps.CategoryHandler.Create).Methods("POST")

	protected := r.NewRoute().Subrouter()
	protected.Use(deps.AuthMiddleware.RequireAuth)

	// User profile
	protected.HandleFunc("/users/{id}", deps.UserHandler.GetUser).Methods("GET")

	// Budgets
	protected.HandleFunc("/budgets", deps.BudgetHandler.GetAll).Methods("GET")
	protected.HandleFunc("/budgets", deps.BudgetHandler.Create).Methods("POST")
	protected.HandleFunc("/budgets/city/{cityName}", deps.BudgetHandler.GetByCity).Methods("GET")
	protected.HandleFunc("/budgets/{id}", deps.BudgetHandler.Get).Methods("GET")
	protected.HandleFunc("/budgets/{id}", deps.BudgetHandler.Update).Methods("PUT")
	protected.HandleFunc("/budgets/{id}", deps.BudgetHandler.Delete).Methods("DELETE")

	// Expenses
	protected.HandleFunc("/expenses", deps.ExpenseHandler.GetAll).Methods("GET")
	protected.HandleFunc("/expenses", deps.ExpenseHandler.Create).Methods("POST")
	protected.HandleFunc("/expenses/{id}", deps.ExpenseHandler.Get).Methods("GET")
	protected.HandleFunc("/expenses/{id}", deps.ExpenseHandler.Update).Methods("PUT")
	protected.HandleFunc("/expenses/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")
}
