package app

import (
	"time"

	"github.com/Lilia-Brown/expensy-api/internal/config"
	"github.com/Lilia-Brown/expensy-api/pkg/auth"
	"github.com/Lilia-Brown/expensy-api/pkg/budget"
	"github.com/Lilia-Brown/expensy-api/pkg/category"
	"github.com/Lilia-Brown/expensy-api/pkg/expense"
	"github.com/Lilia-Brown/expensy-api/pkg/user"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	TokenService   auth.TokenService
	AuthMiddleware *auth.Middleware
	AuthService    auth.Service
	AuthHandler    *auth.Handler

	UserRepo    user.Repo
	UserService user.Service
	UserHandler *user.Handler

	CategoryRepo    category.Repo
	CategoryService category.Service
	CategoryHandler *category.Handler

	BudgetRepo    budget.BudgetRepo
	BudgetService *budget.BudgetServiceImpl
	BudgetHandler *budget.BudgetHandler

	ExpenseRepo    expense.ExpenseRepo
	ExpenseService *expense.ExpenseServiceImpl
	ExpenseHandler *expense.ExpenseHandler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *pgxpool.Pool, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	hasher := auth.NewBcryptHasher()

	deps.TokenService = auth.NewTokenService(cfg.Auth.JwtSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	deps.AuthMiddleware = auth.NewMiddleware(deps.TokenService)

	deps.UserRepo = user.NewUserRepo(db)
	deps.UserService = user.NewUserService(deps.UserRepo, hasher)
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.AuthService = auth.NewService(deps.UserRepo, hasher, deps.TokenService)
	deps.AuthHandler = auth.NewHandler(deps.AuthService)

	deps.CategoryRepo = category.NewCategoryRepo(db)
	deps.CategoryService = category.NewCategoryService(deps.CategoryRepo)
	deps.CategoryHandler = category.NewHandler(deps.CategoryService)

	deps.BudgetRepo = budget.NewBudgetRepo(db)
	deps.BudgetService = budget.NewBudgetService(deps.BudgetRepo)
	deps.BudgetHandler = budget.NewBudgetHandler(deps.BudgetService)

	deps.ExpenseRepo = expense.NewExpenseRepo(db)
	deps.ExpenseService = expense.NewExpenseService(deps.ExpenseRepo)
	deps.ExpenseHandler = expense.NewExpenseHandler(deps.ExpenseService)

	return deps
}
