package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, viewHandler *ViewHandler, periodHandler *PeriodHandler, transactionHandler *TransactionHandler, budgetHandler *BudgetHandler, savingsHandler *SavingsHandler, accountHandler *AccountHandler, categoryHandler *CategoryHandler, wsHandler *WebSocketHandler) {
	// API version 1
	api := e.Group("/api/v1")

	// Derived state
	api.GET("/view", viewHandler.GetView)
	api.GET("/status", viewHandler.GetStatus)

	// Period navigation and filters
	api.POST("/period/next", periodHandler.Next)
	api.POST("/period/previous", periodHandler.Previous)
	api.POST("/period/jump", periodHandler.Jump)
	api.PUT("/filters", periodHandler.SetFilters)
	api.POST("/refresh", periodHandler.Refresh)

	// Transactions
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.POST("/transactions/transfers", transactionHandler.CreateTransfer)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	// Budgets
	api.GET("/budgets/:year/:month", budgetHandler.GetBudgets)
	api.POST("/budgets", budgetHandler.CreateBudget)
	api.DELETE("/budgets/:id", budgetHandler.DeleteBudget)

	// Savings goals
	api.POST("/savings", savingsHandler.CreateGoal)
	api.POST("/savings/:id/deposits", savingsHandler.AddFunds)
	api.DELETE("/savings/:id", savingsHandler.DeleteGoal)

	// Accounts
	api.POST("/accounts", accountHandler.CreateAccount)
	api.DELETE("/accounts/:id", accountHandler.DeleteAccount)

	// Categories
	api.POST("/categories", categoryHandler.CreateCategory)
	api.PUT("/categories/:id", categoryHandler.UpdateCategory)

	// WebSocket push
	e.GET("/ws", wsHandler.HandleWS)
}
