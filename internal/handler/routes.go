package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, categoryHandler *CategoryHandler, transactionHandler *TransactionHandler, recurringHandler *RecurringHandler, reportHandler *ReportHandler) {
	api := e.Group("/api")

	// Category routes
	categories := api.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Recurring payment routes
	recurring := api.Group("/recurring-payments")
	recurring.POST("", recurringHandler.CreateRecurring)
	recurring.GET("", recurringHandler.GetRecurringPayments)
	recurring.GET("/summary", recurringHandler.GetRecurringSummary)
	recurring.PUT("/:id", recurringHandler.UpdateRecurring)
	recurring.DELETE("/:id", recurringHandler.DeleteRecurring)
	recurring.PATCH("/:id/toggle-active", recurringHandler.ToggleActive)
	recurring.POST("/:id/advance", recurringHandler.AdvanceRecurring)

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("/summary", reportHandler.GetDashboardSummary)
	dashboard.GET("/monthly-trend", reportHandler.GetMonthlyTrend)
}
