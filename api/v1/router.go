package v1

import (
	"github.com/gestor-backend/middleware"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/login", Login)
		authGroup.POST("/logout", Logout)
		authGroup.POST("/check", middleware.AuthMiddleware(), CheckPermissions)
		authGroup.GET("/roles", middleware.AuthMiddleware(), ListRoles)
		authGroup.POST("/roles", middleware.AuthMiddleware(), CreateRole)
		authGroup.PUT("/roles", middleware.AuthMiddleware(), UpdateRole)
		authGroup.DELETE("/roles/:uuid", middleware.AuthMiddleware(), DeleteRole)
	}

	// Everything below requires an authenticated caller
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware())

	userGroup := protected.Group("/users")
	{
		userGroup.GET("", ListUsers)
		userGroup.GET("/:uuid", GetUser)
		userGroup.POST("", CreateUser)
		userGroup.PUT("", UpdateUser)
		userGroup.PUT("/password", UpdatePassword)
		userGroup.DELETE("/:uuid", DeleteUser)
	}

	clientGroup := protected.Group("/clients")
	{
		clientGroup.GET("", ListClients)
		clientGroup.POST("", CreateClient)
		clientGroup.PUT("", UpdateClient)
		clientGroup.DELETE("/:uuid", DeleteClient)
	}

	supplierGroup := protected.Group("/suppliers")
	{
		supplierGroup.GET("", ListSuppliers)
		supplierGroup.POST("", CreateSupplier)
		supplierGroup.PUT("", UpdateSupplier)
		supplierGroup.DELETE("/:uuid", DeleteSupplier)
	}

	statusGroup := protected.Group("/statuses")
	{
		statusGroup.GET("", ListStatuses)
		statusGroup.POST("", CreateStatus)
		statusGroup.PUT("", UpdateStatus)
		statusGroup.DELETE("/:uuid", DeleteStatus)
	}

	projectGroup := protected.Group("/projects")
	{
		projectGroup.GET("", ListProjects)
		projectGroup.POST("", CreateProject)
		projectGroup.PUT("", UpdateProject)
		projectGroup.DELETE("/:uuid", DeleteProject)
		projectGroup.GET("/:uuid/tasks", ListProjectTasks)
		projectGroup.PUT("/tasks", UpdateProjectTasks)
	}

	budgetGroup := protected.Group("/budgets")
	{
		budgetGroup.GET("/:uuid", GetBudget)
		budgetGroup.PUT("", UpdateBudget)
	}

	taskGroup := protected.Group("/tasks")
	{
		taskGroup.GET("/:uuid", GetTask)
		taskGroup.POST("", CreateTask)
		taskGroup.PUT("", UpdateTask)
		taskGroup.DELETE("/:uuid", DeleteTask)
	}

	activityGroup := protected.Group("/activities")
	{
		activityGroup.GET("", ListActivities)
		activityGroup.POST("", CreateActivity)
		activityGroup.PUT("", UpdateActivity)
		activityGroup.DELETE("/:uuid", DeleteActivity)
	}

	expenseGroup := protected.Group("/expenses")
	{
		expenseGroup.GET("", ListExpenses)
		expenseGroup.POST("", CreateExpense)
		expenseGroup.PUT("", UpdateExpense)
		expenseGroup.DELETE("/:uuid", DeleteExpense)
	}

	transactionGroup := protected.Group("/transactions")
	{
		transactionGroup.GET("", ListTransactions)
		transactionGroup.POST("", CreateTransaction)
		transactionGroup.PUT("", UpdateTransaction)
		transactionGroup.DELETE("/:uuid", DeleteTransaction)
	}
}
