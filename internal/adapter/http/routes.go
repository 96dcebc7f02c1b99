package http

import (
	"github.com/gin-gonic/gin"

	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/handlers"
	"github.com/rajeshprivate007/taskflow-backend/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, todoHandler *handlers.TodoHandler, jwtSecret string) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
	}

	todos := api.Group("/todos")
	todos.Use(middleware.AuthMiddleware(jwtSecret))
	{
		todos.GET("", todoHandler.ListTodos)
		todos.POST("", todoHandler.CreateTodo)
		todos.GET("/stats/overview", todoHandler.GetStats)
		todos.POST("/bulk", todoHandler.BulkAction)
		todos.GET("/:id", todoHandler.GetTodo)
		todos.PUT("/:id", todoHandler.UpdateTodo)
		todos.PATCH("/:id/toggle", todoHandler.ToggleTodo)
		todos.DELETE("/:id", todoHandler.DeleteTodo)
		todos.PATCH("/:id/archive", todoHandler.ArchiveTodo)
		todos.POST("/:id/subtasks", todoHandler.AddSubtask)
		todos.PATCH("/:id/subtasks/:subtaskId", todoHandler.ToggleSubtask)
		todos.POST("/:id/comments", todoHandler.AddComment)
	}
}
