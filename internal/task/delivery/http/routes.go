package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	tasks.Use(mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id/complete", h.Complete)
		tasks.DELETE("/:id", h.Delete)
		tasks.DELETE("", h.Clear)
	}
}
