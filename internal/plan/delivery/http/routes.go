package http

import (
	"github.com/gin-gonic/gin"

	"daily-task-scheduler/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	plans := rg.Group("/plans")
	plans.Use(mw.RateLimit())
	{
		plans.POST("/generate", h.Generate)
		plans.GET("/:date", h.Get)
		plans.PUT("/doc", h.SetDoc)
	}
	rg.GET("/doc", mw.RateLimit(), h.Doc)
	rg.GET("/status", mw.RateLimit(), h.Status)
}
