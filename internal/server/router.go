package server

import (
	"github.com/gin-gonic/gin"

	"paylist/internal/logging"
)

// Router configures the Gin engine with all routes and middleware.
func Router(h *Handler, log logging.Logger) *gin.Engine {
	r := gin.New()

	r.Use(Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(log))

	r.GET("/", h.Index)

	api := r.Group("/api")
	api.POST("/preview", h.Preview)
	api.POST("/generate", h.Generate)

	return r
}
