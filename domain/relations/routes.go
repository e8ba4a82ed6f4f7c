package relations

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers relation routes with the Echo router
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/relations")

	g.GET("", h.List)
	g.GET("/between", h.GetBetween)
	g.GET("/:id", h.GetByID)
	g.POST("", h.Create)
	g.PATCH("/:id", h.Update)
	g.DELETE("/:id", h.Delete)

	e.GET("/api/words/:id/relations", h.ListForWord)
}
