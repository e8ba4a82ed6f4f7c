package graph

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers graph traversal routes with the Echo router
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/graph")

	g.GET("/paths", h.FindPaths)
	g.GET("/neighborhood/:wordId", h.GetNeighborhood)
}
