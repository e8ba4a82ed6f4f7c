package graph

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/lexigraph/pkg/apperror"
)

// Handler handles graph traversal HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new graph handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func requiredInt64Query(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, apperror.ErrBadRequest.WithMessage(name + " is required")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.ErrBadRequest.WithMessage("invalid " + name)
	}
	return v, nil
}

// optionalIntQuery returns nil when the parameter is absent, so the service
// can fall back to its configured default.
func optionalIntQuery(c echo.Context, name string) (*int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, apperror.ErrBadRequest.WithMessage("invalid " + name)
	}
	return &v, nil
}

// FindPaths handles GET /api/graph/paths
func (h *Handler) FindPaths(c echo.Context) error {
	sourceID, err := requiredInt64Query(c, "source_id")
	if err != nil {
		return err
	}
	targetID, err := requiredInt64Query(c, "target_id")
	if err != nil {
		return err
	}

	q := &FindPathsQuery{SourceID: sourceID, TargetID: targetID}
	if q.MaxPaths, err = optionalIntQuery(c, "max_paths"); err != nil {
		return err
	}
	if q.MinLength, err = optionalIntQuery(c, "min_length"); err != nil {
		return err
	}
	if q.MaxLength, err = optionalIntQuery(c, "max_length"); err != nil {
		return err
	}

	paths, err := h.svc.FindPaths(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, paths)
}

// GetNeighborhood handles GET /api/graph/neighborhood/:wordId
func (h *Handler) GetNeighborhood(c echo.Context) error {
	wordID, err := strconv.ParseInt(c.Param("wordId"), 10, 64)
	if err != nil || wordID <= 0 {
		return apperror.ErrBadRequest.WithMessage("invalid word id")
	}

	q := &NeighborhoodQuery{WordID: wordID}
	if q.MaxLevel, err = optionalIntQuery(c, "max_level"); err != nil {
		return err
	}
	if q.MaxNodes, err = optionalIntQuery(c, "max_nodes"); err != nil {
		return err
	}
	if q.MaxEdgesPerNode, err = optionalIntQuery(c, "max_edges_per_node"); err != nil {
		return err
	}

	sub, err := h.svc.GetNeighborhood(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sub)
}
