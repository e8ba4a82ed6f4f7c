package relations

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/lexigraph/pkg/apperror"
)

// Handler handles relation HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new relations handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func parseID(c echo.Context, param, what string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.ErrBadRequest.WithMessage("invalid " + what + " id")
	}
	return id, nil
}

// List handles GET /api/relations
func (h *Handler) List(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	rels, err := h.svc.List(c.Request().Context(), offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rels)
}

// GetByID handles GET /api/relations/:id
func (h *Handler) GetByID(c echo.Context) error {
	id, err := parseID(c, "id", "relation")
	if err != nil {
		return err
	}

	rel, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rel)
}

// ListForWord handles GET /api/words/:id/relations
func (h *Handler) ListForWord(c echo.Context) error {
	wordID, err := parseID(c, "id", "word")
	if err != nil {
		return err
	}

	rels, err := h.svc.ListForWord(c.Request().Context(), wordID, c.QueryParam("direction"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rels)
}

// GetBetween handles GET /api/relations/between
func (h *Handler) GetBetween(c echo.Context) error {
	sourceID, err := strconv.ParseInt(c.QueryParam("source_id"), 10, 64)
	if err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid source_id")
	}
	targetID, err := strconv.ParseInt(c.QueryParam("target_id"), 10, 64)
	if err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid target_id")
	}

	rel, err := h.svc.GetBetween(c.Request().Context(), sourceID, targetID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rel)
}

// Create handles POST /api/relations
func (h *Handler) Create(c echo.Context) error {
	var req CreateRelationRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	rel, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, rel)
}

// Update handles PATCH /api/relations/:id
func (h *Handler) Update(c echo.Context) error {
	id, err := parseID(c, "id", "relation")
	if err != nil {
		return err
	}

	var req UpdateRelationRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	rel, err := h.svc.Update(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, rel)
}

// Delete handles DELETE /api/relations/:id
func (h *Handler) Delete(c echo.Context) error {
	id, err := parseID(c, "id", "relation")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
