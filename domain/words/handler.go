package words

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/lexigraph/lexigraph/pkg/apperror"
)

// Handler handles word HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates a new words handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func parseWordID(c echo.Context, param string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.ErrBadRequest.WithMessage("invalid word id")
	}
	return id, nil
}

// List handles GET /api/words
func (h *Handler) List(c echo.Context) error {
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	// Lookup by text takes precedence over listing
	if text := c.QueryParam("text"); text != "" {
		word, err := h.svc.GetByText(c.Request().Context(), text)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, []*WordResponse{word})
	}

	ws, err := h.svc.List(c.Request().Context(), offset, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ws)
}

// GetByID handles GET /api/words/:id
func (h *Handler) GetByID(c echo.Context) error {
	id, err := parseWordID(c, "id")
	if err != nil {
		return err
	}

	word, err := h.svc.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, word)
}

// Create handles POST /api/words
func (h *Handler) Create(c echo.Context) error {
	var req CreateWordRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	word, err := h.svc.Create(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, word)
}

// Update handles PATCH /api/words/:id
func (h *Handler) Update(c echo.Context) error {
	id, err := parseWordID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateWordRequest
	if err := c.Bind(&req); err != nil {
		return apperror.ErrBadRequest.WithMessage("invalid request body")
	}

	word, err := h.svc.Update(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, word)
}

// Delete handles DELETE /api/words/:id
func (h *Handler) Delete(c echo.Context) error {
	id, err := parseWordID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
