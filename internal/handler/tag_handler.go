package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"conduit/internal/service"
)

// TagHandler handles the tag listing endpoint.
type TagHandler struct {
	tagService service.TagService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(tagService service.TagService) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// List godoc
// @Summary List all tags
// @Tags tags
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tags [get]
func (h *TagHandler) List(c echo.Context) error {
	tags, err := h.tagService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"tags": tags})
}
