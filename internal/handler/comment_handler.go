package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "conduit/internal/errors"
	"conduit/internal/service"
)

// CommentHandler handles comment endpoints.
type CommentHandler struct {
	commentService service.CommentService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// NewComment is the inner payload of a comment creation request.
type NewComment struct {
	Body string `json:"body" validate:"required"`
}

// NewCommentRequest represents a comment creation envelope.
type NewCommentRequest struct {
	Comment NewComment `json:"comment"`
}

// List godoc
// @Summary List an article's comments
// @Tags comments
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug}/comments [get]
func (h *CommentHandler) List(c echo.Context) error {
	comments, err := h.commentService.List(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"comments": comments})
}

// Create godoc
// @Summary Add a comment to an article
// @Tags comments
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param slug path string true "Article slug"
// @Param request body NewCommentRequest true "Comment data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	var req NewCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.commentService.Create(c.Request().Context(), identity(c), c.Param("slug"), req.Comment.Body)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"comment": comment})
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Security TokenAuth
// @Param slug path string true "Article slug"
// @Param id path int true "Comment ID"
// @Success 200
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug}/comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return httpError(apperrors.ErrCommentNotFound)
	}

	if err := h.commentService.Delete(c.Request().Context(), identity(c), c.Param("slug"), uint(id)); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}
