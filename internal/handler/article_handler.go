package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"conduit/internal/repository"
	"conduit/internal/service"
)

// ArticleHandler handles article endpoints.
type ArticleHandler struct {
	articleService service.ArticleService
}

// NewArticleHandler creates a new article handler.
func NewArticleHandler(articleService service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// NewArticle is the inner payload of an article creation request.
type NewArticle struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	TagList     []string `json:"tagList"`
}

// NewArticleRequest represents an article creation envelope.
type NewArticleRequest struct {
	Article NewArticle `json:"article"`
}

// UpdateArticle is the inner payload of an article update; nil fields are
// ignored.
type UpdateArticle struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Body        *string   `json:"body"`
	TagList     *[]string `json:"tagList"`
}

// UpdateArticleRequest represents an article update envelope.
type UpdateArticleRequest struct {
	Article UpdateArticle `json:"article"`
}

// List godoc
// @Summary List articles
// @Tags articles
// @Produce json
// @Param author query string false "Filter by author username"
// @Param tag query string false "Filter by tag"
// @Param limit query int false "Page size (default 20)"
// @Param skip query int false "Offset (default 0)"
// @Success 200 {object} map[string]interface{}
// @Router /articles [get]
func (h *ArticleHandler) List(c echo.Context) error {
	filter := repository.ArticleFilter{
		Author: c.QueryParam("author"),
		Tag:    c.QueryParam("tag"),
		Limit:  queryInt(c, "limit", 0),
		Skip:   queryInt(c, "skip", 0),
	}

	articles, count, err := h.articleService.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"articles": articles, "articlesCount": count})
}

// Feed godoc
// @Summary List articles authored by followed users
// @Tags articles
// @Produce json
// @Security TokenAuth
// @Param limit query int false "Page size (default 20)"
// @Param skip query int false "Offset (default 0)"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Router /articles/feed [get]
func (h *ArticleHandler) Feed(c echo.Context) error {
	articles, count, err := h.articleService.Feed(
		c.Request().Context(),
		identity(c),
		queryInt(c, "limit", 0),
		queryInt(c, "skip", 0),
	)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"articles": articles, "articlesCount": count})
}

// Get godoc
// @Summary Get an article by slug
// @Tags articles
// @Produce json
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug} [get]
func (h *ArticleHandler) Get(c echo.Context) error {
	article, err := h.articleService.Get(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"article": article})
}

// Create godoc
// @Summary Create an article
// @Tags articles
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body NewArticleRequest true "Article data"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /articles [post]
func (h *ArticleHandler) Create(c echo.Context) error {
	var req NewArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	article, err := h.articleService.Create(c.Request().Context(), identity(c), service.ArticleInput{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		TagList:     req.Article.TagList,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"article": article})
}

// Update godoc
// @Summary Update an article
// @Tags articles
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param slug path string true "Article slug"
// @Param request body UpdateArticleRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug} [put]
func (h *ArticleHandler) Update(c echo.Context) error {
	var req UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	article, err := h.articleService.Update(c.Request().Context(), identity(c), c.Param("slug"), service.ArticlePatch{
		Title:       req.Article.Title,
		Description: req.Article.Description,
		Body:        req.Article.Body,
		TagList:     req.Article.TagList,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"article": article})
}

// Delete godoc
// @Summary Delete an article
// @Tags articles
// @Security TokenAuth
// @Param slug path string true "Article slug"
// @Success 200
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug} [delete]
func (h *ArticleHandler) Delete(c echo.Context) error {
	if err := h.articleService.Delete(c.Request().Context(), identity(c), c.Param("slug")); err != nil {
		return httpError(err)
	}
	return c.NoContent(http.StatusOK)
}

// Favorite godoc
// @Summary Favorite an article
// @Tags articles
// @Produce json
// @Security TokenAuth
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug}/favorite [post]
func (h *ArticleHandler) Favorite(c echo.Context) error {
	article, err := h.articleService.Favorite(c.Request().Context(), identity(c), c.Param("slug"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"article": article})
}

// Unfavorite godoc
// @Summary Remove a favorite from an article
// @Tags articles
// @Produce json
// @Security TokenAuth
// @Param slug path string true "Article slug"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /articles/{slug}/favorite [delete]
func (h *ArticleHandler) Unfavorite(c echo.Context) error {
	article, err := h.articleService.Unfavorite(c.Request().Context(), identity(c), c.Param("slug"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"article": article})
}
