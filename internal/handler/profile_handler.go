package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"conduit/internal/service"
)

// ProfileHandler handles profile and follow endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get godoc
// @Summary Get a user's profile
// @Tags profiles
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/{username} [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.profileService.Get(c.Request().Context(), c.Param("username"), identity(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}

// Follow godoc
// @Summary Follow a user
// @Tags profiles
// @Produce json
// @Security TokenAuth
// @Param username path string true "Username"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/{username}/follow [post]
func (h *ProfileHandler) Follow(c echo.Context) error {
	profile, err := h.profileService.Follow(c.Request().Context(), c.Param("username"), identity(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}

// Unfollow godoc
// @Summary Unfollow a user
// @Tags profiles
// @Produce json
// @Security TokenAuth
// @Param username path string true "Username"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/{username}/follow [delete]
func (h *ProfileHandler) Unfollow(c echo.Context) error {
	profile, err := h.profileService.Unfollow(c.Request().Context(), c.Param("username"), identity(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"profile": profile})
}
