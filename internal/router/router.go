package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"conduit/internal/auth"
	"conduit/internal/config"
	"conduit/internal/handler"
)

// Register wires routes and middleware.
//
// Token extraction is non-enforcing: a missing or invalid token leaves the
// request anonymous and the services decide whether that is an error. The
// token travels as "Authorization: Token <jwt>" or a ?token= query param.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	userHandler *handler.UserHandler,
	articleHandler *handler.ArticleHandler,
	commentHandler *handler.CommentHandler,
	profileHandler *handler.ProfileHandler,
	tagHandler *handler.TagHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api", echojwt.WithConfig(echojwt.Config{
		ContextKey:  "identity",
		TokenLookup: "header:Authorization:Token ,query:token",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.Parse(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// continue as anonymous
			return nil
		},
		ContinueOnIgnoredError: true,
	}))

	// Users
	api.POST("/users", userHandler.Register)
	api.POST("/users/login", userHandler.Login)
	api.GET("/user", userHandler.Current)
	api.PUT("/user", userHandler.Update)

	// Articles
	api.GET("/articles", articleHandler.List)
	api.GET("/articles/feed", articleHandler.Feed)
	api.POST("/articles", articleHandler.Create)
	api.GET("/articles/:slug", articleHandler.Get)
	api.PUT("/articles/:slug", articleHandler.Update)
	api.DELETE("/articles/:slug", articleHandler.Delete)
	api.POST("/articles/:slug/favorite", articleHandler.Favorite)
	api.DELETE("/articles/:slug/favorite", articleHandler.Unfavorite)

	// Comments
	api.GET("/articles/:slug/comments", commentHandler.List)
	api.POST("/articles/:slug/comments", commentHandler.Create)
	api.DELETE("/articles/:slug/comments/:id", commentHandler.Delete)

	// Profiles
	api.GET("/profiles/:username", profileHandler.Get)
	api.POST("/profiles/:username/follow", profileHandler.Follow)
	api.DELETE("/profiles/:username/follow", profileHandler.Unfollow)

	// Tags
	api.GET("/tags", tagHandler.List)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
