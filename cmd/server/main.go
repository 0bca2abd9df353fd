package main

import (
	"log"
	"net/http"

	_ "conduit/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"conduit/internal/auth"
	"conduit/internal/cache"
	"conduit/internal/config"
	"conduit/internal/db"
	"conduit/internal/handler"
	"conduit/internal/model"
	"conduit/internal/repository"
	"conduit/internal/router"
	"conduit/internal/service"
)

// @title Conduit API
// @version 1.0
// @description Social blogging REST API: articles, comments, profiles, follows, favorites and tags.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Type "Token" followed by a space and the JWT.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Comment{},
		&model.Favorite{},
		&model.Following{},
		&model.Tag{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)

	// Services
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	userService := service.NewUserService(userRepo, jwtService)
	articleService := service.NewArticleService(articleRepo, userRepo, favoriteRepo, followRepo, tagRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, articleRepo, userRepo)
	profileService := service.NewProfileService(userRepo, followRepo)
	tagService := service.NewTagService(tagRepo, cacheClient)

	// Handlers
	userHandler := handler.NewUserHandler(userService)
	articleHandler := handler.NewArticleHandler(articleService)
	commentHandler := handler.NewCommentHandler(commentService)
	profileHandler := handler.NewProfileHandler(profileService)
	tagHandler := handler.NewTagHandler(tagService)

	router.Register(
		e,
		cfg,
		jwtService,
		userHandler,
		articleHandler,
		commentHandler,
		profileHandler,
		tagHandler,
	)

	swaggerHost := cfg.SwaggerHost
	if swaggerHost == "" {
		swaggerHost = "http://localhost:" + cfg.ServerPort
	}
	log.Printf("Swagger documentation available at: %s/swagger/index.html", swaggerHost)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
