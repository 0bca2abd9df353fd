package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"conduit/internal/config"
	"conduit/internal/db"
	"conduit/internal/model"
	"conduit/internal/repository"
	"conduit/internal/service"
)

type seedUser struct {
	Username string
	Email    string
	Password string
	Bio      string
	Image    string
}

type seedArticle struct {
	Author      string
	Title       string
	Description string
	Body        string
	Tags        []string
}

var seedUsers = []seedUser{
	{Username: "jake", Email: "jake@example.com", Password: "jakejake", Bio: "I work at statefarm", Image: "https://i.stack.imgur.com/xHWG8.jpg"},
	{Username: "anah", Email: "anah@example.com", Password: "anahanah", Bio: "Coffee and compilers"},
	{Username: "celeb", Email: "celeb@example.com", Password: "celebceleb"},
}

var seedArticles = []seedArticle{
	{Author: "jake", Title: "How to train your dragon", Description: "Ever wonder how?", Body: "You have to believe", Tags: []string{"dragons", "training"}},
	{Author: "jake", Title: "How to train your dragon 2", Description: "So toothless", Body: "It takes a Jacobian", Tags: []string{"dragons"}},
	{Author: "anah", Title: "Brewing with care", Description: "Pour over basics", Body: "Grind fresh, pour slow", Tags: []string{"coffee"}},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Article{},
		&model.Comment{},
		&model.Favorite{},
		&model.Following{},
		&model.Tag{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	articleRepo := repository.NewArticleRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)

	users, err := seedUserRecords(ctx, userRepo)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	articles, err := seedArticleRecords(ctx, articleRepo, tagRepo, users)
	if err != nil {
		log.Fatalf("Failed to seed articles: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Users created: %d", len(users))
	log.Printf("  - Articles created: %d", articles)
}

func seedUserRecords(ctx context.Context, repo repository.UserRepository) (map[string]*model.User, error) {
	created := make(map[string]*model.User, len(seedUsers))
	for _, su := range seedUsers {
		if existing, err := repo.FindByUsername(ctx, su.Username); err == nil {
			log.Printf("User %q already exists, skipping", su.Username)
			created[su.Username] = existing
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", su.Username, err)
		}
		user := &model.User{
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: string(hashed),
			Bio:          su.Bio,
			Image:        su.Image,
		}
		if err := repo.Create(ctx, user); err != nil {
			return nil, fmt.Errorf("create user %s: %w", su.Username, err)
		}
		created[su.Username] = user
	}
	return created, nil
}

func seedArticleRecords(
	ctx context.Context,
	articles repository.ArticleRepository,
	tags repository.TagRepository,
	users map[string]*model.User,
) (int, error) {
	count := 0
	for _, sa := range seedArticles {
		author, ok := users[sa.Author]
		if !ok {
			return count, fmt.Errorf("unknown author %q", sa.Author)
		}

		slug := service.Slugify(sa.Title)
		if _, err := articles.FindBySlug(ctx, slug); err == nil {
			log.Printf("Article %q already exists, skipping", slug)
			continue
		}

		article := &model.Article{
			Slug:        slug,
			Title:       sa.Title,
			Description: sa.Description,
			Body:        sa.Body,
			TagList:     sa.Tags,
			AuthorID:    author.ID,
			Author:      author.Snapshot(),
		}
		if err := articles.Create(ctx, article); err != nil {
			return count, fmt.Errorf("create article %s: %w", slug, err)
		}
		if err := tags.Upsert(ctx, sa.Tags); err != nil {
			return count, fmt.Errorf("upsert tags for %s: %w", slug, err)
		}
		count++
	}
	return count, nil
}
