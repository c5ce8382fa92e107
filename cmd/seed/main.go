package main

import (
	"fmt"
	"time"

	"blogium/internal/entity"
	"blogium/internal/repo/persistent"
	"blogium/pkg/config"
	"blogium/pkg/database"
	"blogium/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	categoryRepo := persistent.NewCategoryRepository(db)
	locationRepo := persistent.NewLocationRepository(db)
	commentRepo := persistent.NewCommentRepository(db)

	testUsers := []struct {
		email    string
		username string
		password string
		role     entity.UserRole
	}{
		{"alice@test.com", "alice_writes", "password123", entity.RoleAdmin},
		{"bob@test.com", "bob_blogs", "password123", entity.RoleUser},
		{"charlie@test.com", "charlie_posts", "password123", entity.RoleUser},
	}

	users := make([]*entity.User, 0, len(testUsers))
	for _, userData := range testUsers {
		if existing, err := userRepo.GetByUsername(userData.username); err == nil {
			log.Info("User %s already exists, skipping", userData.username)
			users = append(users, existing)
			continue
		}

		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(userData.password), bcrypt.DefaultCost)
		user := &entity.User{
			Email:    userData.email,
			Username: userData.username,
			Password: string(hashedPassword),
			Role:     userData.role,
			IsActive: true,
		}
		if err := userRepo.Create(user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.username, err)
		}
		log.Info("Created user: %s (%s)", user.Username, user.Email)
		users = append(users, user)
	}

	categories := []*entity.Category{
		{Title: "Travel", Description: "Trips and places", Slug: "travel", IsPublished: true},
		{Title: "Food", Description: "Recipes and restaurants", Slug: "food", IsPublished: true},
		{Title: "Internal", Description: "Not public yet", Slug: "internal", IsPublished: false},
	}
	for _, category := range categories {
		if _, err := categoryRepo.GetBySlug(category.Slug); err == nil {
			log.Info("Category %s already exists, skipping", category.Slug)
			continue
		}
		if err := categoryRepo.Create(category); err != nil {
			return fmt.Errorf("failed to create category %s: %w", category.Slug, err)
		}
		log.Info("Created category: %s", category.Title)
	}
	travel, err := categoryRepo.GetBySlug("travel")
	if err != nil {
		return err
	}
	internal, err := categoryRepo.GetBySlug("internal")
	if err != nil {
		return err
	}

	locations := []*entity.Location{
		{Name: "Lisbon", IsPublished: true},
		{Name: "Kyoto", IsPublished: true},
	}
	locationIDs := make([]string, 0, len(locations))
	for _, location := range locations {
		if err := locationRepo.Create(location); err != nil {
			return fmt.Errorf("failed to create location %s: %w", location.Name, err)
		}
		log.Info("Created location: %s", location.Name)
		locationIDs = append(locationIDs, location.ID)
	}

	now := time.Now()
	seedPosts := []*entity.Post{
		{
			Title:       "A week in Lisbon",
			Text:        "Trams, tiles and pastel de nata.",
			PubDate:     now.Add(-48 * time.Hour),
			IsPublished: true,
			AuthorID:    users[0].ID,
			CategoryID:  &travel.ID,
			LocationID:  &locationIDs[0],
		},
		{
			Title:       "Kyoto in autumn",
			Text:        "Maple leaves and quiet temples.",
			PubDate:     now.Add(-24 * time.Hour),
			IsPublished: true,
			AuthorID:    users[1].ID,
			CategoryID:  &travel.ID,
			LocationID:  &locationIDs[1],
		},
		{
			Title:       "Draft thoughts",
			Text:        "Not ready to publish.",
			PubDate:     now.Add(-time.Hour),
			IsPublished: false,
			AuthorID:    users[1].ID,
		},
		{
			// Scheduled: hidden until its publication time passes
			Title:       "New year plans",
			Text:        "This appears next week.",
			PubDate:     now.Add(7 * 24 * time.Hour),
			IsPublished: true,
			AuthorID:    users[2].ID,
		},
		{
			// Hidden for everyone through the unpublished category
			Title:       "Internal notes",
			Text:        "Gated by the category.",
			PubDate:     now.Add(-time.Hour),
			IsPublished: true,
			AuthorID:    users[0].ID,
			CategoryID:  &internal.ID,
		},
	}
	for _, post := range seedPosts {
		if err := postRepo.Create(post); err != nil {
			return fmt.Errorf("failed to create post %q: %w", post.Title, err)
		}
		log.Info("Created post: %s", post.Title)
	}

	comments := []*entity.Comment{
		{Text: "Great write-up!", PostID: seedPosts[0].ID, AuthorID: users[1].ID},
		{Text: "Adding this to my list.", PostID: seedPosts[0].ID, AuthorID: users[2].ID},
		{Text: "The photos must be stunning.", PostID: seedPosts[1].ID, AuthorID: users[0].ID},
	}
	for _, comment := range comments {
		if err := commentRepo.Create(comment); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
	}
	log.Info("Created %d comments", len(comments))

	return nil
}
