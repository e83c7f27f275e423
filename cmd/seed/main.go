package main

import (
	"context"
	"fmt"
	"time"

	"streamtube/internal/entity"
	"streamtube/internal/repo/persistent"
	"streamtube/pkg/config"
	"streamtube/pkg/logger"
	"streamtube/pkg/surreal"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"golang.org/x/crypto/bcrypt"
)

// Seeds a handful of demo channels with videos, comments, likes and
// subscriptions for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	log := logger.New()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := surreal.Connect(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to store: %v", err)
		panic(err)
	}
	defer db.Close(ctx)

	if err := seed(ctx, db, log); err != nil {
		log.Error("failed to seed store: %v", err)
		panic(err)
	}

	log.Info("store seeded successfully")
}

func seed(ctx context.Context, db *surrealdb.DB, log *logger.Logger) error {
	userRepo := persistent.NewUserRepository(db)
	videoRepo := persistent.NewVideoRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)
	subscriptionRepo := persistent.NewSubscriptionRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []*entity.User{
		{Username: "alice", Email: "alice@example.com", Fullname: "Alice Carter", Avatar: "https://placehold.co/128", Password: string(hash)},
		{Username: "bob", Email: "bob@example.com", Fullname: "Bob Reyes", Avatar: "https://placehold.co/128", Password: string(hash)},
		{Username: "carol", Email: "carol@example.com", Fullname: "Carol Nguyen", Avatar: "https://placehold.co/128", Password: string(hash)},
	}
	for _, u := range users {
		if err := userRepo.Create(ctx, u); err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
		log.Info("created user %s (%s)", u.Username, u.ID)
	}

	var videos []*entity.Video
	for i, u := range users {
		for j := 0; j < 2; j++ {
			v := &entity.Video{
				OwnerID:     u.ID,
				VideoFile:   fmt.Sprintf("https://placehold.co/video-%d-%d.mp4", i, j),
				Thumbnail:   fmt.Sprintf("https://placehold.co/thumb-%d-%d.jpg", i, j),
				Title:       fmt.Sprintf("%s's video #%d", u.Username, j+1),
				Description: "Seeded demo video",
				Duration:    60 + 30*j,
				IsPublished: true,
			}
			if err := videoRepo.Create(ctx, v); err != nil {
				return fmt.Errorf("failed to create video: %w", err)
			}
			videos = append(videos, v)
		}
	}
	log.Info("created %d videos", len(videos))

	for _, v := range videos {
		for _, u := range users {
			if u.ID == v.OwnerID {
				continue
			}
			comment := &entity.Comment{
				Content: fmt.Sprintf("Nice one, from %s", u.Username),
				VideoID: v.ID,
				OwnerID: u.ID,
			}
			if err := commentRepo.Create(ctx, comment); err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}
			if _, err := likeRepo.Toggle(ctx, u.ID, entity.LikeTargetVideo, v.ID); err != nil {
				return fmt.Errorf("failed to like video: %w", err)
			}
		}
	}

	for i, u := range users {
		channel := users[(i+1)%len(users)]
		if _, err := subscriptionRepo.Toggle(ctx, u.ID, channel.ID); err != nil {
			return fmt.Errorf("failed to subscribe: %w", err)
		}
	}

	return nil
}
