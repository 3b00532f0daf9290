package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogicum/internal/core/category"
	commentEntity "blogicum/internal/core/comment"
	commentapp "blogicum/internal/core/comment/service"
	"blogicum/internal/core/location"
	"blogicum/internal/core/post"
	postapp "blogicum/internal/core/post/service"
	"blogicum/internal/core/user"
	userapp "blogicum/internal/core/user/service"
	"blogicum/internal/util"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

const demoPassword = "demo-password"

// seedDemo fills an empty installation with a few users, categories and
// posts in every visibility state. It does nothing when the demo users
// already exist.
func seedDemo(ctx context.Context, logger *zap.Logger, repos repositories, userSvc *userapp.UserService, postSvc *postapp.PostService, commentSvc *commentapp.CommentService) {
	logger.Info("🚀 Seeding demo data...")

	// 1️⃣ ساخت کاربران
	userIDs := make([]uuid.UUID, 0, 3)
	for i, name := range []string{"Leo Tolstoy", "Anna Akhmatova", "Ivan Bunin"} {
		username := fmt.Sprintf("demo%d", i+1)
		_, err := userSvc.RegisterUser(ctx, user.RegistrationForm{
			Username:  username,
			Password:  demoPassword,
			FirstName: name,
		})
		if errors.Is(err, user.ErrUsernameTaken) {
			logger.Info("Demo data already present, skipping seed")
			return
		}
		if err != nil {
			logger.Error("❌ Error creating user", zap.String("username", username), zap.Error(err))
			return
		}
		u, err := repos.users.FindByUsername(ctx, username)
		if err != nil {
			logger.Error("❌ Error loading user", zap.String("username", username), zap.Error(err))
			return
		}
		userIDs = append(userIDs, u.ID)
	}

	// 2️⃣ دسته‌بندی‌ها و مکان‌ها
	categoryIDs := make(map[string]uuid.UUID)
	for title, published := range map[string]bool{"Travel": true, "Everyday Life": true, "Drafts & Ideas": false} {
		c, err := repos.categories.Create(ctx, &category.Category{
			Title:       title,
			Description: "Posts about " + title,
			Slug:        util.Slugify(title),
			IsPublished: published,
		})
		if err != nil {
			logger.Error("❌ Error creating category", zap.String("title", title), zap.Error(err))
			return
		}
		categoryIDs[c.Slug] = c.ID
	}

	locationIDs := make([]uuid.UUID, 0, 2)
	for _, name := range []string{"Yasnaya Polyana", "Saint Petersburg"} {
		l, err := repos.locations.Create(ctx, &location.Location{Name: name})
		if err != nil {
			logger.Error("❌ Error creating location", zap.String("name", name), zap.Error(err))
			return
		}
		locationIDs = append(locationIDs, l.ID)
	}

	// 3️⃣ پست‌ها: منتشر شده، زمان‌بندی شده و پیش‌نویس
	now := time.Now()
	postCount := 0
	for i, uid := range userIDs {
		for p := 1; p <= 12; p++ {
			form := post.Form{
				Title:      fmt.Sprintf("Post %d by demo%d", p, i+1),
				Text:       fmt.Sprintf("Demo text number %d.", p),
				PubDate:    now.AddDate(0, 0, -p).Format(time.RFC3339),
				CategoryID: categoryIDs["travel"].String(),
				LocationID: locationIDs[p%len(locationIDs)].String(),
			}
			if p%3 == 0 {
				form.CategoryID = categoryIDs["everyday-life"].String()
			}
			postDTO, err := postSvc.CreatePost(ctx, uid, form)
			if err != nil {
				logger.Error("❌ Error creating post", zap.String("userID", uid.String()), zap.Error(err))
				continue
			}
			postCount++

			if p <= 2 {
				postID := uuid.FromStringOrNil(postDTO.ID)
				for _, commenter := range userIDs {
					if _, err := commentSvc.AddComment(ctx, commenter, postID, commentEntity.Form{Text: "Great read!"}); err != nil {
						logger.Error("❌ Error adding comment", zap.String("postID", postDTO.ID), zap.Error(err))
					}
				}
			}
		}

		if _, err := postSvc.CreatePost(ctx, uid, post.Form{
			Title:   fmt.Sprintf("Coming soon from demo%d", i+1),
			Text:    "Scheduled for next week.",
			PubDate: now.AddDate(0, 0, 7).Format(time.RFC3339),
		}); err != nil {
			logger.Error("❌ Error creating scheduled post", zap.Error(err))
		}

		hiddenCategory := categoryIDs["drafts-ideas"]
		if _, err := repos.posts.Create(ctx, &post.Post{
			Title:       fmt.Sprintf("Unfinished draft by demo%d", i+1),
			Text:        "Not ready yet.",
			PubDate:     now,
			IsPublished: false,
			AuthorID:    uid,
			CategoryID:  &hiddenCategory,
		}); err != nil {
			logger.Error("❌ Error creating draft", zap.Error(err))
		}
	}

	logger.Info("✅ Demo data created",
		zap.Int("users", len(userIDs)),
		zap.Int("posts", postCount),
		zap.String("password", demoPassword),
	)
}
