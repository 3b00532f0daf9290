package main

import (
	"context"
	"log"

	dbadapter "blogicum/internal/adapters/database"
	"blogicum/internal/adapters/httpapi"
	"blogicum/internal/adapters/memory"
	redisadapter "blogicum/internal/adapters/redis"
	"blogicum/internal/config"
	"blogicum/internal/core/category"
	categoryapp "blogicum/internal/core/category/service"
	"blogicum/internal/core/comment"
	commentapp "blogicum/internal/core/comment/service"
	"blogicum/internal/core/location"
	locationapp "blogicum/internal/core/location/service"
	"blogicum/internal/core/policy"
	"blogicum/internal/core/post"
	postapp "blogicum/internal/core/post/service"
	"blogicum/internal/core/user"
	userapp "blogicum/internal/core/user/service"
	categoryPort "blogicum/internal/ports/category"
	commentPort "blogicum/internal/ports/comment"
	locationPort "blogicum/internal/ports/location"
	postPort "blogicum/internal/ports/post"
	userPort "blogicum/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// repositories آداپترهای خروجی، بسته به STORAGE
type repositories struct {
	users      userPort.UserRepository
	categories categoryPort.CategoryRepository
	locations  locationPort.LocationRepository
	posts      postPort.PostRepository
	comments   commentPort.CommentRepository
}

func main() {
	cfg, err := config.Init() // بارگذاری تنظیمات از .env
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	config.InitLogger(cfg.Env)
	defer config.Logger.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos := openStorage(cfg)

	// بستن منابع بعد از اتمام کار سرور
	defer closeResources()

	var blacklist userPort.TokenBlacklist
	if cfg.UseRedis() {
		// اتصال به Redis
		if err := config.InitRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
			config.Logger.Fatal("Redis is not reachable", zap.Error(err))
		}
		blacklist = redisadapter.NewTokenRepositoryRedis(config.RedisClient, config.Logger)
	} else {
		config.Logger.Warn("REDIS_ADDR is not set, revoked tokens are kept in memory")
		blacklist = memory.NewTokenBlacklist()
	}

	// یوزکیس/سرویس‌ها
	userSvc := userapp.NewUserService(repos.users, blacklist, []byte(cfg.JWTSecret), cfg.JWTTTL, config.Logger)
	postSvc := postapp.NewPostService(repos.posts, repos.comments, repos.categories, repos.locations, repos.users, config.Logger)
	commentSvc := commentapp.NewCommentService(repos.comments, repos.posts, config.Logger)
	categorySvc := categoryapp.NewCategoryService(repos.categories, repos.posts, config.Logger)
	locationSvc := locationapp.NewLocationService(repos.locations)

	if cfg.SeedDemo {
		seedDemo(ctx, config.Logger, repos, userSvc, postSvc, commentSvc)
	}

	denial := policy.DenyRedirect
	if cfg.OwnershipPolicy == config.OwnershipForbid {
		denial = policy.DenyForbidden
	}

	// تزریق یوزکیس به آداپتر ورودی
	r := httpapi.SetupRoutes(userSvc, postSvc, commentSvc, categorySvc, locationSvc, httpapi.Options{
		Logger:   config.Logger,
		Denial:   denial,
		LoginRPM: cfg.LoginRPM,
	})

	config.Logger.Info("App is running...", zap.String("addr", cfg.Addr()), zap.String("storage", cfg.Storage))

	// اجرای سرور Gin (در اینجا سرور به صورت بلوکینگ عمل می‌کند)
	if err := r.Run(cfg.Addr()); err != nil {
		config.Logger.Error("Server failed to start", zap.Error(err))
	}
}

// openStorage connects the configured backend and returns its repositories.
func openStorage(cfg *config.Config) repositories {
	if cfg.Storage == config.StorageMemory {
		config.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()
		return repositories{
			users:      store.Users(),
			categories: store.Categories(),
			locations:  store.Locations(),
			posts:      store.Posts(),
			comments:   store.Comments(),
		}
	}

	// اتصال به دیتابیس و اجرای مایگریشن‌ها
	if err := config.InitDB(cfg.DBDSN); err != nil {
		config.Logger.Fatal("Database is not reachable", zap.Error(err))
	}

	// اعمال مایگریشن برای مدل‌ها
	if err := config.DB.AutoMigrate(
		&user.User{},
		&category.Category{},
		&location.Location{},
		&post.Post{},
		&comment.Comment{},
	); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("✅ Database migrations completed")

	return repositories{
		users:      dbadapter.NewUserRepositoryDatabase(config.DB),
		categories: dbadapter.NewCategoryRepositoryDatabase(config.DB),
		locations:  dbadapter.NewLocationRepositoryDatabase(config.DB),
		posts:      dbadapter.NewPostRepositoryDatabase(config.DB),
		comments:   dbadapter.NewCommentRepositoryDatabase(config.DB),
	}
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources() {
	config.CloseRedis()
	config.CloseDB()
}
