package httpapi

import (
	"context"

	"blogicum/internal/adapters/httpapi/middleware"
	"blogicum/internal/core/comment"
	"blogicum/internal/core/pagination"
	"blogicum/internal/core/policy"
	"blogicum/internal/core/post"
	"blogicum/internal/core/user"
	categoryPort "blogicum/internal/ports/category"
	commentPort "blogicum/internal/ports/comment"
	locationPort "blogicum/internal/ports/location"
	postPort "blogicum/internal/ports/post"
	userPort "blogicum/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	middleware.Authenticator
	LoginUser(ctx context.Context, form user.LoginForm) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, form user.RegistrationForm) (*userPort.UserDTO, error)
	LogoutUser(ctx context.Context, identity *userPort.Identity) error
	UpdateProfile(ctx context.Context, actorID uuid.UUID, form user.ProfileForm) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	ListIndex(ctx context.Context, page int) (pagination.Page[*postPort.PostDTO], error)
	ListProfilePosts(ctx context.Context, username string, viewer uuid.UUID, page int) (*postPort.ProfilePageDTO, error)
	GetPost(ctx context.Context, postID, viewer uuid.UUID) (*postPort.PostDetailDTO, error)
	CreatePost(ctx context.Context, authorID uuid.UUID, form post.Form) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, actorID, postID uuid.UUID, form post.Form) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, actorID, postID uuid.UUID) error
}

type CommentUseCase interface {
	AddComment(ctx context.Context, authorID, postID uuid.UUID, form comment.Form) (*commentPort.CommentDTO, error)
	UpdateComment(ctx context.Context, actorID, postID, commentID uuid.UUID, form comment.Form) (*commentPort.CommentDTO, error)
	DeleteComment(ctx context.Context, actorID, postID, commentID uuid.UUID) error
}

type CategoryUseCase interface {
	GetCategoryPage(ctx context.Context, slug string, page int) (*postPort.CategoryPageDTO, error)
	ListCategories(ctx context.Context) ([]*categoryPort.CategoryDTO, error)
}

type LocationUseCase interface {
	ListLocations(ctx context.Context) ([]*locationPort.LocationDTO, error)
}

// Options tune the router without touching the use cases.
type Options struct {
	Logger   *zap.Logger
	Denial   policy.DenialMode // refused post updates and deletes
	LoginRPM int
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	categoryUC CategoryUseCase,
	locationUC LocationUseCase,
	opts Options,
) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	uc := NewUserController(userUC, postUC, logger)
	pc := NewPostController(postUC, opts.Denial, logger)
	cc := NewCommentController(commentUC, logger)
	catc := NewCategoryController(categoryUC, logger)
	lc := NewLocationController(locationUC, logger)

	auth := middleware.JWTAuthMiddleware(userUC, logger)
	optional := middleware.OptionalAuth(userUC, logger)

	// مسیرهای ثبت‌نام و ورود بدون JWT Middleware
	r.POST("/auth/registration", uc.RegisterUser)
	r.POST("/auth/login", middleware.RateLimit(opts.LoginRPM), uc.LoginUser)
	r.POST("/auth/logout", auth, uc.LogoutUser)

	// صفحات عمومی؛ کاربر وارد شده پست‌های خودش را هم می‌بیند
	r.GET("/", optional, pc.Index)
	r.GET("/posts/:post_id", optional, pc.PostDetail)
	r.GET("/category/:category_slug", optional, catc.CategoryPosts)
	r.GET("/profile/:username", optional, uc.Profile)
	r.GET("/categories", catc.ListCategories)
	r.GET("/locations", lc.ListLocations)

	// مسیرهای ایجاد و ویرایش با JWT Middleware
	r.POST("/posts", auth, pc.CreatePost)
	r.PATCH("/posts/:post_id", auth, pc.UpdatePost)
	r.DELETE("/posts/:post_id", auth, pc.DeletePost)

	r.POST("/posts/:post_id/comments", auth, cc.AddComment)
	r.PATCH("/posts/:post_id/comments/:comment_id", auth, cc.UpdateComment)
	r.DELETE("/posts/:post_id/comments/:comment_id", auth, cc.DeleteComment)

	r.PATCH("/profile", auth, uc.UpdateProfile)
	return r
}
