package postapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	categoryEntity "blogicum/internal/core/category"
	locationEntity "blogicum/internal/core/location"
	"blogicum/internal/core/pagination"
	"blogicum/internal/core/policy"
	postEntity "blogicum/internal/core/post"
	"blogicum/internal/core/validation"
	categoryPort "blogicum/internal/ports/category"
	commentPort "blogicum/internal/ports/comment"
	locationPort "blogicum/internal/ports/location"
	postPort "blogicum/internal/ports/post"
	userPort "blogicum/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type PostService struct {
	PostRepository     postPort.PostRepository
	CommentRepository  commentPort.CommentRepository   // برای نمایش کامنت‌های پست
	CategoryRepository categoryPort.CategoryRepository // برای اعتبارسنجی دسته‌بندی
	LocationRepository locationPort.LocationRepository // برای اعتبارسنجی مکان
	UserRepository     userPort.UserRepository         // برای صفحه پروفایل
	Logger             *zap.Logger
	Now                func() time.Time
}

func NewPostService(
	postRepo postPort.PostRepository,
	commentRepo commentPort.CommentRepository,
	categoryRepo categoryPort.CategoryRepository,
	locationRepo locationPort.LocationRepository,
	userRepo userPort.UserRepository,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:     postRepo,
		CommentRepository:  commentRepo,
		CategoryRepository: categoryRepo,
		LocationRepository: locationRepo,
		UserRepository:     userRepo,
		Logger:             logger,
		Now:                time.Now,
	}
}

// ListPage fetches one page of the posts matching filter. Out-of-range page
// numbers are clamped to the first or last page.
func ListPage(ctx context.Context, repo postPort.PostRepository, filter postPort.PostFilter, page int) (pagination.Page[*postPort.PostDTO], error) {
	total, err := repo.Count(ctx, filter)
	if err != nil {
		return pagination.Page[*postPort.PostDTO]{}, fmt.Errorf("counting posts: %w", err)
	}

	page, _ = pagination.Normalize(page, total, pagination.PageSize)
	posts, err := repo.List(ctx, filter, pagination.Offset(page, pagination.PageSize), pagination.PageSize)
	if err != nil {
		return pagination.Page[*postPort.PostDTO]{}, fmt.Errorf("listing posts: %w", err)
	}

	items := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		items = append(items, postPort.NewPostDTO(p))
	}
	return pagination.NewPage(items, page, total, pagination.PageSize), nil
}

// ListIndex صفحه اصلی: پست‌های عمومی
func (s *PostService) ListIndex(ctx context.Context, page int) (pagination.Page[*postPort.PostDTO], error) {
	return ListPage(ctx, s.PostRepository, policy.PublicScope(s.Now()), page)
}

// ListProfilePosts returns the profile of username and one page of their
// posts as seen by viewer.
func (s *PostService) ListProfilePosts(ctx context.Context, username string, viewer uuid.UUID, page int) (*postPort.ProfilePageDTO, error) {
	owner, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	posts, err := ListPage(ctx, s.PostRepository, policy.ProfileScope(viewer, owner.ID, s.Now()), page)
	if err != nil {
		return nil, err
	}

	return &postPort.ProfilePageDTO{
		Profile: userPort.NewUserDTO(owner),
		Posts:   posts,
	}, nil
}

// GetPost returns a post with its comments. Posts the viewer may not see
// are reported as missing.
func (s *PostService) GetPost(ctx context.Context, postID, viewer uuid.UUID) (*postPort.PostDetailDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("loading post: %w", err)
	}
	if !policy.CanView(p, viewer, s.Now()) {
		return nil, postEntity.ErrNotFound
	}

	comments, err := s.CommentRepository.ListByPost(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("loading comments: %w", err)
	}

	dtos := make([]*commentPort.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, commentPort.NewCommentDTO(c))
	}
	return &postPort.PostDetailDTO{
		PostDTO:  postPort.NewPostDTO(p),
		Comments: dtos,
	}, nil
}

// CreatePost ایجاد پست جدید توسط کاربر
func (s *PostService) CreatePost(ctx context.Context, authorID uuid.UUID, form postEntity.Form) (*postPort.PostDTO, error) {
	now := s.Now()
	in, err := s.validate(ctx, form, now.Location())
	if err != nil {
		return nil, err
	}

	p := &postEntity.Post{
		Title:       in.Title,
		Text:        in.Text,
		PubDate:     now,
		IsPublished: true,
		AuthorID:    authorID,
		CategoryID:  in.CategoryID,
		LocationID:  in.LocationID,
	}
	if in.PubDate != nil {
		p.PubDate = *in.PubDate
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("creating post: %w", err)
	}
	s.Logger.Info("Post created", zap.String("postID", created.ID.String()), zap.String("authorID", authorID.String()))

	return s.load(ctx, created.ID)
}

// UpdatePost ویرایش پست؛ فقط نویسنده مجاز است
func (s *PostService) UpdatePost(ctx context.Context, actorID, postID uuid.UUID, form postEntity.Form) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("loading post: %w", err)
	}
	if err := policy.CheckOwner(actorID, p.AuthorID); err != nil {
		return nil, err
	}

	in, err := s.validate(ctx, form, s.Now().Location())
	if err != nil {
		return nil, err
	}

	p.Title = in.Title
	p.Text = in.Text
	p.CategoryID = in.CategoryID
	p.LocationID = in.LocationID
	if in.PubDate != nil {
		p.PubDate = *in.PubDate
	}
	if err := s.PostRepository.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("updating post: %w", err)
	}

	return s.load(ctx, p.ID)
}

// DeletePost حذف پست به همراه کامنت‌هایش
func (s *PostService) DeletePost(ctx context.Context, actorID, postID uuid.UUID) error {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return fmt.Errorf("loading post: %w", err)
	}
	if err := policy.CheckOwner(actorID, p.AuthorID); err != nil {
		return err
	}

	if err := s.PostRepository.Delete(ctx, p.ID); err != nil {
		return fmt.Errorf("deleting post: %w", err)
	}
	s.Logger.Info("Post deleted", zap.String("postID", p.ID.String()))
	return nil
}

func (s *PostService) load(ctx context.Context, postID uuid.UUID) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("reloading post: %w", err)
	}
	return postPort.NewPostDTO(p), nil
}

// validate checks the form and that the referenced category and location
// exist. Missing references are reported as field errors.
func (s *PostService) validate(ctx context.Context, form postEntity.Form, loc *time.Location) (*postEntity.Input, error) {
	in, err := form.Validate(loc)
	if err != nil {
		return nil, err
	}

	errs := validation.Errors{}
	if in.CategoryID != nil {
		if _, err := s.CategoryRepository.FindByID(ctx, *in.CategoryID); err != nil {
			if !errors.Is(err, categoryEntity.ErrNotFound) {
				return nil, fmt.Errorf("checking category: %w", err)
			}
			errs.Add("category_id", "Select a valid choice. That choice is not one of the available choices.")
		}
	}
	if in.LocationID != nil {
		if _, err := s.LocationRepository.FindByID(ctx, *in.LocationID); err != nil {
			if !errors.Is(err, locationEntity.ErrNotFound) {
				return nil, fmt.Errorf("checking location: %w", err)
			}
			errs.Add("location_id", "Select a valid choice. That choice is not one of the available choices.")
		}
	}
	if err := errs.Err(); err != nil {
		return nil, err
	}
	return in, nil
}
