package commentapp

import (
	"context"
	"fmt"
	"time"

	commentEntity "blogicum/internal/core/comment"
	"blogicum/internal/core/policy"
	postEntity "blogicum/internal/core/post"
	commentPort "blogicum/internal/ports/comment"
	postPort "blogicum/internal/ports/post"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

type CommentService struct {
	CommentRepository commentPort.CommentRepository
	PostRepository    postPort.PostRepository
	Logger            *zap.Logger
	Now               func() time.Time
}

func NewCommentService(commentRepo commentPort.CommentRepository, postRepo postPort.PostRepository, logger *zap.Logger) *CommentService {
	return &CommentService{
		CommentRepository: commentRepo,
		PostRepository:    postRepo,
		Logger:            logger,
		Now:               time.Now,
	}
}

// AddComment ثبت کامنت روی پستی که کاربر اجازه دیدنش را دارد
func (s *CommentService) AddComment(ctx context.Context, authorID, postID uuid.UUID, form commentEntity.Form) (*commentPort.CommentDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("loading post: %w", err)
	}
	if !policy.CanView(p, authorID, s.Now()) {
		return nil, postEntity.ErrNotFound
	}

	text, err := form.Validate()
	if err != nil {
		return nil, err
	}

	created, err := s.CommentRepository.Create(ctx, &commentEntity.Comment{
		Text:     text,
		PostID:   p.ID,
		AuthorID: authorID,
	})
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	s.Logger.Info("Comment added", zap.String("commentID", created.ID.String()), zap.String("postID", p.ID.String()))

	return s.load(ctx, created.ID)
}

// UpdateComment ویرایش کامنت؛ فقط نویسنده کامنت مجاز است
func (s *CommentService) UpdateComment(ctx context.Context, actorID, postID, commentID uuid.UUID, form commentEntity.Form) (*commentPort.CommentDTO, error) {
	c, err := s.find(ctx, actorID, postID, commentID)
	if err != nil {
		return nil, err
	}
	if err := policy.CheckOwner(actorID, c.AuthorID); err != nil {
		return nil, err
	}

	text, err := form.Validate()
	if err != nil {
		return nil, err
	}

	c.Text = text
	if err := s.CommentRepository.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating comment: %w", err)
	}
	return s.load(ctx, c.ID)
}

// DeleteComment حذف کامنت؛ فقط نویسنده کامنت مجاز است
func (s *CommentService) DeleteComment(ctx context.Context, actorID, postID, commentID uuid.UUID) error {
	c, err := s.find(ctx, actorID, postID, commentID)
	if err != nil {
		return err
	}
	if err := policy.CheckOwner(actorID, c.AuthorID); err != nil {
		return err
	}

	if err := s.CommentRepository.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("deleting comment: %w", err)
	}
	s.Logger.Info("Comment deleted", zap.String("commentID", c.ID.String()))
	return nil
}

// find loads a comment and checks it belongs to postID. A comment under
// another post counts as missing, and so does the post itself when actorID
// may not view it.
func (s *CommentService) find(ctx context.Context, actorID, postID, commentID uuid.UUID) (*commentEntity.Comment, error) {
	c, err := s.CommentRepository.FindByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("loading comment: %w", err)
	}
	if c.PostID != postID {
		return nil, commentEntity.ErrNotFound
	}

	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("loading post: %w", err)
	}
	if !policy.CanView(p, actorID, s.Now()) {
		return nil, postEntity.ErrNotFound
	}
	return c, nil
}

func (s *CommentService) load(ctx context.Context, commentID uuid.UUID) (*commentPort.CommentDTO, error) {
	c, err := s.CommentRepository.FindByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("reloading comment: %w", err)
	}
	return commentPort.NewCommentDTO(c), nil
}
