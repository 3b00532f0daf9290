package memory

import (
	"context"

	"blogicum/internal/core/comment"
	"blogicum/internal/core/user"

	"github.com/gofrs/uuid"
)

type CommentRepository struct {
	s *Store
}

func (r *CommentRepository) Create(_ context.Context, c *comment.Comment) (*comment.Comment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = newID(c.ID)
	now := r.s.now()
	c.CreatedAt, c.UpdatedAt = now, now

	stored := *c
	stored.Author = user.User{}
	r.s.comments[c.ID] = &stored
	r.s.commentOrder = append(r.s.commentOrder, c.ID)
	return c, nil
}

func (r *CommentRepository) Update(_ context.Context, c *comment.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.comments[c.ID]
	if !ok {
		return comment.ErrNotFound
	}
	stored.Text = c.Text
	stored.UpdatedAt = r.s.now()
	c.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *CommentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.comments[id]; !ok {
		return comment.ErrNotFound
	}
	delete(r.s.comments, id)
	r.s.commentOrder = removeID(r.s.commentOrder, id)
	return nil
}

func (r *CommentRepository) FindByID(_ context.Context, id uuid.UUID) (*comment.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.comments[id]
	if !ok {
		return nil, comment.ErrNotFound
	}
	return r.s.withAuthor(c), nil
}

func (r *CommentRepository) ListByPost(_ context.Context, postID uuid.UUID) ([]*comment.Comment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*comment.Comment, 0)
	for _, id := range r.s.commentOrder {
		if c := r.s.comments[id]; c.PostID == postID {
			out = append(out, r.s.withAuthor(c))
		}
	}
	return out, nil
}

func (s *Store) withAuthor(c *comment.Comment) *comment.Comment {
	out := *c
	if u, ok := s.users[c.AuthorID]; ok {
		out.Author = *u
	}
	return &out
}
