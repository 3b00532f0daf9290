package memory

import (
	"context"

	"blogicum/internal/core/policy"
	"blogicum/internal/core/post"
	"blogicum/internal/core/user"
	postPort "blogicum/internal/ports/post"

	"github.com/gofrs/uuid"
)

type PostRepository struct {
	s *Store
}

// stripPost copies the stored columns of p, dropping loaded relations.
func stripPost(p *post.Post) *post.Post {
	cp := *p
	cp.Author = user.User{}
	cp.Category = nil
	cp.Location = nil
	cp.CommentCount = 0
	cp.CategoryID = copyID(p.CategoryID)
	cp.LocationID = copyID(p.LocationID)
	return &cp
}

// hydrate returns a copy of p with relations and comment_count filled in.
// The caller holds the lock.
func (s *Store) hydrate(p *post.Post) *post.Post {
	out := stripPost(p)
	if u, ok := s.users[p.AuthorID]; ok {
		out.Author = *u
	}
	if p.CategoryID != nil {
		if c, ok := s.categories[*p.CategoryID]; ok {
			cp := *c
			out.Category = &cp
		}
	}
	if p.LocationID != nil {
		if l, ok := s.locations[*p.LocationID]; ok {
			cp := *l
			out.Location = &cp
		}
	}
	for _, c := range s.comments {
		if c.PostID == p.ID {
			out.CommentCount++
		}
	}
	return out
}

func (r *PostRepository) Create(_ context.Context, p *post.Post) (*post.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = newID(p.ID)
	now := r.s.now()
	p.CreatedAt, p.UpdatedAt = now, now

	r.s.posts[p.ID] = stripPost(p)
	r.s.postOrder = append(r.s.postOrder, p.ID)
	return p, nil
}

func (r *PostRepository) Update(_ context.Context, p *post.Post) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.posts[p.ID]
	if !ok {
		return post.ErrNotFound
	}
	stored.Title = p.Title
	stored.Text = p.Text
	stored.PubDate = p.PubDate
	stored.IsPublished = p.IsPublished
	stored.CategoryID = copyID(p.CategoryID)
	stored.LocationID = copyID(p.LocationID)
	stored.UpdatedAt = r.s.now()
	p.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *PostRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[id]; !ok {
		return post.ErrNotFound
	}
	delete(r.s.posts, id)
	r.s.postOrder = removeID(r.s.postOrder, id)

	for cid, c := range r.s.comments {
		if c.PostID == id {
			delete(r.s.comments, cid)
			r.s.commentOrder = removeID(r.s.commentOrder, cid)
		}
	}
	return nil
}

func (r *PostRepository) FindByID(_ context.Context, id uuid.UUID) (*post.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.posts[id]
	if !ok {
		return nil, post.ErrNotFound
	}
	return r.s.hydrate(p), nil
}

func (r *PostRepository) Count(_ context.Context, filter postPort.PostFilter) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return int64(len(r.s.matching(filter))), nil
}

func (r *PostRepository) List(_ context.Context, filter postPort.PostFilter, offset, limit int) ([]*post.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := r.s.matching(filter)
	if offset >= len(posts) {
		return []*post.Post{}, nil
	}
	end := len(posts)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return posts[offset:end], nil
}

// matching returns the hydrated posts passing filter, newest first.
func (s *Store) matching(filter postPort.PostFilter) []*post.Post {
	out := make([]*post.Post, 0, len(s.postOrder))
	for _, id := range s.postOrder {
		p := s.hydrate(s.posts[id])
		if policy.Matches(filter, p, p.Category) {
			out = append(out, p)
		}
	}
	policy.SortNewestFirst(out)
	return out
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
