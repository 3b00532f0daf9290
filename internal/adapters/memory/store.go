// Package memory keeps every entity in process memory. It backs the
// STORAGE=memory mode and the service tests, and follows the same ordering
// and visibility rules as the database adapter.
package memory

import (
	"errors"
	"sync"
	"time"

	"blogicum/internal/core/category"
	"blogicum/internal/core/comment"
	"blogicum/internal/core/location"
	"blogicum/internal/core/post"
	"blogicum/internal/core/user"

	"github.com/gofrs/uuid"
)

// ErrDuplicate is returned when a unique column would be repeated.
var ErrDuplicate = errors.New("duplicate key")

// Store holds all rows behind one lock. Rows are stored as copies and
// handed out as copies.
type Store struct {
	mu  sync.RWMutex
	now func() time.Time

	users      map[uuid.UUID]*user.User
	categories map[uuid.UUID]*category.Category
	locations  map[uuid.UUID]*location.Location
	posts      map[uuid.UUID]*post.Post
	comments   map[uuid.UUID]*comment.Comment

	// insertion order, used for ties and for stable listings
	postOrder    []uuid.UUID
	commentOrder []uuid.UUID
}

func NewStore() *Store {
	return &Store{
		now:        time.Now,
		users:      make(map[uuid.UUID]*user.User),
		categories: make(map[uuid.UUID]*category.Category),
		locations:  make(map[uuid.UUID]*location.Location),
		posts:      make(map[uuid.UUID]*post.Post),
		comments:   make(map[uuid.UUID]*comment.Comment),
	}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{s: s}
}

func (s *Store) Categories() *CategoryRepository {
	return &CategoryRepository{s: s}
}

func (s *Store) Locations() *LocationRepository {
	return &LocationRepository{s: s}
}

func (s *Store) Posts() *PostRepository {
	return &PostRepository{s: s}
}

func (s *Store) Comments() *CommentRepository {
	return &CommentRepository{s: s}
}

func newID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.Must(uuid.NewV4())
	}
	return id
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
