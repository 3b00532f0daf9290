package memory

import (
	"context"
	"fmt"

	"blogicum/internal/core/user"

	"github.com/gofrs/uuid"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) Create(_ context.Context, u *user.User) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.s.userConflict(uuid.Nil, u); err != nil {
		return nil, err
	}

	u.ID = newID(u.ID)
	now := r.s.now()
	u.CreatedAt, u.UpdatedAt = now, now

	stored := *u
	r.s.users[u.ID] = &stored
	return u, nil
}

func (r *UserRepository) Update(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.users[u.ID]
	if !ok {
		return user.ErrNotFound
	}
	if err := r.s.userConflict(u.ID, u); err != nil {
		return err
	}

	stored.Username = u.Username
	stored.FirstName = u.FirstName
	stored.LastName = u.LastName
	stored.Email = u.Email
	stored.UpdatedAt = r.s.now()
	u.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *UserRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, user.ErrNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if email != "" && u.EmailAddress() == email {
			out := *u
			return &out, nil
		}
	}
	return nil, user.ErrNotFound
}

// userConflict mirrors the unique indexes on username and email. Users
// without an email never collide. The caller holds the lock.
func (s *Store) userConflict(self uuid.UUID, u *user.User) error {
	email := u.EmailAddress()
	for id, existing := range s.users {
		if id == self {
			continue
		}
		if existing.Username == u.Username {
			return fmt.Errorf("username %q: %w", u.Username, ErrDuplicate)
		}
		if email != "" && existing.EmailAddress() == email {
			return fmt.Errorf("email %q: %w", email, ErrDuplicate)
		}
	}
	return nil
}
