package policy

import (
	"errors"

	"github.com/gofrs/uuid"
)

// ErrNotOwner is returned when someone other than the author tries to
// change a post or comment.
var ErrNotOwner = errors.New("only the author can change this")

// DenialMode says how a refused post mutation is reported to the caller.
type DenialMode int

const (
	// DenyRedirect sends the caller back to the post page.
	DenyRedirect DenialMode = iota
	// DenyForbidden answers with a permission error.
	DenyForbidden
)

// IsOwner reports whether actor is the author. Anonymous actors own nothing.
func IsOwner(actor, author uuid.UUID) bool {
	return actor != uuid.Nil && actor == author
}

// CheckOwner returns ErrNotOwner unless actor is the author.
func CheckOwner(actor, author uuid.UUID) error {
	if !IsOwner(actor, author) {
		return ErrNotOwner
	}
	return nil
}
