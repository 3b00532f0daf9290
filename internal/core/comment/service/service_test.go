package commentapp

import (
	"context"
	"testing"
	"time"

	"blogicum/internal/adapters/memory"
	"blogicum/internal/core/category"
	"blogicum/internal/core/comment"
	"blogicum/internal/core/policy"
	"blogicum/internal/core/post"
	"blogicum/internal/core/user"
	"blogicum/internal/core/validation"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func setup(t *testing.T) (*memory.Store, *CommentService, *user.User, *user.User) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	alice, err := store.Users().Create(ctx, &user.User{Username: "alice"})
	require.NoError(t, err)
	bob, err := store.Users().Create(ctx, &user.User{Username: "bob"})
	require.NoError(t, err)

	svc := NewCommentService(store.Comments(), store.Posts(), zap.NewNop())
	svc.Now = func() time.Time { return now }
	return store, svc, alice, bob
}

func addPost(t *testing.T, store *memory.Store, p *post.Post) *post.Post {
	t.Helper()
	created, err := store.Posts().Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func TestAddComment(t *testing.T) {
	store, svc, alice, bob := setup(t)
	ctx := context.Background()
	p := addPost(t, store, &post.Post{Title: "t", Text: "t", PubDate: now.Add(-time.Hour), IsPublished: true, AuthorID: alice.ID})

	dto, err := svc.AddComment(ctx, bob.ID, p.ID, comment.Form{Text: "  Great <script>alert(1)</script>post "})
	require.NoError(t, err)

	assert.Equal(t, "Great post", dto.Text)
	assert.Equal(t, p.ID.String(), dto.PostID)
	require.NotNil(t, dto.Author)
	assert.Equal(t, "bob", dto.Author.Username)

	stored, err := store.Posts().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stored.CommentCount)
}

func TestAddComment_HiddenOrMissingPost(t *testing.T) {
	store, svc, alice, bob := setup(t)
	ctx := context.Background()
	draft := addPost(t, store, &post.Post{Title: "t", Text: "t", PubDate: now.Add(-time.Hour), IsPublished: false, AuthorID: alice.ID})

	_, err := svc.AddComment(ctx, bob.ID, draft.ID, comment.Form{Text: "hi"})
	assert.ErrorIs(t, err, post.ErrNotFound)

	_, err = svc.AddComment(ctx, alice.ID, draft.ID, comment.Form{Text: "note to self"})
	assert.NoError(t, err)

	_, err = svc.AddComment(ctx, bob.ID, uuid.Must(uuid.NewV4()), comment.Form{Text: "hi"})
	assert.ErrorIs(t, err, post.ErrNotFound)
}

func TestAddComment_EmptyText(t *testing.T) {
	store, svc, alice, bob := setup(t)
	p := addPost(t, store, &post.Post{Title: "t", Text: "t", PubDate: now.Add(-time.Hour), IsPublished: true, AuthorID: alice.ID})

	_, err := svc.AddComment(context.Background(), bob.ID, p.ID, comment.Form{Text: "   "})
	verrs, ok := validation.As(err)
	require.True(t, ok)
	assert.True(t, verrs.Has("text"))

	comments, err := store.Comments().ListByPost(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestUpdateComment(t *testing.T) {
	store, svc, alice, bob := setup(t)
	ctx := context.Background()
	p := addPost(t, store, &post.Post{Title: "t", Text: "t", PubDate: now.Add(-time.Hour), IsPublished: true, AuthorID: alice.ID})
	c, err := store.Comments().Create(ctx, &comment.Comment{PostID: p.ID, AuthorID: bob.ID, Text: "original"})
	require.NoError(t, err)

	t.Run("post author is not comment author", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, alice.ID, p.ID, c.ID, comment.Form{Text: "changed"})
		assert.ErrorIs(t, err, policy.ErrNotOwner)

		stored, err := store.Comments().FindByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", stored.Text)
	})

	t.Run("wrong post", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, bob.ID, uuid.Must(uuid.NewV4()), c.ID, comment.Form{Text: "changed"})
		assert.ErrorIs(t, err, comment.ErrNotFound)
	})

	t.Run("missing comment", func(t *testing.T) {
		_, err := svc.UpdateComment(ctx, alice.ID, p.ID, uuid.Must(uuid.NewV4()), comment.Form{Text: "changed"})
		assert.ErrorIs(t, err, comment.ErrNotFound)
	})

	t.Run("author", func(t *testing.T) {
		dto, err := svc.UpdateComment(ctx, bob.ID, p.ID, c.ID, comment.Form{Text: "changed"})
		require.NoError(t, err)
		assert.Equal(t, "changed", dto.Text)
	})
}

func TestDeleteComment(t *testing.T) {
	store, svc, alice, bob := setup(t)
	ctx := context.Background()
	p := addPost(t, store, &post.Post{Title: "t", Text: "t", PubDate: now.Add(-time.Hour), IsPublished: true, AuthorID: alice.ID})
	c, err := store.Comments().Create(ctx, &comment.Comment{PostID: p.ID, AuthorID: bob.ID, Text: "bye"})
	require.NoError(t, err)

	err = svc.DeleteComment(ctx, alice.ID, p.ID, c.ID)
	assert.ErrorIs(t, err, policy.ErrNotOwner)

	require.NoError(t, svc.DeleteComment(ctx, bob.ID, p.ID, c.ID))

	_, err = store.Comments().FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, comment.ErrNotFound)

	err = svc.DeleteComment(ctx, bob.ID, p.ID, c.ID)
	assert.ErrorIs(t, err, comment.ErrNotFound)
}

func TestCommentMutations_HiddenPost(t *testing.T) {
	tests := []struct {
		name string
		hide func(t *testing.T, store *memory.Store, p *post.Post)
	}{
		{"unpublished", func(_ *testing.T, _ *memory.Store, p *post.Post) { p.IsPublished = false }},
		{"scheduled", func(_ *testing.T, _ *memory.Store, p *post.Post) { p.PubDate = now.Add(time.Hour) }},
		{"category hidden", func(t *testing.T, store *memory.Store, p *post.Post) {
			cat, err := store.Categories().Create(context.Background(), &category.Category{Title: "c", Slug: "hidden", IsPublished: false})
			require.NoError(t, err)
			p.CategoryID = &cat.ID
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, svc, alice, bob := setup(t)
			ctx := context.Background()
			p := addPost(t, store, &post.Post{Title: "t", Text: "t", PubDate: now.Add(-time.Hour), IsPublished: true, AuthorID: alice.ID})
			c, err := store.Comments().Create(ctx, &comment.Comment{PostID: p.ID, AuthorID: bob.ID, Text: "original"})
			require.NoError(t, err)

			tt.hide(t, store, p)
			require.NoError(t, store.Posts().Update(ctx, p))

			_, err = svc.UpdateComment(ctx, bob.ID, p.ID, c.ID, comment.Form{Text: "changed"})
			assert.ErrorIs(t, err, post.ErrNotFound)

			err = svc.DeleteComment(ctx, bob.ID, p.ID, c.ID)
			assert.ErrorIs(t, err, post.ErrNotFound)

			stored, err := store.Comments().FindByID(ctx, c.ID)
			require.NoError(t, err)
			assert.Equal(t, "original", stored.Text)

			// the post author still sees the post, so ownership decides
			err = svc.DeleteComment(ctx, alice.ID, p.ID, c.ID)
			assert.ErrorIs(t, err, policy.ErrNotOwner)
		})
	}
}
