package memory

import (
	"context"
	"testing"
	"time"

	"blogicum/internal/core/category"
	"blogicum/internal/core/comment"
	"blogicum/internal/core/post"
	"blogicum/internal/core/user"
	postPort "blogicum/internal/ports/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func TestPostRepository_ListOrderAndFilter(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	posts := store.Posts()

	author, err := store.Users().Create(ctx, &user.User{Username: "alice"})
	require.NoError(t, err)
	hidden, err := store.Categories().Create(ctx, &category.Category{Title: "Hidden", Slug: "hidden"})
	require.NoError(t, err)

	same := now.AddDate(0, 0, -1)
	for _, p := range []*post.Post{
		{Title: "tie first", PubDate: same, IsPublished: true, AuthorID: author.ID},
		{Title: "newest", PubDate: now, IsPublished: true, AuthorID: author.ID},
		{Title: "tie second", PubDate: same, IsPublished: true, AuthorID: author.ID},
		{Title: "draft", PubDate: now, IsPublished: false, AuthorID: author.ID},
		{Title: "in hidden", PubDate: now, IsPublished: true, AuthorID: author.ID, CategoryID: &hidden.ID},
	} {
		_, err := posts.Create(ctx, p)
		require.NoError(t, err)
	}

	cutoff := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)
	public := postPort.PostFilter{VisibleBefore: &cutoff}

	total, err := posts.Count(ctx, public)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)

	got, err := posts.List(ctx, public, 0, 10)
	require.NoError(t, err)
	titles := make([]string, 0, len(got))
	for _, p := range got {
		titles = append(titles, p.Title)
		assert.Equal(t, "alice", p.Author.Username)
	}
	assert.Equal(t, []string{"newest", "tie first", "tie second"}, titles)

	page, err := posts.List(ctx, public, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "tie first", page[0].Title)

	beyond, err := posts.List(ctx, public, 10, 10)
	require.NoError(t, err)
	assert.Empty(t, beyond)

	all, err := posts.Count(ctx, postPort.PostFilter{AuthorID: &author.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 5, all)
}

func TestPostRepository_CopiesAndCascade(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	p, err := store.Posts().Create(ctx, &post.Post{Title: "original", PubDate: now, IsPublished: true})
	require.NoError(t, err)
	c, err := store.Comments().Create(ctx, &comment.Comment{PostID: p.ID, Text: "hi"})
	require.NoError(t, err)

	loaded, err := store.Posts().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, loaded.CommentCount)

	loaded.Title = "mutated"
	again, err := store.Posts().FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)

	require.NoError(t, store.Posts().Delete(ctx, p.ID))
	_, err = store.Comments().FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, comment.ErrNotFound)
	assert.ErrorIs(t, store.Posts().Delete(ctx, p.ID), post.ErrNotFound)
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	_, err := users.Create(ctx, &user.User{Username: "alice"})
	require.NoError(t, err)
	_, err = users.Create(ctx, &user.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = users.FindByEmail(ctx, "")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestUserRepository_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	users := NewStore().Users()

	alice, err := users.Create(ctx, &user.User{Username: "alice", Email: user.OptionalEmail("shared@x.io")})
	require.NoError(t, err)
	_, err = users.Create(ctx, &user.User{Username: "bob", Email: user.OptionalEmail("shared@x.io")})
	assert.ErrorIs(t, err, ErrDuplicate)

	// users without an email never collide
	_, err = users.Create(ctx, &user.User{Username: "carol"})
	require.NoError(t, err)
	dave, err := users.Create(ctx, &user.User{Username: "dave"})
	require.NoError(t, err)

	dave.Email = user.OptionalEmail("shared@x.io")
	assert.ErrorIs(t, users.Update(ctx, dave), ErrDuplicate)

	alice.FirstName = "Alice"
	assert.NoError(t, users.Update(ctx, alice))

	found, err := users.FindByEmail(ctx, "shared@x.io")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, found.ID)
}

func TestTokenBlacklist_Expiry(t *testing.T) {
	ctx := context.Background()
	b := NewTokenBlacklist()
	clock := now
	b.now = func() time.Time { return clock }

	require.NoError(t, b.Revoke(ctx, "jti", time.Minute))
	revoked, err := b.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	clock = clock.Add(2 * time.Minute)
	revoked, err = b.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, b.Revoke(ctx, "expired", -time.Second))
	revoked, err = b.IsRevoked(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, revoked)
}
