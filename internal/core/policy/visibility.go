// Package policy decides which posts a viewer may see and who may change
// posts and comments.
package policy

import (
	"sort"
	"time"

	"blogicum/internal/core/category"
	"blogicum/internal/core/post"
	postPort "blogicum/internal/ports/post"

	"github.com/gofrs/uuid"
)

// Cutoff returns the first instant of the day after now's calendar day.
// A post is due when its pub_date falls before the cutoff, so anything
// dated today is already visible.
func Cutoff(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// IsPublic reports whether p may appear in public listings at now. cat is
// the post's category, nil when the post has none.
func IsPublic(p *post.Post, cat *category.Category, now time.Time) bool {
	return isPublicBefore(p, cat, Cutoff(now))
}

func isPublicBefore(p *post.Post, cat *category.Category, cutoff time.Time) bool {
	if !p.IsPublished {
		return false
	}
	if cat != nil && !cat.IsPublished {
		return false
	}
	return p.PubDate.Before(cutoff)
}

// CanView reports whether viewer may open p directly. Authors always see
// their own posts; everybody else needs the post to be public.
func CanView(p *post.Post, viewer uuid.UUID, now time.Time) bool {
	if IsOwner(viewer, p.AuthorID) {
		return true
	}
	return IsPublic(p, p.Category, now)
}

// FilterVisible keeps the public posts of posts and orders them newest
// first. The input is left untouched.
func FilterVisible(posts []*post.Post, now time.Time) []*post.Post {
	cutoff := Cutoff(now)
	out := make([]*post.Post, 0, len(posts))
	for _, p := range posts {
		if isPublicBefore(p, p.Category, cutoff) {
			out = append(out, p)
		}
	}
	SortNewestFirst(out)
	return out
}

// SortNewestFirst orders posts by pub_date descending. Equal dates keep
// insertion order.
func SortNewestFirst(posts []*post.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].PubDate.After(posts[j].PubDate)
		}
		return posts[i].CreatedAt.Before(posts[j].CreatedAt)
	})
}

// PublicScope is the listing filter used by the index and category pages.
func PublicScope(now time.Time) postPort.PostFilter {
	cutoff := Cutoff(now)
	return postPort.PostFilter{VisibleBefore: &cutoff}
}

// ProfileScope is the listing filter for the posts of owner seen by viewer.
// The owner gets drafts and scheduled posts as well.
func ProfileScope(viewer, owner uuid.UUID, now time.Time) postPort.PostFilter {
	filter := postPort.PostFilter{AuthorID: &owner}
	if !IsOwner(viewer, owner) {
		cutoff := Cutoff(now)
		filter.VisibleBefore = &cutoff
	}
	return filter
}

// Matches applies filter to a single post. cat is the post's category.
func Matches(filter postPort.PostFilter, p *post.Post, cat *category.Category) bool {
	if filter.AuthorID != nil && p.AuthorID != *filter.AuthorID {
		return false
	}
	if filter.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *filter.CategoryID) {
		return false
	}
	if filter.VisibleBefore != nil && !isPublicBefore(p, cat, *filter.VisibleBefore) {
		return false
	}
	return true
}
