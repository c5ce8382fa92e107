// Package visibility decides which posts a requesting identity may see.
//
// A post is publicly visible when it is published, its publication time has
// passed, and its category (if it has one) is published. The post's author
// may additionally see their own unpublished or scheduled posts, but an
// unpublished category hides a post from everyone, the author included.
package visibility

import (
	"sort"
	"time"

	"blogium/internal/entity"
)

func categoryPublished(p *entity.Post) bool {
	if p.CategoryID == nil {
		return true
	}
	return p.Category != nil && p.Category.IsPublished
}

// PubliclyVisible reports whether the post is visible to any identity,
// anonymous included.
func PubliclyVisible(p *entity.Post, now time.Time) bool {
	return p.IsPublished && !p.PubDate.After(now) && categoryPublished(p)
}

// VisibleTo reports whether the post is visible to the given identity. An
// empty viewerID is the anonymous identity and never matches the author.
func VisibleTo(p *entity.Post, viewerID string, now time.Time) bool {
	if !categoryPublished(p) {
		return false
	}
	if p.IsPublished && !p.PubDate.After(now) {
		return true
	}
	return viewerID != "" && p.AuthorID == viewerID
}

// FilterPosts returns the subset of posts the viewer may see, ordered by
// publication time descending. The sort is stable, so posts with equal
// publication times keep the order of the input sequence. The input is never
// mutated.
//
// includeOwnHidden widens the result with the viewer's own unpublished and
// scheduled posts; public listings pass false. Category gating always
// applies.
func FilterPosts(posts []*entity.Post, viewerID string, includeOwnHidden bool, now time.Time) []*entity.Post {
	result := make([]*entity.Post, 0, len(posts))
	for _, p := range posts {
		if PubliclyVisible(p, now) {
			result = append(result, p)
			continue
		}
		if includeOwnHidden && viewerID != "" && p.AuthorID == viewerID && categoryPublished(p) {
			result = append(result, p)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PubDate.After(result[j].PubDate)
	})

	return result
}
