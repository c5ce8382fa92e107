package visibility

import (
	"testing"
	"time"

	"blogium/internal/entity"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func publishedCategory() (*string, *entity.Category) {
	id := "cat-published"
	return &id, &entity.Category{ID: id, Title: "Travel", Slug: "travel", IsPublished: true}
}

func hiddenCategory() (*string, *entity.Category) {
	id := "cat-hidden"
	return &id, &entity.Category{ID: id, Title: "Drafts", Slug: "drafts", IsPublished: false}
}

func makePost(id, authorID string, published bool, pubDate time.Time) *entity.Post {
	catID, cat := publishedCategory()
	return &entity.Post{
		ID:          id,
		Title:       "Post " + id,
		AuthorID:    authorID,
		IsPublished: published,
		PubDate:     pubDate,
		CategoryID:  catID,
		Category:    cat,
	}
}

func TestPubliclyVisible(t *testing.T) {
	p := makePost("p1", "alice", true, now.Add(-time.Hour))
	assert.True(t, PubliclyVisible(p, now))
}

func TestPubliclyVisible_Unpublished(t *testing.T) {
	p := makePost("p1", "alice", false, now.Add(-time.Hour))
	assert.False(t, PubliclyVisible(p, now))
}

func TestPubliclyVisible_FuturePubDate(t *testing.T) {
	p := makePost("p1", "alice", true, now.Add(time.Hour))
	assert.False(t, PubliclyVisible(p, now))
}

func TestPubliclyVisible_HiddenCategory(t *testing.T) {
	p := makePost("p1", "alice", true, now.Add(-time.Hour))
	p.CategoryID, p.Category = hiddenCategory()
	assert.False(t, PubliclyVisible(p, now))
}

func TestPubliclyVisible_NoCategory(t *testing.T) {
	p := makePost("p1", "alice", true, now.Add(-time.Hour))
	p.CategoryID = nil
	p.Category = nil
	assert.True(t, PubliclyVisible(p, now))
}

func TestVisibleTo_OwnerSeesUnpublished(t *testing.T) {
	p := makePost("p1", "alice", false, now.Add(-time.Hour))

	assert.True(t, VisibleTo(p, "alice", now))
	assert.False(t, VisibleTo(p, "bob", now))
	assert.False(t, VisibleTo(p, "", now))
}

func TestVisibleTo_OwnerSeesScheduled(t *testing.T) {
	p := makePost("p1", "alice", true, now.Add(48*time.Hour))

	assert.True(t, VisibleTo(p, "alice", now))
	assert.False(t, VisibleTo(p, "bob", now))
}

func TestVisibleTo_HiddenCategoryHidesFromOwner(t *testing.T) {
	// Category gating is absolute: the author bypass covers only the
	// post's own flag and timestamp.
	p := makePost("p1", "alice", true, now.Add(-time.Hour))
	p.CategoryID, p.Category = hiddenCategory()

	assert.False(t, VisibleTo(p, "alice", now))
	assert.False(t, VisibleTo(p, "bob", now))
}

func TestVisibleTo_AnonymousSeesPublic(t *testing.T) {
	p := makePost("p1", "alice", true, now.Add(-24*time.Hour))
	assert.True(t, VisibleTo(p, "", now))
}

func TestFilterPosts_PublicListing(t *testing.T) {
	posts := []*entity.Post{
		makePost("visible", "alice", true, now.Add(-time.Hour)),
		makePost("unpublished", "alice", false, now.Add(-time.Hour)),
		makePost("future", "alice", true, now.Add(time.Hour)),
	}

	got := FilterPosts(posts, "bob", false, now)

	assert.Len(t, got, 1)
	assert.Equal(t, "visible", got[0].ID)
}

func TestFilterPosts_UnpublishedExcludedForNonAuthor(t *testing.T) {
	posts := []*entity.Post{
		makePost("hidden", "alice", false, now.Add(-time.Hour)),
	}

	assert.Empty(t, FilterPosts(posts, "bob", true, now))
	assert.Empty(t, FilterPosts(posts, "", true, now))
}

func TestFilterPosts_OwnHiddenIncluded(t *testing.T) {
	posts := []*entity.Post{
		makePost("public", "alice", true, now.Add(-3*time.Hour)),
		makePost("draft", "alice", false, now.Add(-2*time.Hour)),
		makePost("scheduled", "alice", true, now.Add(time.Hour)),
	}

	got := FilterPosts(posts, "alice", true, now)

	assert.Len(t, got, 3)
	// Ordered by pub_date descending.
	assert.Equal(t, "scheduled", got[0].ID)
	assert.Equal(t, "draft", got[1].ID)
	assert.Equal(t, "public", got[2].ID)
}

func TestFilterPosts_OwnHiddenExcludedFromPublicListings(t *testing.T) {
	posts := []*entity.Post{
		makePost("draft", "alice", false, now.Add(-time.Hour)),
	}

	assert.Empty(t, FilterPosts(posts, "alice", false, now))
}

func TestFilterPosts_HiddenCategoryExcludedEvenForAuthor(t *testing.T) {
	p := makePost("p1", "alice", true, now.Add(-time.Hour))
	p.CategoryID, p.Category = hiddenCategory()

	got := FilterPosts([]*entity.Post{p}, "alice", true, now)

	assert.Empty(t, got)
}

func TestFilterPosts_OrderedByPubDateDescending(t *testing.T) {
	posts := []*entity.Post{
		makePost("oldest", "alice", true, now.Add(-72*time.Hour)),
		makePost("newest", "alice", true, now.Add(-time.Hour)),
		makePost("middle", "alice", true, now.Add(-24*time.Hour)),
	}

	got := FilterPosts(posts, "", false, now)

	assert.Equal(t, []string{"newest", "middle", "oldest"},
		[]string{got[0].ID, got[1].ID, got[2].ID})
}

func TestFilterPosts_StableForEqualTimestamps(t *testing.T) {
	ts := now.Add(-time.Hour)
	posts := []*entity.Post{
		makePost("first", "alice", true, ts),
		makePost("second", "bob", true, ts),
		makePost("third", "alice", true, ts),
	}

	got := FilterPosts(posts, "", false, now)

	assert.Equal(t, []string{"first", "second", "third"},
		[]string{got[0].ID, got[1].ID, got[2].ID})
}

func TestFilterPosts_Idempotent(t *testing.T) {
	posts := []*entity.Post{
		makePost("a", "alice", true, now.Add(-time.Hour)),
		makePost("b", "bob", false, now.Add(-2*time.Hour)),
		makePost("c", "alice", true, now.Add(-3*time.Hour)),
	}

	first := FilterPosts(posts, "bob", true, now)
	second := FilterPosts(posts, "bob", true, now)

	assert.Equal(t, first, second)
}

func TestFilterPosts_DoesNotMutateInput(t *testing.T) {
	posts := []*entity.Post{
		makePost("b", "alice", true, now.Add(-2*time.Hour)),
		makePost("a", "alice", true, now.Add(-time.Hour)),
	}

	FilterPosts(posts, "", false, now)

	assert.Equal(t, "b", posts[0].ID)
	assert.Equal(t, "a", posts[1].ID)
}

func TestFilterPosts_AnonymousViewer(t *testing.T) {
	posts := []*entity.Post{
		makePost("public", "alice", true, now.Add(-time.Hour)),
		makePost("draft", "alice", false, now.Add(-time.Hour)),
	}

	got := FilterPosts(posts, "", true, now)

	assert.Len(t, got, 1)
	assert.Equal(t, "public", got[0].ID)
}
