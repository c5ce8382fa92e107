package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorizeMutation_Owner(t *testing.T) {
	dec := AuthorizeMutation("alice", "post-1", "alice")

	assert.True(t, dec.Allowed)
	assert.Empty(t, dec.RedirectTo)
}

func TestAuthorizeMutation_NonOwner(t *testing.T) {
	dec := AuthorizeMutation("alice", "post-1", "bob")

	assert.False(t, dec.Allowed)
	assert.Equal(t, "/api/v1/posts/post-1", dec.RedirectTo)
}

func TestAuthorizeMutation_Anonymous(t *testing.T) {
	dec := AuthorizeMutation("alice", "post-1", "")

	assert.False(t, dec.Allowed)
	assert.Equal(t, LoginPath, dec.RedirectTo)
}

func TestAuthorizeMutation_DenyAlwaysCarriesRedirect(t *testing.T) {
	for _, viewer := range []string{"", "bob", "carol"} {
		dec := AuthorizeMutation("alice", "post-42", viewer)
		assert.False(t, dec.Allowed)
		assert.NotEmpty(t, dec.RedirectTo)
	}
}

func TestAuthorizeMutation_Recomputed(t *testing.T) {
	// Decisions are per-request values, not cached state.
	first := AuthorizeMutation("alice", "post-1", "bob")
	second := AuthorizeMutation("alice", "post-1", "alice")

	assert.False(t, first.Allowed)
	assert.True(t, second.Allowed)
}

func TestPostDetailPath(t *testing.T) {
	assert.Equal(t, "/api/v1/posts/abc", PostDetailPath("abc"))
}
