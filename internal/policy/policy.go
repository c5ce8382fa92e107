// Package policy provides authorization decisions for post and comment
// mutations.
package policy

import "fmt"

// LoginPath is where anonymous identities are sent when a login-gated
// operation is requested.
const LoginPath = "/api/v1/auth/login"

// PostDetailPath builds the public detail path of a post, used as the
// fallback destination for denied mutations.
func PostDetailPath(postID string) string {
	return fmt.Sprintf("/api/v1/posts/%s", postID)
}

// Decision is the outcome of an authorization check. A denied decision
// carries the redirect destination; denial is normal control flow, never an
// error.
type Decision struct {
	Allowed    bool
	RedirectTo string
}

// AuthorizeMutation decides whether the viewer may edit or delete a resource
// owned by authorID. Only the owner may mutate. Anonymous viewers are sent
// to login; authenticated non-owners are sent back to the owning post's
// detail page.
func AuthorizeMutation(authorID, postID, viewerID string) Decision {
	if viewerID == "" {
		return Decision{RedirectTo: LoginPath}
	}
	if viewerID == authorID {
		return Decision{Allowed: true}
	}
	return Decision{RedirectTo: PostDetailPath(postID)}
}
