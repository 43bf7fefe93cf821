// Package session owns the persisted authentication session of the SiteBloom
// client: the token/username pair written on login, read on profile display,
// and removed on logout. All other components go through this package; none
// of them caches the session independently.
package session

// Storage keys of the two session values.
const (
	KeyToken    = "token"
	KeyUsername = "username"
)

// Session is the authenticated identity held by the client. Both fields are
// empty when unauthenticated.
type Session struct {
	Token    string
	Username string
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
