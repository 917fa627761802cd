package ports

// TokenService issues and verifies the signed bearer tokens used on all
// protected routes. Tokens are stateless: the only claims are the subject
// user id and an expiry.
type TokenService interface {
	// Issue returns a signed token for the given user id.
	Issue(userID string) (string, error)
	// Verify returns the subject user id, or an error if the token is
	// malformed, forged, or expired.
	Verify(token string) (string, error)
}
