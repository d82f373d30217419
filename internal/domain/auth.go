package domain

// AuthService validates bearer tokens for protected routes.
type AuthService interface {
	ValidateToken(token string) (*Caller, error)
}
