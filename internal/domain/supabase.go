package domain

// SupabaseClient validates bearer tokens against Supabase Auth.
type SupabaseClient interface {
	Initialize() error
	ValidateToken(token string) (*Caller, error)
}
