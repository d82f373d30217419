package domain

// Caller is the Supabase user behind an authenticated upload. Only the fields
// the extract and validate endpoints report are kept.
type Caller struct {
	ID    string
	Email string
	Role  string
}
