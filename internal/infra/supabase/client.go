// Package supabase validates bearer tokens against Supabase Auth. It is only
// wired when AUTH_REQUIRED is set; extraction itself never touches Supabase.
package supabase

import (
	"fmt"

	"resume-extractor/internal/domain"

	"github.com/supabase-community/supabase-go"
)

// Client implements domain.SupabaseClient.
type Client struct {
	client *supabase.Client
	url    string
	key    string
	logger domain.Logger
}

// NewClient creates an uninitialized client for the configured project.
func NewClient(config domain.Config, logger domain.Logger) *Client {
	return &Client{
		url:    config.GetSupabaseURL(),
		key:    config.GetSupabaseKey(),
		logger: logger,
	}
}

// Initialize creates the underlying Supabase client.
func (s *Client) Initialize() error {
	if s.url == "" || s.key == "" {
		return fmt.Errorf("supabase URL and key must be provided")
	}

	client, err := supabase.NewClient(s.url, s.key, &supabase.ClientOptions{})
	if err != nil {
		return fmt.Errorf("failed to create Supabase client: %w", err)
	}

	s.client = client
	s.logger.Info("Supabase client initialized successfully", "url", s.url)
	return nil
}

// ValidateToken asks Supabase Auth for the user behind token.
func (s *Client) ValidateToken(token string) (*domain.Caller, error) {
	if s.client == nil {
		return nil, domain.ErrAuthClientNotEnabled
	}

	// Headers set on the Supabase client do not reach GoTrue; the auth client
	// needs the token explicitly.
	user, err := s.client.Auth.WithToken(token).GetUser()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user not found", domain.ErrInvalidToken)
	}

	return &domain.Caller{
		ID:    user.ID.String(),
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
