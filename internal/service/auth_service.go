package service

import (
	"fmt"
	"sync"
	"time"

	"resume-extractor/internal/domain"
)

const validatedTokenCacheTTL = 30 * time.Second

type validatedTokenCacheEntry struct {
	user      *domain.Caller
	expiresAt time.Time
}

type authService struct {
	supabaseClient domain.SupabaseClient
	logger         domain.Logger
	now            func() time.Time

	tokenCacheMu sync.RWMutex
	tokenCache   map[string]validatedTokenCacheEntry
}

func NewAuthService(
	supabaseClient domain.SupabaseClient,
	logger domain.Logger,
) *authService {
	return &authService{
		supabaseClient: supabaseClient,
		logger:         logger,
		now:            time.Now,
		tokenCache:     make(map[string]validatedTokenCacheEntry),
	}
}

// ValidateToken checks a bearer token with Supabase. Accepted tokens are cached
// briefly so a burst of uploads does not hit Supabase once per request.
func (s *authService) ValidateToken(token string) (*domain.Caller, error) {
	if token == "" {
		return nil, fmt.Errorf("invalid token: %w", domain.ErrInvalidToken)
	}

	now := s.now()
	s.tokenCacheMu.RLock()
	entry, ok := s.tokenCache[token]
	s.tokenCacheMu.RUnlock()
	if ok && now.Before(entry.expiresAt) {
		return entry.user, nil
	}

	user, err := s.supabaseClient.ValidateToken(token)
	if err != nil {
		s.logger.Error("Failed to validate token with Supabase", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	s.tokenCacheMu.Lock()
	for k, e := range s.tokenCache {
		if !now.Before(e.expiresAt) {
			delete(s.tokenCache, k)
		}
	}
	s.tokenCache[token] = validatedTokenCacheEntry{user: user, expiresAt: now.Add(validatedTokenCacheTTL)}
	s.tokenCacheMu.Unlock()

	return user, nil
}
