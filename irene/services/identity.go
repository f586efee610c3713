package services

import (
	"context"
	"log/slog"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	lru "github.com/hashicorp/golang-lru"

	"github.com/lovequartz/irene/irene/config"
)

// userFetcher is the slice of rest.Users the service needs.
type userFetcher interface {
	GetUser(userID snowflake.ID, opts ...rest.RequestOpt) (*discord.User, error)
}

// IdentityService resolves Discord user IDs to display names through the
// REST API, caching results. Lookups that fail degrade to the raw ID string
// so callers never block an economy operation on a name.
type IdentityService struct {
	rest  userFetcher
	cache *lru.Cache
}

func NewIdentityService(restClient rest.Rest) *IdentityService {
	return newIdentityService(restClient)
}

func newIdentityService(fetcher userFetcher) *IdentityService {
	cache, _ := lru.New(config.IdentityCacheSize)
	return &IdentityService{
		rest:  fetcher,
		cache: cache,
	}
}

// Resolve returns the display name for userID, falling back to the raw ID.
func (s *IdentityService) Resolve(ctx context.Context, userID string) string {
	if name, ok := s.cache.Get(userID); ok {
		return name.(string)
	}

	id, err := snowflake.Parse(userID)
	if err != nil {
		return userID
	}

	lookupCtx, cancel := context.WithTimeout(ctx, config.IdentityLookupTimeout)
	defer cancel()
	user, err := s.rest.GetUser(id, rest.WithCtx(lookupCtx))
	if err != nil {
		slog.Debug("User lookup failed",
			slog.String("type", "sys"),
			slog.String("user_id", userID),
			slog.String("error", err.Error()))
		return userID
	}

	name := user.Username
	s.cache.Add(userID, name)
	return name
}
