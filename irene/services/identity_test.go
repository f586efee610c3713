package services

import (
	"context"
	"errors"
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

type fakeUserFetcher struct {
	users map[snowflake.ID]string
	calls int
}

func (f *fakeUserFetcher) GetUser(userID snowflake.ID, _ ...rest.RequestOpt) (*discord.User, error) {
	f.calls++
	name, ok := f.users[userID]
	if !ok {
		return nil, errors.New("unknown user")
	}
	return &discord.User{ID: userID, Username: name}, nil
}

func TestResolveCachesLookups(t *testing.T) {
	fetcher := &fakeUserFetcher{users: map[snowflake.ID]string{
		snowflake.ID(123): "hanni",
	}}
	s := newIdentityService(fetcher)
	ctx := context.Background()

	assert.Equal(t, "hanni", s.Resolve(ctx, "123"))
	assert.Equal(t, "hanni", s.Resolve(ctx, "123"))
	assert.Equal(t, 1, fetcher.calls, "the second hit comes from the cache")
}

func TestResolveDegradesToRawID(t *testing.T) {
	fetcher := &fakeUserFetcher{}
	s := newIdentityService(fetcher)
	ctx := context.Background()

	assert.Equal(t, "456", s.Resolve(ctx, "456"), "failed lookups return the raw ID")
	assert.Equal(t, "not-a-snowflake", s.Resolve(ctx, "not-a-snowflake"))
	assert.Equal(t, 1, fetcher.calls, "unparsable IDs never reach the API")
}

func TestResolveFailuresAreNotCached(t *testing.T) {
	fetcher := &fakeUserFetcher{users: map[snowflake.ID]string{}}
	s := newIdentityService(fetcher)
	ctx := context.Background()

	assert.Equal(t, "123", s.Resolve(ctx, "123"))
	fetcher.users[snowflake.ID(123)] = "hanni"
	assert.Equal(t, "hanni", s.Resolve(ctx, "123"), "a later successful lookup goes through")
}
