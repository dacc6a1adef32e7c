package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
	"github.com/patrickmn/go-cache"
)

const (
	loggedCacheTTL     = 30 * time.Second
	loggedCacheCleanup = 5 * time.Minute
)

// LoginChecker checks session tokens in redis, keeping positive answers
// in a short-lived local cache.
type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	logged      *cache.Cache
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		logged:      cache.New(loggedCacheTTL, loggedCacheCleanup),
		now:         time.Now,
	}
}

func (c *LoginChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "auth.isLogged")
	defer span.End()

	if _, found := c.logged.Get(token); found {
		return true, nil
	}

	createdAtUnixStr, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	createdAtUnix, err := strconv.ParseInt(createdAtUnixStr, 10, 64)
	if err != nil {
		return false, err
	}

	if c.now().Sub(time.Unix(createdAtUnix, 0)) > c.ttl {
		return false, nil
	}

	c.logged.SetDefault(token, struct{}{})
	return true, nil
}

// Forget drops the token from the local cache, used on logout.
func (c *LoginChecker) Forget(token string) {
	c.logged.Delete(token)
}
