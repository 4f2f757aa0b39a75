package shared

import (
	"context"
	"strings"

	"venue/shared/cache"
	"venue/shared/constant"

	"github.com/rs/zerolog/log"
)

// BuildCacheKey joins key segments with the cache namespace separator.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}

// InvalidateCaches clears every cache entry under the given prefix. Failures are
// logged and swallowed: the cache is acceleration only, never the source of truth.
func InvalidateCaches(ctx context.Context, c cache.RedisCache, prefix string) {
	if err := c.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
