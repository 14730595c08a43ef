package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// CatalogCacheKey is the Redis key holding the cached service catalog.
const CatalogCacheKey = "catalog:services"

// CatalogCacheTTL is the time-to-live for the cached service catalog.
const CatalogCacheTTL = 10 * time.Minute
