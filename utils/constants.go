package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// AuthTokenDuration is the validity period for issued JWTs.
const AuthTokenDuration = 7 * 24 * time.Hour
