package middleware

import (
	"net/http"
	"sync"
	"time"

	"lenslink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

var (
	clients   = make(map[string]*clientLimiter)
	clientsMu sync.Mutex
)

// RateLimitMiddleware limits each client IP to maxPerMin requests per minute
// with a small burst allowance. Stale limiter entries are reaped periodically.
func RateLimitMiddleware(maxPerMin int) gin.HandlerFunc {
	if maxPerMin <= 0 {
		maxPerMin = 60
	}
	limit := rate.Every(time.Minute / time.Duration(maxPerMin))

	go cleanupClients()

	return func(c *gin.Context) {
		ip := getClientIP(c)

		clientsMu.Lock()
		entry, ok := clients[ip]
		if !ok {
			entry = &clientLimiter{limiter: rate.NewLimiter(limit, maxPerMin/6+1)}
			clients[ip] = entry
		}
		entry.lastSeen = time.Now()
		clientsMu.Unlock()

		if !entry.limiter.Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

func cleanupClients() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		clientsMu.Lock()
		for ip, entry := range clients {
			if time.Since(entry.lastSeen) > 10*time.Minute {
				delete(clients, ip)
			}
		}
		clientsMu.Unlock()
	}
}
