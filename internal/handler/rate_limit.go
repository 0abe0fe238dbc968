package handler

import (
	"net/http"
	"strconv"
	"sync"

	"lucky-draw-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// maxTrackedClients 超過時清空，避免大量不同 IP 讓 map 無限成長
const maxTrackedClients = 10000

// IPRateLimiter 每個 client IP 各自一個 token bucket
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
	log      *zap.Logger
}

func NewIPRateLimiter(perSecond float64, burst int) *IPRateLimiter {
	if burst <= 0 {
		burst = 1
	}
	return &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(perSecond),
		burst:    burst,
		log:      logger.WithComponent("handler"),
	}
}

func (rl *IPRateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, ok := rl.limiters[key]
	if !ok {
		if len(rl.limiters) >= maxTrackedClients {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	return limiter
}

// Middleware 超過速率時回 429
func (rl *IPRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if rl.limiter(key).Allow() {
			c.Next()
			return
		}

		rl.log.Warn("Rate limit exceeded",
			zap.String("client_ip", key),
			zap.String("path", c.FullPath()),
		)
		c.Header("Retry-After", strconv.Itoa(1))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	}
}
