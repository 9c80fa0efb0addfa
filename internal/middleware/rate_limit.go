package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gramin-samriddhi/backend/internal/types"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the fixed window the limit applies to
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// KeyPrefix namespaces the counters of one limiter
	KeyPrefix string
	// Noun names what is being limited in the 429 toast, "requests" when empty
	Noun string
}

// RateLimitResult is the state of a key after a request was counted
type RateLimitResult struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Limiter counts requests per key in fixed windows
type Limiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
	Config() RateLimitConfig
}

// RedisLimiter keeps its counters in redis so every instance shares them
type RedisLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
}

func NewRedisLimiter(client *redis.Client, config RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{redis: client, config: config}
}

func (rl *RedisLimiter) Config() RateLimitConfig {
	return rl.config
}

// Allow increments the counter for key in the current window
func (rl *RedisLimiter) Allow(ctx context.Context, key string) (RateLimitResult, error) {
	windowStart := time.Now().Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return RateLimitResult{}, err
	}

	return newResult(int(incrCmd.Val()), rl.config, windowStart), nil
}

// MemoryLimiter is the single-process limiter used when redis is not configured
type MemoryLimiter struct {
	config RateLimitConfig
	now    func() time.Time

	mu     sync.Mutex
	counts map[string]int
	window time.Time
}

func NewMemoryLimiter(config RateLimitConfig) *MemoryLimiter {
	return &MemoryLimiter{
		config: config,
		now:    time.Now,
		counts: make(map[string]int),
	}
}

func (ml *MemoryLimiter) Config() RateLimitConfig {
	return ml.config
}

func (ml *MemoryLimiter) Allow(_ context.Context, key string) (RateLimitResult, error) {
	windowStart := ml.now().Truncate(ml.config.Window)

	ml.mu.Lock()
	defer ml.mu.Unlock()

	// a new window drops every old counter
	if !windowStart.Equal(ml.window) {
		ml.window = windowStart
		ml.counts = make(map[string]int)
	}
	ml.counts[key]++

	return newResult(ml.counts[key], ml.config, windowStart), nil
}

func newResult(count int, config RateLimitConfig, windowStart time.Time) RateLimitResult {
	remaining := config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return RateLimitResult{
		Allowed:   count <= config.Limit,
		Remaining: remaining,
		ResetAt:   windowStart.Add(config.Window),
	}
}

// RateLimit enforces limiter per authenticated user. It must run after AuthMiddleware.
// A nil limiter disables the check, and limiter failures let the request through.
func RateLimit(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		userID, ok := UserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, types.NewErrorResponse(
				"user not authenticated",
				"Authentication required",
				"Please sign in to continue",
			))
			return
		}

		cfg := limiter.Config()
		result, err := limiter.Allow(c.Request.Context(), userID.String())
		if err != nil {
			logger.Warn("rate limit check failed", zap.String("prefix", cfg.KeyPrefix), zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			noun := cfg.Noun
			if noun == "" {
				noun = "requests"
			}
			c.Header("Retry-After", strconv.Itoa(int(time.Until(result.ResetAt).Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, types.NewErrorResponse(
				"rate limit exceeded",
				"Too many requests",
				fmt.Sprintf("You can run %d %s per %v. Please try again later.", cfg.Limit, noun, cfg.Window),
			))
			return
		}

		c.Next()
	}
}

// NewAnalysisLimiter limits disease image analyses
func NewAnalysisLimiter(client *redis.Client, window time.Duration, limit int) Limiter {
	return newLimiter(client, RateLimitConfig{Window: window, Limit: limit, KeyPrefix: "rate_limit:disease_analysis", Noun: "analyses"})
}

// NewRecommendationLimiter limits crop recommendation runs
func NewRecommendationLimiter(client *redis.Client, window time.Duration, limit int) Limiter {
	return newLimiter(client, RateLimitConfig{Window: window, Limit: limit, KeyPrefix: "rate_limit:crop_recommendation", Noun: "recommendation requests"})
}

func newLimiter(client *redis.Client, cfg RateLimitConfig) Limiter {
	if cfg.Limit <= 0 {
		return nil
	}
	if client == nil {
		return NewMemoryLimiter(cfg)
	}
	return NewRedisLimiter(client, cfg)
}
