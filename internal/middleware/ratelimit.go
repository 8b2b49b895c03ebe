package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wfunc/anima-counter/internal/config"
	apperrors "github.com/wfunc/anima-counter/internal/errors"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按客户端IP的令牌桶限流
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	now      func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// NewRateLimiter 创建限流器，window 内最多 requests 次，允许 burst 次突发
func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	if cfg.Requests <= 0 {
		cfg.Requests = 1
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.Requests
	}
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(cfg.Window / time.Duration(cfg.Requests)),
		burst:    burst,
		ttl:      cfg.Window,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Middleware 返回gin中间件
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lim := rl.get(c.ClientIP())
		r := lim.ReserveN(rl.now(), 1)
		if !r.OK() {
			rl.reject(c, rl.ttl)
			return
		}
		if delay := r.DelayFrom(rl.now()); delay > 0 {
			r.CancelAt(rl.now())
			rl.reject(c, delay)
			return
		}
		c.Next()
	}
}

func (rl *RateLimiter) reject(c *gin.Context, retry time.Duration) {
	c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
	AbortWithError(c, apperrors.New(apperrors.ErrRateLimitExceeded))
}

func (rl *RateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = rl.now()
	return v.limiter
}

// cleanup 移除超过一个窗口未出现的客户端
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := rl.now().Add(-rl.ttl)
	for key, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, key)
		}
	}
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stop:
			return
		}
	}
}

// Stop 停止后台清理
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}
