package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// WriteRateLimit 写接口限流中间件
// 每个客户端 IP 在 window 内最多 maxRequests 次写请求，超过返回 429
func WriteRateLimit(maxRequests int, window time.Duration) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		history = make(map[string][]time.Time)
		swept   time.Time
	)

	prune := func(ts []time.Time, cutoff time.Time) []time.Time {
		kept := ts[:0]
		for _, t := range ts {
			if t.After(cutoff) {
				kept = append(kept, t)
			}
		}
		return kept
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()
		cutoff := now.Add(-window)

		mu.Lock()
		// 每个窗口清理一次不活跃的 IP
		if now.Sub(swept) > window {
			for k, ts := range history {
				if ts = prune(ts, cutoff); len(ts) == 0 {
					delete(history, k)
				} else {
					history[k] = ts
				}
			}
			swept = now
		}

		ts := prune(history[ip], cutoff)
		if len(ts) >= maxRequests {
			history[ip] = ts
			mu.Unlock()
			c.Header("Retry-After", retryAfter(ts[0], window, now))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"code":    http.StatusTooManyRequests,
				"message": "Too many write requests, please retry later",
			})
			return
		}
		history[ip] = append(ts, now)
		mu.Unlock()

		c.Next()
	}
}

func retryAfter(oldest time.Time, window time.Duration, now time.Time) string {
	wait := oldest.Add(window).Sub(now)
	secs := int(wait / time.Second)
	if wait%time.Second > 0 {
		secs++
	}
	if secs < 1 {
		secs = 1
	}
	return strconv.Itoa(secs)
}
