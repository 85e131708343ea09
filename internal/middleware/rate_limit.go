package middleware

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

var (
	uploadLimiters      = make(map[string]*rate.Limiter)
	uploadLimitersMutex sync.Mutex
)

func getUploadLimiter(ip string) *rate.Limiter {
	uploadLimitersMutex.Lock()
	defer uploadLimitersMutex.Unlock()

	if limiter, exists := uploadLimiters[ip]; exists {
		return limiter
	}
	limiter := rate.NewLimiter(1, 3) // 1 upload/sec, burst up to 3
	uploadLimiters[ip] = limiter
	return limiter
}

// UploadRateLimitMiddleware throttles the upload endpoints per client
// IP. Parsing a 10 MB spreadsheet is expensive; everything else on the
// API stays unthrottled.
func UploadRateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, _ := net.SplitHostPort(r.RemoteAddr)

		limiter := getUploadLimiter(ip)
		if !limiter.Allow() {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
