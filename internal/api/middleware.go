package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/communitydirectory/directory-server/internal/http/response"
	"github.com/communitydirectory/directory-server/internal/ratelimit"
)

// APIEnvelope wraps successful response bodies.
type APIEnvelope struct { //nolint:revive // API prefix is intentional for clarity
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// APIErrorEnvelope wraps error response bodies.
type APIErrorEnvelope struct { //nolint:revive // API prefix is intentional for clarity
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every response body in a consistent envelope.
// Successful responses carry the payload under "data"; errors carry a
// machine-readable code alongside the message.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if v == nil {
		return v, nil
	}

	if apiErr, ok := v.(*APIError); ok {
		return APIErrorEnvelope{
			Success: false,
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}, nil
	}

	if strings.HasPrefix(status, "4") || strings.HasPrefix(status, "5") {
		if err, ok := v.(error); ok {
			return APIErrorEnvelope{
				Success: false,
				Code:    statusToCode(statusFromString(status)),
				Message: err.Error(),
			}, nil
		}
		return v, nil
	}

	return APIEnvelope{Success: true, Data: v}, nil
}

func statusFromString(status string) int {
	n := 0
	for i := 0; i < len(status); i++ {
		if status[i] < '0' || status[i] > '9' {
			return http.StatusInternalServerError
		}
		n = n*10 + int(status[i]-'0')
	}
	return n
}

// contributionRateLimit throttles contribution submissions per client IP.
// Read endpoints are never throttled; the dataset is public.
func contributionRateLimit(limiter *ratelimit.KeyedLimiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter == nil || r.Method != http.MethodPost || !strings.HasPrefix(r.URL.Path, "/api/v1/contributions/") {
				next.ServeHTTP(w, r)
				return
			}

			key := getClientIP(r)
			if !limiter.Allow(key) {
				logger.Warn("Rate limit exceeded", "ip", key, "path", r.URL.Path)
				response.TooManyRequests(w, "Too many submissions. Please try again later.", logger)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP extracts the client IP from the request.
// Checks X-Forwarded-For and X-Real-IP headers before falling back to RemoteAddr.
func getClientIP(r *http.Request) string {
	// X-Forwarded-For may contain multiple IPs; the first is the client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if i := strings.IndexByte(xff, ','); i >= 0 {
			return strings.TrimSpace(xff[:i])
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fall back to RemoteAddr with the port stripped.
	ip := r.RemoteAddr
	if i := strings.LastIndexByte(ip, ':'); i >= 0 {
		return ip[:i]
	}
	return ip
}
