package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mindevis/stitch-cafe/models"
	"github.com/mindevis/stitch-cafe/repositories"
)

// AuditLogger records mutating HTTP requests in the audit log. The status
// API only exposes GET routes, so this captures stray POST/PUT/DELETE
// attempts against it; admin resets are audited by the stats service itself.
func AuditLogger(auditRepo repositories.AuditRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				entry := &models.AuditLogEntry{
					Actor:  "status-api " + getIPAddress(r),
					Action: r.Method + " " + r.URL.Path,
					Detail: r.UserAgent(),
				}

				// Log asynchronously to avoid blocking the request; the
				// request context dies with the request, so use a fresh one
				go func() {
					if err := auditRepo.Create(context.Background(), entry); err != nil {
						logger.Warn("failed to create audit log", zap.Error(err))
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress extracts the client IP, checking proxy headers first
func getIPAddress(r *http.Request) string {
	// X-Forwarded-For (proxy/load balancer); take the first IP
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
