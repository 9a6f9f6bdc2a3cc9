package middleware

import (
	"net/http"
)

// APIContentSecurityPolicy fits a JSON only API: nothing may be loaded or framed.
const APIContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none'"

var baseSecurityHeaders = map[string]string{
	"X-Frame-Options":        "DENY",
	"X-Content-Type-Options": "nosniff",
	"Referrer-Policy":        "no-referrer",
	"Permissions-Policy":     "camera=(), microphone=(), geolocation=(), payment=()",
	// board listings change on every reply
	"Cache-Control": "no-store",
}

// SecurityHeaders sets the fixed header set on every response.
// isHTTPS adds Strict-Transport-Security, an empty csp skips Content-Security-Policy.
func SecurityHeaders(isHTTPS bool, csp string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()
			for name, value := range baseSecurityHeaders {
				headers.Set(name, value)
			}
			if csp != "" {
				headers.Set("Content-Security-Policy", csp)
			}
			if isHTTPS {
				headers.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}
