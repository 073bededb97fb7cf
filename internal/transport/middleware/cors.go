package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/heartmarshall/dictproxy/internal/config"
)

// CORS returns middleware that handles Cross-Origin Resource Sharing.
//
// A "*" entry in AllowedOrigins admits every origin; without credentials the
// response then carries a literal "*", otherwise the request origin is echoed.
// A "*" for methods or headers echoes what the preflight asks for.
// OPTIONS requests are answered with 204 and never reach the next handler.
func CORS(cfg config.CORSConfig) Middleware {
	origins := splitList(cfg.AllowedOrigins)
	anyOrigin := slices.Contains(origins, "*")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (anyOrigin || slices.Contains(origins, origin)) {
				if anyOrigin && !cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Origin", "*")
				} else {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Add("Vary", "Origin")
				}
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				methods := cfg.AllowedMethods
				if methods == "*" {
					if m := r.Header.Get("Access-Control-Request-Method"); m != "" {
						methods = m
					}
				}
				headers := cfg.AllowedHeaders
				if headers == "*" {
					if h := r.Header.Get("Access-Control-Request-Headers"); h != "" {
						headers = h
					}
				}
				w.Header().Set("Access-Control-Allow-Methods", methods)
				w.Header().Set("Access-Control-Allow-Headers", headers)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
