package djatoka

import (
	"context"
	"net/http"

	"github.com/golang/groupcache"
)

// ContextKey is the cache key to use.
type ContextKey string

// WithGroupCaches sets the various caches.
func WithGroupCaches(h http.Handler, groups map[string]*groupcache.Group) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		for k, v := range groups {
			ctx = context.WithValue(ctx, ContextKey(k), v)
		}
		r = r.WithContext(ctx)
		h.ServeHTTP(w, r)
	})
}

// WithConfig sets the shim configuration.
func WithConfig(h http.Handler, config *Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = context.WithValue(ctx, ContextKey("config"), config)
		r = r.WithContext(ctx)
		h.ServeHTTP(w, r)
	})
}

// WithResolver sets the pid resolver.
func WithResolver(h http.Handler, resolver *Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		ctx = context.WithValue(ctx, ContextKey("resolver"), resolver)
		r = r.WithContext(ctx)
		h.ServeHTTP(w, r)
	})
}
