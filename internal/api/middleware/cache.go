package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/providers"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
	"github.com/zatekoja/hospital-locator/backend/pkg/config"
)

// CacheRule enables response caching for a path
type CacheRule struct {
	Path       string
	Prefix     bool
	TTLSeconds int
}

func (c CacheRule) matches(path string) bool {
	if c.Prefix {
		return strings.HasPrefix(path, c.Path)
	}
	return path == c.Path
}

// DefaultCacheRules returns the cacheable routes. Directions are never
// cached because every response carries its own uuid.
func DefaultCacheRules(cfg *config.CacheConfig) []CacheRule {
	return []CacheRule{
		{Path: "/api/hospitals", TTLSeconds: cfg.HospitalsTTL},
		{Path: "/api/hospitals/", Prefix: true, TTLSeconds: cfg.HospitalsTTL},
		{Path: "/api/services", TTLSeconds: cfg.HospitalsTTL},
		{Path: "/api/mapbox/geocoding", TTLSeconds: cfg.GeocodingTTL},
	}
}

// CacheMiddleware provides HTTP response caching
type CacheMiddleware struct {
	cache         providers.CacheProvider
	rules         []CacheRule
	metrics       *observability.Metrics
	domainMetrics *observability.DomainMetrics
}

// NewCacheMiddleware creates a new cache middleware. Rules are checked in
// order and the first match wins.
func NewCacheMiddleware(cache providers.CacheProvider, rules []CacheRule, metrics *observability.Metrics) *CacheMiddleware {
	return &CacheMiddleware{
		cache:   cache,
		rules:   rules,
		metrics: metrics,
	}
}

// SetDomainMetrics counts cache hits alongside the computed-result counters
func (m *CacheMiddleware) SetDomainMetrics(domainMetrics *observability.DomainMetrics) {
	m.domainMetrics = domainMetrics
}

// Middleware returns the cache middleware handler
func (m *CacheMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || m.cache == nil {
			next.ServeHTTP(w, r)
			return
		}

		rule, ok := m.ruleFor(r.URL.Path)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		logger := observability.LoggerFromContext(ctx)
		cacheKey := generateCacheKey(r)

		cached, err := m.cache.Get(ctx, cacheKey)
		if err == nil {
			// The mux never sees a hit; label the route for outer middleware
			r.Pattern = r.Method + " " + rule.Path
			observability.RecordCacheHit(ctx, m.metrics, rule.Path)
			m.domainMetrics.ObserveCachedResponse(rule.Path)
			w.Header().Set("X-Cache", "HIT")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}
		if !errors.Is(err, providers.ErrCacheMiss) {
			logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Cache lookup failed")
		}

		observability.RecordCacheMiss(ctx, m.metrics, rule.Path)
		w.Header().Set("X-Cache", "MISS")

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
			body:           &bytes.Buffer{},
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK && recorder.body.Len() > 0 {
			if err := m.cache.Set(ctx, cacheKey, recorder.body.Bytes(), rule.TTLSeconds); err != nil {
				logger.Warn().Err(err).Str("path", r.URL.Path).Msg("Failed to cache response")
			}
		}
	})
}

func (m *CacheMiddleware) ruleFor(path string) (CacheRule, bool) {
	for _, rule := range m.rules {
		if rule.TTLSeconds > 0 && rule.matches(path) {
			return rule, true
		}
	}
	return CacheRule{}, false
}

// generateCacheKey hashes the method, path, and normalised query. Query
// parameters are re-encoded so their order does not split the cache.
func generateCacheKey(r *http.Request) string {
	key := r.Method + ":" + r.URL.Path
	if query := r.URL.Query().Encode(); query != "" {
		key += "?" + query
	}

	hash := sha256.Sum256([]byte(key))
	return "http:cache:" + hex.EncodeToString(hash[:])
}

// responseRecorder captures the response for caching
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
	written    bool
}

// WriteHeader captures the status code
func (r *responseRecorder) WriteHeader(statusCode int) {
	if !r.written {
		r.statusCode = statusCode
		r.ResponseWriter.WriteHeader(statusCode)
		r.written = true
	}
}

// Write captures the response body and writes to the client
func (r *responseRecorder) Write(data []byte) (int, error) {
	if !r.written {
		r.WriteHeader(http.StatusOK)
	}

	r.body.Write(data)
	return r.ResponseWriter.Write(data)
}
