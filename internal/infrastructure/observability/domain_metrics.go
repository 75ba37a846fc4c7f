package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DomainMetrics holds Prometheus counters for the locator's core operations.
// Search, route and geocoding counters only see computed results; responses
// replayed by the HTTP cache are counted in CachedResponses instead.
// All methods are safe to call on a nil receiver.
type DomainMetrics struct {
	Searches          *prometheus.CounterVec
	SearchResults     prometheus.Histogram
	RoutesSynthesized *prometheus.CounterVec
	GeocodingLookups  *prometheus.CounterVec
	LocationFallbacks *prometheus.CounterVec
	CachedResponses   *prometheus.CounterVec
}

// NewDomainMetrics creates the counters and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewDomainMetrics(reg prometheus.Registerer) (*DomainMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &DomainMetrics{
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital_locator",
			Name:      "searches_total",
			Help:      "Facility searches computed, by sort key and whether an origin was supplied.",
		}, []string{"sort", "with_origin"}),
		SearchResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "hospital_locator",
			Name:      "search_result_count",
			Help:      "Number of facilities returned per search.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50},
		}),
		RoutesSynthesized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital_locator",
			Name:      "routes_synthesized_total",
			Help:      "Synthetic routes produced, by travel profile.",
		}, []string{"profile"}),
		GeocodingLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital_locator",
			Name:      "geocoding_lookups_total",
			Help:      "Geocoding queries computed, by whether any feature matched.",
		}, []string{"matched"}),
		LocationFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital_locator",
			Name:      "location_fallbacks_total",
			Help:      "Location resolutions that fell back to the default coordinate, by reason.",
		}, []string{"reason"}),
		CachedResponses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital_locator",
			Name:      "cached_responses_total",
			Help:      "Responses replayed from the HTTP cache without recomputation, by route.",
		}, []string{"route"}),
	}

	for _, c := range []prometheus.Collector{m.Searches, m.SearchResults, m.RoutesSynthesized, m.GeocodingLookups, m.LocationFallbacks, m.CachedResponses} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// ObserveSearch records one search and its result size
func (m *DomainMetrics) ObserveSearch(sortKey string, withOrigin bool, results int) {
	if m == nil {
		return
	}
	origin := "false"
	if withOrigin {
		origin = "true"
	}
	m.Searches.WithLabelValues(sortKey, origin).Inc()
	m.SearchResults.Observe(float64(results))
}

// ObserveRoute records one synthesized route
func (m *DomainMetrics) ObserveRoute(profile string) {
	if m == nil {
		return
	}
	m.RoutesSynthesized.WithLabelValues(profile).Inc()
}

// ObserveGeocoding records one geocoding lookup
func (m *DomainMetrics) ObserveGeocoding(matched bool) {
	if m == nil {
		return
	}
	label := "false"
	if matched {
		label = "true"
	}
	m.GeocodingLookups.WithLabelValues(label).Inc()
}

// ObserveLocationFallback records one fallback to the default coordinate
func (m *DomainMetrics) ObserveLocationFallback(reason string) {
	if m == nil {
		return
	}
	m.LocationFallbacks.WithLabelValues(reason).Inc()
}

// ObserveCachedResponse records one response served from the HTTP cache
func (m *DomainMetrics) ObserveCachedResponse(route string) {
	if m == nil {
		return
	}
	m.CachedResponses.WithLabelValues(route).Inc()
}
