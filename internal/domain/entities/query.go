package entities

// ServiceFilterAll is the sentinel service filter that matches every facility
const ServiceFilterAll = "all"

// SortKey selects the ordering of query results
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
	SortByName     SortKey = "name"
)

// Query holds the filter, sort and origin parameters for a facility search.
// A zero Origin means no distance recompute or radius cutoff is applied.
type Query struct {
	SearchTerm    string
	ServiceFilter string
	SortKey       SortKey
	Origin        *Coordinates
	RadiusMiles   float64
}

// MatchesAllServices reports whether the service filter is the "all" sentinel.
// An empty filter is treated the same way.
func (q Query) MatchesAllServices() bool {
	return q.ServiceFilter == "" || q.ServiceFilter == ServiceFilterAll
}
