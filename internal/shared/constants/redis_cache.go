package constants

import "time"

// Redis key layout: busly:{module}:{operation}:{identifier}

const CachePrefix = "busly"

// Trip/route cache keys
const (
	CacheKeyTripSearch  = CachePrefix + ":trips:search"       // + :origin:X:dest:Y:date:Z:page:N
	CacheKeyTripDetail  = CachePrefix + ":trips:detail:uuid:" // + trip-id
	CacheKeyRoutesList  = CachePrefix + ":routes:list"
	CacheKeyTripPattern = CachePrefix + ":trips:*"
)

// Cache TTLs: routes rarely change, trip listings carry seat counts and go
// stale as bookings land
const (
	TTLRoutesList = 1 * time.Hour
	TTLTripSearch = 5 * time.Minute
	TTLTripDetail = 2 * time.Minute
)
