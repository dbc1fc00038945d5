package constants

import (
	"fmt"
	"time"
)

// Redis cache keys and TTLs for the coach booking service.
// Pattern: coachbooking:{module}:{operation}:{identifier}

// Static data (long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // routes, locations
	TTL_STATIC_MEDIUM = 12 * time.Hour // vehicle layouts
	TTL_STATIC_SHORT  = 6 * time.Hour  // price records
)

// Semi-static data (medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 1 * time.Hour    // news, banners, static pages
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // upcoming trip listings
)

// Dynamic data (short TTL: changes with every booking)
const (
	TTL_DYNAMIC_SHORT = 5 * time.Minute  // trip search results
	TTL_DYNAMIC_QUICK = 30 * time.Second // seat rosters
)

const CACHE_PREFIX = "coachbooking"

// Trips module
const (
	CACHE_KEY_TRIPS_SEARCH = CACHE_PREFIX + ":trips:search" // + :from:X:to:Y:date:Z
	CACHE_KEY_TRIP_DETAIL  = CACHE_PREFIX + ":trips:detail:uuid:"
	CACHE_KEY_TRIP_ROSTER  = CACHE_PREFIX + ":trips:roster:uuid:"
)

// Routes module
const (
	CACHE_KEY_ROUTES_LIST    = CACHE_PREFIX + ":routes:list"
	CACHE_KEY_LOCATIONS_LIST = CACHE_PREFIX + ":routes:locations"
)

// Content module
const (
	CACHE_KEY_NEWS_LIST    = CACHE_PREFIX + ":content:news"
	CACHE_KEY_BANNERS_LIST = CACHE_PREFIX + ":content:banners"
	CACHE_KEY_PAGE_BY_SLUG = CACHE_PREFIX + ":content:page:slug:"
)

// TripSearchKey builds the cache key for one trip search.
func TripSearchKey(from, to, date string) string {
	return fmt.Sprintf("%s:from:%s:to:%s:date:%s", CACHE_KEY_TRIPS_SEARCH, from, to, date)
}

// TripRosterKey builds the cache key for one trip's seat roster.
func TripRosterKey(tripID string) string {
	return CACHE_KEY_TRIP_ROSTER + tripID
}

// TripDetailKey builds the cache key for one trip's detail payload.
func TripDetailKey(tripID string) string {
	return CACHE_KEY_TRIP_DETAIL + tripID
}

// TripInvalidationPattern matches every cached entry touched by a
// booking change on the given trip.
func TripInvalidationPattern() string {
	return CACHE_PREFIX + ":trips:*"
}
