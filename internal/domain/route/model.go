package route

import "time"

// Query identifies the trip a notification is requested for.
type Query struct {
	CurrentLocation string
	Destination     string
	Narrate         bool
}

// Route is a single suggested route between two places.
type Route struct {
	Summary string
	Legs    []Leg
}

// Leg is one origin-to-waypoint section of a route.
type Leg struct {
	Distance string // human readable, e.g. "14.2 mi"
	Duration time.Duration
	Steps    []Step
}

// Step is one navigation instruction. Instructions may contain HTML markup
// as returned by the directions provider.
type Step struct {
	Instructions string
}
