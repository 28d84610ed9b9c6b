// Package session contains HTTP request DTOs for session endpoints.
package session

import domainsession "github.com/BBBmau/realtime-tour-guide-backend/internal/domain/session"

// CreateSessionQuery holds the optional query parameters of GET /session.
// Empty values fall back to defaults in the domain layer.
type CreateSessionQuery struct {
	Location              string `form:"location"`
	Destination           string `form:"destination"`
	InitialDesiredService string `form:"initial_desired_service"`
}

// ToParams converts the query into domain parameters.
func (q CreateSessionQuery) ToParams() domainsession.Params {
	return domainsession.Params{
		Location:              q.Location,
		Destination:           q.Destination,
		InitialDesiredService: q.InitialDesiredService,
	}
}
