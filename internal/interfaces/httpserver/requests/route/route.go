// Package route contains HTTP request DTOs for route notification endpoints.
package route

import domainroute "github.com/BBBmau/realtime-tour-guide-backend/internal/domain/route"

// NotificationQuery holds the query parameters of GET /notification.
type NotificationQuery struct {
	CurrentLocation string `form:"current_location" binding:"required"`
	Destination     string `form:"destination" binding:"required"`
	Narrate         bool   `form:"narrate"`
}

// ToQuery converts the request into a domain query.
func (q NotificationQuery) ToQuery() domainroute.Query {
	return domainroute.Query{
		CurrentLocation: q.CurrentLocation,
		Destination:     q.Destination,
		Narrate:         q.Narrate,
	}
}
