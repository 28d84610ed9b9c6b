// Package realtimetourguide is the backend for a voice road-trip companion.
//
// The service provides:
//   - A greeting at the root path for liveness checks
//   - Realtime session creation against the OpenAI realtime API, primed with
//     a passenger prompt built from the rider's location, destination and
//     desired stop
//   - Route notifications built from Google Directions, optionally narrated
//     by a chat model
//
// The server entrypoint lives in cmd/server.
package realtimetourguide
