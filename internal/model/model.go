// Package model holds the domain types shared by the repository, service
// and handler layers, together with the request and response payloads of
// the HTTP API.
package model

// MessageResponse is the generic confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// DatabaseStatusResponse reports a successful store round trip.
type DatabaseStatusResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// StatusRequest is the empty input of routes that take no parameters.
type StatusRequest struct{}

func (r *StatusRequest) Validate() error {
	return nil
}
