// Package dto defines request and response types for the API endpoints.
package dto

// ErrorResponse represents an API error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
