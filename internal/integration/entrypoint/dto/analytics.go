// Package dto defines request and response types for the API endpoints.
package dto

import (
	"github.com/cakebook/backend/internal/application/usecase/analytics"
	"github.com/cakebook/backend/internal/domain/entity"
)

// AnalyticsResponse represents the analytics endpoint response. The
// snapshot fields are embedded at the top level so the payload matches
// the shape the dashboard consumes; advisory and throttled describe how
// the snapshot was obtained.
type AnalyticsResponse struct {
	*entity.AnalyticsSnapshot
	Advisory  string `json:"advisory,omitempty"`
	Throttled bool   `json:"throttled,omitempty"`
}

// ToAnalyticsResponse converts a use case output to an AnalyticsResponse DTO.
func ToAnalyticsResponse(output *analytics.GetAnalyticsOutput) AnalyticsResponse {
	return AnalyticsResponse{
		AnalyticsSnapshot: output.Snapshot,
		Advisory:          output.Advisory,
		Throttled:         output.Throttled,
	}
}
