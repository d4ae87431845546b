// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/domain/entity"
)

// SnapshotCache stores the last successfully computed analytics snapshot
// per user. The previous snapshot stays visible to callers until a newer
// computation replaces it wholesale.
type SnapshotCache interface {
	// Get returns the cached snapshot for the user, or nil if none exists.
	Get(ctx context.Context, userID uuid.UUID) (*entity.AnalyticsSnapshot, error)

	// Set replaces the user's cached snapshot.
	Set(ctx context.Context, userID uuid.UUID, snapshot *entity.AnalyticsSnapshot) error
}
