package repository

import (
	"context"
	"time"

	"employee-portal-backend/internal/database/models"
	"employee-portal-backend/internal/store"

	"github.com/google/uuid"
)

// PresenceRepository handles store operations for presence records
type PresenceRepository struct {
	client store.Client
}

// NewPresenceRepository creates a new presence repository
func NewPresenceRepository(client store.Client) *PresenceRepository {
	return &PresenceRepository{client: client}
}

// GetByEmployeeInRange retrieves the employee's presences lying entirely within [from, to],
// earliest first. Intervals crossing either bound are excluded.
func (r *PresenceRepository) GetByEmployeeInRange(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]models.Presence, error) {
	var presences []models.Presence
	err := r.client.Query(ctx, store.Query{
		Collection: store.CollectionPresences,
		Filters: []store.Filter{
			store.Eq("employeeId", employeeID),
			store.Gte("startTime", from),
			store.Lte("endTime", to),
		},
		Order: store.Asc("startTime"),
	}, &presences)
	if err != nil {
		return nil, err
	}
	return presences, nil
}
