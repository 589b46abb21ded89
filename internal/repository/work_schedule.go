package repository

import (
	"context"

	"employee-portal-backend/internal/database/models"
	"employee-portal-backend/internal/store"

	"github.com/google/uuid"
)

// WorkScheduleRepository handles store operations for work schedules
type WorkScheduleRepository struct {
	client store.Client
}

// NewWorkScheduleRepository creates a new work schedule repository
func NewWorkScheduleRepository(client store.Client) *WorkScheduleRepository {
	return &WorkScheduleRepository{client: client}
}

// GetByID retrieves a work schedule by ID
func (r *WorkScheduleRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkSchedule, error) {
	var schedule models.WorkSchedule
	err := r.client.QueryOne(ctx, store.Query{
		Collection: store.CollectionWorkSchedules,
		Filters:    []store.Filter{store.Eq("id", id)},
	}, &schedule)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// List retrieves all work schedules ordered by name
func (r *WorkScheduleRepository) List(ctx context.Context) ([]models.WorkSchedule, error) {
	var schedules []models.WorkSchedule
	err := r.client.Query(ctx, store.Query{
		Collection: store.CollectionWorkSchedules,
		Order:      store.Asc("name"),
	}, &schedules)
	if err != nil {
		return nil, err
	}
	return schedules, nil
}
