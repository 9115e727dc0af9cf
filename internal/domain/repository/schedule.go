package repository

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// ScheduleRepository reads course schedule pricing data.
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*model.CourseSchedule, error)
}
