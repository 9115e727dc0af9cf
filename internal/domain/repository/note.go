package repository

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// OrderNoteRepository describes persistence operations with order notes.
type OrderNoteRepository interface {
	Add(ctx context.Context, note *model.OrderNote) (*model.OrderNote, error)
	ListByRegistration(ctx context.Context, registrationID int64) ([]model.OrderNote, error)
	Delete(ctx context.Context, registrationID, noteID int64) error
}
