package repository

import (
	"context"

	"github.com/coursedesk/coursedesk/internal/domain/model"
)

// UserRepository looks up known accounts for best-effort registration linking.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
