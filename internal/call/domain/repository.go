package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Upsert inserts the call or, when the call id already exists,
	// overwrites every column. Conversation re-imports are expected to be
	// safe to repeat verbatim.
	Upsert(ctx context.Context, db *gorm.DB, call *Call) error
	FindByID(ctx context.Context, db *gorm.DB, callID string) (*Call, error)
	List(ctx context.Context, db *gorm.DB, limit, offset int) ([]*Call, error)
}
