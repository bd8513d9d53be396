package domain

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BaseResultRepository interface {
	Insert(ctx context.Context, db *gorm.DB, result *BaseAnalysisResult) error
	Exists(ctx context.Context, db *gorm.DB, callID string) (bool, error)
	FindByID(ctx context.Context, db *gorm.DB, callID string) (*BaseAnalysisResult, error)
	List(ctx context.Context, db *gorm.DB, limit, offset int) ([]*BaseAnalysisResult, error)
	// HasOrganizationMetadata reports whether the metadata column is already
	// populated; the import pass fills it only once and never overwrites.
	HasOrganizationMetadata(ctx context.Context, db *gorm.DB, callID string) (bool, error)
	SetOrganizationMetadata(ctx context.Context, db *gorm.DB, callID string, metadata datatypes.JSON) error
}

type IssueResultRepository interface {
	Insert(ctx context.Context, db *gorm.DB, result *IssueAnalysisResult) error
	Exists(ctx context.Context, db *gorm.DB, callID string) (bool, error)
}

// ViewRepository is read-only; the view is recomputed by the database.
type ViewRepository interface {
	FindByCallID(ctx context.Context, db *gorm.DB, callID string) (*AnalysisResultRow, error)
	List(ctx context.Context, db *gorm.DB, filter Filter, limit, offset int) ([]*AnalysisResultRow, error)
	// Count applies the same predicate as List, without pagination.
	Count(ctx context.Context, db *gorm.DB, filter Filter) (int64, error)
}
