package repository

import (
	"context"

	"github.com/callcenterinsight/insights/internal/call/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Upsert(ctx context.Context, db *gorm.DB, call *domain.Call) error {
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "call_id"}},
		UpdateAll: true,
	}).Create(call).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, callID string) (*domain.Call, error) {
	var call domain.Call
	err := db.WithContext(ctx).
		Where("call_id = ?", callID).
		Take(&call).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &call, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, limit, offset int) ([]*domain.Call, error) {
	var calls []*domain.Call
	stmt := db.WithContext(ctx).Model(&domain.Call{}).Order("call_id")
	if offset > 0 {
		stmt = stmt.Offset(offset)
	}
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	if err := stmt.Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}
