package repository

import (
	"context"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type baseResultRepo struct{}

func ProvideBaseResult() domain.BaseResultRepository {
	return &baseResultRepo{}
}

func (r *baseResultRepo) Insert(ctx context.Context, db *gorm.DB, result *domain.BaseAnalysisResult) error {
	return db.WithContext(ctx).Create(result).Error
}

func (r *baseResultRepo) Exists(ctx context.Context, db *gorm.DB, callID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.BaseAnalysisResult{}).
		Where("base_analysis_call_id = ?", callID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *baseResultRepo) FindByID(ctx context.Context, db *gorm.DB, callID string) (*domain.BaseAnalysisResult, error) {
	var result domain.BaseAnalysisResult
	err := db.WithContext(ctx).
		Where("base_analysis_call_id = ?", callID).
		Take(&result).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *baseResultRepo) List(ctx context.Context, db *gorm.DB, limit, offset int) ([]*domain.BaseAnalysisResult, error) {
	var results []*domain.BaseAnalysisResult
	stmt := db.WithContext(ctx).
		Model(&domain.BaseAnalysisResult{}).
		Order("base_analysis_call_id")
	if offset > 0 {
		stmt = stmt.Offset(offset)
	}
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	if err := stmt.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *baseResultRepo) HasOrganizationMetadata(ctx context.Context, db *gorm.DB, callID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.BaseAnalysisResult{}).
		Where("base_analysis_call_id = ?", callID).
		Where("base_analysis_organization_metadata IS NOT NULL").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *baseResultRepo) SetOrganizationMetadata(ctx context.Context, db *gorm.DB, callID string, metadata datatypes.JSON) error {
	return db.WithContext(ctx).
		Model(&domain.BaseAnalysisResult{}).
		Where("base_analysis_call_id = ?", callID).
		Update("base_analysis_organization_metadata", metadata).Error
}
