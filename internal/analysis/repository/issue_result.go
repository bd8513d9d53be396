package repository

import (
	"context"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	"gorm.io/gorm"
)

type issueResultRepo struct{}

func ProvideIssueResult() domain.IssueResultRepository {
	return &issueResultRepo{}
}

func (r *issueResultRepo) Insert(ctx context.Context, db *gorm.DB, result *domain.IssueAnalysisResult) error {
	return db.WithContext(ctx).Create(result).Error
}

func (r *issueResultRepo) Exists(ctx context.Context, db *gorm.DB, callID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.IssueAnalysisResult{}).
		Where("issue_analysis_id = ?", callID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
