package service

import (
	"context"
	"strings"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BaseResultParams struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.BaseResultRepository
}

type BaseResultService struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.BaseResultRepository
}

func NewBaseResult(p BaseResultParams) domain.BaseResultService {
	return &BaseResultService{
		db:   p.DB,
		log:  p.Log.Named("analysis.baseresult"),
		repo: p.Repo,
	}
}

func (s *BaseResultService) Create(ctx context.Context, req domain.CreateBaseResultRequest) (domain.BaseAnalysisResult, error) {
	callID, err := uuid.Parse(strings.TrimSpace(req.CallID))
	if err != nil {
		return domain.BaseAnalysisResult{}, domain.ErrInvalidCallID
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return domain.BaseAnalysisResult{}, domain.ErrInvalidReason
	}
	reasonDetail := strings.TrimSpace(req.ReasonDetail)
	if reasonDetail == "" {
		return domain.BaseAnalysisResult{}, domain.ErrInvalidReasonDetail
	}

	exists, err := s.repo.Exists(ctx, s.db, callID.String())
	if err != nil {
		return domain.BaseAnalysisResult{}, err
	}
	if exists {
		return domain.BaseAnalysisResult{}, domain.ErrAlreadyExists
	}

	result := domain.BaseAnalysisResult{
		CallID:           callID.String(),
		Reason:           reason,
		ReasonDetail:     reasonDetail,
		RequiresFollowup: req.RequiresFollowup,
	}
	if err := s.repo.Insert(ctx, s.db, &result); err != nil {
		return domain.BaseAnalysisResult{}, err
	}
	return result, nil
}

func (s *BaseResultService) GetByCallID(ctx context.Context, req domain.GetBaseResultRequest) (domain.BaseAnalysisResult, error) {
	callID, err := uuid.Parse(strings.TrimSpace(req.CallID))
	if err != nil {
		return domain.BaseAnalysisResult{}, domain.ErrInvalidCallID
	}

	result, err := s.repo.FindByID(ctx, s.db, callID.String())
	if err != nil {
		return domain.BaseAnalysisResult{}, err
	}
	if result == nil {
		return domain.BaseAnalysisResult{}, domain.ErrNotFound
	}
	return *result, nil
}

func (s *BaseResultService) List(ctx context.Context, req domain.ListBaseResultsRequest) ([]domain.BaseAnalysisResult, error) {
	items, err := s.repo.List(ctx, s.db, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	results := make([]domain.BaseAnalysisResult, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		results = append(results, *item)
	}
	return results, nil
}
