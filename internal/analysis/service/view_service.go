package service

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ViewParams struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.ViewRepository
}

type ViewService struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.ViewRepository
}

func NewView(p ViewParams) domain.ViewService {
	return &ViewService{
		db:   p.DB,
		log:  p.Log.Named("analysis.view"),
		repo: p.Repo,
	}
}

func (s *ViewService) List(ctx context.Context, req domain.ListAnalysisResultsRequest) (domain.ListAnalysisResultsResponse, error) {
	if req.Limit < 0 || req.Limit > domain.MaxListLimit {
		return domain.ListAnalysisResultsResponse{}, domain.ErrInvalidLimit
	}
	if req.Offset < 0 {
		return domain.ListAnalysisResultsResponse{}, domain.ErrInvalidOffset
	}

	rows, err := s.repo.List(ctx, s.db, req.Filter, req.Limit, req.Offset)
	if err != nil {
		return domain.ListAnalysisResultsResponse{}, err
	}

	count, err := s.repo.Count(ctx, s.db, req.Filter)
	if err != nil {
		return domain.ListAnalysisResultsResponse{}, err
	}

	data := make([]domain.AnalysisResult, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		data = append(data, toAnalysisResult(row))
	}

	s.log.Debug("listed analysis results",
		zap.Int("rows", len(data)),
		zap.Int64("count", count),
	)
	return domain.ListAnalysisResultsResponse{Count: count, Data: data}, nil
}

func (s *ViewService) GetByCallID(ctx context.Context, req domain.GetAnalysisResultRequest) (domain.AnalysisResult, error) {
	callID, err := uuid.Parse(strings.TrimSpace(req.CallID))
	if err != nil {
		return domain.AnalysisResult{}, domain.ErrInvalidCallID
	}

	row, err := s.repo.FindByCallID(ctx, s.db, callID.String())
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	if row == nil {
		return domain.AnalysisResult{}, domain.ErrNotFound
	}
	return toAnalysisResult(row), nil
}

func toAnalysisResult(row *domain.AnalysisResultRow) domain.AnalysisResult {
	return domain.AnalysisResult{
		CallID:              row.CallID,
		AgentName:           row.AgentName,
		PhoneNumber:         row.PhoneNumber,
		Duration:            row.Duration,
		AgentSpeechRate:     row.AgentSpeechRate,
		CustomerSpeechRate:  row.CustomerSpeechRate,
		SilenceRate:         row.SilenceRate,
		CrossTalkRate:       row.CrossTalkRate,
		AgentInterruptCount: row.AgentInterruptCount,
		CreatedAt:           row.CreatedAt,

		BaseAnalysisCallID:   row.BaseAnalysisCallID,
		CallReason:           row.Reason,
		CallReasonDetail:     row.ReasonDetail,
		IsFollowUpRequired:   row.RequiresFollowup,
		OrganizationMetadata: coerceOrganizationMetadata(row.OrganizationMetadata),

		IssueAnalysisID:            row.IssueAnalysisID,
		IssueSubCategory:           row.IssueSubCategory,
		SubIssueType:               row.SubIssueType,
		ChurnRisk:                  coerceChurnRisk(row.ChurnRisk),
		UrgencyLevel:               row.UrgencyLevel,
		RelatedWithPreviousCall:    row.RelatedWithPreviousCall,
		PreviousCallRelationDetail: row.RelatedWithPreviousCallDetail,
	}
}

// coerceOrganizationMetadata normalizes the jsonb column to a JSON-encoded
// string. The column may hold an object, a bare JSON string, or NULL; clients
// always receive a string or null.
func coerceOrganizationMetadata(raw datatypes.JSON) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		v := string(raw)
		return &v
	}
	v := compact.String()
	return &v
}

// coerceChurnRisk maps the stored small integer to the string the API
// contract requires.
func coerceChurnRisk(v *int) *string {
	if v == nil {
		return nil
	}
	s := strconv.Itoa(*v)
	return &s
}
