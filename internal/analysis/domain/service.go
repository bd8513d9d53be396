package domain

import (
	"context"
	"errors"
	"time"
)

// AnalysisResult is the API-facing shape of one aggregate view row. Two
// fields are coerced before leaving the service layer: organization metadata
// is always a JSON-encoded string (or null) and churn risk is a string (or
// null) even though storage holds a small integer.
type AnalysisResult struct {
	CallID              string    `json:"call_id"`
	AgentName           string    `json:"agent_name"`
	PhoneNumber         string    `json:"phone_number"`
	Duration            *float64  `json:"duration"`
	AgentSpeechRate     *float64  `json:"agent_speech_rate"`
	CustomerSpeechRate  *float64  `json:"customer_speech_rate"`
	SilenceRate         *float64  `json:"silence_rate"`
	CrossTalkRate       *float64  `json:"cross_talk_rate"`
	AgentInterruptCount *int      `json:"agent_interrupt_count"`
	CreatedAt           time.Time `json:"created_at"`

	BaseAnalysisCallID   *string `json:"base_analysis_call_id"`
	CallReason           *string `json:"call_reason"`
	CallReasonDetail     *string `json:"call_reason_detail"`
	IsFollowUpRequired   *bool   `json:"is_follow_up_required"`
	OrganizationMetadata *string `json:"organization_metadata"`

	IssueAnalysisID            *string `json:"issue_analysis_id"`
	IssueSubCategory           *string `json:"issue_sub_category"`
	SubIssueType               *string `json:"sub_issue_type"`
	ChurnRisk                  *string `json:"churn_risk"`
	UrgencyLevel               *string `json:"urgency_level"`
	RelatedWithPreviousCall    *bool   `json:"related_with_previous_call"`
	PreviousCallRelationDetail *string `json:"previous_call_relation_detail"`
}

type ListAnalysisResultsRequest struct {
	Filter Filter
	Limit  int
	Offset int
}

type ListAnalysisResultsResponse struct {
	Count int64
	Data  []AnalysisResult
}

type GetAnalysisResultRequest struct {
	CallID string
}

// ViewService answers filtered, paginated reads over the aggregate view; the
// returned count always reflects the filter predicate before pagination.
type ViewService interface {
	List(context.Context, ListAnalysisResultsRequest) (ListAnalysisResultsResponse, error)
	GetByCallID(context.Context, GetAnalysisResultRequest) (AnalysisResult, error)
}

type CreateBaseResultRequest struct {
	CallID           string
	Reason           string
	ReasonDetail     string
	RequiresFollowup bool
}

type GetBaseResultRequest struct {
	CallID string
}

type ListBaseResultsRequest struct {
	Limit  int
	Offset int
}

type BaseResultService interface {
	Create(context.Context, CreateBaseResultRequest) (BaseAnalysisResult, error)
	GetByCallID(context.Context, GetBaseResultRequest) (BaseAnalysisResult, error)
	List(context.Context, ListBaseResultsRequest) ([]BaseAnalysisResult, error)
}

var (
	ErrInvalidCallID       = errors.New("invalid_call_id")
	ErrInvalidReason       = errors.New("invalid_call_reason")
	ErrInvalidReasonDetail = errors.New("invalid_call_reason_detail")
	ErrInvalidLimit        = errors.New("invalid_limit")
	ErrInvalidOffset       = errors.New("invalid_offset")
	ErrAlreadyExists       = errors.New("already_exists")
	ErrNotFound            = errors.New("not_found")
)

const (
	// MaxListLimit bounds a single page of aggregate results.
	MaxListLimit = 1000
	// ChurnRiskMin and ChurnRiskMax bound the churn risk score.
	ChurnRiskMin = 0
	ChurnRiskMax = 10
)
