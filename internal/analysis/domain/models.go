package domain

import (
	"time"

	"gorm.io/datatypes"
)

// BaseAnalysisResult is the per-call insight row, 1:1 with a call. The
// organization metadata column starts NULL and is filled exactly once by the
// metadata import pass.
type BaseAnalysisResult struct {
	CallID               string         `gorm:"column:base_analysis_call_id;primaryKey" json:"call_id"`
	Reason               string         `gorm:"column:base_analysis_reason;not null" json:"call_reason"`
	ReasonDetail         string         `gorm:"column:base_analysis_reason_detail;not null" json:"call_reason_detail"`
	RequiresFollowup     bool           `gorm:"column:base_analysis_call_requires_followup;not null" json:"is_follow_up_required"`
	OrganizationMetadata datatypes.JSON `gorm:"column:base_analysis_organization_metadata;type:jsonb" json:"organization_metadata,omitempty"`
}

func (BaseAnalysisResult) TableName() string { return "base_analysis_result" }

// IssueAnalysisResult exists only for calls flagged as issues; its id is the
// call id and it requires the matching base analysis row.
type IssueAnalysisResult struct {
	CallID                        string `gorm:"column:issue_analysis_id;primaryKey" json:"call_id"`
	SubCategory                   string `gorm:"column:issue_analysis_sub_category;not null" json:"issue_sub_category"`
	SubIssueType                  string `gorm:"column:issue_analysis_sub_issue_type;not null" json:"sub_issue_type"`
	ChurnRisk                     int    `gorm:"column:issue_analysis_churn_risk;not null" json:"churn_risk"`
	UrgencyLevel                  string `gorm:"column:issue_analysis_urgency_level;not null" json:"urgency_level"`
	RelatedWithPreviousCall       bool   `gorm:"column:issue_analysis_related_with_previous_call;not null" json:"related_with_previous_call"`
	RelatedWithPreviousCallDetail string `gorm:"column:issue_analysis_related_with_previous_call_detail;not null" json:"related_with_previous_call_detail"`
}

func (IssueAnalysisResult) TableName() string { return "issue_analysis_result" }

// AnalysisResultRow is one row of the read-only view joining call,
// base_analysis_result and issue_analysis_result. Everything past the call
// columns is nullable because of the left joins.
type AnalysisResultRow struct {
	CallID              string    `gorm:"column:call_id;primaryKey"`
	AgentName           string    `gorm:"column:call_agent_name"`
	PhoneNumber         string    `gorm:"column:call_phone_number"`
	Duration            *float64  `gorm:"column:call_duration"`
	AgentSpeechRate     *float64  `gorm:"column:call_agent_speech_rate"`
	CustomerSpeechRate  *float64  `gorm:"column:call_customer_speech_rate"`
	SilenceRate         *float64  `gorm:"column:call_silence_rate"`
	CrossTalkRate       *float64  `gorm:"column:call_cross_talk_rate"`
	AgentInterruptCount *int      `gorm:"column:call_agent_interrupt_count"`
	CreatedAt           time.Time `gorm:"column:call_created_at"`

	BaseAnalysisCallID   *string        `gorm:"column:base_analysis_call_id"`
	Reason               *string        `gorm:"column:base_analysis_reason"`
	ReasonDetail         *string        `gorm:"column:base_analysis_reason_detail"`
	RequiresFollowup     *bool          `gorm:"column:base_analysis_call_requires_followup"`
	OrganizationMetadata datatypes.JSON `gorm:"column:base_analysis_organization_metadata"`

	IssueAnalysisID               *string `gorm:"column:issue_analysis_id"`
	IssueSubCategory              *string `gorm:"column:issue_analysis_sub_category"`
	SubIssueType                  *string `gorm:"column:issue_analysis_sub_issue_type"`
	ChurnRisk                     *int    `gorm:"column:issue_analysis_churn_risk"`
	UrgencyLevel                  *string `gorm:"column:issue_analysis_urgency_level"`
	RelatedWithPreviousCall       *bool   `gorm:"column:issue_analysis_related_with_previous_call"`
	RelatedWithPreviousCallDetail *string `gorm:"column:issue_analysis_related_with_previous_call_detail"`
}

func (AnalysisResultRow) TableName() string { return "analysis_result_view" }
