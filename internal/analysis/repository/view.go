package repository

import (
	"context"
	"strings"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	"gorm.io/gorm"
)

type viewRepo struct{}

func ProvideView() domain.ViewRepository {
	return &viewRepo{}
}

func (r *viewRepo) FindByCallID(ctx context.Context, db *gorm.DB, callID string) (*domain.AnalysisResultRow, error) {
	var row domain.AnalysisResultRow
	err := db.WithContext(ctx).
		Where("call_id = ?", callID).
		Take(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *viewRepo) List(ctx context.Context, db *gorm.DB, filter domain.Filter, limit, offset int) ([]*domain.AnalysisResultRow, error) {
	var rows []*domain.AnalysisResultRow
	stmt := applyFilter(db.WithContext(ctx).Model(&domain.AnalysisResultRow{}), filter)
	if offset > 0 {
		stmt = stmt.Offset(offset)
	}
	if limit > 0 {
		stmt = stmt.Limit(limit)
	}
	// The join has no natural order; call_id keeps pages stable.
	if err := stmt.Order("call_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *viewRepo) Count(ctx context.Context, db *gorm.DB, filter domain.Filter) (int64, error) {
	var count int64
	stmt := applyFilter(db.WithContext(ctx).Model(&domain.AnalysisResultRow{}), filter)
	if err := stmt.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter is shared by List and Count so the returned count can never
// drift from the data query's predicate.
func applyFilter(stmt *gorm.DB, f domain.Filter) *gorm.DB {
	if f.AgentName != "" {
		stmt = stmt.Where("LOWER(call_agent_name) LIKE ?", "%"+strings.ToLower(f.AgentName)+"%")
	}
	if f.PhoneNumber != "" {
		stmt = stmt.Where("call_phone_number = ?", f.PhoneNumber)
	}
	if f.FollowUpRequired != nil {
		stmt = stmt.Where("base_analysis_call_requires_followup = ?", *f.FollowUpRequired)
	}
	if f.ReasonContains != "" {
		stmt = stmt.Where("LOWER(base_analysis_reason) LIKE ?", "%"+strings.ToLower(f.ReasonContains)+"%")
	}
	if f.CreatedFrom != nil {
		stmt = stmt.Where("call_created_at >= ?", *f.CreatedFrom)
	}
	if f.CreatedTo != nil {
		stmt = stmt.Where("call_created_at <= ?", *f.CreatedTo)
	}
	if f.DurationMin != nil {
		stmt = stmt.Where("call_duration >= ?", *f.DurationMin)
	}
	if f.DurationMax != nil {
		stmt = stmt.Where("call_duration <= ?", *f.DurationMax)
	}
	if f.AgentSpeechRateMin != nil {
		stmt = stmt.Where("call_agent_speech_rate >= ?", *f.AgentSpeechRateMin)
	}
	if f.AgentSpeechRateMax != nil {
		stmt = stmt.Where("call_agent_speech_rate <= ?", *f.AgentSpeechRateMax)
	}
	if f.CustomerSpeechRateMin != nil {
		stmt = stmt.Where("call_customer_speech_rate >= ?", *f.CustomerSpeechRateMin)
	}
	if f.CustomerSpeechRateMax != nil {
		stmt = stmt.Where("call_customer_speech_rate <= ?", *f.CustomerSpeechRateMax)
	}
	if f.SilenceRateMin != nil {
		stmt = stmt.Where("call_silence_rate >= ?", *f.SilenceRateMin)
	}
	if f.SilenceRateMax != nil {
		stmt = stmt.Where("call_silence_rate <= ?", *f.SilenceRateMax)
	}
	if f.CrossTalkRateMin != nil {
		stmt = stmt.Where("call_cross_talk_rate >= ?", *f.CrossTalkRateMin)
	}
	if f.CrossTalkRateMax != nil {
		stmt = stmt.Where("call_cross_talk_rate <= ?", *f.CrossTalkRateMax)
	}
	if f.InterruptCountMin != nil {
		stmt = stmt.Where("call_agent_interrupt_count >= ?", *f.InterruptCountMin)
	}
	if f.InterruptCountMax != nil {
		stmt = stmt.Where("call_agent_interrupt_count <= ?", *f.InterruptCountMax)
	}
	if f.ChurnRiskMin != nil {
		stmt = stmt.Where("issue_analysis_churn_risk >= ?", *f.ChurnRiskMin)
	}
	if f.ChurnRiskMax != nil {
		stmt = stmt.Where("issue_analysis_churn_risk <= ?", *f.ChurnRiskMax)
	}
	return stmt
}
