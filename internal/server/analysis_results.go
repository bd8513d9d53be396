package server

import (
	"net/http"
	"strings"

	analysisdomain "github.com/callcenterinsight/insights/internal/analysis/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// knownAnalysisFilterKeys is the closed set of query parameters the listing
// accepts. Anything else is logged and dropped instead of rejected, so old
// clients with stale parameters keep working.
var knownAnalysisFilterKeys = map[string]struct{}{
	"limit":                     {},
	"offset":                    {},
	"agent_name":                {},
	"phone_number":              {},
	"follow_up_required":        {},
	"reason_contains":           {},
	"created_at_from":           {},
	"created_at_to":             {},
	"duration_min":              {},
	"duration_max":              {},
	"agent_speech_rate_min":     {},
	"agent_speech_rate_max":     {},
	"customer_speech_rate_min":  {},
	"customer_speech_rate_max":  {},
	"silence_rate_min":          {},
	"silence_rate_max":          {},
	"cross_talk_rate_min":       {},
	"cross_talk_rate_max":       {},
	"agent_interrupt_count_min": {},
	"agent_interrupt_count_max": {},
	"churn_risk_min":            {},
	"churn_risk_max":            {},
}

type analysisResultListResponse struct {
	IsSuccess bool                            `json:"is_success"`
	Count     int64                           `json:"count"`
	Message   *string                         `json:"message"`
	Data      []analysisdomain.AnalysisResult `json:"data"`
}

func (s *Server) ListAnalysisResults(c *gin.Context) {
	for key := range c.Request.URL.Query() {
		if _, ok := knownAnalysisFilterKeys[key]; !ok {
			s.log.Warn("unknown filter parameter ignored", zap.String("key", key))
		}
	}

	limit, err := parseOptionalInt(c.Query("limit"))
	if err != nil {
		AbortWithError(c, newValidationError("limit", "invalid_limit", "invalid limit"))
		return
	}
	offset, err := parseOptionalInt(c.Query("offset"))
	if err != nil {
		AbortWithError(c, newValidationError("offset", "invalid_offset", "invalid offset"))
		return
	}

	filter, err := parseAnalysisFilter(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	req := analysisdomain.ListAnalysisResultsRequest{Filter: filter}
	if limit != nil {
		req.Limit = *limit
	}
	if offset != nil {
		req.Offset = *offset
	}

	resp, err := s.viewSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := resp.Data
	if data == nil {
		data = []analysisdomain.AnalysisResult{}
	}
	c.JSON(http.StatusOK, analysisResultListResponse{
		IsSuccess: true,
		Count:     resp.Count,
		Data:      data,
	})
}

func (s *Server) GetAnalysisResultByCallID(c *gin.Context) {
	callID := strings.TrimSpace(c.Param("call_id"))

	resp, err := s.viewSvc.GetByCallID(c.Request.Context(), analysisdomain.GetAnalysisResultRequest{
		CallID: callID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "is_success": true})
}

func parseAnalysisFilter(c *gin.Context) (analysisdomain.Filter, error) {
	filter := analysisdomain.Filter{
		AgentName:      strings.TrimSpace(c.Query("agent_name")),
		PhoneNumber:    strings.TrimSpace(c.Query("phone_number")),
		ReasonContains: strings.TrimSpace(c.Query("reason_contains")),
	}

	var err error
	if filter.FollowUpRequired, err = parseOptionalBool(c.Query("follow_up_required")); err != nil {
		return filter, newValidationError("follow_up_required", "invalid_follow_up_required", "invalid follow_up_required")
	}
	if filter.CreatedFrom, err = parseOptionalTime(c.Query("created_at_from"), false); err != nil {
		return filter, newValidationError("created_at_from", "invalid_created_at_from", "invalid created_at_from")
	}
	if filter.CreatedTo, err = parseOptionalTime(c.Query("created_at_to"), true); err != nil {
		return filter, newValidationError("created_at_to", "invalid_created_at_to", "invalid created_at_to")
	}

	floatParams := []struct {
		key  string
		dest **float64
	}{
		{"duration_min", &filter.DurationMin},
		{"duration_max", &filter.DurationMax},
		{"agent_speech_rate_min", &filter.AgentSpeechRateMin},
		{"agent_speech_rate_max", &filter.AgentSpeechRateMax},
		{"customer_speech_rate_min", &filter.CustomerSpeechRateMin},
		{"customer_speech_rate_max", &filter.CustomerSpeechRateMax},
		{"silence_rate_min", &filter.SilenceRateMin},
		{"silence_rate_max", &filter.SilenceRateMax},
		{"cross_talk_rate_min", &filter.CrossTalkRateMin},
		{"cross_talk_rate_max", &filter.CrossTalkRateMax},
	}
	for _, param := range floatParams {
		if *param.dest, err = parseOptionalFloat64(c.Query(param.key)); err != nil {
			return filter, newValidationError(param.key, "invalid_"+param.key, "invalid "+param.key)
		}
	}

	intParams := []struct {
		key  string
		dest **int
	}{
		{"agent_interrupt_count_min", &filter.InterruptCountMin},
		{"agent_interrupt_count_max", &filter.InterruptCountMax},
		{"churn_risk_min", &filter.ChurnRiskMin},
		{"churn_risk_max", &filter.ChurnRiskMax},
	}
	for _, param := range intParams {
		if *param.dest, err = parseOptionalInt(c.Query(param.key)); err != nil {
			return filter, newValidationError(param.key, "invalid_"+param.key, "invalid "+param.key)
		}
	}

	return filter, nil
}
