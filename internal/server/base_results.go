package server

import (
	"net/http"
	"strings"

	analysisdomain "github.com/callcenterinsight/insights/internal/analysis/domain"
	"github.com/gin-gonic/gin"
)

type createBaseResultRequest struct {
	CallID             string `json:"call_id"`
	CallReason         string `json:"call_reason"`
	CallReasonDetail   string `json:"call_reason_detail"`
	IsFollowUpRequired bool   `json:"is_follow_up_required"`
}

func (s *Server) CreateBaseResult(c *gin.Context) {
	var req createBaseResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.baseSvc.Create(c.Request.Context(), analysisdomain.CreateBaseResultRequest{
		CallID:           strings.TrimSpace(req.CallID),
		Reason:           strings.TrimSpace(req.CallReason),
		ReasonDetail:     strings.TrimSpace(req.CallReasonDetail),
		RequiresFollowup: req.IsFollowUpRequired,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "is_success": true})
}

func (s *Server) ListBaseResults(c *gin.Context) {
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

	req := analysisdomain.ListBaseResultsRequest{}
	if limit != nil {
		req.Limit = *limit
	}
	if offset != nil {
		req.Offset = *offset
	}

	resp, err := s.baseSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		resp = []analysisdomain.BaseAnalysisResult{}
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "is_success": true})
}

func (s *Server) GetBaseResultByCallID(c *gin.Context) {
	callID := strings.TrimSpace(c.Param("call_id"))

	resp, err := s.baseSvc.GetByCallID(c.Request.Context(), analysisdomain.GetBaseResultRequest{
		CallID: callID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "is_success": true})
}
