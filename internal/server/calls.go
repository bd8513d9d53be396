package server

import (
	"net/http"
	"strings"
	"time"

	calldomain "github.com/callcenterinsight/insights/internal/call/domain"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createCallRequest struct {
	CallID              string     `json:"call_id"`
	AgentName           string     `json:"agent_name"`
	PhoneNumber         string     `json:"phone_number"`
	Duration            *float64   `json:"duration"`
	AgentSpeechRate     *float64   `json:"agent_speech_rate"`
	CustomerSpeechRate  *float64   `json:"customer_speech_rate"`
	SilenceRate         *float64   `json:"silence_rate"`
	CrossTalkRate       *float64   `json:"cross_talk_rate"`
	AgentInterruptCount *int       `json:"agent_interrupt_count"`
	CreatedAt           *time.Time `json:"created_at"`
}

func (s *Server) CreateCall(c *gin.Context) {
	var req createCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	callID := strings.TrimSpace(req.CallID)
	if callID == "" {
		callID = uuid.NewString()
	}
	createdAt := time.Now().UTC()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	resp, err := s.callSvc.Create(c.Request.Context(), calldomain.CreateCallRequest{
		CallID:              callID,
		AgentName:           strings.TrimSpace(req.AgentName),
		PhoneNumber:         strings.TrimSpace(req.PhoneNumber),
		Duration:            req.Duration,
		AgentSpeechRate:     req.AgentSpeechRate,
		CustomerSpeechRate:  req.CustomerSpeechRate,
		SilenceRate:         req.SilenceRate,
		CrossTalkRate:       req.CrossTalkRate,
		AgentInterruptCount: req.AgentInterruptCount,
		CreatedAt:           createdAt,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "is_success": true})
}

func (s *Server) ListCalls(c *gin.Context) {
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

	req := calldomain.ListCallsRequest{}
	if limit != nil {
		req.Limit = *limit
	}
	if offset != nil {
		req.Offset = *offset
	}

	resp, err := s.callSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if resp == nil {
		resp = []calldomain.Call{}
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "is_success": true})
}

func (s *Server) GetCallByID(c *gin.Context) {
	callID := strings.TrimSpace(c.Param("call_id"))

	resp, err := s.callSvc.GetByID(c.Request.Context(), calldomain.GetCallRequest{
		CallID: callID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp, "is_success": true})
}
