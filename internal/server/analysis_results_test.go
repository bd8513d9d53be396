package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	analysisdomain "github.com/callcenterinsight/insights/internal/analysis/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type fakeViewService struct {
	listCalls int
	lastReq   analysisdomain.ListAnalysisResultsRequest
	listResp  analysisdomain.ListAnalysisResultsResponse
	getErr    error
	getResp   analysisdomain.AnalysisResult
}

func (f *fakeViewService) List(ctx context.Context, req analysisdomain.ListAnalysisResultsRequest) (analysisdomain.ListAnalysisResultsResponse, error) {
	f.listCalls++
	f.lastReq = req
	_ = ctx
	return f.listResp, nil
}

func (f *fakeViewService) GetByCallID(ctx context.Context, req analysisdomain.GetAnalysisResultRequest) (analysisdomain.AnalysisResult, error) {
	_ = ctx
	_ = req
	return f.getResp, f.getErr
}

func newAnalysisTestRouter(viewSvc analysisdomain.ViewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	srv := &Server{
		log:     zap.NewNop(),
		viewSvc: viewSvc,
	}
	router := gin.New()
	router.Use(ErrorHandlingMiddleware())
	router.GET("/api/v1/analysis-results", srv.ListAnalysisResults)
	router.GET("/api/v1/analysis-results/:call_id", srv.GetAnalysisResultByCallID)
	return router
}

func TestListAnalysisResultsEnvelope(t *testing.T) {
	viewSvc := &fakeViewService{
		listResp: analysisdomain.ListAnalysisResultsResponse{Count: 0},
	}
	router := newAnalysisTestRouter(viewSvc)

	// The unknown parameter is dropped, not rejected.
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis-results?limit=5&bogus_param=1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if viewSvc.listCalls != 1 {
		t.Fatalf("expected one service call, got %d", viewSvc.listCalls)
	}
	if viewSvc.lastReq.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", viewSvc.lastReq.Limit)
	}

	var body struct {
		IsSuccess bool            `json:"is_success"`
		Count     int64           `json:"count"`
		Data      json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !body.IsSuccess {
		t.Fatal("expected is_success true")
	}
	// Empty results serialize as [], never null.
	if strings.TrimSpace(string(body.Data)) != "[]" {
		t.Fatalf("expected empty array data, got %s", body.Data)
	}
}

func TestListAnalysisResultsFilterWiring(t *testing.T) {
	viewSvc := &fakeViewService{}
	router := newAnalysisTestRouter(viewSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis-results?agent_name=ayşe&churn_risk_min=5&created_at_to=2025-07-24&follow_up_required=true", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	filter := viewSvc.lastReq.Filter
	if filter.AgentName != "ayşe" {
		t.Fatalf("expected agent_name filter, got %q", filter.AgentName)
	}
	if filter.ChurnRiskMin == nil || *filter.ChurnRiskMin != 5 {
		t.Fatalf("expected churn_risk_min 5, got %v", filter.ChurnRiskMin)
	}
	if filter.FollowUpRequired == nil || !*filter.FollowUpRequired {
		t.Fatalf("expected follow_up_required true, got %v", filter.FollowUpRequired)
	}
	if filter.CreatedTo == nil || filter.CreatedTo.Hour() != 23 {
		t.Fatalf("expected created_at_to at end of day, got %v", filter.CreatedTo)
	}
}

func TestListAnalysisResultsRejectsBadFilter(t *testing.T) {
	viewSvc := &fakeViewService{}
	router := newAnalysisTestRouter(viewSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis-results?churn_risk_min=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	if viewSvc.listCalls != 0 {
		t.Fatal("expected service not to be called")
	}

	var body errorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error.Type != "validation_error" {
		t.Fatalf("expected validation_error, got %q", body.Error.Type)
	}
	if len(body.Error.Errors) != 1 || body.Error.Errors[0].Field != "churn_risk_min" {
		t.Fatalf("unexpected validation errors: %+v", body.Error.Errors)
	}
}

func TestGetAnalysisResultErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", analysisdomain.ErrNotFound, http.StatusNotFound},
		{"bad call id", analysisdomain.ErrInvalidCallID, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAnalysisTestRouter(&fakeViewService{getErr: tc.err})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/analysis-results/whatever", nil)
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			if resp.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.Code)
			}
		})
	}
}
