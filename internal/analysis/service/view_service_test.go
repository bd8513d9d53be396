package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/callcenterinsight/insights/internal/analysis/domain"
	"github.com/callcenterinsight/insights/internal/analysis/repository"
	calldomain "github.com/callcenterinsight/insights/internal/call/domain"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	issueCallID  = "550e8400-e29b-41d4-a716-446655440000"
	plainCallID  = "650e8400-e29b-41d4-a716-446655440001"
	baseCallID   = "750e8400-e29b-41d4-a716-446655440002"
	absentCallID = "850e8400-e29b-41d4-a716-446655440003"
)

func newViewService(t *testing.T) (domain.ViewService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&calldomain.Call{},
		&domain.BaseAnalysisResult{},
		&domain.IssueAnalysisResult{},
	))
	require.NoError(t, db.Exec(`
		CREATE VIEW analysis_result_view AS
		SELECT c.*, b.*, i.*
		FROM "call" c
		LEFT JOIN base_analysis_result b ON b.base_analysis_call_id = c.call_id
		LEFT JOIN issue_analysis_result i ON i.issue_analysis_id = c.call_id
	`).Error)

	svc := NewView(ViewParams{
		DB:   db,
		Log:  zaptest.NewLogger(t),
		Repo: repository.ProvideView(),
	})
	return svc, db
}

func ptr[T any](v T) *T { return &v }

func seedCalls(t *testing.T, db *gorm.DB) {
	t.Helper()
	created := time.Date(2025, 7, 24, 10, 0, 0, 0, time.UTC)

	require.NoError(t, db.Create(&calldomain.Call{
		CallID:              issueCallID,
		AgentName:           "Ayşe Yılmaz",
		PhoneNumber:         "5318671534",
		Duration:            ptr(182.5),
		SilenceRate:         ptr(12.4),
		AgentInterruptCount: ptr(3),
		CreatedAt:           created,
	}).Error)
	require.NoError(t, db.Create(&domain.BaseAnalysisResult{
		CallID:               issueCallID,
		Reason:               "Complaint about POS device",
		ReasonDetail:         "Device rejects contactless payments",
		RequiresFollowup:     true,
		OrganizationMetadata: datatypes.JSON(`{"organization_id": "42", "organization_name": "NUR TİCARET"}`),
	}).Error)
	require.NoError(t, db.Create(&domain.IssueAnalysisResult{
		CallID:                        issueCallID,
		SubCategory:                   "hardware",
		SubIssueType:                  "pos_device",
		ChurnRisk:                     7,
		UrgencyLevel:                  "high",
		RelatedWithPreviousCall:       true,
		RelatedWithPreviousCallDetail: "Second call this week",
	}).Error)

	require.NoError(t, db.Create(&calldomain.Call{
		CallID:      plainCallID,
		AgentName:   "Mehmet Demir",
		PhoneNumber: "5301234567",
		CreatedAt:   created.Add(time.Hour),
	}).Error)

	require.NoError(t, db.Create(&calldomain.Call{
		CallID:      baseCallID,
		AgentName:   "Ayşe Kaya",
		PhoneNumber: "5449876543",
		Duration:    ptr(45.0),
		CreatedAt:   created.Add(2 * time.Hour),
	}).Error)
	require.NoError(t, db.Create(&domain.BaseAnalysisResult{
		CallID:               baseCallID,
		Reason:               "Question about limits",
		ReasonDetail:         "Asked for the daily transfer cap",
		OrganizationMetadata: datatypes.JSON(`"org_id=17 marka='KAYA GIDA'"`),
	}).Error)
}

func TestViewServiceList(t *testing.T) {
	svc, db := newViewService(t)
	seedCalls(t, db)
	ctx := context.Background()

	resp, err := svc.List(ctx, domain.ListAnalysisResultsRequest{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, resp.Count)
	require.Len(t, resp.Data, 3)

	// Ordered by call id, so the issue call comes first.
	issue := resp.Data[0]
	assert.Equal(t, issueCallID, issue.CallID)
	require.NotNil(t, issue.CallReason)
	assert.Equal(t, "Complaint about POS device", *issue.CallReason)
	require.NotNil(t, issue.ChurnRisk)
	assert.Equal(t, "7", *issue.ChurnRisk)
	require.NotNil(t, issue.OrganizationMetadata)
	assert.JSONEq(t, `{"organization_id": "42", "organization_name": "NUR TİCARET"}`, *issue.OrganizationMetadata)

	plain := resp.Data[1]
	assert.Nil(t, plain.BaseAnalysisCallID)
	assert.Nil(t, plain.ChurnRisk)
	assert.Nil(t, plain.OrganizationMetadata)

	// Bare JSON strings come back unquoted.
	base := resp.Data[2]
	require.NotNil(t, base.OrganizationMetadata)
	assert.Equal(t, "org_id=17 marka='KAYA GIDA'", *base.OrganizationMetadata)
	assert.Nil(t, base.IssueAnalysisID)
}

func TestViewServiceListFilters(t *testing.T) {
	svc, db := newViewService(t)
	seedCalls(t, db)
	ctx := context.Background()

	resp, err := svc.List(ctx, domain.ListAnalysisResultsRequest{
		Filter: domain.Filter{AgentName: "ayşe"},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.Count)

	resp, err = svc.List(ctx, domain.ListAnalysisResultsRequest{
		Filter: domain.Filter{FollowUpRequired: ptr(true)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, issueCallID, resp.Data[0].CallID)

	resp, err = svc.List(ctx, domain.ListAnalysisResultsRequest{
		Filter: domain.Filter{ReasonContains: "limits"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, baseCallID, resp.Data[0].CallID)

	resp, err = svc.List(ctx, domain.ListAnalysisResultsRequest{
		Filter: domain.Filter{ChurnRiskMin: ptr(5), ChurnRiskMax: ptr(10)},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, resp.Count)

	resp, err = svc.List(ctx, domain.ListAnalysisResultsRequest{
		Filter: domain.Filter{DurationMin: ptr(100.0)},
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, issueCallID, resp.Data[0].CallID)
}

func TestViewServiceListPagination(t *testing.T) {
	svc, db := newViewService(t)
	seedCalls(t, db)
	ctx := context.Background()

	resp, err := svc.List(ctx, domain.ListAnalysisResultsRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	// Count ignores pagination.
	assert.EqualValues(t, 3, resp.Count)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, plainCallID, resp.Data[0].CallID)
}

func TestViewServiceListRejectsBadPagination(t *testing.T) {
	svc, _ := newViewService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, domain.ListAnalysisResultsRequest{Limit: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	_, err = svc.List(ctx, domain.ListAnalysisResultsRequest{Limit: domain.MaxListLimit + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidLimit)

	_, err = svc.List(ctx, domain.ListAnalysisResultsRequest{Offset: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidOffset)
}

func TestViewServiceGetByCallID(t *testing.T) {
	svc, db := newViewService(t)
	seedCalls(t, db)
	ctx := context.Background()

	result, err := svc.GetByCallID(ctx, domain.GetAnalysisResultRequest{
		CallID: "  " + strings.ToUpper(issueCallID) + "  ",
	})
	require.NoError(t, err)
	assert.Equal(t, issueCallID, result.CallID)
	require.NotNil(t, result.ChurnRisk)
	assert.Equal(t, "7", *result.ChurnRisk)

	_, err = svc.GetByCallID(ctx, domain.GetAnalysisResultRequest{CallID: "not-a-uuid"})
	assert.ErrorIs(t, err, domain.ErrInvalidCallID)

	_, err = svc.GetByCallID(ctx, domain.GetAnalysisResultRequest{CallID: absentCallID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
