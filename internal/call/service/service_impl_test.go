package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/callcenterinsight/insights/internal/call/domain"
	"github.com/callcenterinsight/insights/internal/call/repository"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
)

const testCallID = "550e8400-e29b-41d4-a716-446655440000"

func newCallService(t *testing.T) domain.Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&domain.Call{}))

	return New(Params{
		DB:   db,
		Log:  zaptest.NewLogger(t),
		Repo: repository.Provide(),
	})
}

func ptr[T any](v T) *T { return &v }

func TestCreateNormalizesInput(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateCallRequest{
		CallID:      "  550E8400-E29B-41D4-A716-446655440000  ",
		AgentName:   " Ayşe Yılmaz ",
		PhoneNumber: "0531 867 15 34",
		Duration:    ptr(182.5),
		CreatedAt:   time.Date(2025, 7, 24, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, testCallID, created.CallID)
	assert.Equal(t, "Ayşe Yılmaz", created.AgentName)
	assert.Equal(t, "5318671534", created.PhoneNumber)
}

func TestCreateDefaultsCreatedAt(t *testing.T) {
	svc := newCallService(t)

	created, err := svc.Create(context.Background(), domain.CreateCallRequest{
		CallID:      testCallID,
		AgentName:   "Mehmet",
		PhoneNumber: "5301234567",
	})
	require.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  domain.CreateCallRequest
		want error
	}{
		{"bad call id", domain.CreateCallRequest{CallID: "nope", AgentName: "a", PhoneNumber: "5301234567"}, domain.ErrInvalidCallID},
		{"blank agent", domain.CreateCallRequest{CallID: testCallID, AgentName: "  ", PhoneNumber: "5301234567"}, domain.ErrInvalidAgentName},
		{"no digits in phone", domain.CreateCallRequest{CallID: testCallID, AgentName: "a", PhoneNumber: "none"}, domain.ErrInvalidPhoneNumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateOverwritesExistingCall(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateCallRequest{
		CallID:      testCallID,
		AgentName:   "Ayşe",
		PhoneNumber: "5318671534",
		Duration:    ptr(60.0),
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, domain.CreateCallRequest{
		CallID:      testCallID,
		AgentName:   "Fatma",
		PhoneNumber: "5318671534",
	})
	require.NoError(t, err)

	all, err := svc.List(ctx, domain.ListCallsRequest{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Fatma", all[0].AgentName)
}

func TestGetByID(t *testing.T) {
	svc := newCallService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, domain.CreateCallRequest{
		CallID:      testCallID,
		AgentName:   "Ayşe",
		PhoneNumber: "5318671534",
	})
	require.NoError(t, err)

	got, err := svc.GetByID(ctx, domain.GetCallRequest{CallID: testCallID})
	require.NoError(t, err)
	assert.Equal(t, "Ayşe", got.AgentName)

	_, err = svc.GetByID(ctx, domain.GetCallRequest{CallID: "650e8400-e29b-41d4-a716-446655440001"})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetByID(ctx, domain.GetCallRequest{CallID: "garbage"})
	assert.ErrorIs(t, err, domain.ErrInvalidCallID)
}

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"05318671534", "5318671534"},
		{"5318671534", "5318671534"},
		{"0531 867 15 34", "5318671534"},
		{"0", "0"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizePhoneNumber(tc.raw))
	}
}
