package service

import (
	"context"
	"strings"
	"time"

	"github.com/callcenterinsight/insights/internal/call/domain"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("call.service"),
		repo: p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCallRequest) (domain.Call, error) {
	callID, err := normalizeCallID(req.CallID)
	if err != nil {
		return domain.Call{}, err
	}

	agentName := strings.TrimSpace(req.AgentName)
	if agentName == "" {
		return domain.Call{}, domain.ErrInvalidAgentName
	}

	phone := NormalizePhoneNumber(req.PhoneNumber)
	if phone == "" {
		return domain.Call{}, domain.ErrInvalidPhoneNumber
	}

	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	call := domain.Call{
		CallID:              callID,
		AgentName:           agentName,
		PhoneNumber:         phone,
		Duration:            req.Duration,
		AgentSpeechRate:     req.AgentSpeechRate,
		CustomerSpeechRate:  req.CustomerSpeechRate,
		SilenceRate:         req.SilenceRate,
		CrossTalkRate:       req.CrossTalkRate,
		AgentInterruptCount: req.AgentInterruptCount,
		CreatedAt:           createdAt,
	}

	if err := s.repo.Upsert(ctx, s.db, &call); err != nil {
		return domain.Call{}, err
	}

	return call, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetCallRequest) (domain.Call, error) {
	callID, err := normalizeCallID(req.CallID)
	if err != nil {
		return domain.Call{}, err
	}

	call, err := s.repo.FindByID(ctx, s.db, callID)
	if err != nil {
		return domain.Call{}, err
	}
	if call == nil {
		return domain.Call{}, domain.ErrNotFound
	}
	return *call, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCallsRequest) ([]domain.Call, error) {
	items, err := s.repo.List(ctx, s.db, req.Limit, req.Offset)
	if err != nil {
		return nil, err
	}

	calls := make([]domain.Call, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		calls = append(calls, *item)
	}
	return calls, nil
}

// NormalizePhoneNumber keeps digits only and strips one leading zero.
// "05318671534" and "5318671534" refer to the same caller.
func NormalizePhoneNumber(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	if len(phone) > 1 && strings.HasPrefix(phone, "0") {
		phone = phone[1:]
	}
	return phone
}

func normalizeCallID(value string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(value))
	if err != nil {
		return "", domain.ErrInvalidCallID
	}
	return parsed.String(), nil
}
