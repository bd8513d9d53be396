package domain

import (
	"context"
	"errors"
	"time"
)

type CreateCallRequest struct {
	CallID              string
	AgentName           string
	PhoneNumber         string
	Duration            *float64
	AgentSpeechRate     *float64
	CustomerSpeechRate  *float64
	SilenceRate         *float64
	CrossTalkRate       *float64
	AgentInterruptCount *int
	CreatedAt           time.Time
}

type GetCallRequest struct {
	CallID string
}

type ListCallsRequest struct {
	Limit  int
	Offset int
}

type Service interface {
	Create(context.Context, CreateCallRequest) (Call, error)
	GetByID(context.Context, GetCallRequest) (Call, error)
	List(context.Context, ListCallsRequest) ([]Call, error)
}

var (
	ErrInvalidCallID      = errors.New("invalid_call_id")
	ErrInvalidAgentName   = errors.New("invalid_agent_name")
	ErrInvalidPhoneNumber = errors.New("invalid_phone_number")
	ErrNotFound           = errors.New("not_found")
)
