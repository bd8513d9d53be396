package domain

import (
	"context"
	"errors"
	"time"
)

// MerchantComplete is the denormalized assembly of merchant, person, contact
// ids and tickets-with-details for one merchant. Field names follow the wire
// contract existing clients depend on, including empty collections rendered
// as null rather than [].
type MerchantComplete struct {
	MerchantID         int64     `json:"merchantId"`
	MerchantName       string    `json:"merchantName"`
	MerchantBrand      *string   `json:"merchantBrand"`
	MerchantStatus     *string   `json:"merchantStatus"`
	MerchantCity       *string   `json:"merchantCity"`
	MerchantDistrict   *string   `json:"merchantDistrict"`
	MerchantAddress    *string   `json:"merchantAddress"`
	MerchantTaxNo      *string   `json:"merchantTaxNo"`
	MerchantTaxOffice  *string   `json:"merchantTaxOffice"`
	MerchantSector     *string   `json:"merchantSector"`
	MerchantPeople     *int      `json:"merchantPeople"`
	MerchantHardware   *string   `json:"merchantHardware"`
	MerchantFiscalNo   *string   `json:"merchantFiscalNo"`
	MerchantService    *string   `json:"merchantService"`
	MerchantTicket     *string   `json:"merchantTicket"`
	MerchantInsertedAt time.Time `json:"merchantInsertedAt"`

	MerchantPersonState *int    `json:"merchantPersonState"`
	MerchantPersonName  *string `json:"merchantPersonName"`
	MerchantPersonPhone *string `json:"merchantPersonPhone"`

	ContactIDs []int64             `json:"contactIds"`
	Tickets    []TicketWithDetails `json:"tickets"`
}

type TicketWithDetails struct {
	TicketID         int64      `json:"ticketId"`
	OrderNo          *int64     `json:"merchantTicketOrderNo"`
	TypeID           *int       `json:"merchantTicketTypeId"`
	Time             *time.Time `json:"merchantTicketTime"`
	KindID           *int       `json:"merchantTicketKindId"`
	SubTypeID        *int       `json:"merchantTicketSubTypeId"`
	Explanation      *string    `json:"merchantTicketExplanation"`
	FirstExplanation *string    `json:"merchantTicketFirstExplanation"`
	TicketDetail     *string    `json:"ticketDetail"`
}

type GetCompleteRequest struct {
	MerchantID int64
}

type BatchCompleteRequest struct {
	MerchantIDs []int64
}

type BatchCompleteResponse struct {
	Merchants  []MerchantComplete `json:"merchants"`
	TotalCount int                `json:"total_count"`
}

type SearchByPhoneRequest struct {
	Phone string
}

type Service interface {
	GetComplete(context.Context, GetCompleteRequest) (MerchantComplete, error)
	GetCompleteBatch(context.Context, BatchCompleteRequest) (BatchCompleteResponse, error)
	GetByPhone(context.Context, SearchByPhoneRequest) (MerchantComplete, error)
}

var (
	ErrInvalidMerchantID  = errors.New("invalid_merchant_id")
	ErrEmptyMerchantIDs   = errors.New("empty_merchant_ids")
	ErrTooManyMerchantIDs = errors.New("too_many_merchant_ids")
	ErrInvalidPhone       = errors.New("invalid_phone")
	ErrNotFound           = errors.New("not_found")
)

// MaxBatchSize caps one batch lookup; larger lists are rejected before any
// storage access.
const MaxBatchSize = 100
