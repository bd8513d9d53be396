package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindMerchantByID(ctx context.Context, db *gorm.DB, merchantID int64) (*Merchant, error)
	FindPersonByMerchantID(ctx context.Context, db *gorm.DB, merchantID int64) (*MerchantPerson, error)
	// FindPersonsByPhone returns every person row matching the normalized
	// phone, ordered by merchant id so ties resolve the same way on every
	// storage engine.
	FindPersonsByPhone(ctx context.Context, db *gorm.DB, phone string) ([]*MerchantPerson, error)
	ListContactsByMerchantID(ctx context.Context, db *gorm.DB, merchantID int64) ([]*MerchantContact, error)
	ListTicketsByMerchantID(ctx context.Context, db *gorm.DB, merchantID int64) ([]*MerchantTicket, error)
	FindTicketDetails(ctx context.Context, db *gorm.DB, ticketID int64) (*TicketDetails, error)
}
