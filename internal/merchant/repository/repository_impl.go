package repository

import (
	"context"

	"github.com/callcenterinsight/insights/internal/merchant/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindMerchantByID(ctx context.Context, db *gorm.DB, merchantID int64) (*domain.Merchant, error) {
	var merchant domain.Merchant
	err := db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Take(&merchant).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &merchant, nil
}

func (r *repo) FindPersonByMerchantID(ctx context.Context, db *gorm.DB, merchantID int64) (*domain.MerchantPerson, error) {
	var person domain.MerchantPerson
	err := db.WithContext(ctx).
		Where("merchant_id = ?", merchantID).
		Take(&person).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &person, nil
}

func (r *repo) FindPersonsByPhone(ctx context.Context, db *gorm.DB, phone string) ([]*domain.MerchantPerson, error) {
	var persons []*domain.MerchantPerson
	err := db.WithContext(ctx).
		Model(&domain.MerchantPerson{}).
		Where("merchant_person_phone = ?", phone).
		Order("merchant_id").
		Find(&persons).Error
	if err != nil {
		return nil, err
	}
	return persons, nil
}

func (r *repo) ListContactsByMerchantID(ctx context.Context, db *gorm.DB, merchantID int64) ([]*domain.MerchantContact, error) {
	var contacts []*domain.MerchantContact
	err := db.WithContext(ctx).
		Model(&domain.MerchantContact{}).
		Where("merchant_id = ?", merchantID).
		Order("contact_id").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *repo) ListTicketsByMerchantID(ctx context.Context, db *gorm.DB, merchantID int64) ([]*domain.MerchantTicket, error) {
	var tickets []*domain.MerchantTicket
	err := db.WithContext(ctx).
		Model(&domain.MerchantTicket{}).
		Where("merchant_id = ?", merchantID).
		Order("merchant_ticket_id").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *repo) FindTicketDetails(ctx context.Context, db *gorm.DB, ticketID int64) (*domain.TicketDetails, error) {
	var details domain.TicketDetails
	err := db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Take(&details).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}
