package service

import (
	"context"
	"strings"

	"github.com/callcenterinsight/insights/internal/merchant/domain"
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
		log:  p.Log.Named("merchant.service"),
		repo: p.Repo,
	}
}

func (s *Service) GetComplete(ctx context.Context, req domain.GetCompleteRequest) (domain.MerchantComplete, error) {
	if req.MerchantID <= 0 {
		return domain.MerchantComplete{}, domain.ErrInvalidMerchantID
	}

	merchant, err := s.repo.FindMerchantByID(ctx, s.db, req.MerchantID)
	if err != nil {
		return domain.MerchantComplete{}, err
	}
	if merchant == nil {
		return domain.MerchantComplete{}, domain.ErrNotFound
	}

	complete := domain.MerchantComplete{
		MerchantID:         merchant.MerchantID,
		MerchantName:       merchant.Name,
		MerchantBrand:      merchant.Brand,
		MerchantStatus:     merchant.Status,
		MerchantCity:       merchant.City,
		MerchantDistrict:   merchant.District,
		MerchantAddress:    merchant.Address,
		MerchantTaxNo:      merchant.TaxNo,
		MerchantTaxOffice:  merchant.TaxOffice,
		MerchantSector:     merchant.Sector,
		MerchantPeople:     merchant.People,
		MerchantHardware:   merchant.Hardware,
		MerchantFiscalNo:   merchant.FiscalNo,
		MerchantService:    merchant.Service,
		MerchantTicket:     merchant.TicketSummary,
		MerchantInsertedAt: merchant.InsertedAt,
	}

	person, err := s.repo.FindPersonByMerchantID(ctx, s.db, req.MerchantID)
	if err != nil {
		return domain.MerchantComplete{}, err
	}
	if person != nil {
		complete.MerchantPersonState = person.State
		complete.MerchantPersonName = person.Name
		complete.MerchantPersonPhone = person.Phone
	}

	contacts, err := s.repo.ListContactsByMerchantID(ctx, s.db, req.MerchantID)
	if err != nil {
		return domain.MerchantComplete{}, err
	}
	if len(contacts) > 0 {
		ids := make([]int64, 0, len(contacts))
		for _, contact := range contacts {
			ids = append(ids, contact.ContactID)
		}
		complete.ContactIDs = ids
	}

	tickets, err := s.repo.ListTicketsByMerchantID(ctx, s.db, req.MerchantID)
	if err != nil {
		return domain.MerchantComplete{}, err
	}
	if len(tickets) > 0 {
		withDetails := make([]domain.TicketWithDetails, 0, len(tickets))
		for _, ticket := range tickets {
			item := domain.TicketWithDetails{
				TicketID:         ticket.TicketID,
				OrderNo:          ticket.OrderNo,
				TypeID:           ticket.TypeID,
				Time:             ticket.Time,
				KindID:           ticket.KindID,
				SubTypeID:        ticket.SubTypeID,
				Explanation:      ticket.Explanation,
				FirstExplanation: ticket.FirstExplanation,
			}

			// A missing or failed detail read never fails the whole lookup.
			details, err := s.repo.FindTicketDetails(ctx, s.db, ticket.TicketID)
			if err != nil {
				s.log.Warn("ticket detail lookup failed",
					zap.Int64("ticket_id", ticket.TicketID),
					zap.Error(err),
				)
			} else if details != nil {
				item.TicketDetail = details.Detail
			}
			withDetails = append(withDetails, item)
		}
		complete.Tickets = withDetails
	}

	return complete, nil
}

func (s *Service) GetCompleteBatch(ctx context.Context, req domain.BatchCompleteRequest) (domain.BatchCompleteResponse, error) {
	if len(req.MerchantIDs) == 0 {
		return domain.BatchCompleteResponse{}, domain.ErrEmptyMerchantIDs
	}
	if len(req.MerchantIDs) > domain.MaxBatchSize {
		return domain.BatchCompleteResponse{}, domain.ErrTooManyMerchantIDs
	}

	merchants := make([]domain.MerchantComplete, 0, len(req.MerchantIDs))
	for _, merchantID := range req.MerchantIDs {
		complete, err := s.GetComplete(ctx, domain.GetCompleteRequest{MerchantID: merchantID})
		if err != nil {
			if err == domain.ErrNotFound || err == domain.ErrInvalidMerchantID {
				s.log.Warn("merchant skipped in batch lookup",
					zap.Int64("merchant_id", merchantID),
					zap.Error(err),
				)
				continue
			}
			return domain.BatchCompleteResponse{}, err
		}
		merchants = append(merchants, complete)
	}

	return domain.BatchCompleteResponse{
		Merchants:  merchants,
		TotalCount: len(merchants),
	}, nil
}

func (s *Service) GetByPhone(ctx context.Context, req domain.SearchByPhoneRequest) (domain.MerchantComplete, error) {
	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return domain.MerchantComplete{}, err
	}

	persons, err := s.repo.FindPersonsByPhone(ctx, s.db, phone)
	if err != nil {
		return domain.MerchantComplete{}, err
	}
	if len(persons) == 0 {
		return domain.MerchantComplete{}, domain.ErrNotFound
	}
	if len(persons) > 1 {
		s.log.Warn("phone maps to multiple merchants, picking lowest merchant id",
			zap.String("phone", phone),
			zap.Int("matches", len(persons)),
		)
	}

	// Repository orders by merchant id, so the first row is the tie-break.
	return s.GetComplete(ctx, domain.GetCompleteRequest{MerchantID: persons[0].MerchantID})
}

// NormalizePhone reduces a free-form phone string to the canonical local
// number: digits only, at least ten of them, with a "90" country prefix or a
// single domestic leading zero removed.
func NormalizePhone(raw string) (string, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	phone := b.String()
	if len(phone) < 10 {
		return "", domain.ErrInvalidPhone
	}

	switch {
	case strings.HasPrefix(phone, "90") && len(phone) == 12:
		phone = phone[2:]
	case strings.HasPrefix(phone, "0") && len(phone) == 11:
		phone = phone[1:]
	}
	return phone, nil
}
