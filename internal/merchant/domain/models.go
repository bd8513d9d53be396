package domain

import "time"

type Merchant struct {
	MerchantID    int64     `gorm:"column:merchant_id;primaryKey" json:"merchant_id"`
	Name          string    `gorm:"column:merchant_name;not null" json:"merchant_name"`
	Brand         *string   `gorm:"column:merchant_brand" json:"merchant_brand"`
	Status        *string   `gorm:"column:merchant_status" json:"merchant_status"`
	City          *string   `gorm:"column:merchant_city" json:"merchant_city"`
	District      *string   `gorm:"column:merchant_district" json:"merchant_district"`
	Address       *string   `gorm:"column:merchant_address" json:"merchant_address"`
	TaxNo         *string   `gorm:"column:merchant_tax_no" json:"merchant_tax_no"`
	TaxOffice     *string   `gorm:"column:merchant_tax_office" json:"merchant_tax_office"`
	Sector        *string   `gorm:"column:merchant_sector" json:"merchant_sector"`
	People        *int      `gorm:"column:merchant_people" json:"merchant_people"`
	Hardware      *string   `gorm:"column:merchant_hardware" json:"merchant_hardware"`
	FiscalNo      *string   `gorm:"column:merchant_fiscal_no" json:"merchant_fiscal_no"`
	Service       *string   `gorm:"column:merchant_service" json:"merchant_service"`
	TicketSummary *string   `gorm:"column:merchant_ticket" json:"merchant_ticket"`
	InsertedAt    time.Time `gorm:"column:merchant_inserted_at;not null" json:"merchant_inserted_at"`
}

func (Merchant) TableName() string { return "merchant" }

type MerchantPerson struct {
	MerchantID int64   `gorm:"column:merchant_id;primaryKey" json:"merchant_id"`
	State      *int    `gorm:"column:merchant_person_state" json:"merchant_person_state"`
	Name       *string `gorm:"column:merchant_person_name" json:"merchant_person_name"`
	Phone      *string `gorm:"column:merchant_person_phone" json:"merchant_person_phone"`
}

func (MerchantPerson) TableName() string { return "merchant_person" }

type MerchantContact struct {
	ContactID  int64 `gorm:"column:contact_id;primaryKey" json:"contact_id"`
	MerchantID int64 `gorm:"column:merchant_id;not null" json:"merchant_id"`
}

func (MerchantContact) TableName() string { return "merchant_contact" }

type MerchantTicket struct {
	TicketID         int64      `gorm:"column:merchant_ticket_id;primaryKey" json:"merchant_ticket_id"`
	MerchantID       int64      `gorm:"column:merchant_id;not null" json:"merchant_id"`
	OrderNo          *int64     `gorm:"column:merchant_ticket_order_no" json:"merchant_ticket_order_no"`
	TypeID           *int       `gorm:"column:merchant_ticket_type_id" json:"merchant_ticket_type_id"`
	Time             *time.Time `gorm:"column:merchant_ticket_time" json:"merchant_ticket_time"`
	KindID           *int       `gorm:"column:merchant_ticket_kind_id" json:"merchant_ticket_kind_id"`
	SubTypeID        *int       `gorm:"column:merchant_ticket_sub_type_id" json:"merchant_ticket_sub_type_id"`
	Explanation      *string    `gorm:"column:merchant_ticket_explanation" json:"merchant_ticket_explanation"`
	FirstExplanation *string    `gorm:"column:merchant_ticket_first_explanation" json:"merchant_ticket_first_explanation"`
}

func (MerchantTicket) TableName() string { return "merchant_ticket" }

type TicketDetails struct {
	TicketID int64   `gorm:"column:ticket_id;primaryKey" json:"ticket_id"`
	Detail   *string `gorm:"column:ticket_detail" json:"ticket_detail"`
}

func (TicketDetails) TableName() string { return "ticket_details" }
