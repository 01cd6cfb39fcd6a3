package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/customer"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	UserID     uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex"`
	Phone      string              `gorm:"type:varchar(255);not null;default:''"`
	BirthDate  *time.Time          `gorm:"type:date"`
	Membership customer.Membership `gorm:"type:varchar(1);not null;default:'B';index"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer.
func (m *CustomerModel) ToDomain() *customer.Customer {
	return &customer.Customer{
		BaseAggregateRoot: m.ToAggregateRoot(),
		UserID:            m.UserID,
		Phone:             m.Phone,
		BirthDate:         m.BirthDate,
		Membership:        m.Membership,
	}
}

// FromDomain populates the persistence model from a domain Customer.
func (m *CustomerModel) FromDomain(c *customer.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.UserID = c.UserID
	m.Phone = c.Phone
	m.BirthDate = c.BirthDate
	m.Membership = c.Membership
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer.
func CustomerModelFromDomain(c *customer.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// AddressModel is the persistence model for the Address domain entity.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Street     string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(255);not null"`
	Zip        string    `gorm:"type:varchar(20);not null;default:''"`
}

// TableName returns the table name for GORM
func (AddressModel) TableName() string {
	return "addresses"
}

// ToDomain converts the persistence model to a domain Address.
func (m *AddressModel) ToDomain() *customer.Address {
	return &customer.Address{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Street:     m.Street,
		City:       m.City,
		Zip:        m.Zip,
	}
}

// AddressModelFromDomain creates a persistence model from a domain Address.
func AddressModelFromDomain(a *customer.Address) *AddressModel {
	return &AddressModel{
		ID:         a.ID,
		CustomerID: a.CustomerID,
		Street:     a.Street,
		City:       a.City,
		Zip:        a.Zip,
	}
}
