package customer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Membership is the loyalty tier of a customer
type Membership string

const (
	MembershipBronze Membership = "B"
	MembershipSilver Membership = "S"
	MembershipGold   Membership = "G"
)

// IsValid checks if the membership is one of the known tiers
func (m Membership) IsValid() bool {
	switch m {
	case MembershipBronze, MembershipSilver, MembershipGold:
		return true
	}
	return false
}

// Label returns the human readable name of the tier
func (m Membership) Label() string {
	switch m {
	case MembershipBronze:
		return "Bronze"
	case MembershipSilver:
		return "Silver"
	case MembershipGold:
		return "Gold"
	}
	return string(m)
}

// ErrCustomerNotFound is returned when a customer does not exist
var ErrCustomerNotFound = shared.NewNotFoundError("No customer with the given ID was found.")

// Customer is the shopper profile linked 1:1 to an authentication identity
type Customer struct {
	shared.BaseAggregateRoot
	UserID     uuid.UUID
	Phone      string
	BirthDate  *time.Time
	Membership Membership
}

// NewCustomer creates a bronze customer for a user identity
func NewCustomer(userID uuid.UUID) (*Customer, error) {
	if userID == uuid.Nil {
		return nil, shared.NewValidationError("Customer requires a user")
	}
	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Membership:        MembershipBronze,
	}, nil
}

// UpdateProfile updates the self-service fields
func (c *Customer) UpdateProfile(phone string, birthDate *time.Time) error {
	phone = strings.TrimSpace(phone)
	if len(phone) > 255 {
		return shared.NewValidationError("Phone cannot exceed 255 characters")
	}
	if birthDate != nil && birthDate.After(time.Now()) {
		return shared.NewValidationError("Birth date cannot be in the future")
	}
	c.Phone = phone
	c.BirthDate = birthDate
	c.Touch()
	return nil
}

// ChangeMembership sets the loyalty tier
func (c *Customer) ChangeMembership(m Membership) error {
	if !m.IsValid() {
		return shared.NewValidationError("\"" + string(m) + "\" is not a valid choice.")
	}
	c.Membership = m
	c.Touch()
	return nil
}

// Address is a postal address of a customer
type Address struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Street     string
	City       string
	Zip        string
}

// NewAddress creates a new address for a customer
func NewAddress(customerID uuid.UUID, street, city, zip string) (*Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	zip = strings.TrimSpace(zip)
	if street == "" || len(street) > 255 {
		return nil, shared.NewValidationError("Street must be between 1 and 255 characters")
	}
	if city == "" || len(city) > 255 {
		return nil, shared.NewValidationError("City must be between 1 and 255 characters")
	}
	if len(zip) > 20 {
		return nil, shared.NewValidationError("Zip cannot exceed 20 characters")
	}
	return &Address{
		ID:         uuid.New(),
		CustomerID: customerID,
		Street:     street,
		City:       city,
		Zip:        zip,
	}, nil
}
