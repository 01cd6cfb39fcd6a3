package customer

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/customer"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// UpdateProfileRequest represents a customer's request to update their own profile
type UpdateProfileRequest struct {
	Phone     string  `json:"phone" binding:"omitempty,max=255"`
	BirthDate *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateCustomerRequest represents a staff request to update a customer
type UpdateCustomerRequest struct {
	Phone      string  `json:"phone" binding:"omitempty,max=255"`
	BirthDate  *string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Membership string  `json:"membership" binding:"required,oneof=B S G"`
}

// CustomerListFilter represents filter options for listing customers
type CustomerListFilter struct {
	Membership string `form:"membership" binding:"omitempty,oneof=B S G"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Phone      string    `json:"phone"`
	BirthDate  *string   `json:"birth_date"`
	Membership string    `json:"membership"`
}

// CreateAddressRequest represents a request to add an address
type CreateAddressRequest struct {
	Street string `json:"street" binding:"required,max=255"`
	City   string `json:"city" binding:"required,max=255"`
	Zip    string `json:"zip" binding:"omitempty,max=20"`
}

// AddressResponse represents an address in API responses
type AddressResponse struct {
	ID     uuid.UUID `json:"id"`
	Street string    `json:"street"`
	City   string    `json:"city"`
	Zip    string    `json:"zip"`
}

// ToCustomerResponse converts a customer to a response DTO
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:         c.ID,
		UserID:     c.UserID,
		Phone:      c.Phone,
		Membership: string(c.Membership),
	}
	if c.BirthDate != nil {
		d := c.BirthDate.Format(DateLayout)
		resp.BirthDate = &d
	}
	return resp
}

// ToAddressResponse converts an address to a response DTO
func ToAddressResponse(a *customer.Address) AddressResponse {
	return AddressResponse{
		ID:     a.ID,
		Street: a.Street,
		City:   a.City,
		Zip:    a.Zip,
	}
}

func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
