package customer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/customer"
	"github.com/storefront/backend/internal/domain/shared"
)

// ErrAddressNotFound is returned when an address does not exist or belongs to another customer
var ErrAddressNotFound = shared.NewNotFoundError("No address with the given ID was found.")

// CustomerService handles customer profiles and addresses
type CustomerService struct {
	customerRepo customer.CustomerRepository
	addressRepo  customer.AddressRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customerRepo customer.CustomerRepository, addressRepo customer.AddressRepository) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
	}
}

// GetMe returns the profile of the acting user, creating it on first access
func (s *CustomerService) GetMe(ctx context.Context, actor shared.Actor) (*CustomerResponse, error) {
	c, err := s.me(ctx, actor)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(c)
	return &response, nil
}

// UpdateMe updates the self-service fields of the acting user's profile.
// Membership can only be changed by staff.
func (s *CustomerService) UpdateMe(ctx context.Context, actor shared.Actor, req UpdateProfileRequest) (*CustomerResponse, error) {
	c, err := s.me(ctx, actor)
	if err != nil {
		return nil, err
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, shared.NewValidationError("Date has wrong format. Use YYYY-MM-DD.")
	}
	if err := c.UpdateProfile(req.Phone, birthDate); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// List lists customers
func (s *CustomerService) List(ctx context.Context, filter CustomerListFilter) ([]CustomerResponse, int64, error) {
	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}
	if filter.Membership != "" {
		domainFilter.Set("membership", filter.Membership)
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses, total, nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToCustomerResponse(c)
	return &response, nil
}

// Update replaces the editable fields of a customer, including membership
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	c, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, shared.NewValidationError("Date has wrong format. Use YYYY-MM-DD.")
	}
	if err := c.UpdateProfile(req.Phone, birthDate); err != nil {
		return nil, err
	}
	if err := c.ChangeMembership(customer.Membership(req.Membership)); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCustomerResponse(c)
	return &response, nil
}

// ListAddresses lists the addresses of the acting user
func (s *CustomerService) ListAddresses(ctx context.Context, actor shared.Actor) ([]AddressResponse, error) {
	c, err := s.me(ctx, actor)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.FindByCustomer(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	responses := make([]AddressResponse, len(addresses))
	for i := range addresses {
		responses[i] = ToAddressResponse(&addresses[i])
	}
	return responses, nil
}

// AddAddress adds an address to the acting user's profile
func (s *CustomerService) AddAddress(ctx context.Context, actor shared.Actor, req CreateAddressRequest) (*AddressResponse, error) {
	c, err := s.me(ctx, actor)
	if err != nil {
		return nil, err
	}

	address, err := customer.NewAddress(c.ID, req.Street, req.City, req.Zip)
	if err != nil {
		return nil, err
	}
	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	response := ToAddressResponse(address)
	return &response, nil
}

// RemoveAddress deletes one of the acting user's addresses
func (s *CustomerService) RemoveAddress(ctx context.Context, actor shared.Actor, addressID uuid.UUID) error {
	c, err := s.me(ctx, actor)
	if err != nil {
		return err
	}
	if err := s.addressRepo.Delete(ctx, c.ID, addressID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return ErrAddressNotFound
		}
		return err
	}
	return nil
}

func (s *CustomerService) me(ctx context.Context, actor shared.Actor) (*customer.Customer, error) {
	if !actor.IsAuthenticated() {
		return nil, shared.ErrUnauthorized
	}
	return s.customerRepo.FindOrCreateByUserID(ctx, actor.UserID)
}

func (s *CustomerService) find(ctx context.Context, id uuid.UUID) (*customer.Customer, error) {
	c, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, err
	}
	return c, nil
}
