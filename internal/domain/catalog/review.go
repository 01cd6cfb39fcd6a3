package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// Review is a customer review of a product. Reviews are append-only.
type Review struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Name        string
	Description string
	Date        time.Time
}

// NewReview creates a new review for a product
func NewReview(productID uuid.UUID, name, description string) (*Review, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Name cannot be empty")
	}
	if len(name) > 255 {
		return nil, shared.NewValidationError("Name cannot exceed 255 characters")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewValidationError("Description cannot be empty")
	}

	return &Review{
		ID:          uuid.New(),
		ProductID:   productID,
		Name:        name,
		Description: description,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
	}, nil
}
