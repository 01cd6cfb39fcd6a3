package tagging

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/shared"
)

// EntityKind is the closed set of entity types that can be tagged or liked
type EntityKind string

const (
	KindProduct    EntityKind = "product"
	KindCollection EntityKind = "collection"
	KindCustomer   EntityKind = "customer"
	KindOrder      EntityKind = "order"
)

// Kinds lists every taggable kind
var Kinds = []EntityKind{KindProduct, KindCollection, KindCustomer, KindOrder}

// IsValid checks if the kind is taggable
func (k EntityKind) IsValid() bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// ParseEntityKind parses a kind name
func ParseEntityKind(s string) (EntityKind, error) {
	k := EntityKind(s)
	if !k.IsValid() {
		return "", shared.NewValidationError(fmt.Sprintf("\"%s\" is not a taggable kind.", s))
	}
	return k, nil
}

// EntityRef is a weak reference to a taggable entity.
// There is no foreign key between the reference and the target table.
type EntityRef struct {
	Kind EntityKind
	ID   uuid.UUID
}

// NewEntityRef creates a reference after validating the kind
func NewEntityRef(kind string, id uuid.UUID) (EntityRef, error) {
	k, err := ParseEntityKind(kind)
	if err != nil {
		return EntityRef{}, err
	}
	if id == uuid.Nil {
		return EntityRef{}, shared.NewValidationError("Entity ID is required")
	}
	return EntityRef{Kind: k, ID: id}, nil
}

// String returns "kind:id"
func (r EntityRef) String() string {
	return string(r.Kind) + ":" + r.ID.String()
}

// EntityResolver checks that the target of a reference exists
type EntityResolver interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// EntityResolverFunc adapts a function to EntityResolver
type EntityResolverFunc func(ctx context.Context, id uuid.UUID) (bool, error)

// Exists implements EntityResolver
func (f EntityResolverFunc) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return f(ctx, id)
}

// Resolvers is the per-kind lookup table used to validate references
type Resolvers map[EntityKind]EntityResolver

// Resolve verifies that the referenced entity exists
func (r Resolvers) Resolve(ctx context.Context, ref EntityRef) error {
	resolver, ok := r[ref.Kind]
	if !ok {
		return shared.NewValidationError(fmt.Sprintf("\"%s\" is not a taggable kind.", ref.Kind))
	}
	exists, err := resolver.Exists(ctx, ref.ID)
	if err != nil {
		return err
	}
	if !exists {
		return shared.NewValidationError(fmt.Sprintf("No %s with the given ID was found.", ref.Kind))
	}
	return nil
}
