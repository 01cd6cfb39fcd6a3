// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities carry no GORM tags
// 2. Persistence models contain all GORM annotations and table mappings
// 3. ToDomain / FromDomain convert between the two
// 4. Repositories use persistence models for database operations
//
// Structure:
// - base.go: BaseModel and AggregateModel
// - catalog.go: Collection, Product, Review
// - cart.go: Cart, CartItem
// - order.go: Order, OrderItem
// - customer.go: Customer, Address
// - tagging.go: Tag, TaggedItem, LikedItem
package models
