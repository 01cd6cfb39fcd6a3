package persistence

import (
	"strings"

	"github.com/storefront/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]string, defaultField string) string {
	if column, ok := allowedFields[strings.TrimSpace(sortField)]; ok {
		return column
	}
	return defaultField
}

// paginate applies offset and limit of the filter
func paginate(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}

// Allowed sort fields map the API name to the column name

// CollectionSortFields contains allowed sort fields for collections
var CollectionSortFields = map[string]string{
	"title":      "title",
	"created_at": "created_at",
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]string{
	"title":       "title",
	"price":       "price",
	"inventory":   "inventory",
	"last_update": "updated_at",
	"created_at":  "created_at",
}

// OrderSortFields contains allowed sort fields for orders
var OrderSortFields = map[string]string{
	"placed_at":      "placed_at",
	"payment_status": "payment_status",
}

// CustomerSortFields contains allowed sort fields for customers
var CustomerSortFields = map[string]string{
	"created_at": "created_at",
	"membership": "membership",
	"phone":      "phone",
}

// TagSortFields contains allowed sort fields for tags
var TagSortFields = map[string]string{
	"label": "label",
}

// orderClause builds a whitelisted ORDER BY expression. An empty direction falls back to defaultDir.
func orderClause(filter shared.Filter, allowedFields map[string]string, defaultField, defaultDir string) string {
	field := ValidateSortField(filter.OrderBy, allowedFields, defaultField)
	dir := defaultDir
	if strings.TrimSpace(filter.OrderDir) != "" {
		dir = ValidateSortOrder(filter.OrderDir)
	}
	return field + " " + dir
}

// likePattern builds a case-insensitive LIKE pattern for LOWER(column) comparisons
func likePattern(search string) string {
	return "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
}
