package router

import (
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
)

// Handlers holds every handler served under the storefront API
type Handlers struct {
	Collections *handler.CollectionHandler
	Products    *handler.ProductHandler
	Carts       *handler.CartHandler
	Customers   *handler.CustomerHandler
	Orders      *handler.OrderHandler
	Tagging     *handler.TaggingHandler
	Auth        *handler.AuthHandler
}

// StorefrontRoutes builds the route groups of the storefront API.
// Reads on the catalog are public, writes are staff-only.
func StorefrontRoutes(h Handlers) []*DomainGroup {
	staff := middleware.RequireStaff()
	authenticated := middleware.RequireAuthenticated()

	collections := NewDomainGroup("/collections")
	collections.Use(middleware.StaffOrReadOnly())
	collections.GET("", h.Collections.List).
		POST("", h.Collections.Create).
		GET("/:id", h.Collections.Get).
		PUT("/:id", h.Collections.Update).
		DELETE("/:id", h.Collections.Delete)

	products := NewDomainGroup("/products")
	products.GET("", h.Products.List).
		POST("", staff, h.Products.Create).
		GET("/:id", h.Products.Get).
		PUT("/:id", staff, h.Products.Update).
		DELETE("/:id", staff, h.Products.Delete).
		GET("/:id/reviews", h.Products.ListReviews).
		POST("/:id/reviews", h.Products.CreateReview)

	carts := NewDomainGroup("/carts")
	carts.POST("", h.Carts.Create).
		GET("/:id", h.Carts.Get).
		DELETE("/:id", h.Carts.Delete).
		GET("/:id/items", h.Carts.ListItems).
		POST("/:id/items", h.Carts.AddItem).
		GET("/:id/items/:item_id", h.Carts.GetItem).
		PATCH("/:id/items/:item_id", h.Carts.UpdateItem).
		DELETE("/:id/items/:item_id", h.Carts.RemoveItem)

	customers := NewDomainGroup("/customers")
	customers.GET("", staff, h.Customers.List).
		GET("/me", authenticated, h.Customers.GetMe).
		PUT("/me", authenticated, h.Customers.UpdateMe).
		GET("/me/addresses", authenticated, h.Customers.ListAddresses).
		POST("/me/addresses", authenticated, h.Customers.AddAddress).
		DELETE("/me/addresses/:address_id", authenticated, h.Customers.RemoveAddress).
		GET("/:id", staff, h.Customers.Get).
		PUT("/:id", staff, h.Customers.Update).
		GET("/:id/history", middleware.RequirePermission(shared.PermissionViewCustomerHistory), h.Customers.History)

	orders := NewDomainGroup("/orders")
	orders.Use(authenticated)
	orders.GET("", h.Orders.List).
		POST("", h.Orders.Create).
		GET("/:id", h.Orders.Get).
		PATCH("/:id", staff, h.Orders.Update).
		DELETE("/:id", staff, h.Orders.Delete)

	tags := NewDomainGroup("/tags")
	tags.Use(middleware.StaffOrReadOnly())
	tags.GET("", h.Tagging.ListTags).
		POST("", h.Tagging.CreateTag).
		DELETE("/:id", h.Tagging.DeleteTag)
	tags.Group("/items").
		Use(staff).
		GET("", h.Tagging.ListTaggedItems).
		POST("", h.Tagging.TagEntity).
		DELETE("/:id", h.Tagging.UntagItem)

	likes := NewDomainGroup("/likes")
	likes.GET("", h.Tagging.LikeSummary).
		POST("", authenticated, h.Tagging.Like).
		DELETE("", authenticated, h.Tagging.Unlike)

	auth := NewDomainGroup("/auth")
	auth.POST("/revoke", authenticated, h.Auth.Revoke)

	return []*DomainGroup{collections, products, carts, customers, orders, tags, likes, auth}
}
