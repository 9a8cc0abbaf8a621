package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/nordixdotma/ayounioptic/controllers/admin"
	cartControllers "github.com/nordixdotma/ayounioptic/controllers/cart"
	catalogControllers "github.com/nordixdotma/ayounioptic/controllers/catalog"
	"github.com/nordixdotma/ayounioptic/controllers/feed"
	"github.com/nordixdotma/ayounioptic/middleware"
)

// Handlers bundles everything SetupRoutes needs to register the API.
type Handlers struct {
	Cart      *cartControllers.Handler
	Catalog   *catalogControllers.Handler
	Admin     *adminControllers.Handler
	AdminAuth *adminControllers.AuthHandler
	Feed      *feed.Hub
	JWTSecret string
}

// SetupRoutes registers all endpoints on the engine.
func SetupRoutes(r *gin.Engine, h Handlers) {
	// ─────────── Catalog (public) ───────────
	catalogGroup := r.Group("/catalog")
	{
		catalogGroup.GET("/categories", h.Catalog.ListCategories)
		catalogGroup.GET("/types", h.Catalog.ListTypes)
		catalogGroup.GET("/products", h.Catalog.ListProducts)
		catalogGroup.GET("/products/:id", h.Catalog.GetProduct)
	}

	// ─────────── Cart & Checkout (public) ───────────
	cartGroup := r.Group("/cart")
	{
		cartGroup.POST("", h.Cart.CreateCart)
		cartGroup.GET("/:cartID", h.Cart.GetCart)
		cartGroup.POST("/:cartID/items", h.Cart.AddItem)
		cartGroup.PUT("/:cartID/items/:productID", h.Cart.UpdateQuantity)
		cartGroup.DELETE("/:cartID/items/:productID", h.Cart.RemoveItem)
		cartGroup.DELETE("/:cartID", h.Cart.ClearCart)
		cartGroup.POST("/:cartID/open", h.Cart.OpenCart)
		cartGroup.POST("/:cartID/close", h.Cart.CloseCart)
		cartGroup.POST("/:cartID/checkout", h.Cart.Checkout)
		cartGroup.GET("/:cartID/whatsapp", h.Cart.WhatsAppLink)
	}

	// ─────────── Back office ───────────
	r.POST("/admin/login", h.AdminAuth.Login)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.RequireAdmin(h.JWTSecret))
	{
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", h.Admin.ListCategories)
			categoryAdmin.POST("", h.Admin.CreateCategory)
			categoryAdmin.PUT("/:id", h.Admin.UpdateCategory)
			categoryAdmin.DELETE("/:id", h.Admin.DeleteCategory)
		}

		typeAdmin := adminGroup.Group("/types")
		{
			typeAdmin.GET("", h.Admin.ListTypes)
			typeAdmin.POST("", h.Admin.CreateType)
			typeAdmin.PUT("/:id", h.Admin.UpdateType)
			typeAdmin.DELETE("/:id", h.Admin.DeleteType)
		}

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", h.Admin.ListProducts)
			productAdmin.POST("", h.Admin.CreateProduct)
			productAdmin.PUT("/:id", h.Admin.UpdateProduct)
			productAdmin.DELETE("/:id", h.Admin.DeleteProduct)
			productAdmin.GET("/export-excel", h.Admin.ExportProductsToExcel)
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", h.Admin.ListOrders)
			orderAdmin.PUT("/:id/status", h.Admin.UpdateOrderStatus)
			orderAdmin.GET("/export-excel", h.Admin.ExportOrdersToExcel)
		}

		adminGroup.POST("/refresh", h.Admin.Refresh)
		adminGroup.GET("/local-orders", h.Admin.LocalOrders)
	}

	// Live order feed for the back office dashboard.
	r.GET("/ws/orders", h.Feed.Handle)
}
