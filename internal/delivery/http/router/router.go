// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"faranah/internal/delivery/http/middleware"
	"faranah/internal/delivery/http/router/handler"
	"faranah/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds every handler the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	CatalogHandler       *handler.CatalogHandler
	CartHandler          *handler.CartHandler
	CheckoutHandler      *handler.CheckoutHandler
	AuthHandler          *handler.AuthHandler
	AdminProductHandler  *handler.AdminProductHandler
	AdminCategoryHandler *handler.AdminCategoryHandler
	AdminOrderHandler    *handler.AdminOrderHandler
	AdminUserHandler     *handler.AdminUserHandler
	StatsHandler         *handler.StatsHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	e.GET("/categories", r.params.CatalogHandler.ListCategories)
	e.GET("/categories/:id", r.params.CatalogHandler.GetCategory)
	e.GET("/produits", r.params.CatalogHandler.ListProducts)
	e.GET("/produits/:id", r.params.CatalogHandler.GetProduct)

	// Cart routes. Guests carry their own cart token; logged-in customers
	// are identified through the optional bearer token.
	cartGroup := e.Group("/panier")
	cartGroup.Use(r.params.AuthMiddleware.Identify)
	{
		cartGroup.GET("", r.params.CartHandler.List)
		cartGroup.POST("", r.params.CartHandler.Add)
		cartGroup.POST("/clear", r.params.CartHandler.Clear)
		cartGroup.POST("/commande", r.params.CheckoutHandler.PlaceOrder)
		cartGroup.PUT("/size/:productID", r.params.CartHandler.ChangeSize)
		cartGroup.PUT("/:productID", r.params.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/:productID", r.params.CartHandler.Remove)
	}

	// Identity routes
	e.POST("/register", r.params.AuthHandler.Register)
	e.POST("/login", r.params.AuthHandler.Login)
	e.POST("/logout", r.params.AuthHandler.Logout, r.params.AuthMiddleware.Authenticate)
	e.POST("/email", r.params.AuthHandler.RequestPasswordReset)
	e.POST("/reset", r.params.AuthHandler.ResetPassword)

	// Back-office routes, bearer token + admin role required throughout.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/products/stats", r.params.StatsHandler.ProductStats)
		adminGroup.GET("/products", r.params.AdminProductHandler.List)
		adminGroup.GET("/products/:id", r.params.AdminProductHandler.Get)
		adminGroup.POST("/products", r.params.AdminProductHandler.Create)
		adminGroup.PUT("/products/:id", r.params.AdminProductHandler.Update)
		adminGroup.DELETE("/products/:id", r.params.AdminProductHandler.Delete)

		adminGroup.GET("/categories", r.params.AdminCategoryHandler.List)
		adminGroup.POST("/categories", r.params.AdminCategoryHandler.Create)
		adminGroup.PUT("/categories/:id", r.params.AdminCategoryHandler.Update)
		adminGroup.DELETE("/categories/:id", r.params.AdminCategoryHandler.Delete)

		adminGroup.GET("/orders/stats", r.params.StatsHandler.OrderStats)
		adminGroup.GET("/orders", r.params.AdminOrderHandler.List)
		adminGroup.GET("/orders/:id", r.params.AdminOrderHandler.Get)
		adminGroup.PUT("/orders/:id/status", r.params.AdminOrderHandler.UpdateStatus)
		adminGroup.DELETE("/orders/:id", r.params.AdminOrderHandler.Delete)

		adminGroup.GET("/users/stats", r.params.StatsHandler.UserStats)
		adminGroup.GET("/users", r.params.AdminUserHandler.List)
		adminGroup.POST("/users", r.params.AdminUserHandler.Create)
		adminGroup.PUT("/users/:id", r.params.AdminUserHandler.Update)
		adminGroup.DELETE("/users/:id", r.params.AdminUserHandler.Delete)

		adminGroup.GET("/statistics/overview", r.params.StatsHandler.Overview)
		adminGroup.GET("/statistics/categories", r.params.StatsHandler.CategoryDistribution)
		adminGroup.GET("/statistics/monthly", r.params.StatsHandler.MonthlySales)
	}
}
