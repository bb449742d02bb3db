// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cookify/internal/delivery/http/middleware"
	"cookify/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	CatalogHandler *handler.CatalogHandler
	AddressHandler *handler.AddressHandler
	CouponHandler  *handler.CouponHandler
	OrderHandler   *handler.OrderHandler
	PaymentHandler *handler.PaymentHandler
	RatingHandler  *handler.RatingHandler
	AuthMiddleware *middleware.AuthMiddleware
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
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/user", r.params.UserHandler.RegisterUser)
		authGroup.POST("/register/chef", r.params.UserHandler.RegisterChef)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// Public catalog browsing
	catalogGroup := e.Group("/catalog")
	{
		catalogGroup.GET("/categories", r.params.CatalogHandler.ListCategories)
		catalogGroup.GET("/recipes", r.params.CatalogHandler.BrowseRecipes)
		catalogGroup.GET("/recipes/:id", r.params.CatalogHandler.GetRecipe)
		catalogGroup.GET("/recipes/:id/ratings", r.params.RatingHandler.ListRecipeRatings)
		catalogGroup.GET("/chefs/:id/ratings", r.params.RatingHandler.ListChefRatings)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(auth.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
		userGroup.DELETE("/account", r.params.UserHandler.DeleteAccount)

		userGroup.GET("/addresses", r.params.AddressHandler.ListAddresses)
		userGroup.POST("/addresses", r.params.AddressHandler.AddAddress)
		userGroup.PUT("/addresses/:id", r.params.AddressHandler.UpdateAddress)
		userGroup.PUT("/addresses/:id/default", r.params.AddressHandler.SetDefaultAddress)
		userGroup.DELETE("/addresses/:id", r.params.AddressHandler.DeleteAddress)
	}

	// Order routes: placement and tracking for customers, fulfilment for chefs
	orderGroup := e.Group("/orders")
	orderGroup.Use(auth.Authenticate)
	{
		orderGroup.POST("", r.params.OrderHandler.PlaceOrder)
		orderGroup.GET("/mine", r.params.OrderHandler.ListMyOrders)
		orderGroup.GET("/:id", r.params.OrderHandler.GetOrder)
		orderGroup.PATCH("/:id/status", r.params.OrderHandler.UpdateOrderStatus)
		orderGroup.POST("/:id/cancel", r.params.OrderHandler.CancelOrder)

		orderGroup.POST("/payments", r.params.PaymentHandler.RecordPayment)
		orderGroup.GET("/:id/payments", r.params.PaymentHandler.ListOrderPayments)

		orderGroup.POST("/ratings", r.params.RatingHandler.RateOrder)
	}

	// Coupon preview is open to any authenticated customer
	couponGroup := e.Group("/coupons")
	couponGroup.Use(auth.Authenticate)
	{
		couponGroup.POST("/preview", r.params.CouponHandler.PreviewCoupon)
		couponGroup.GET("/:id/qr", r.params.CouponHandler.ShareQR)
	}

	// Chef routes that require authentication and the "chef" role
	chefGroup := e.Group("/chef")
	chefGroup.Use(auth.Authenticate)        // First, check if logged in
	chefGroup.Use(auth.RequireRole("chef")) // Then, check for the role
	{
		chefGroup.GET("/recipes", r.params.CatalogHandler.ListMyRecipes)
		chefGroup.POST("/recipes", r.params.CatalogHandler.CreateRecipe)
		chefGroup.PUT("/recipes/:id", r.params.CatalogHandler.UpdateRecipe)
		chefGroup.DELETE("/recipes/:id", r.params.CatalogHandler.DeleteRecipe)

		chefGroup.GET("/orders", r.params.OrderHandler.ListChefOrders)
	}

	// Admin routes for reference-data management
	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireRole("admin"))
	{
		adminGroup.POST("/categories", r.params.CatalogHandler.CreateCategory)

		adminGroup.GET("/coupons", r.params.CouponHandler.ListCoupons)
		adminGroup.POST("/coupons", r.params.CouponHandler.CreateCoupon)
		adminGroup.PUT("/coupons/:id", r.params.CouponHandler.UpdateCoupon)

		adminGroup.PATCH("/payments/:id/status", r.params.PaymentHandler.UpdatePaymentStatus)
	}
}
