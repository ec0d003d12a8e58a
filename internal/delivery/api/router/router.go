// Package router wires the API handlers to their routes.
package router

import (
	"plantcare/internal/delivery/api/middleware"
	"plantcare/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	UserHandler     *handler.UserHandler
	ProductHandler  *handler.ProductHandler
	ActivityHandler *handler.ActivityHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	userHandler     *handler.UserHandler
	productHandler  *handler.ProductHandler
	activityHandler *handler.ActivityHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		userHandler:     params.UserHandler,
		productHandler:  params.ProductHandler,
		activityHandler: params.ActivityHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/password-reset", r.accountHandler.ResetPassword)
		authGroup.POST("/logout", r.accountHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/users/:id", r.userHandler.GetUser)

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/stream", r.productHandler.StreamProducts)
		productsGroup.POST("/scan", r.productHandler.ScanPlantTag)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productsGroup.GET("/:id/qrcode", r.productHandler.PlantTag)
	}

	activitiesGroup := apiV1.Group("/activities")
	{
		activitiesGroup.GET("", r.activityHandler.ListActivities)
		activitiesGroup.DELETE("/:id", r.activityHandler.RemoveActivity)
	}
}
