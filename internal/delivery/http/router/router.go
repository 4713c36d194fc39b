// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	RecipeHandler  *handler.RecipeHandler
	FollowHandler  *handler.FollowHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	recipeHandler  *handler.RecipeHandler
	followHandler  *handler.FollowHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		recipeHandler:  params.RecipeHandler,
		followHandler:  params.FollowHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	e.POST("/signup", r.userHandler.Signup)
	e.POST("/login", r.userHandler.Login)

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.POST("/follow", r.followHandler.Follow)
		userGroup.POST("/unfollow", r.followHandler.Unfollow)
	}

	// Recipe routes that require authentication
	recipeGroup := e.Group("/recipe")
	recipeGroup.Use(r.authMiddleware.Authenticate)
	{
		recipeGroup.POST("", r.recipeHandler.CreateRecipe)
		recipeGroup.POST("/resolve-qr", r.recipeHandler.ResolveQR)
		recipeGroup.GET("/:id", r.recipeHandler.GetRecipe)
		recipeGroup.GET("/:id/qr", r.recipeHandler.ShareQR)
	}
}
