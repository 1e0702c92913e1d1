// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"chatline/internal/delivery/http/middleware"
	"chatline/internal/delivery/http/router/handler"
	"chatline/internal/delivery/ws"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UploadHandler  *handler.UploadHandler
	RelayHandler   *ws.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	uploadHandler  *handler.UploadHandler
	relayHandler   *ws.Handler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		uploadHandler:  params.UploadHandler,
		relayHandler:   params.RelayHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Logout is deliberately outside the auth gate so an
	// expired credential can still be revoked cleanly.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
	}
	e.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	// Upload routes that require authentication. Stored files themselves are
	// served statically under /uploads/<category>/<filename>.
	uploadGroup := e.Group("/upload")
	uploadGroup.Use(r.authMiddleware.Authenticate)
	{
		uploadGroup.POST("", r.uploadHandler.Store) // No category segment: generic.
		uploadGroup.POST("/profile-image", r.uploadHandler.StoreProfileImage)
		uploadGroup.POST("/:category", r.uploadHandler.Store)
		uploadGroup.DELETE("/:id", r.uploadHandler.Delete)
	}
	e.GET("/uploads", r.uploadHandler.List, r.authMiddleware.Authenticate)

	// Realtime relay. The handler authenticates the credential itself since
	// browser WebSocket clients pass it as a query parameter.
	e.GET("/ws", r.relayHandler.Serve)
}
