// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"drivematch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RecommendHandler *handler.RecommendHandler
	ChatHandler      *handler.ChatHandler
	UserHandler      *handler.UserHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	recommendHandler *handler.RecommendHandler
	chatHandler      *handler.ChatHandler
	userHandler      *handler.UserHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		recommendHandler: params.RecommendHandler,
		chatHandler:      params.ChatHandler,
		userHandler:      params.UserHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	{
		api.POST("/recommend", r.recommendHandler.Recommend)

		api.POST("/chat", r.chatHandler.SendMessage)
		api.DELETE("/chat/:sessionId", r.chatHandler.ClearSession)

		users := api.Group("/users")
		{
			users.POST("/register", r.userHandler.Register)
			users.POST("/login", r.userHandler.Login)
		}
	}
}
