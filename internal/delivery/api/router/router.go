// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"teka/internal/delivery/api/middleware"
	"teka/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler       *handler.HealthHandler
	AccountHandler      *handler.AccountHandler
	CatalogHandler      *handler.CatalogHandler
	FavoriteHandler     *handler.FavoriteHandler
	ConversationHandler *handler.ConversationHandler
	ProfileHandler      *handler.ProfileHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler       *handler.HealthHandler
	accountHandler      *handler.AccountHandler
	catalogHandler      *handler.CatalogHandler
	favoriteHandler     *handler.FavoriteHandler
	conversationHandler *handler.ConversationHandler
	profileHandler      *handler.ProfileHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:       params.HealthHandler,
		accountHandler:      params.AccountHandler,
		catalogHandler:      params.CatalogHandler,
		favoriteHandler:     params.FavoriteHandler,
		conversationHandler: params.ConversationHandler,
		profileHandler:      params.ProfileHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.GET("/health", r.healthHandler.HealthCheck)

	// Auth routes
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.accountHandler.SignUp)
		authGroup.POST("/signin", r.accountHandler.SignIn)
	}

	optional := r.authMiddleware.OptionalAuthenticate
	auth := r.authMiddleware.Authenticate

	// Catalog routes, the favorite flag is filled in when a token is sent
	apiV1.GET("/categories", r.catalogHandler.ListCategories)
	apiV1.GET("/cities", r.catalogHandler.ListCities)
	apiV1.GET("/products", r.catalogHandler.ListProducts)
	apiV1.GET("/products/:id", r.catalogHandler.GetProduct, optional)
	apiV1.GET("/products/:id/qr", r.catalogHandler.ProductQR)
	apiV1.GET("/photos/*", r.catalogHandler.Photo)
	apiV1.POST("/products", r.catalogHandler.CreateProduct, auth)
	apiV1.DELETE("/products/:id", r.catalogHandler.DeactivateProduct, auth)

	// Favorite routes
	favoritesGroup := apiV1.Group("/favorites", auth)
	{
		favoritesGroup.GET("", r.favoriteHandler.List)
		favoritesGroup.GET("/:productId", r.favoriteHandler.Status)
		favoritesGroup.POST("/:productId/toggle", r.favoriteHandler.Toggle)
	}

	// Conversation routes
	apiV1.POST("/products/:id/contact", r.conversationHandler.ContactSeller, auth)
	conversationsGroup := apiV1.Group("/conversations", auth)
	{
		conversationsGroup.POST("", r.conversationHandler.Open)
		conversationsGroup.GET("", r.conversationHandler.List)
		conversationsGroup.GET("/:id", r.conversationHandler.Get)
		conversationsGroup.GET("/:id/messages", r.conversationHandler.ListMessages)
		conversationsGroup.POST("/:id/messages", r.conversationHandler.SendMessage)
	}

	// Profile routes
	apiV1.GET("/sellers/:id", r.profileHandler.GetSeller)
	apiV1.GET("/me", r.profileHandler.GetMe, auth)
	apiV1.PATCH("/me", r.profileHandler.UpdateMe, auth)
}
