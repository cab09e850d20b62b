package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/loanhub/services/users/handler/http"
)

// Handler coordinates the HTTP handlers of the user service
type Handler struct {
	userHandler *http.UserHandler
	authHandler *http.AuthHandler
}

// NewHandler creates and initializes all handlers
func NewHandler(
	userHandler *http.UserHandler,
	authHandler *http.AuthHandler,
) *Handler {
	return &Handler{
		userHandler: userHandler,
		authHandler: authHandler,
	}
}

// RegisterRoutes registers the public auth routes on public and the user routes on protected.
// limiter guards the public routes and may be nil.
func (h *Handler) RegisterRoutes(public, protected *echo.Group, limiter echo.MiddlewareFunc) {
	var mw []echo.MiddlewareFunc
	if limiter != nil {
		mw = append(mw, limiter)
	}

	auth := public.Group("/auth", mw...)
	auth.POST("/request-otp", h.authHandler.RequestOTP)
	auth.POST("/verify-otp", h.authHandler.VerifyOTP)
	auth.POST("/register", h.authHandler.Register)
	auth.POST("/login", h.authHandler.Login)

	userGroup := protected.Group("/users")
	userGroup.GET("", h.userHandler.ListUsers)
	userGroup.GET("/me", h.userHandler.Me)
}
