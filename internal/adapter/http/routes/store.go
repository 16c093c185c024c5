package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathStore           = "/store"
	PathPayhere         = "/payhere"
	PathPaymentSessions = "/payment-sessions"
	PathCarts           = "/carts"
)

func addStoreRoutes(rg *gin.RouterGroup, h Handlers) {
	store := rg.Group(PathStore)

	payhere := store.Group(PathPayhere)
	{
		// PayHere notify_url callbacks.
		payhere.POST("", h.Notification.NotifySession)
		payhere.POST("/:session_id", h.Notification.NotifyCart)
	}

	sessions := store.Group(PathPaymentSessions)
	{
		sessions.POST("", h.Session.Initiate)
		sessions.GET("/:session_id", h.Session.Get)
		sessions.POST("/:session_id/authorize", h.Session.Authorize)
	}

	carts := store.Group(PathCarts)
	{
		carts.POST("/:cart_id/complete", h.Cart.Complete)
	}
}
