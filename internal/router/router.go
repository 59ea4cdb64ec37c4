package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreatePlan(c *ginext.Context)
	ListPlans(c *ginext.Context)
	CreateMember(c *ginext.Context)
	ListMembers(c *ginext.Context)
	GetMemberBookings(c *ginext.Context)
	AssignMembership(c *ginext.Context)
	FreezeMembership(c *ginext.Context)
	UnfreezeMembership(c *ginext.Context)
	SyncExpired(c *ginext.Context)
	CreateClass(c *ginext.Context)
	ListClasses(c *ginext.Context)
	BookClass(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CheckIn(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Plans
		api.POST("/plans", h.CreatePlan)
		api.GET("/plans", h.ListPlans)

		// Members
		api.POST("/members", h.CreateMember)
		api.GET("/members", h.ListMembers)
		api.GET("/members/:id/bookings", h.GetMemberBookings)
		api.POST("/members/:id/membership", h.AssignMembership)

		// Memberships
		api.POST("/memberships/:id/freeze", h.FreezeMembership)
		api.POST("/memberships/:id/unfreeze", h.UnfreezeMembership)
		api.POST("/memberships/sync-expired", h.SyncExpired)

		// Classes
		api.POST("/classes", h.CreateClass)
		api.GET("/classes", h.ListClasses)
		api.POST("/classes/:id/book", h.BookClass)
		api.POST("/classes/:id/cancel", h.CancelBooking)
		api.POST("/classes/:id/checkin", h.CheckIn)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
