package routes

import (
	"net/http"
	"time"

	"yogasund/handlers"
	"yogasund/middleware"
	"yogasund/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the member credential endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.Login)
		api.POST("/signup", hb.Signup)
		api.POST("/check-email", hb.CheckEmail)

		// Protected routes (require a member session)
		api.Use(middleware.MemberAuthMiddleware(hb.SessionStore, false))
		api.POST("/logout", hb.Logout)
		api.GET("/me", hb.Me)
	}
}

// RegisterScheduleRoutes registers schedule browsing. Member context is
// optional: anonymous visitors browse too, members see their own spots.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.MemberAuthMiddleware(hb.SessionStore, true))
		api.GET("", hb.GetSchedule)
		api.GET("/session/:sessionID/options", hb.GetBookingOptions)
	}
}

// RegisterTermRoutes sets up the term membership wizard endpoints. Browsing
// and projection are open; checkout requires a member session.
func RegisterTermRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/term")
	{
		api.GET("/plans", hb.ListMembershipPlans)

		public := api.Group("")
		public.Use(middleware.MemberAuthMiddleware(hb.SessionStore, true))
		public.POST("/session", hb.StartTermSession)
		public.GET("/session/:sessionID", hb.GetTermSession)
		public.PUT("/session/:sessionID/week-one", hb.SelectWeekOne)
		public.PUT("/session/:sessionID/resolve", hb.ResolveConflict)
		public.DELETE("/session/:sessionID", hb.CancelTermSession)

		protected := api.Group("")
		protected.Use(middleware.MemberAuthMiddleware(hb.SessionStore, false))
		protected.POST("/session/:sessionID/checkout", hb.TermCheckout)
	}
}

// RegisterBookingRoutes sets up drop-in booking and payments.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Guests book with contact details, so member context is optional.
		open := api.Group("")
		open.Use(middleware.MemberAuthMiddleware(hb.SessionStore, true))
		open.POST("", hb.CreateBooking)

		protected := api.Group("")
		protected.Use(middleware.MemberAuthMiddleware(hb.SessionStore, false))
		protected.GET("", hb.ListMemberBookings)
		protected.DELETE("/:bookingID", hb.CancelBooking)
	}

	payments := r.Group("/api/payments")
	{
		payments.Use(middleware.MemberAuthMiddleware(hb.SessionStore, true))
		payments.POST("/intent", hb.CreatePaymentIntent)
		payments.POST("/confirm", hb.ConfirmPayment)
	}
}

// RegisterContentRoutes registers the public marketing content endpoints.
func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/content")
	{
		api.GET("/teachers", hb.ListTeachers)
		api.GET("/teachers/:slug", hb.GetTeacher)
		api.GET("/styles", hb.ListClassStyles)
		api.GET("/styles/:slug", hb.GetClassStyle)
		api.GET("/articles", hb.ListArticles)
		api.GET("/articles/:slug", hb.GetArticle)
	}
}

// RegisterCommunityRoutes registers the member community board.
func RegisterCommunityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/community")
	{
		api.Use(middleware.MemberAuthMiddleware(hb.SessionStore, false))
		api.GET("/posts", hb.ListCommunityPosts)
		api.POST("/posts", hb.CreateCommunityPost)
		api.DELETE("/posts/:postID", hb.DeleteCommunityPost)
	}
}

// RegisterAdminRoutes sets up endpoints for content management.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.AdminAuthMiddleware())
		api.PUT("/teachers", hb.SaveTeacher)
		api.DELETE("/teachers/:id", hb.DeleteTeacher)
		api.PUT("/styles", hb.SaveClassStyle)
		api.DELETE("/styles/:id", hb.DeleteClassStyle)
		api.PUT("/articles", hb.SaveArticle)
		api.DELETE("/articles/:id", hb.DeleteArticle)
	}
}

// RegisterHealthRoute registers a health-check endpoint backed by the
// background dependency monitor.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterTermRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterCommunityRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
