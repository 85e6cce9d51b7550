package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	h "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/http/handlers"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/http/middleware"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/notifier"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env, n notifier.Notifier) *gin.Engine {
	h.Configure(env, n)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.GET("/:id", h.GetBookingByID)

		payments := api.Group("/payments")
		payments.POST("/simulate", h.SimulatePayment)
		payments.POST("/reception-checkout",
			middleware.RequireRole(env.JWTSecret, "reception"),
			h.SimulateReceptionPayment)

		checks := api.Group("/check-actions")
		checks.POST("", h.PerformCheckAction)
		checks.GET("/booking/:id", h.FetchCheckLogsByBooking)

		billing := api.Group("/billing")
		billing.GET("/:guestId", h.GetBillingSummary)
		billing.GET("/:guestId/invoice", h.GetBillingInvoicePDF)
	}

	return r
}
