package handlers

import (
	intconfig "github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/config"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/http/middleware"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/notifier"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/repositories"
	"github.com/Jay0216/Smart-Hotel-Management-System-sub000/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	scheduler services.SettlementScheduler
	notify    notifier.Notifier = notifier.NewLog()
)

// Configure wires the settlement delay and the notifier once at startup.
// Repositories are not wired here; they fall back to the config DB singleton.
func Configure(env intconfig.Env, n notifier.Notifier) {
	scheduler = services.SettlementScheduler{Delay: env.SettlementDelay, Timeout: env.SettlementTimeout}
	if n != nil {
		notify = n
	}
}

func checkActionService(c *gin.Context) services.CheckActionService {
	return services.CheckActionService{
		BookingRepo:  repositories.BookingRepository{},
		RoomRepo:     repositories.RoomRepository{},
		CheckLogRepo: repositories.CheckLogRepository{},
		RequestID:    middleware.GetRequestID(c),
	}
}

func paymentService(c *gin.Context) services.PaymentService {
	return services.PaymentService{
		PaymentRepo: repositories.PaymentRepository{},
		BookingRepo: repositories.BookingRepository{},
		RoomRepo:    repositories.RoomRepository{},
		GuestRepo:   repositories.GuestRepository{},
		CheckSvc:    checkActionService(c),
		Scheduler:   scheduler,
		Notifier:    notify,
		RequestID:   middleware.GetRequestID(c),
	}
}

func billingService(c *gin.Context) services.BillingService {
	return services.BillingService{
		BookingRepo: repositories.BookingRepository{},
		BillingRepo: repositories.BillingRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}
