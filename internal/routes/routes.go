package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-agenda/internal/audit"
	"github.com/BruksfildServices01/salon-agenda/internal/config"
	"github.com/BruksfildServices01/salon-agenda/internal/db"
	"github.com/BruksfildServices01/salon-agenda/internal/handlers"
	"github.com/BruksfildServices01/salon-agenda/internal/httperr"
	"github.com/BruksfildServices01/salon-agenda/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-agenda/internal/usecase/appointment"
	ucClient "github.com/BruksfildServices01/salon-agenda/internal/usecase/client"
)

// NewRouter builds the engine with the global middleware chain and every route.
func NewRouter(
	stores *db.Stores,
	cfg *config.Config,
	log *zap.Logger,
	auditDispatcher *audit.Dispatcher,
) *gin.Engine {
	r := gin.New()

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.Metrics())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins()))
	r.Use(middleware.RateLimit(cfg.RateLimitPerSec, cfg.RateLimitBurst))

	RegisterRoutes(r, stores, cfg, log, auditDispatcher)
	return r
}

func RegisterRoutes(
	r *gin.Engine,
	stores *db.Stores,
	cfg *config.Config,
	log *zap.Logger,
	auditDispatcher *audit.Dispatcher,
) {

	// ======================================================
	// USE CASES - CLIENTS
	// ======================================================
	listClientsUC := ucClient.NewListClients(stores.Clients)
	getClientUC := ucClient.NewGetClient(stores.Clients)
	createClientUC := ucClient.NewCreateClient(stores.Clients, auditDispatcher)
	updateClientUC := ucClient.NewUpdateClient(stores.Clients, auditDispatcher)

	// ======================================================
	// USE CASES - APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		stores.Appointments,
		auditDispatcher,
	)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		stores.Appointments,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	clientHandler := handlers.NewClientHandler(
		listClientsUC,
		getClientUC,
		createClientUC,
		updateClientUC,
		log,
	)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		listAppointmentsByMonthUC,
		log,
	)
	healthHandler := handlers.NewHealthHandler(stores.Mode)
	appWebHandler := handlers.NewAppWebHandler(cfg.ClientDist, cfg.InitRoute)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/helloworld", healthHandler.HelloWorld)

		api.GET("/clients", clientHandler.List)
		api.GET("/clients/:id", clientHandler.Get)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
	}

	// ======================================================
	// WEB CLIENT (static build + SPA fallback)
	// ======================================================
	if appWebHandler.Available() {
		log.Info("serving web client", zap.String("dir", cfg.ClientDist), zap.String("route", cfg.InitRoute))
		r.NoRoute(appWebHandler.Serve)
		return
	}

	r.NoRoute(func(c *gin.Context) {
		httperr.NotFound(c, "Not found")
	})
}
