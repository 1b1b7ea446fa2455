package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/safedrive/telematics-api/internal/http/handlers"
	httpMW "github.com/safedrive/telematics-api/internal/http/middleware"
	"github.com/safedrive/telematics-api/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	DriverProfileHandler   *httpH.DriverProfileHandler
	TripHandler            *httpH.TripHandler
	LocationHandler        *httpH.LocationHandler
	RawSensorDataHandler   *httpH.RawSensorDataHandler
	UnsafeBehaviourHandler *httpH.UnsafeBehaviourHandler
	CauseHandler           *httpH.CauseHandler
	DrivingTipHandler      *httpH.DrivingTipHandler
	EmbeddingHandler       *httpH.EmbeddingHandler
	AIModelInputHandler    *httpH.AIModelInputHandler
	NLGReportHandler       *httpH.NLGReportHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api/v1")

	if h := cfg.DriverProfileHandler; h != nil {
		g := api.Group("/driver_profiles")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	if h := cfg.TripHandler; h != nil {
		g := api.Group("/trips")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.POST("/batch_create", h.BatchCreate)
		g.DELETE("/batch_delete", h.BatchDelete)
	}

	if h := cfg.LocationHandler; h != nil {
		g := api.Group("/locations")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.POST("/batch_create", h.BatchCreate)
		g.DELETE("/batch_delete", h.BatchDelete)
	}

	if h := cfg.RawSensorDataHandler; h != nil {
		g := api.Group("/raw_sensor_data")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	if h := cfg.UnsafeBehaviourHandler; h != nil {
		g := api.Group("/unsafe_behaviours")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.POST("/batch_create", h.BatchCreate)
		g.DELETE("/batch_delete", h.BatchDelete)
	}

	if h := cfg.CauseHandler; h != nil {
		g := api.Group("/causes")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	if h := cfg.DrivingTipHandler; h != nil {
		g := api.Group("/driving_tips")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	if h := cfg.EmbeddingHandler; h != nil {
		g := api.Group("/embeddings")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	if h := cfg.AIModelInputHandler; h != nil {
		g := api.Group("/ai_model_inputs")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
		g.POST("/batch_create", h.BatchCreate)
		g.DELETE("/batch_delete", h.BatchDelete)
	}

	if h := cfg.NLGReportHandler; h != nil {
		g := api.Group("/nlg_reports")
		g.POST("", h.Create)
		g.GET("", h.List)
		g.GET("/:id", h.Get)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}

	return r
}
