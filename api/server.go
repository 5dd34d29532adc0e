package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/beacon-app/beacon-api/external/routing"
	"github.com/beacon-app/beacon-api/logmodule"
	"github.com/beacon-app/beacon-api/observability"
	"github.com/beacon-app/beacon-api/overview"
	"github.com/beacon-app/beacon-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Assistant is the opaque text-completion boundary used by the assistant
// endpoint.
type Assistant interface {
	Complete(ctx context.Context, situation, message string) (string, error)
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.BeaconCore
	mongoStore store.MongoStore

	// Overview engine
	aggregator *overview.Aggregator

	// External services
	router    routing.Router
	assistant Assistant

	// Metrics
	metrics *observability.Metrics
}

// NewServer new instance of server
func NewServer(
	beaconStore store.BeaconCore,
	mongoStore store.MongoStore,
	aggregator *overview.Aggregator,
	router routing.Router,
	assistant Assistant,
	metrics *observability.Metrics) *Server {
	return &Server{
		store:      beaconStore,
		mongoStore: mongoStore,
		aggregator: aggregator,
		router:     router,
		assistant:  assistant,
		metrics:    metrics,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))
	if s.metrics != nil {
		r.Use(s.metrics.Middleware())
	}

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Account-Number"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/overview", s.getOverview)
	apiRoute.GET("/alerts", s.getAlerts)
	apiRoute.GET("/safety", s.getSafety)
	apiRoute.POST("/route", s.postRoute)
	apiRoute.POST("/assistant", s.askAssistant)

	// community flows require a requester identity
	apiRoute.Use(s.recognizeRequester())

	accountRoute := apiRoute.Group("/accounts")
	{
		accountRoute.POST("", s.accountRegister)
		accountRoute.GET("/me", s.accountDetail)
		accountRoute.PATCH("/me/location", s.accountUpdateLocation)
		accountRoute.POST("/me/tag", s.assignPublicTag)
	}

	neighborRoute := apiRoute.Group("/neighbors")
	{
		neighborRoute.POST("", s.addNeighbor)
		neighborRoute.GET("", s.listNeighbors)
	}

	resourceRoute := apiRoute.Group("/resources")
	{
		resourceRoute.POST("", s.postResource)
		resourceRoute.GET("", s.listResources)
		resourceRoute.GET("/:resourceID", s.getResource)
		resourceRoute.PATCH("/:resourceID/claim", s.claimResource)
		resourceRoute.PATCH("/:resourceID/complete", s.completeResource)
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// recognizeRequester reads the requester account number off the request.
// Session management is outside this service; the gateway in front of it
// is trusted to have validated the header.
func (s *Server) recognizeRequester() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountNumber := c.GetHeader("X-Account-Number")
		if accountNumber == "" {
			abortWithEncoding(c, http.StatusUnauthorized, errorMissingAccountNumber)
			return
		}
		c.Set("requester", accountNumber)
		c.Next()
	}
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if s.mongoStore != nil {
		if err := s.mongoStore.Ping(); shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	c.JSON(code, obj)
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
