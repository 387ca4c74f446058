package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	swaggerfiles "github.com/swaggo/files"
	swagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	_ "github.com/onja-org/w2-scss-lab/docs"
	"github.com/onja-org/w2-scss-lab/internal/config"
	"github.com/onja-org/w2-scss-lab/internal/data"
	"github.com/onja-org/w2-scss-lab/internal/handlers/grpcapi"
	"github.com/onja-org/w2-scss-lab/internal/handlers/page"
	"github.com/onja-org/w2-scss-lab/internal/handlers/weather"
	"github.com/onja-org/w2-scss-lab/internal/handlers/widget"
	"github.com/onja-org/w2-scss-lab/internal/middleware"
	"github.com/onja-org/w2-scss-lab/internal/repository/session"
	metricsSvc "github.com/onja-org/w2-scss-lab/internal/services/metrics"
	serviceWeather "github.com/onja-org/w2-scss-lab/internal/services/weather"
	fLogger "github.com/onja-org/w2-scss-lab/pkg/logger"
	"github.com/onja-org/w2-scss-lab/web"
)

const shutdownTimeout = 5 * time.Second

// ServiceContainer holds initialized dependencies for servers.
type ServiceContainer struct {
	WeatherService *serviceWeather.ServiceProvider
	Sessions       session.Store
	GrpcServer     *grpc.Server

	Router *gin.Engine
	Srv    *http.Server

	sweeper      *session.Sweeper
	redisClient  *redis.Client
	accessLogger *zap.Logger
}

// App ties together config, logger, and metrics for startup/shutdown.
type App struct {
	cfg config.Config
	l   zerolog.Logger
	m   *metricsSvc.Metrics
}

func New(cfg config.Config, logger zerolog.Logger, met *metricsSvc.Metrics) *App {
	return &App{
		cfg: cfg,
		l:   logger,
		m:   met,
	}
}

// Start builds the servers, serves HTTP and gRPC, and blocks until ctx is done
// or one of the listeners fails.
func (a *App) Start(ctx context.Context) error {
	srvContainer, err := a.Init()
	if err != nil {
		return err
	}

	grpcListener, err := net.Listen("tcp", a.cfg.GrpcAddress())
	if err != nil {
		return fmt.Errorf("listen on gRPC address: %w", err)
	}

	errCh := make(chan error, 2)

	go func() {
		a.l.Info().Str("address", a.cfg.GrpcAddress()).Msg("gRPC server running")
		if serveErr := srvContainer.GrpcServer.Serve(grpcListener); serveErr != nil {
			errCh <- fmt.Errorf("gRPC server: %w", serveErr)
		}
	}()

	go func() {
		a.l.Info().Str("address", a.cfg.ServerAddress()).Msg("HTTP server running")
		if serveErr := srvContainer.Srv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server: %w", serveErr)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.l.Info().Msg("shutdown signal received, stopping weather lab")
	case runErr = <-errCh:
		a.l.Error().Err(runErr).Msg("server failed, stopping weather lab")
	}

	if err := a.Shutdown(srvContainer); err != nil {
		a.l.Error().Err(err).Msg("failed to shutdown application")
		return errors.Join(runErr, err)
	}
	a.l.Info().Msg("application shutdown successfully")
	return runErr
}

// Shutdown stops the servers and the sweeper, closes redis and syncs the access log.
func (a *App) Shutdown(srvContainer ServiceContainer) error {
	a.l.Info().Msg("stopping weather lab…")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errs []error

	if err := srvContainer.Srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	} else {
		a.l.Info().Msg("HTTP server stopped")
	}

	srvContainer.GrpcServer.GracefulStop()
	a.l.Info().Msg("gRPC server stopped")

	if srvContainer.sweeper != nil {
		srvContainer.sweeper.Stop()
	}

	if srvContainer.redisClient != nil {
		if err := srvContainer.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}

	if srvContainer.accessLogger != nil {
		if err := srvContainer.accessLogger.Sync(); err != nil {
			a.l.Error().Err(err).Msg("failed to sync access logger")
		}
	}

	a.l.Info().Msg("shutdown complete")
	return errors.Join(errs...)
}

// Init wires the table, services, session store, HTTP router and gRPC server
// without starting any listener.
func (a *App) Init() (ServiceContainer, error) {
	a.l.Info().
		Str("http", a.cfg.ServerAddress()).
		Str("grpc", a.cfg.GrpcAddress()).
		Str("sessions", a.cfg.Session.Backend).
		Msg("initializing weather lab")

	weatherService := serviceWeather.NewService(data.Madagascar(), a.l, a.m)

	accessLogger, err := fLogger.NewFileLogger(a.cfg.AccessLogsPath)
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("create access logger: %w", err)
	}

	srvContainer := ServiceContainer{
		WeatherService: weatherService,
		accessLogger:   accessLogger,
	}

	if err := a.initSessions(&srvContainer); err != nil {
		return ServiceContainer{}, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(accessLogger), a.m.HTTPMiddleware())
	router.SetHTMLTemplate(web.Templates())

	a.registerRoutes(router, srvContainer)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(a.m.UnaryInterceptor()),
		grpc.StreamInterceptor(a.m.StreamInterceptor()),
	)
	grpcapi.RegisterWeatherLabServer(grpcServer, grpcapi.NewWeatherGRPCServer(weatherService))
	a.m.GRPC.InitializeMetrics(grpcServer)

	srvContainer.Router = router
	srvContainer.GrpcServer = grpcServer
	srvContainer.Srv = &http.Server{
		Addr:        a.cfg.ServerAddress(),
		Handler:     router,
		ReadTimeout: a.cfg.Server.Timeout(),
	}

	return srvContainer, nil
}

func (a *App) initSessions(srvContainer *ServiceContainer) error {
	var store session.Store

	switch a.cfg.Session.Backend {
	case config.BackendRedis:
		client := newRedisConnection(a.cfg.Redis.Address(), a.cfg.Redis.DbType)
		breakerCfg := session.BreakerConfig{
			TimeInterval: time.Duration(a.cfg.Breaker.TimeInterval) * time.Second,
			TimeTimeOut:  time.Duration(a.cfg.Breaker.TimeTimeOut) * time.Second,
			RepeatNumber: a.cfg.Breaker.RepeatNumber,
		}
		store = session.NewBreakerStore("RedisSessions",
			breakerCfg,
			session.NewRedisStore(client, a.l, a.cfg.Session.TTL()),
		)
		srvContainer.redisClient = client
	default:
		memory := session.NewMemoryStore()
		sweeper := session.NewSweeper(memory, a.cfg.Session.SweepSpec, a.cfg.Session.TTL(), a.l)
		if err := sweeper.Start(); err != nil {
			return fmt.Errorf("start session sweeper: %w", err)
		}
		store = memory
		srvContainer.sweeper = sweeper
	}

	srvContainer.Sessions = session.NewMetricsDecorator(store, metricsSvc.NewSessionCollector(a.m))
	return nil
}

func (a *App) registerRoutes(router *gin.Engine, srvContainer ServiceContainer) {
	pageHandler := page.NewHandler(srvContainer.WeatherService)
	weatherHandler := weather.NewHandler(srvContainer.WeatherService)
	widgetHandler := widget.NewHandler(srvContainer.WeatherService.Table(), srvContainer.Sessions, a.m, a.l)

	router.GET("/", pageHandler.Index)
	router.GET("/healthz", pageHandler.Health)
	router.StaticFS("/static", http.FS(web.Static()))
	router.GET("/metrics", gin.WrapH(a.m.Handler()))
	router.GET("/swagger/*any", swagger.WrapHandler(swaggerfiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/suggestions", weatherHandler.GetSuggestions)
		api.GET("/weather", weatherHandler.GetWeather)

		sessions := api.Group("/widget/sessions")
		sessions.POST("", widgetHandler.Create)
		sessions.GET("/:id", widgetHandler.Get)
		sessions.DELETE("/:id", widgetHandler.Delete)
		sessions.POST("/:id/input", widgetHandler.Input)
		sessions.POST("/:id/select", widgetHandler.Select)
		sessions.POST("/:id/submit", widgetHandler.Submit)
		sessions.POST("/:id/click", widgetHandler.Click)
	}
}

func newRedisConnection(connString string, dbType int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: connString, DB: dbType})
}
