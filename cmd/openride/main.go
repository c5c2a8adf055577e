package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/openride/openride/internal/pkg/apperrors"
	"github.com/openride/openride/internal/pkg/config"
	"github.com/openride/openride/internal/pkg/constants"
	"github.com/openride/openride/internal/pkg/database"
	"github.com/openride/openride/internal/pkg/health"
	"github.com/openride/openride/internal/pkg/logger"
	"github.com/openride/openride/internal/pkg/middleware"
	"github.com/openride/openride/internal/pkg/nsq"
	"github.com/openride/openride/internal/pkg/websocket"

	dispatchnsq "github.com/openride/openride/services/dispatch/handler/nsq"
	dispatchuc "github.com/openride/openride/services/dispatch/usecase"
	drivershttp "github.com/openride/openride/services/drivers/handler/http"
	driversrepo "github.com/openride/openride/services/drivers/repository"
	driversuc "github.com/openride/openride/services/drivers/usecase"
	eventshttp "github.com/openride/openride/services/events/handler/http"
	eventsrepo "github.com/openride/openride/services/events/repository"
	eventsuc "github.com/openride/openride/services/events/usecase"
	pricingrepo "github.com/openride/openride/services/pricing/repository"
	pricinguc "github.com/openride/openride/services/pricing/usecase"
	ridesgw "github.com/openride/openride/services/rides/gateway/nsq"
	rideshttp "github.com/openride/openride/services/rides/handler/http"
	ridesrepo "github.com/openride/openride/services/rides/repository"
	ridesuc "github.com/openride/openride/services/rides/usecase"
)

func main() {
	configs := config.InitConfig(".env")

	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()

	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		logger.Fatal("Failed to connect to postgres", logger.Err(err))
	}
	defer postgresClient.Close()

	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to redis", logger.Err(err))
	}
	defer redisClient.Close()

	producer, err := nsq.NewProducer(configs.NSQ.Address)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}
	defer producer.Stop()

	hub := websocket.NewHub(configs.WebSocket.BufferSize)
	defer hub.Close()

	// Repositories
	rideRepo := ridesrepo.NewRideRepo(postgresClient)
	driverRepo := driversrepo.NewDriverRepo(postgresClient)
	geoRepo := driversrepo.NewGeoRepo(redisClient)
	eventRepo := eventsrepo.NewEventRepo(postgresClient)
	surgeRepo := pricingrepo.NewSurgeRepo(redisClient,
		time.Duration(configs.Pricing.SurgeWindowMS)*time.Millisecond)

	// Usecases
	pricingUC := pricinguc.NewPricingUC(configs.Pricing, surgeRepo)
	eventUC := eventsuc.NewEventUC(eventRepo, rideRepo, driverRepo)
	dispatchGW := ridesgw.NewDispatchGateway(producer)
	rideUC := ridesuc.NewRideUC(rideRepo, dispatchGW, hub, eventUC, pricingUC)
	driverUC := driversuc.NewDriverUC(driverRepo, geoRepo, eventUC, pricingUC)
	dispatchUC := dispatchuc.NewDispatchUC(rideRepo, driverRepo, hub, eventUC)

	// Dispatch consumer
	dispatchHandler := dispatchnsq.NewDispatchHandler(dispatchUC)
	consumer, err := nsq.NewConsumer(
		constants.TopicRideDispatch,
		constants.ChannelDispatch,
		configs.NSQ.Address,
		configs.NSQ.MaxInFlight,
		dispatchHandler.HandleMessage,
	)
	if err != nil {
		logger.Fatal("Failed to start dispatch consumer", logger.Err(err))
	}
	defer consumer.Stop()
	if len(configs.NSQ.LookupdAddrs) > 0 {
		if err := consumer.ConnectToLookupd(configs.NSQ.LookupdAddrs); err != nil {
			logger.Fatal("Failed to connect to NSQ lookupd", logger.Err(err))
		}
	}

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperrors.EchoErrorHandler
	e.Use(echomw.Recover())
	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, configs.App.Name)

	wsManager := websocket.NewManager(hub, configs.JWT)
	e.GET("/ws", wsManager.HandleWebSocket)

	api := e.Group("", middleware.JWTMiddleware(configs.JWT))
	if configs.RateLimit.Enabled {
		api.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Key:         "ratelimit",
			Limit:       configs.RateLimit.Limit,
			Period:      time.Duration(configs.RateLimit.Period) * time.Second,
		}))
	}

	rideshttp.NewRideHandler(rideUC).RegisterRoutes(api)
	drivershttp.NewDriverHandler(driverUC).RegisterRoutes(api)
	eventshttp.NewEventHandler(eventUC).RegisterRoutes(api)

	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		logger.Info("Starting server", logger.String("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}
}
