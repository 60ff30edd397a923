package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/logtrail/logtrail/internal/broker"
	kafkabroker "github.com/logtrail/logtrail/internal/broker/kafka"
	"github.com/logtrail/logtrail/internal/config"
	v1 "github.com/logtrail/logtrail/internal/controller/http/v1"
	"github.com/logtrail/logtrail/internal/metrics"
	"github.com/logtrail/logtrail/internal/repo"
	"github.com/logtrail/logtrail/internal/service"
	errorsUtils "github.com/logtrail/logtrail/pkg/errors"
	"github.com/logtrail/logtrail/pkg/httpserver"
	"github.com/logtrail/logtrail/pkg/logger"
	"github.com/logtrail/logtrail/pkg/postgres"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	// Migrations
	Migrate(cfg.PG.URL)

	// DB connecting
	log.Info("Connecting to DB")
	pg, err := postgres.New(cfg.PG.URL, postgres.MaxPoolSize(cfg.PG.MaxPoolSize))
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer pg.Close()
	log.Info("Connected to DB")

	// Counters
	counters := metrics.New()

	// Optional Kafka relay
	var producer broker.Producer
	if len(cfg.Kafka.Brokers) > 0 {
		log.Infof("Starting Kafka relay, topic: %s", cfg.Kafka.Topic)
		kafkaProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		defer kafkaProducer.Close()
		producer = kafkaProducer
	}

	// Repos
	repositories := repo.NewRepositories(pg)

	// Services
	services := service.NewServices(service.ServicesDependencies{
		Repos:    repositories,
		Producer: producer,
		Counters: counters,
	})

	// HTTP server
	log.Infof("Starting HTTP server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	handler := echo.New()
	v1.ConfigureRouter(handler, services, counters, cfg.App.Name, cfg.App.Version)
	httpServer := httpserver.New(handler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-httpServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := httpServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
