package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/epidemiccare-server/internal/api"
	"github.com/epidemiccare-server/internal/config"
	"github.com/epidemiccare-server/internal/domain"
	"github.com/epidemiccare-server/internal/service"
	"github.com/epidemiccare-server/internal/session"
	"github.com/epidemiccare-server/pkg/speech"
)

func main() {
	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := newLogger(cfg.Logging)
	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting EpidemicCare server")

	// Domain services
	consultation := service.NewConsultationService(logger, nil)
	riskEngine := service.NewRiskEngine(logger, cfg.Risk)
	diagnosis := service.NewDiagnosisService(logger)
	carePlan := service.NewCarePlanService(logger)
	assessment := service.NewAssessmentService(logger, riskEngine, diagnosis, carePlan)
	progress := service.NewProgressRecorder(logger)

	sessions := session.NewManager(logger, cfg.Session.MaxSessions, cfg.Session.TTL)

	// Optional text-to-speech sink
	var synthesizer speech.Synthesizer
	if cfg.Speech.Enabled {
		synthesizer = speech.NewClient(speech.Config{
			BaseURL:     cfg.Speech.BaseURL,
			Voice:       cfg.Speech.Voice,
			Timeout:     cfg.Speech.Timeout,
			RateLimit:   cfg.Speech.RateLimit,
			MaxRequests: cfg.Speech.MaxRequests,
			Interval:    cfg.Speech.Interval,
			CBTimeout:   cfg.Speech.CBTimeout,
			Failures:    cfg.Speech.Failures,
		}, logger)
		logger.WithField("base_url", cfg.Speech.BaseURL).Info("Speech sink enabled")
	}

	// Create server
	server := api.NewServer(configManager, logger, sessions, consultation, assessment, progress, synthesizer)

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down...")
		cancel()
	}()

	// Start server
	if err := server.Start(ctx); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}

	logger.Info("Server stopped")
}

func newLogger(cfg domain.LoggingConfig) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
