package main

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cailurus/hearth/internal/domain/place"
	"github.com/cailurus/hearth/internal/domain/timezone"
	"github.com/cailurus/hearth/pkg/config"
	"github.com/cailurus/hearth/pkg/observability"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.Metrics

	// Collaborators
	Provider place.Provider
	Timezone timezone.Resolver

	// Services
	PlaceService place.Service

	// Handlers
	PlaceHandler *place.Handler
}

// InitDependencies initializes all application dependencies
func InitDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	deps := &Dependencies{
		Config:  cfg,
		Logger:  logger,
		Metrics: observability.NewMetrics(prometheus.DefaultRegisterer),
	}

	deps.Provider = place.NewNominatimClient(
		cfg.Nominatim.BaseURL,
		cfg.Nominatim.UserAgent,
		cfg.Nominatim.Timeout,
		logger,
		deps.Metrics,
	)

	if cfg.Timezone.Endpoint != "" {
		deps.Timezone = timezone.NewHTTPResolver(cfg.Timezone.Endpoint, cfg.Timezone.Timeout, logger)
	} else {
		logger.Warn("no timezone endpoint configured; geocoded points will carry no timezone")
	}

	deps.PlaceService = place.NewPlaceService(deps.Provider, deps.Timezone, logger)
	deps.PlaceHandler = place.NewHandler(deps.PlaceService, logger)

	logger.Info("all dependencies initialized successfully")

	return deps
}
