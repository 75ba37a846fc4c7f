package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/zatekoja/hospital-locator/backend/internal/adapters/cache"
	"github.com/zatekoja/hospital-locator/backend/internal/adapters/directory"
	"github.com/zatekoja/hospital-locator/backend/internal/adapters/search"
	"github.com/zatekoja/hospital-locator/backend/internal/api/handlers"
	"github.com/zatekoja/hospital-locator/backend/internal/api/middleware"
	"github.com/zatekoja/hospital-locator/backend/internal/api/routes"
	"github.com/zatekoja/hospital-locator/backend/internal/application/services"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/providers"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/clients/redis"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/clients/typesense"
	"github.com/zatekoja/hospital-locator/backend/internal/infrastructure/observability"
	"github.com/zatekoja/hospital-locator/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		observability.InitLogger(observability.LoggerOptions{ServiceName: "hospital-locator"})
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(observability.LoggerOptions{
		ServiceName:    cfg.OTEL.ServiceName,
		ServiceVersion: cfg.OTEL.ServiceVersion,
		Env:            cfg.Server.Env,
		Level:          cfg.Server.LogLevel,
		Fields: map[string]interface{}{
			"default_radius_miles": cfg.Search.DefaultRadiusMiles,
			"geolocation_timeout":  cfg.Geolocation.Timeout.String(),
		},
	})

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize metrics")
	}

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.Sentry.DSN,
			Environment:      cfg.Server.Env,
			Release:          cfg.OTEL.ServiceVersion,
			EnableTracing:    true,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
		}); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Sentry")
		} else {
			defer sentry.Flush(2 * time.Second)
			log.Info().Msg("Sentry initialized successfully")
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	domainMetrics, err := observability.NewDomainMetrics(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to register domain metrics")
	}
	// Compression middleware already gzips responses
	metricsHandler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{DisableCompression: true})

	dir, err := directory.LoadDefault()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load facility directory")
	}
	log.Info().Int("facilities", dir.Len()).Msg("Facility directory loaded")

	// Redis backs the response cache when enabled; otherwise an in-process cache is used
	var cacheProvider providers.CacheProvider
	if cfg.Redis.Enabled {
		redisClient, err := redis.NewClient(ctx, &cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Redis client; using in-memory cache")
		} else {
			defer redisClient.Close()
			cacheProvider = cache.NewRedisAdapter(redisClient.Client(), "hospital-locator:")
			log.Info().Msg("Redis client initialized successfully")
		}
	}
	if cacheProvider == nil {
		cacheProvider = cache.NewMemoryAdapter(cfg.Cache.MemoryMaxEntries)
	}

	if cfg.Typesense.Enabled {
		tsClient, err := typesense.NewClient(ctx, &cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Typesense client")
		} else {
			indexer := services.NewDirectoryIndexer(dir, search.NewTypesenseAdapter(tsClient))
			if _, err := indexer.IndexAll(ctx); err != nil {
				log.Warn().Err(err).Msg("Failed to publish directory to Typesense")
			}
		}
	}

	// Initialize services
	queryEngine := services.NewQueryEngine(dir, cfg.Search.DefaultRadiusMiles, domainMetrics)
	facilityService := services.NewFacilityService(dir)
	directionsService := services.NewDirectionsService(domainMetrics)
	geocodingService := services.NewGeocodingService(dir, domainMetrics)
	locationService := services.NewLocationService(
		cfg.Geolocation.Timeout,
		entities.Coordinates{Lat: cfg.Geolocation.DefaultLat, Lng: cfg.Geolocation.DefaultLng},
		domainMetrics,
	)

	// Initialize handlers
	hospitalHandler := handlers.NewHospitalHandler(queryEngine, facilityService)
	directionsHandler := handlers.NewDirectionsHandler(directionsService)
	geocodingHandler := handlers.NewGeocodingHandler(geocodingService)
	locationHandler := handlers.NewLocationHandler(locationService)

	cacheMiddleware := middleware.NewCacheMiddleware(cacheProvider, middleware.DefaultCacheRules(&cfg.Cache), metrics)
	cacheMiddleware.SetDomainMetrics(domainMetrics)

	router := routes.NewRouter(
		hospitalHandler,
		directionsHandler,
		geocodingHandler,
		locationHandler,
		metricsHandler,
		cacheMiddleware,
		metrics,
		cfg.Server.AllowedOrigins,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
