package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getDayAvailabilityHandler "github.com/m04kA/SMC-VenueAvailability/internal/api/handlers/get_day_availability"
	getVenueCalendarHandler "github.com/m04kA/SMC-VenueAvailability/internal/api/handlers/get_venue_calendar"
	"github.com/m04kA/SMC-VenueAvailability/internal/api/handlers/health"
	listVenuesHandler "github.com/m04kA/SMC-VenueAvailability/internal/api/handlers/list_venues"
	"github.com/m04kA/SMC-VenueAvailability/internal/api/middleware"
	"github.com/m04kA/SMC-VenueAvailability/internal/config"
	bookingRepo "github.com/m04kA/SMC-VenueAvailability/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueAvailability/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueAvailability/internal/integrations/venueapi"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/availability"
	"github.com/m04kA/SMC-VenueAvailability/internal/service/ownerdata"
	getDayAvailabilityUC "github.com/m04kA/SMC-VenueAvailability/internal/usecase/get_day_availability"
	getVenueCalendarUC "github.com/m04kA/SMC-VenueAvailability/internal/usecase/get_venue_calendar"
	listVenuesUC "github.com/m04kA/SMC-VenueAvailability/internal/usecase/list_venues"
	"github.com/m04kA/SMC-VenueAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueAvailability/pkg/logger"
	"github.com/m04kA/SMC-VenueAvailability/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueAvailability...")
	log.Info("Configuration loaded (source=%s, default_capacity=%d)", cfg.Source.Kind, cfg.Calendar.DefaultCapacity)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Источник площадок и бронирований
	var (
		venueSource   ownerdata.VenueSource
		bookingSource ownerdata.BookingSource
	)

	switch cfg.Source.Kind {
	case config.SourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var executor dbmetrics.DBExecutor = db
		if cfg.Metrics.Enabled {
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
			log.Info("Database metrics collection started")
		}

		venueSource = venueRepo.NewRepository(executor)
		bookingSource = bookingRepo.NewRepository(executor, log)

	default:
		client := venueapi.NewClient(
			cfg.VenueAPI.URL,
			time.Duration(cfg.VenueAPI.Timeout)*time.Second,
			cfg.VenueAPI.Token,
			metricsCollector,
			log,
		)
		venueSource = client
		bookingSource = client
		log.Info("Venue API client initialized (url=%s, timeout=%ds)", cfg.VenueAPI.URL, cfg.VenueAPI.Timeout)
	}

	// Инициализируем сервисы
	resolver := availability.NewResolver(cfg.Calendar.DefaultCapacity)
	loader := ownerdata.NewLoader(venueSource, bookingSource, log)

	// Инициализируем use cases
	getVenueCalendarUseCase := getVenueCalendarUC.NewUseCase(loader, resolver, metricsCollector, log)
	getDayAvailabilityUseCase := getDayAvailabilityUC.NewUseCase(loader, resolver, log)
	listVenuesUseCase := listVenuesUC.NewUseCase(venueSource, resolver, log)

	// Инициализируем handlers
	getVenueCalendar := getVenueCalendarHandler.NewHandler(getVenueCalendarUseCase, log)
	getDayAvailability := getDayAvailabilityHandler.NewHandler(getDayAvailabilityUseCase, log)
	listVenues := listVenuesHandler.NewHandler(listVenuesUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Stack(log, metricsCollector)...)

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header, владелец смотрит только свои площадки)
	// ============================================================

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	// Календарь доступности на месяц (+ мини-календари соседних месяцев)
	api.HandleFunc("/owners/{ownerId}/calendar", getVenueCalendar.Handle).Methods(http.MethodGet)

	// Доступность на конкретную дату
	api.HandleFunc("/owners/{ownerId}/calendar/{date}", getDayAvailability.Handle).Methods(http.MethodGet)

	// Площадки владельца для селектора
	api.HandleFunc("/owners/{ownerId}/venues", listVenues.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
