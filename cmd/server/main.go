package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aerolog-service/internal/domain/entity"
	"aerolog-service/internal/domain/repository"
	"aerolog-service/internal/infrastructure/config"
	"aerolog-service/internal/infrastructure/persistence"
	"aerolog-service/internal/interface/flightapi"
	mongoRepo "aerolog-service/internal/interface/repository"
	"aerolog-service/internal/interface/weatherapi"
	"aerolog-service/internal/usecase"
	"aerolog-service/pkg/cache"
	"aerolog-service/pkg/logger"
	"aerolog-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting AeroLog Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	// Airport reference: relational store when configured, bundled dataset otherwise
	var airports repository.AirportRepository
	if cfg.PostgresDSN != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		airports = mongoRepo.NewGormAirportRepository(gormDB)
	} else {
		airports = mongoRepo.NewAirportDirectory()
	}

	var searchCache cache.Cache
	if cfg.RedisAddr != "" {
		searchCache = cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword)
	}

	m := metrics.NewMetrics("aerolog")

	// Wire the core
	taskRepo := mongoRepo.NewMongoTaskRepository(db)
	ledger, err := usecase.NewTaskLedger(ctx, taskRepo, m, log)
	if err != nil {
		log.Fatal("Failed to initialize task ledger", "error", err)
	}

	flightClient := flightapi.NewHTTPClient(cfg.FlightAPIBaseURL, cfg.FlightAPIKey, cfg.FlightAPILimit, log)
	gateway := usecase.NewFlightSearchGateway(flightClient, searchCache, cfg.SearchCacheTTL, m, log)
	normalizer := usecase.NewFlightResultNormalizer(log)
	weather := weatherapi.NewHTTPClient(cfg.WeatherAPIBaseURL, cfg.WeatherAPIKey, log)

	// Thin JSON shell over the core, plus operational endpoints
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	mux.HandleFunc("GET /api/v1/search", func(w http.ResponseWriter, r *http.Request) {
		flight := r.URL.Query().Get("flight")
		if flight == "" {
			http.Error(w, "missing flight parameter", http.StatusBadRequest)
			return
		}
		results, err := gateway.Search(r.Context(), flight)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, results)
	})

	mux.HandleFunc("GET /api/v1/flights", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ledger.List(r.Context()))
	})

	mux.HandleFunc("GET /api/v1/flights/upcoming", func(w http.ResponseWriter, r *http.Request) {
		tasks, err := ledger.ListUpcoming(r.Context(), time.Now())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, tasks)
	})

	mux.HandleFunc("POST /api/v1/flights", func(w http.ResponseWriter, r *http.Request) {
		var raw entity.FlightSearchResult
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
		candidate := normalizer.NormalizeWithTitle(raw, r.URL.Query().Get("title"))
		task, err := ledger.Add(r.Context(), candidate)
		if errors.Is(err, usecase.ErrDuplicateFlight) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		if errors.Is(err, usecase.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, task)
	})

	mux.HandleFunc("DELETE /api/v1/flights/{id}", func(w http.ResponseWriter, r *http.Request) {
		if err := ledger.Remove(r.Context(), r.PathValue("id")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("POST /api/v1/flights/{id}/toggle", func(w http.ResponseWriter, r *http.Request) {
		if err := ledger.ToggleCompletion(r.Context(), r.PathValue("id")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("GET /api/v1/weather", func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		airport, err := airports.GetByCode(r.Context(), code)
		if err != nil {
			http.Error(w, "unknown airport code", http.StatusNotFound)
			return
		}
		report, err := weather.FetchCurrent(r.Context(), airport.Coordinate)
		if err != nil {
			// Soft failure; weather never blocks flight display
			http.Error(w, "unable to load weather", http.StatusBadGateway)
			return
		}
		writeJSON(w, http.StatusOK, report)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("AeroLog Service stopped")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
