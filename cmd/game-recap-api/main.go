package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/fortuna/services/game-recap-service/internal/cache"
	"github.com/fortuna/services/game-recap-service/internal/pipeline"
	"github.com/fortuna/services/game-recap-service/internal/providers/espn"
	"github.com/fortuna/services/game-recap-service/internal/publisher"
	"github.com/fortuna/services/game-recap-service/internal/registry"
	"github.com/fortuna/services/game-recap-service/internal/server"
)

func main() {
	log.Println("Starting Game Recap API...")

	config := loadConfig()

	// Optional Redis for recap snapshots
	var recapCache server.RecapWriter
	var recapPublisher server.RecapPublisher
	if config.RedisURL != "" {
		opts, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}

		redisClient := redis.NewClient(opts)
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Connected to Redis")

		recapCache = cache.NewRedisWriter(redisClient)
		recapPublisher = publisher.NewStreamPublisher(redisClient)
	}

	// One pipeline per registered sport
	espnClient := espn.New()
	sportRegistry := registry.New()

	sources := make(map[string]server.RecapSource)
	for _, sportKey := range sportRegistry.AllSportKeys() {
		module, err := sportRegistry.GetModule(sportKey)
		if err != nil {
			log.Fatalf("Failed to load sport module %s: %v", sportKey, err)
		}
		sources[sportKey] = pipeline.New(module, espnClient)
	}

	handler := server.NewRecapHandler(sources, recapCache, recapPublisher)

	// Setup router
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(server.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.CORSOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", handler.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/sports", handler.HandleGetSports)
		r.Get("/teams/{team}/recap", handler.HandleGetRecap)
	})

	srv := &http.Server{
		Addr:         config.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("Game Recap API listening on %s", config.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Server error: %v", err)

	case sig := <-shutdown:
		log.Printf("Received signal: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Graceful shutdown failed: %v", err)
			if err := srv.Close(); err != nil {
				log.Printf("Could not stop server: %v", err)
			}
		}
	}

	log.Println("Shutdown complete")
}

// Config holds application configuration
type Config struct {
	Port        string
	RedisURL    string
	CORSOrigins []string
}

// loadConfig loads configuration from environment variables
func loadConfig() Config {
	return Config{
		Port:        getEnv("RECAP_API_PORT", ":8086"),
		RedisURL:    os.Getenv("REDIS_URL"), // empty disables Redis
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "http://localhost:3000"), ","),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
