package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	c "github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/cache"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/config"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/events"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/health"
	h "github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/http"
	"github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/repository"
	s "github.com/alwaysshuvo/ProductHub--Server--Simplify-Your-Product-Management/internal/service"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// The store is dialled on first use, not here.
	conn := repository.NewConnector(cfg.MongoURI, cfg.MongoDB)

	productRepo := repository.NewProductRepository(conn)
	userRepo := repository.NewUserRepository(conn)
	ratingRepo := repository.NewRatingRepository(conn)
	categoryRepo := repository.NewCategoryRepository(conn)
	cartRepo := repository.NewCartRepository(conn)

	cartCache, redisClient := setupCache(cfg)
	publisher := setupPublisher(cfg)

	handlers := h.Handlers{
		Health:     h.NewHealthHandler(conn),
		Products:   h.NewProductHandler(s.NewProductService(productRepo, publisher)),
		Users:      h.NewUserHandler(userRepo),
		Ratings:    h.NewRatingHandler(ratingRepo),
		Categories: h.NewCategoryHandler(s.NewCategoryService(categoryRepo, publisher)),
		Cart:       h.NewCartHandler(s.NewCartService(cartRepo, cartCache)),
		Dashboard:  h.NewDashboardHandler(s.NewDashboardService(productRepo, ratingRepo)),
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h.NewRouter(handlers, cfg.MaxRequestBodySize),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	healthServer := startHealthServer(healthCtx, cfg, conn)

	go func() {
		log.Printf("ProductHub server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}

	stopHealth()
	if healthServer != nil {
		healthServer.Stop()
	}
	if err := publisher.Close(); err != nil {
		log.Printf("failed to close event publisher: %v", err)
	}
	if redisClient != nil {
		redisClient.Close()
	}
	if err := conn.Close(ctx); err != nil {
		log.Printf("failed to disconnect from MongoDB: %v", err)
	}

	log.Println("server exited")
}

// setupCache returns the Redis cart cache, or a no-op cache when Redis is
// not configured or not reachable at startup.
func setupCache(cfg *config.Config) (c.CartCache, *redis.Client) {
	if cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, cart cache disabled")
		return c.NopCache{}, nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Redis connection failed, cart cache disabled: %v", err)
		redisClient.Close()
		return c.NopCache{}, nil
	}
	log.Printf("Redis ping succeeded")

	return c.NewRedisCache(redisClient), redisClient
}

func setupPublisher(cfg *config.Config) events.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		log.Println("KAFKA_BROKERS not set, catalog events disabled")
		return events.NopPublisher{}
	}
	log.Printf("Publishing catalog events to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	return events.NewKafkaPublisher(cfg.KafkaTopic, cfg.KafkaBrokers...)
}

func startHealthServer(ctx context.Context, cfg *config.Config, store health.Pinger) *health.Server {
	if cfg.GRPCHealthPort == "" {
		return nil
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPCHealthPort))
	if err != nil {
		log.Fatalf("Failed to listen: %v", err)
	}

	healthServer := health.NewServer(store, cfg.HealthInterval)
	go healthServer.Run(ctx)
	go func() {
		log.Printf("gRPC health listening on port %s", cfg.GRPCHealthPort)
		if err := healthServer.Serve(lis); err != nil {
			log.Printf("gRPC health server stopped: %v", err)
		}
	}()
	return healthServer
}
