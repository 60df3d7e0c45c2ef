package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/speedywheel/rental/clients"
	"github.com/speedywheel/rental/config"
	"github.com/speedywheel/rental/config/db"
	"github.com/speedywheel/rental/config/redis"
	"github.com/speedywheel/rental/logger"
	"github.com/speedywheel/rental/middlewares/cors"
	"github.com/speedywheel/rental/routes"
)

func init() {
	logger.InitLoggers()
	config.LoadEnv()
}

func main() {
	pool := db.Connect()
	defer pool.Close()
	defer redis.CloseRedis()

	ctx := context.Background()
	if err := db.RunMigrations(ctx, pool); err != nil {
		logger.ErrorLogger.Errorf("Migration failed: %v", err)
		fmt.Println("Migration failed:", err)
		os.Exit(1)
	}
	if err := db.SeedCars(ctx, pool, "data/cars.json"); err != nil {
		logger.WarnLogger.Warnf("Car catalog seeding skipped: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	gateway := clients.NewStripeClient(os.Getenv("STRIPE_SECRET_KEY"))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.CorsMiddleware())

	routes.RegisterUserRoutes(r, pool)
	routes.RegisterCarRoutes(r, pool)
	routes.RegisterBookingRoutes(r, pool)
	routes.RegisterPaymentRoutes(r, pool, gateway)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "SpeedyWheel's server is running")
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok from rental service"})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		fmt.Printf("Server is running on port: %s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorLogger.Errorf("Server failed to listen: %v", err)
			fmt.Printf("Server failed to listen: %v\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	fmt.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorLogger.Errorf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exited gracefully.")
}
