package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ChrisAdy1/cringeshield/internal/api"
	"github.com/ChrisAdy1/cringeshield/internal/cli"
	"github.com/ChrisAdy1/cringeshield/internal/db"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) > 1 && os.Args[1] == "reset-password" {
		runResetPassword(os.Args[2:])
		return
	}

	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	databaseURL := os.Getenv("DATABASE_URL")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "cringeshield.db"))
	port := getEnv("PORT", "8080")
	cookieSecure := getEnv("COOKIE_SECURE", "false") == "true"
	accelerated := getEnv("WEEKLY_ACCELERATED", "false") == "true"
	adminEmail := os.Getenv("ADMIN_EMAIL")
	corsOrigins := getEnv("CORS_ORIGINS", "")
	metricsUser := os.Getenv("METRICS_USER")
	metricsPass := os.Getenv("METRICS_PASS")

	database, err := db.Open(databaseURL, dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, secretKey, location, cookieSecure, accelerated, adminEmail)

	app := fiber.New(fiber.Config{
		AppName:               "CringeShield",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	if corsOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowCredentials: true,
		}))
	}

	api.InitPrometheus()
	app.Use(api.MonitorMiddleware)
	app.Get("/metrics", api.MetricsHandler(metricsUser, metricsPass))

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("CringeShield listening on http://0.0.0.0:%s (tz: %s)", port, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func runResetPassword(args []string) {
	flags := flag.NewFlagSet("reset-password", flag.ExitOnError)
	email := flags.String("email", "", "email of the account to reset")
	if err := flags.Parse(args); err != nil {
		log.Fatalf("parse flags: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "cringeshield.db"))
	if err := cli.RunResetPasswordCommand(databaseURL, dbPath, *email); err != nil {
		log.Fatalf("reset-password failed: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
