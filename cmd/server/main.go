package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"dyne/salesboard/internal/config"
	"dyne/salesboard/internal/db"
	"dyne/salesboard/internal/logging"
	"dyne/salesboard/internal/metrics"
	"dyne/salesboard/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Salesboard starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect with sqlx; queries go through this pool.
	if err := db.InitPostgres(cfg.DSN()); err != nil {
		logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (sqlx): %v", err)
	}
	logging.Info("Connected to Postgres (sqlx)")

	// Connect with GORM; migrations go through this handle.
	orm, err := db.InitPostgresORM(cfg.DSN())
	if err != nil {
		logging.Error("Failed to connect to Postgres (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to Postgres (GORM): %v", err)
	}
	logging.Info("Connected to Postgres (GORM)")

	if err := db.Migrate(orm); err != nil {
		logging.Error("Migration failed", "error", err.Error())
		log.Fatalf("Migration failed: %v", err)
	}
	logging.Info("Schema migrated")

	upSince := time.Now()
	metricsReg := metrics.NewMetricsRegistry()

	router := routes.RegisterRoutes(metricsReg, upSince)

	// Metrics endpoint lives outside the Chi router so it skips the
	// request middleware chain.
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.Port
	logging.Info("Server starting",
		"port", cfg.Port,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
