package main

import (
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"EstateCatalog/internal/auth"
	"EstateCatalog/internal/listing"
	"EstateCatalog/pkg/kit"
)

func main() {
	service := "catalog"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	port := getenv("PORT", "8080")

	jwtSecret := os.Getenv("JWT_SECRET")
	if len(jwtSecret) < 32 {
		log.Fatal("JWT_SECRET is required and must be at least 32 chars")
	}

	limit := getenvInt(log, "RATE_LIMIT", 30)
	windowSeconds := getenvInt(log, "RATE_WINDOW_SECONDS", 60)

	reg := prometheus.NewRegistry()
	s := &listing.Server{Store: listing.NewEngine(), Log: log}

	h := listing.NewHandler(s, listing.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: true,
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
		JWT:            auth.NewTokenMaker(jwtSecret),
		Limiter:        kit.NewIPRateLimiter(limit, time.Duration(windowSeconds)*time.Second),
	})

	if err := kit.RunHTTPServer(":"+port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(log *zap.Logger, k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatal("bad env value", zap.String("key", k), zap.String("value", v))
	}
	return n
}
