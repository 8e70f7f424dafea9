package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"

	"github.com/slidesmith/slidesmith/config"
	"github.com/slidesmith/slidesmith/pkg/otel"
	"github.com/slidesmith/slidesmith/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var version = "dev"

func main() {
	godotenv.Load()

	configFlag := flag.String("config", "", "configuration file")
	addressFlag := flag.String("address", "", "server address")

	flag.Parse()

	ctx := context.Background()

	if otel.EnableTelemetry {
		if err := otel.Setup(ctx, "slidesmith", version); err != nil {
			panic(err)
		}
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		panic(err)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	handler, err := api.New(cfg)

	if err != nil {
		panic(err)
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	handler.Attach(r)

	slog.Info("starting server", "address", cfg.Address)

	server := &http.Server{
		Addr:    cfg.Address,
		Handler: otelhttp.NewHandler(r, "server"),
	}

	if err := server.ListenAndServe(); err != nil {
		panic(err)
	}
}
