package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"tripview.kansaitrip.org/internal/app"
	"tripview.kansaitrip.org/internal/itinerary"
	"tripview.kansaitrip.org/internal/report"
)

const version = "1.0.0"

func main() {
	var cfg app.Config

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")

	var (
		tripFile = flag.String("trip-file", "", "Path to a local JSON trip file")
		tripURL  = flag.String("trip-url", "", "URL to a remote JSON trip file")
	)

	flag.Parse()

	tripAuthUser := os.Getenv("TRIP_AUTH_USER")
	tripAuthPass := os.Getenv("TRIP_AUTH_PASS")

	if err := itinerary.ValidateFlags(tripFile, tripURL); err != nil {
		fmt.Println("Error:", err)
		flag.Usage()
		os.Exit(1)
	}

	report.SetupSentry()
	defer report.FlushSentry()
	report.ConfigureScope(cfg.Env, version)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	client := app.NewPooledClient()

	var (
		trip *itinerary.Trip
		err  error
	)
	if *tripFile != "" {
		trip, err = itinerary.LoadFromFile(*tripFile)
	} else {
		trip, err = itinerary.LoadFromURL(context.Background(), client, *tripURL, tripAuthUser, tripAuthPass, 3)
	}
	if err != nil {
		fmt.Printf("Error loading trip: %v\n", err)
		os.Exit(1)
	}

	// No GPS hardware on the server side. The location state machine is
	// exercised through the positioner wired in by the embedding platform;
	// standalone it answers every request with capability_unavailable.
	application := app.New(cfg, trip, nil, logger, client, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Keep a remotely hosted itinerary fresh.
	if *tripURL != "" {
		go application.TripService.Refresh(ctx, *tripURL, tripAuthUser, tripAuthPass, time.Minute)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      application.Routes(ctx),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "days", len(trip.Days))
	err = srv.ListenAndServe()
	report.ReportError(err, sentry.LevelFatal)
	report.FlushSentry()
	logger.Error(err.Error())
	os.Exit(1)
}
