package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"metrobus.islamabad.org/internal/app"
	"metrobus.islamabad.org/internal/directory"
	"metrobus.islamabad.org/internal/logging"
	"metrobus.islamabad.org/internal/models"
	"metrobus.islamabad.org/internal/planner"
	"metrobus.islamabad.org/internal/restapi"
	"metrobus.islamabad.org/internal/schedule"
)

func main() {
	// A missing .env file is fine; it only exists in local development.
	_ = godotenv.Load()

	defaults := app.DefaultConfig()

	configPath := flag.String("config", os.Getenv("METRO_CONFIG"), "Path to YAML config file")
	port := flag.Int("port", defaults.Port, "API server port")
	env := flag.String("env", defaults.Env, "Environment (development|staging|production)")
	apiKeys := flag.String("api-keys", "", "Comma separated API keys")
	schedulePath := flag.String("schedule", defaults.SchedulePath, "Path to the schedule dump (JSON)")
	greenStations := flag.String("green-stations", defaults.GreenStationsPath, "Path to Green Line station records (JSON)")
	blueStations := flag.String("blue-stations", defaults.BlueStationsPath, "Path to Blue Line station records (JSON)")
	rateLimit := flag.Int("rate-limit", defaults.RateLimit, "Requests per second per API key (0 disables all requests, negative disables limiting)")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "env":
			cfg.Env = *env
		case "api-keys":
			cfg.ApiKeys = strings.Split(*apiKeys, ",")
			for i := range cfg.ApiKeys {
				cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
			}
		case "schedule":
			cfg.SchedulePath = *schedulePath
		case "green-stations":
			cfg.GreenStationsPath = *greenStations
		case "blue-stations":
			cfg.BlueStationsPath = *blueStations
		case "rate-limit":
			cfg.RateLimit = *rateLimit
		}
	})

	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)

	scheduleManager := schedule.NewManager(cfg.SchedulePath, logger)
	scheduleManager.LogStatistics()

	dir := directory.LoadDirectory(logger, map[models.MetroLine]string{
		models.LineGreen: cfg.GreenStationsPath,
		models.LineBlue:  cfg.BlueStationsPath,
	})

	application := &app.Application{
		Config:    cfg,
		Logger:    logger,
		Schedule:  scheduleManager,
		Directory: dir,
		Planner:   planner.New(scheduleManager, dir, logger),
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Handler(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err = srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
