package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clinichq/frontdesk-api/config"
	"github.com/clinichq/frontdesk-api/internal/handler"
	patientHandler "github.com/clinichq/frontdesk-api/internal/handler/patient"
	reportHandler "github.com/clinichq/frontdesk-api/internal/handler/report"
	roomHandler "github.com/clinichq/frontdesk-api/internal/handler/room"
	staffHandler "github.com/clinichq/frontdesk-api/internal/handler/staff"
	"github.com/clinichq/frontdesk-api/internal/loader"
	"github.com/clinichq/frontdesk-api/internal/repository/memory"
	"github.com/clinichq/frontdesk-api/internal/router"
	clinicService "github.com/clinichq/frontdesk-api/internal/service/clinic"
	"github.com/clinichq/frontdesk-api/pkg/clock"
	"github.com/clinichq/frontdesk-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	lg := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	// Optional seed file; the file's clinic name wins over config when set.
	var seed *loader.SeedData
	if cfg.Clinic.SeedFile != "" {
		seed, err = loader.ParseFile(cfg.Clinic.SeedFile)
		if err != nil {
			lg.Fatal(err, "failed to parse seed file")
		}
	}
	clinicName := cfg.Clinic.Name
	if seed != nil && seed.Name != "" {
		clinicName = seed.Name
	}

	svc := clinicService.NewService(
		clinicName,
		memory.NewRoomRepository(),
		memory.NewStaffRepository(),
		memory.NewClientRepository(),
		memory.NewAssignmentRepository(),
		clock.New(),
		lg.Zerolog(),
	)
	if seed != nil {
		svc.LoadInitialState(seed.Rooms, seed.Staff, seed.Clients)
	}

	r := router.NewRouter(
		handler.NewHandler(),
		router.Config{
			RateLimitEnabled:  cfg.RateLimit.Enabled,
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			RateBurst:         cfg.RateLimit.Burst,
			MetricsEnabled:    cfg.Metrics.Enabled,
			MetricsPath:       cfg.Metrics.Path,
		},
		patientHandler.NewHandler(svc),
		staffHandler.NewHandler(svc),
		roomHandler.NewHandler(svc),
		reportHandler.NewHandler(svc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		lg.Info("starting server", "addr", srv.Addr, "clinic", clinicName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lg.Error(err, "forced shutdown")
	}
}
