package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lairegodd/multitools/internal/config"
	"github.com/lairegodd/multitools/internal/engine/ffmpeg"
	"github.com/lairegodd/multitools/internal/engine/libreoffice"
	convert_h "github.com/lairegodd/multitools/internal/http-server/handler/convert"
	"github.com/lairegodd/multitools/internal/http-server/router"
	"github.com/lairegodd/multitools/internal/staging"
	convert_uc "github.com/lairegodd/multitools/internal/usecase/convert"

	"github.com/wb-go/wbf/zlog"
)

type App struct {
	cfg    *config.Config
	server *http.Server
	logger *zlog.Zerolog
}

func NewApp(cfg *config.Config, logger *zlog.Zerolog) (*App, error) {
	stagingMgr, err := staging.NewManager(cfg.Staging.Dir, cfg.Staging.MaxUploadSize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create staging manager: %w", err)
	}

	// Leftovers only exist after a crash; sweep them before serving.
	stagingMgr.CleanStale(cfg.Staging.StaleAfter)

	documents := libreoffice.NewCLI(
		libreoffice.WithBinary(cfg.Engines.SofficeBinary),
		libreoffice.WithTimeout(cfg.Engines.SofficeTimeout),
	)
	audio := ffmpeg.NewCLI(
		ffmpeg.WithBinary(cfg.Engines.FFmpegBinary),
		ffmpeg.WithTimeout(cfg.Engines.FFmpegTimeout),
	)

	converterService := convert_uc.NewService(stagingMgr, documents, audio, logger)

	convertHandler := convert_h.NewHandler(converterService, stagingMgr, cfg.Staging.MaxUploadSize, logger)

	h := &router.Handler{
		ConvertHandler: convertHandler,
	}

	mux := router.SetupRouter(h)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Addr,
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		cfg:    cfg,
		server: server,
		logger: logger,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info().Str("addr", a.cfg.Server.Addr).Msg("Starting server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.handleSignals(cancel)

	serverErr := make(chan error, 1)
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		a.logger.Error().Err(err).Msg("Server error")
		return err
	case <-ctx.Done():
		a.logger.Info().Msg("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error().Err(err).Msg("Server shutdown failed")
		}

		a.logger.Info().Msg("Server stopped gracefully")
		return nil
	}
}

func (a *App) handleSignals(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	a.logger.Info().Str("signal", sig.String()).Msg("Received signal")
	cancel()
}
