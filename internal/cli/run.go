package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/aretw0/easel"
	"github.com/aretw0/easel/internal/metrics"
	"github.com/aretw0/easel/internal/presentation/tui"
	easelhttp "github.com/aretw0/easel/pkg/adapters/http"
	"github.com/aretw0/easel/pkg/config"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/painter"
)

// RunOptions contains all the configuration for a painting run.
type RunOptions struct {
	Config    config.Config
	Name      string
	Paths     []domain.CanvasPath
	SessionID string
	Debug     bool
	Quiet     bool
	// Listen, when set, serves status, metrics and events during the run.
	Listen string
	Out    io.Writer
}

// RunSession paints opts.Paths on the simulated arm.
func RunSession(opts RunOptions) error {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	logger := createLogger(opts.Config.Log, opts.Debug)

	if !opts.Quiet {
		tui.PrintBanner(out, easel.Version)
	}

	arm, err := NewArm(opts.Config.Arm)
	if err != nil {
		return fmt.Errorf("error initializing arm: %w", err)
	}
	backend, err := OpenBackend(opts.Config.Store)
	if err != nil {
		return fmt.Errorf("error initializing store: %w", err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("Failed to close store", "err", err)
		}
	}()

	reg := prometheus.NewRegistry()
	hooks := metrics.New(reg).Hooks()
	if !opts.Quiet {
		hooks = hooks.Merge(tui.NewProgressPrinter(out, len(opts.Paths)).Hooks())
	}
	if opts.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	if opts.Listen != "" {
		reg.MustRegister(collectors.NewGoCollector())
		status := easelhttp.NewServer(backend.Store, arm, logger)
		hooks = hooks.Merge(status.Hooks())
		stop := startServer(opts.Listen, status.Handler(reg), logger)
		defer stop()
	}

	painterOpts := []painter.Option{
		painter.WithStore(backend.Store),
		painter.WithLocker(backend.Locker),
		painter.WithLifecycleHooks(hooks),
		painter.WithLogger(logger),
	}
	if opts.SessionID != "" {
		id := opts.SessionID
		painterOpts = append(painterOpts, painter.WithSessionIDs(func() string { return id }))
	}
	p := painter.New(arm, opts.Config, painterOpts...)

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	if !opts.Quiet {
		printSystemMessage(out, "Painting %q: %d paths.", opts.Name, len(opts.Paths))
	}
	session, runErr := p.Run(sigCtx, opts.Paths)

	if session != nil && !opts.Quiet {
		progress, err := backend.Store.Load(context.Background(), session.ID)
		if err == nil {
			logCompletion(out, progress, runErr, sigCtx.Signal())
		}
	}
	if sigCtx.Err() != nil && runErr == nil {
		runErr = sigCtx.Err()
	}
	return handleExecutionError(runErr)
}

// startServer serves h on addr in the background. The returned func shuts it down.
func startServer(addr string, h http.Handler, logger *slog.Logger) func() {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("Status server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Status server failed", "err", err)
		}
	}()
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "err", err)
			_ = srv.Close()
		}
	}
}
