package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	easelhttp "github.com/aretw0/easel/pkg/adapters/http"
	"github.com/aretw0/easel/pkg/config"
)

// RunServe serves stored sessions until ctx is cancelled.
func RunServe(ctx context.Context, w io.Writer, cfg config.Config, addr string) error {
	logger := createLogger(cfg.Log, false)

	backend, err := OpenBackend(cfg.Store)
	if err != nil {
		return fmt.Errorf("error initializing store: %w", err)
	}
	defer backend.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           easelhttp.NewServer(backend.Store, nil, logger).Handler(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		printSystemMessage(w, "Serving %s sessions on %s", cfg.Store.Kind, addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
		printSystemMessage(w, "Server stopped gracefully")
		return nil
	}
}
