package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/udsdoc/udsdoc/internal/metrics"
	"github.com/udsdoc/udsdoc/internal/watch"
)

// WatchCmd implements the 'watch' command: the long-lived variant of
// generate. The live record stays an immutable singleton; every reload
// constructs a new one.
type WatchCmd struct {
	Docs        string        `short:"d" help:"Documentation source directory" default:"./docs"`
	Interval    time.Duration `help:"Periodic refresh interval as a safety net for missed file events (0 disables)" default:"0"`
	MetricsAddr string        `name:"metrics-addr" help:"Listen address for Prometheus metrics (empty disables)"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	svc := watch.NewService(root.Config, w.Docs)

	if w.MetricsAddr != "" {
		reg := prom.NewRegistry()
		svc.WithRecorder(metrics.NewPrometheusRecorder(reg))

		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.HTTPHandler(reg))
		server := &http.Server{Addr: w.MetricsAddr, Handler: mux}

		go func() {
			slog.Info("Serving metrics", "addr", w.MetricsAddr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				slog.Warn("Failed to shut down metrics server", "error", err)
			}
		}()
	}

	fmt.Println("Watching configuration, press Ctrl+C to stop")
	return svc.Run(ctx, w.Interval)
}
