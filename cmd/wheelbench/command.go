package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/djdv/go-wheelist"
	"github.com/djdv/go-wheelist/metrics/prom"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCommand(log *logrus.Logger) *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:           "wheelbench",
		Short:         "Run a synthetic workload against keyed circular lists",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			level, err := logrus.ParseLevel(cfg.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			log.SetOutput(cmd.ErrOrStderr())
			stats, err := run(cmd.Context(), cfg, log, prometheus.NewRegistry())
			if err != nil {
				return err
			}
			stats.print(cmd.OutOrStdout(), cfg)
			return nil
		},
	}
	cfg.bindFlags(cmd.Flags())
	return cmd
}

// run drives cfg.workers independent wheels until cfg.duration elapses.
func run(ctx context.Context, cfg config, log logrus.FieldLogger, reg *prometheus.Registry) (*stats, error) {
	policy, err := cfg.cachePolicy()
	if err != nil {
		return nil, err
	}
	var (
		metrics = prom.New(reg, "wheelist", "bench", nil)
		tally   = new(stats)
	)
	ctx, cancel := context.WithTimeout(ctx, cfg.duration)
	defer cancel()
	group, ctx := errgroup.WithContext(ctx)
	if cfg.metricsAddr != "" {
		serveMetrics(ctx, group, cfg.metricsAddr, reg, log)
	}
	start := time.Now()
	for id := range cfg.workers {
		wheel, err := wheelist.NewWheel(keyOf, wheelist.Options{
			Metrics:       metrics,
			Logger:        log.WithField("worker", id),
			CacheCapacity: cfg.cacheCap,
			CachePolicy:   policy,
		})
		if err != nil {
			return nil, err
		}
		w := newWorker(id, cfg, wheel, tally)
		group.Go(func() error { return w.run(ctx) })
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	tally.elapsed = time.Since(start)
	log.WithFields(logrus.Fields{
		"workers": cfg.workers,
		"elapsed": tally.elapsed,
	}).Info("workload finished")
	return tally, nil
}

func serveMetrics(ctx context.Context, group *errgroup.Group, addr string, reg *prometheus.Registry, log logrus.FieldLogger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	group.Go(func() error {
		log.WithField("addr", addr).Info("serving metrics")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
}
