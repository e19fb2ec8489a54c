package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/djdv/go-wheelist"
	"github.com/spf13/pflag"
)

type config struct {
	metricsAddr string
	policy      string
	logLevel    string
	workers     int
	maxLen      int
	cacheCap    int
	readPct     int
	seed        int64
	duration    time.Duration
}

func defaultConfig() config {
	return config{
		policy:   "lru",
		logLevel: "info",
		workers:  runtime.GOMAXPROCS(0),
		maxLen:   1024,
		readPct:  80,
		seed:     time.Now().UnixNano(),
		duration: 5 * time.Second,
	}
}

func (cfg *config) bindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&cfg.metricsAddr, "http", cfg.metricsAddr, "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
	fs.StringVar(&cfg.policy, "policy", cfg.policy, "bounded index cache policy: lru | arc")
	fs.StringVar(&cfg.logLevel, "log-level", cfg.logLevel, "log level: trace | debug | info | warn | error")
	fs.IntVarP(&cfg.workers, "workers", "w", cfg.workers, "number of independent lists, one per worker")
	fs.IntVar(&cfg.maxLen, "len", cfg.maxLen, "upper bound on each list's length")
	fs.IntVar(&cfg.cacheCap, "cache", cfg.cacheCap, "index cache capacity (0 = unbounded)")
	fs.IntVar(&cfg.readPct, "reads", cfg.readPct, "lookup percentage [0..100]")
	fs.Int64Var(&cfg.seed, "seed", cfg.seed, "random seed")
	fs.DurationVarP(&cfg.duration, "duration", "d", cfg.duration, "benchmark duration")
}

func (cfg config) validate() error {
	switch {
	case cfg.workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", cfg.workers)
	case cfg.maxLen <= 0:
		return fmt.Errorf("len must be positive, got %d", cfg.maxLen)
	case cfg.readPct < 0 || cfg.readPct > 100:
		return fmt.Errorf("reads must be within [0,100], got %d", cfg.readPct)
	case cfg.duration <= 0:
		return fmt.Errorf("duration must be positive, got %s", cfg.duration)
	}
	_, err := cfg.cachePolicy()
	return err
}

func (cfg config) cachePolicy() (wheelist.CachePolicy, error) {
	switch cfg.policy {
	case "lru":
		return wheelist.CacheLRU, nil
	case "arc":
		return wheelist.CacheARC, nil
	default:
		return 0, fmt.Errorf("%w: %q (use lru or arc)", wheelist.ErrUnknownPolicy, cfg.policy)
	}
}
