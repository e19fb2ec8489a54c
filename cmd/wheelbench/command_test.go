package main

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/djdv/go-wheelist"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestConfig_Flags(t *testing.T) {
	cfg := defaultConfig()
	fs := pflag.NewFlagSet("wheelbench", pflag.ContinueOnError)
	cfg.bindFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"-w", "3", "--len", "64", "--cache", "16",
		"--policy", "arc", "--reads", "50", "-d", "250ms", "--seed", "7",
	}))
	require.NoError(t, cfg.validate())
	require.Equal(t, 3, cfg.workers)
	require.Equal(t, 64, cfg.maxLen)
	require.Equal(t, 16, cfg.cacheCap)
	require.Equal(t, 50, cfg.readPct)
	require.Equal(t, int64(7), cfg.seed)
	require.Equal(t, 250*time.Millisecond, cfg.duration)
	policy, err := cfg.cachePolicy()
	require.NoError(t, err)
	require.Equal(t, wheelist.CacheARC, policy)
}

func TestConfig_Validate(t *testing.T) {
	for _, test := range []struct {
		name   string
		modify func(*config)
	}{
		{"no workers", func(c *config) { c.workers = 0 }},
		{"no length", func(c *config) { c.maxLen = -1 }},
		{"reads above 100", func(c *config) { c.readPct = 101 }},
		{"no duration", func(c *config) { c.duration = 0 }},
		{"unknown policy", func(c *config) { c.policy = "fifo" }},
	} {
		t.Run(test.name, func(t *testing.T) {
			cfg := defaultConfig()
			test.modify(&cfg)
			require.Error(t, cfg.validate())
		})
	}
	cfg := defaultConfig()
	cfg.policy = "fifo"
	require.ErrorIs(t, cfg.validate(), wheelist.ErrUnknownPolicy)
}

func TestRun(t *testing.T) {
	cfg := defaultConfig()
	cfg.workers = 2
	cfg.maxLen = 32
	cfg.cacheCap = 8
	cfg.seed = 1
	cfg.duration = 50 * time.Millisecond

	log := logrus.New()
	log.SetOutput(io.Discard)
	reg := prometheus.NewRegistry()
	tally, err := run(context.Background(), cfg, log, reg)
	require.NoError(t, err)
	require.Positive(t, tally.adds.Load())
	require.Positive(t, tally.lookups.Load())
	require.Positive(t, tally.elapsed)

	families, err := reg.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	var out bytes.Buffer
	tally.print(&out, cfg)
	require.Contains(t, out.String(), "workers=2")
}
