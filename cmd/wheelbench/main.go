// Command wheelbench runs a synthetic workload against wheel lists
// and optionally exposes their index cache metrics to Prometheus.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	log := logrus.New()
	if err := newCommand(log).ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("wheelbench failed")
		stop()
		os.Exit(1)
	}
}
