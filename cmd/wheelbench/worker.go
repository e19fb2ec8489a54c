package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/djdv/go-wheelist"
)

type (
	entry struct {
		name string
		id   int
	}

	stats struct {
		lookups, found,
		adds, inserts, deletes,
		moves, advances atomic.Uint64
		elapsed time.Duration
	}

	worker struct {
		wheel   *wheelist.Wheel[int, entry]
		rng     *rand.Rand
		tally   *stats
		id      int
		maxLen  int
		readPct int
		nextID  int
	}
)

func keyOf(e entry) int { return e.id }

func newWorker(id int, cfg config, wheel *wheelist.Wheel[int, entry], tally *stats) *worker {
	return &worker{
		id:      id,
		wheel:   wheel,
		tally:   tally,
		maxLen:  cfg.maxLen,
		readPct: cfg.readPct,
		// Each worker gets its own RNG (rand.Rand is not goroutine-safe).
		rng: rand.New(rand.NewSource(cfg.seed + int64(id)*9973)),
	}
}

func (w *worker) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		if err := w.step(); err != nil {
			return fmt.Errorf("worker %d: %w", w.id, err)
		}
	}
}

func (w *worker) step() error {
	if int(w.rng.Int31n(100)) < w.readPct {
		w.lookup()
		return nil
	}
	var (
		wheel  = w.wheel
		length = wheel.Len()
	)
	switch op := w.rng.Intn(5); {
	case length == 0 || (op == 0 && length < w.maxLen):
		end := wheelist.End(w.rng.Intn(2) == 0)
		wheel.Add(w.newEntry(), end)
		w.tally.adds.Add(1)
	case op == 1 && length < w.maxLen:
		if _, err := wheel.Insert(w.rng.Intn(length+1), w.newEntry()); err != nil {
			return err
		}
		w.tally.inserts.Add(1)
	case op == 2 || length >= w.maxLen:
		if err := wheel.Delete(w.rng.Intn(length)); err != nil {
			return err
		}
		w.tally.deletes.Add(1)
	case op == 3:
		wheel.Move(w.rng.Intn(length), w.rng.Intn(length))
		w.tally.moves.Add(1)
	default:
		wheel.Advance(w.rng.Intn(length) - length/2)
		w.tally.advances.Add(1)
	}
	return nil
}

func (w *worker) lookup() {
	w.tally.lookups.Add(1)
	// Probe twice the live ID range so some lookups miss.
	key := w.rng.Intn(2*w.nextID + 1)
	if w.wheel.Has(w.wheel.Key(key)) {
		w.tally.found.Add(1)
	}
}

func (w *worker) newEntry() entry {
	e := entry{id: w.nextID, name: "entry-" + strconv.Itoa(w.nextID)}
	w.nextID++
	return e
}

func (s *stats) print(out io.Writer, cfg config) {
	var (
		structural = s.adds.Load() + s.inserts.Load() + s.deletes.Load() +
			s.moves.Load() + s.advances.Load()
		lookups = s.lookups.Load()
		total   = structural + lookups
		found   = 0.0
	)
	if lookups > 0 {
		found = float64(s.found.Load()) / float64(lookups) * 100
	}
	fmt.Fprintf(out, "workers=%d len<=%d cache=%d policy=%s dur=%v seed=%d\n",
		cfg.workers, cfg.maxLen, cfg.cacheCap, cfg.policy, s.elapsed, cfg.seed)
	fmt.Fprintf(out, "ops=%d (%.0f ops/s)  lookups=%d  found=%.2f%%\n",
		total, float64(total)/s.elapsed.Seconds(), lookups, found)
	fmt.Fprintf(out, "adds=%d inserts=%d deletes=%d moves=%d advances=%d\n",
		s.adds.Load(), s.inserts.Load(), s.deletes.Load(),
		s.moves.Load(), s.advances.Load())
}
