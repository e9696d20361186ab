package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dogmatiq/ferrite"
	"github.com/dogmatiq/retainmut"
	"github.com/dogmatiq/retainmut/deque"
	"golang.org/x/exp/constraints"
)

var leaseCount = ferrite.
	Unsigned[uint]("RETAINMUT_EXAMPLE_LEASES", "the number of leases to simulate").
	WithDefault(16).
	WithMinimum(1).
	Required()

var tickCount = ferrite.
	Unsigned[uint]("RETAINMUT_EXAMPLE_TICKS", "the number of expiry passes to run").
	WithDefault(4).
	Required()

var tickInterval = ferrite.
	Duration("RETAINMUT_EXAMPLE_INTERVAL", "the time between expiry passes").
	WithDefault(100 * time.Millisecond).
	Required()

var debug = ferrite.
	Bool("RETAINMUT_EXAMPLE_DEBUG", "log at debug level").
	WithDefault(false).
	Required()

func main() {
	ferrite.Init()

	level := slog.LevelInfo
	if debug.Value() {
		level = slog.LevelDebug
	}

	logger := slog.New(
		slog.NewJSONHandler(
			os.Stdout,
			&slog.HandlerOptions{
				Level: level,
			},
		),
	)

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if err := run(ctx, logger); err != nil && err != context.Canceled {
		logger.Error("example failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	n := int(leaseCount.Value())
	ticks := tickCount.Value()

	var leases []lease
	renewals := &deque.Deque[lease]{}

	for id := 0; id < n; id++ {
		l := lease{
			ID:     id,
			TTL:    uint(id%int(ticks+1)) + 1,
			logger: logger,
		}

		leases = append(leases, l)

		// Even leases are renewed from the back of the queue, odd leases are
		// urgent and jump to the front.
		if id%2 == 0 {
			renewals.PushBack(l)
		} else {
			renewals.PushFront(l)
		}
	}

	logger.Info(
		"simulating lease expiry",
		slog.Int("leases", n),
		slog.Uint64("ticks", uint64(ticks)),
	)

	ticker := time.NewTicker(tickInterval.Value())
	defer ticker.Stop()

	for tick := uint(1); tick <= ticks; tick++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		retainmut.Slice(&leases, func(l *lease) bool {
			return countdown(&l.TTL)
		})

		renewals.RetainFunc(func(l *lease) bool {
			return countdown(&l.TTL)
		})

		logger.Info(
			"expiry pass complete",
			slog.Uint64("tick", uint64(tick)),
			slog.Int("active_leases", len(leases)),
			slog.Int("pending_renewals", renewals.Len()),
		)

		renewals.All()(func(i int, l lease) bool {
			logger.Debug(
				"renewal pending",
				slog.Int("position", i),
				slog.Int("lease_id", l.ID),
				slog.Uint64("ttl", uint64(l.TTL)),
			)
			return true
		})
	}

	return nil
}

// lease is a time-limited claim that is released when it expires.
type lease struct {
	ID     int
	TTL    uint
	logger *slog.Logger
}

func (l *lease) Drop() {
	l.logger.Debug(
		"lease released",
		slog.Int("lease_id", l.ID),
	)
}

// countdown decrements *v, stopping at zero, and reports whether it is still
// positive.
func countdown[T constraints.Integer](v *T) bool {
	if *v > 0 {
		*v--
	}
	return *v > 0
}
