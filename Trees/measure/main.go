// measure runs a randomized insert, delete and select workload against a WAVL tree, checking its invariants
// along the way, and reports the rebalancing cost and latency of every kind of operation.
//
//	go run ./Trees/measure -ops 1000000 -key-range 100000
//	go run ./Trees/measure -config workload.toml -seed 7
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pingcap/errors"
	"github.com/pingcap/log"
	"go.uber.org/zap"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if errors.Cause(err) == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	lg, props, err := log.InitLogger(&log.Config{Level: cfg.LogLevel})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log.ReplaceGlobals(lg, props)
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sc := make(chan os.Signal, 1)
	signal.Notify(sc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT)
	go func() {
		select {
		case <-sc:
			cancel()
		case <-ctx.Done():
		}
	}()

	log.Info("start workload",
		zap.Int("ops", cfg.Ops),
		zap.Int("key-range", cfg.KeyRange),
		zap.Float64("insert-ratio", cfg.InsertRatio),
		zap.Float64("select-ratio", cfg.SelectRatio),
		zap.Int64("seed", cfg.Seed))
	start := time.Now()
	r, err := run(ctx, cfg)
	if errors.Cause(err) == context.Canceled {
		log.Warn("workload interrupted", zap.Int("done", r.done))
	} else if err != nil {
		log.Fatal("workload failed", zap.Int("done", r.done), zap.Error(err))
	}
	log.Info("workload finished", zap.Duration("elapsed", time.Since(start)), zap.Uint32("size", r.size), zap.Int("verified", r.verified))
	for o, s := range r.ops {
		log.Debug("operation stats", zap.Stringer("op", opKind(o)), zap.Int("count", s.count), zap.Float64("amortized-cost", s.amortized()))
	}
	fmt.Print(r)
}
