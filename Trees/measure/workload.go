package main

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/g-m-twostay/wavl/Trees"
	"github.com/influxdata/tdigest"
	"github.com/pingcap/errors"
)

type opKind uint8

const (
	opInsert opKind = iota
	opDelete
	opSelect
	numOps
)

var opNames = [numOps]string{"insert", "delete", "select"}

func (o opKind) String() string {
	return opNames[o]
}

// stats of one kind of operation. Rejected operations, duplicate inserts and deletes of absent keys, count
// toward latency but not toward cost.
type stats struct {
	count, rejected int
	totalCost       int
	maxCost         int
	maxDur          time.Duration
	cost            *tdigest.TDigest
	latency         *tdigest.TDigest // microseconds
}

func newStats() *stats {
	return &stats{cost: tdigest.New(), latency: tdigest.New()}
}

func (s *stats) update(cost int, dur time.Duration, rejected bool) {
	s.count++
	s.latency.Add(float64(dur.Nanoseconds())/1e3, 1)
	s.maxDur = max(s.maxDur, dur)
	if rejected {
		s.rejected++
		return
	}
	s.totalCost += cost
	s.maxCost = max(s.maxCost, cost)
	s.cost.Add(float64(cost), 1)
}

// amortized rebalancing cost of the accepted operations.
func (s *stats) amortized() float64 {
	if n := s.count - s.rejected; n > 0 {
		return float64(s.totalCost) / float64(n)
	}
	return 0
}

func (s *stats) String() string {
	return fmt.Sprintf(
		"count: %d, rejected: %d, amortized cost: %.4f, max cost: %d, P0.5: %.0f, P0.9: %.0f, P0.99: %.0f\nlatency P0.5: %.4fus, P0.9: %.4fus, P0.99: %.4fus, max: %.4fus",
		s.count, s.rejected, s.amortized(), s.maxCost, s.cost.Quantile(0.5), s.cost.Quantile(0.9), s.cost.Quantile(0.99),
		s.latency.Quantile(0.5), s.latency.Quantile(0.9), s.latency.Quantile(0.99), float64(s.maxDur.Nanoseconds())/1e3)
}

type report struct {
	ops      [numOps]*stats
	done     int
	verified int
	size     uint32
	height   int
	digest   uint64
}

func (r *report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "operations: %d, verified: %d times, final size: %d, levels: %d, digest: %016x\n", r.done, r.verified, r.size, r.height, r.digest)
	for o, s := range r.ops {
		fmt.Fprintf(&sb, "%s: %s\n", opKind(o), s)
	}
	return sb.String()
}

// run the workload described by cfg on a fresh Index. It stops early when ctx is done, returning the partial
// report. A broken invariant is returned as an error wrapping a *Trees.CorruptError.
func run(ctx context.Context, cfg *Config) (r *report, err error) {
	r = &report{}
	for o := range r.ops {
		r.ops[o] = newStats()
	}
	rg := rand.New(rand.NewSource(cfg.Seed))
	tree := Trees.New[int, string, uint32](cfg.Hint)
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = errors.Annotatef(e, "operation %d", r.done+1)
		}
	}()
	for ; r.done < cfg.Ops; r.done++ {
		if r.done%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return r, errors.WithStack(err)
			}
		}
		k := rg.Intn(cfg.KeyRange)
		var (
			op   opKind
			cost int
			e    error
		)
		start := time.Now()
		switch p := rg.Float64(); {
		case p < cfg.InsertRatio:
			op = opInsert
			cost, e = tree.Insert(k, strconv.Itoa(k))
		case p < cfg.InsertRatio+cfg.SelectRatio:
			op = opSelect
			if n := tree.Size(); n > 0 {
				if _, ok := tree.Select(uint32(k)%n + 1); !ok {
					return r, errors.Errorf("select %d of %d failed", uint32(k)%n+1, n)
				}
			}
		default:
			op = opDelete
			cost, e = tree.Delete(k)
		}
		r.ops[op].update(cost, time.Since(start), e != nil)
		if cfg.VerifyEvery > 0 && (r.done+1)%cfg.VerifyEvery == 0 {
			if err := tree.Verify(); err != nil {
				return r, errors.Annotatef(err, "after %d operations", r.done+1)
			}
			r.verified++
		}
	}
	if err := tree.Verify(); err != nil {
		return r, errors.Annotate(err, "at the end")
	}
	r.verified++
	r.size, r.height, r.digest = tree.Size(), len(tree.Levels()), tree.Digest()
	return r, nil
}
