package perftests

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	model "carpet-auction-house/internal/models"
	"carpet-auction-house/internal/reconcile"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name        string
	NumAuctions int
	BidsPer     int
	ReadRatio   int // out of 10
	Workers     int
	Burst       bool // if true, no delay between ops
}

// OperationMetrics collects latencies safely
type OperationMetrics struct {
	mu        sync.Mutex
	latencies []time.Duration
}

func (om *OperationMetrics) Record(d time.Duration) {
	om.mu.Lock()
	om.latencies = append(om.latencies, d)
	om.mu.Unlock()
}

func (om *OperationMetrics) Stats() (min, max, avg, p95, p99 time.Duration) {
	om.mu.Lock()
	latencies := append([]time.Duration(nil), om.latencies...)
	om.mu.Unlock()
	if len(latencies) == 0 {
		return
	}
	sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })

	min = latencies[0]
	max = latencies[len(latencies)-1]

	var total time.Duration
	for _, d := range latencies {
		total += d
	}
	avg = total / time.Duration(len(latencies))
	p95 = latencies[int(0.95*float64(len(latencies)))]
	p99 = latencies[int(0.99*float64(len(latencies)))]
	return
}

// Benchmark_Load_Dashboard mixes dashboard reads with concurrent bids on the same log
func Benchmark_Load_Dashboard(b *testing.B) {
	scenarios := []LoadScenario{
		{"ReadHeavy-Sequential", 100, 5, 9, 1, false},
		{"ReadHeavy-Parallel", 100, 5, 9, 8, false},
		{"Mixed-Workload", 50, 10, 5, 4, false},
		{"WriteHeavy", 50, 10, 1, 4, false},
		{"Peak-Burst", 200, 5, 7, 8, true},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	log := seedLog(b, s.NumAuctions, s.BidsPer)
	engine := reconcile.NewEngine(log, nil, reconcile.WithWorkers(s.Workers))
	ctx := context.Background()

	var totalOps, bids, failedBids, reads, fallbacks int64
	metrics := &OperationMetrics{}
	var nextAmount int64 = 1e18

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

		for pb.Next() {
			opStart := time.Now()
			if rnd.Intn(10) < s.ReadRatio {
				if d := engine.Dashboard(ctx, account); d.Source != model.SourceLive {
					atomic.AddInt64(&fallbacks, 1)
				}
				atomic.AddInt64(&reads, 1)
			} else {
				id := model.AuctionID(rnd.Intn(s.NumAuctions) + 1)
				amount := big.NewInt(atomic.AddInt64(&nextAmount, 1))
				bidder := fmt.Sprintf("0x%040x", rnd.Intn(1000))
				if err := log.PlaceBid(id, bidder, amount); err != nil {
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&bids, 1)
				}
			}

			metrics.Record(time.Since(opStart))
			atomic.AddInt64(&totalOps, 1)

			if !s.Burst {
				time.Sleep(time.Millisecond)
			}
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()
	min, max, avg, p95, p99 := metrics.Stats()

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	b.Logf(
		"Scenario: %s | Auctions: %d | Workers: %d | Total Ops: %d | Bids: %d | Failed Bids: %d | Reads: %d | Fallbacks: %d | Elapsed: %s | Throughput: %.2f ops/sec | Latency(us) min: %.2f avg: %.2f max: %.2f p95: %.2f p99: %.2f | Memory Alloc: %.2f MB",
		s.Name, s.NumAuctions, s.Workers, totalOps, bids, failedBids, reads, fallbacks, elapsed,
		throughput,
		float64(min.Microseconds()), float64(avg.Microseconds()), float64(max.Microseconds()),
		float64(p95.Microseconds()), float64(p99.Microseconds()),
		float64(mem.Alloc)/1024/1024,
	)
	if fallbacks > 0 {
		b.Errorf("%d dashboard passes fell back to sample data", fallbacks)
	}
}
