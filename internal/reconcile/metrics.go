package reconcile

import "carpet-auction-house/internal/metrics"

const subsystem = "dashboard"

var (
	dashboardPasses = metrics.NewCounter(
		"passes_total",
		subsystem,
		"Dashboard aggregation passes by the source of the returned data",
		[]string{"source"},
	)
	duplicateEndings = metrics.NewCounter(
		"duplicate_endings_total",
		subsystem,
		"AuctionEnded events seen more than once for the same auction",
		[]string{},
	)
)
