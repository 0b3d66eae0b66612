package storage

import "carpet-auction-house/internal/metrics"

var uploads = metrics.NewCounter(
	"uploads_total",
	"storage",
	"Upload attempts by provider, stage and outcome",
	[]string{"provider", "stage", "outcome"},
)
