package marketplace

import "carpet-auction-house/internal/metrics"

var transactions = metrics.NewCounter(
	"transactions_total",
	"marketplace",
	"Contract writes by operation and outcome",
	[]string{"operation", "outcome"},
)
