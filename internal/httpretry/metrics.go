package httpretry

import "carpet-auction-house/internal/metrics"

var (
	attempts = metrics.NewCounter(
		"attempts_total",
		"http_client",
		"Outbound HTTP attempts, retries included",
		[]string{"client"},
	)
	responses = metrics.NewCounter(
		"responses_total",
		"http_client",
		"Outbound HTTP responses by status class",
		[]string{"client", "class"},
	)
)
