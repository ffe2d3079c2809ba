// internal/infrastructure/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RateQuotes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_quotes_total",
			Help: "Total number of rate estimates by outcome",
		},
		[]string{"result"},
	)

	EligibilityErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rate_eligibility_errors_total",
			Help: "Total number of failed eligibility checks by kind",
		},
		[]string{"kind"},
	)

	CardMoves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_card_moves_total",
			Help: "Total number of card move requests by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	CardMoveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "board_card_move_duration_seconds",
			Help: "Duration of the card move transaction in seconds",
		},
	)
)
