package engine

import "coins/experiments/metrics"

type Engine interface {
	// Run plays turns until the row is empty
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
