package engine

import "isolation/experiments/metrics"

type Engine interface {
	// Run plays a game until one player is stuck or forfeits
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
