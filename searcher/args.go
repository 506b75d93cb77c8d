package searcher

import "isolation/game"

// Defaults for a search agent

const DefaultDepth = 3

const DefaultTimeout = 10.0 // Milliseconds left when search aborts

type Option func(c *config)

// config is fixed once an agent is built and shared read-only by its searches
type config struct {
	depth    int
	evaluate game.Evaluate
	timeout  float64
	metrics  MetricsCollector
}

func WithDepth(depth int) Option {
	return func(c *config) {
		if depth > 0 {
			c.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(c *config) {
		if evaluate != nil {
			c.evaluate = evaluate
		}
	}
}

// WithTimeout sets the remaining time, in milliseconds, at or below which a search aborts.
func WithTimeout(timeout float64) Option {
	return func(c *config) {
		if timeout >= 0 {
			c.timeout = timeout
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.metrics = NewMetricsCollector()
	}
}

func newConfig(options ...Option) config {
	c := config{ // Default values
		depth:    DefaultDepth,
		evaluate: game.EdgeDamped,
		timeout:  DefaultTimeout,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
