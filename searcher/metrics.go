package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Strategy    string
	StartTime   time.Time
	Duration    time.Duration
	Nodes       int64
	Evaluations int64
	Cutoffs     int64
	Depth       int // Deepest fully completed depth, 0 if none completed
	TimedOut    bool
}

type MetricsCollector interface {
	Start(strategy string)
	AddNode()
	AddEvaluation()
	AddCutoff()
	CompleteDepth(depth int)
	TimedOut()
	Complete() SearchMetric
}

type metricsCollector struct {
	strategy    string
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
	depth       atomic.Int64
	timedOut    atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters for a new search
func (m *metricsCollector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
	m.depth.Store(0)
	m.timedOut.Store(false)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) CompleteDepth(depth int) {
	m.depth.Store(int64(depth))
}

func (m *metricsCollector) TimedOut() {
	m.timedOut.Store(true)
}

func (m *metricsCollector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		StartTime:   m.startTime,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes.Load(),
		Evaluations: m.evaluations.Load(),
		Cutoffs:     m.cutoffs.Load(),
		Depth:       int(m.depth.Load()),
		TimedOut:    m.timedOut.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(strategy string)   {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddEvaluation()          {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) CompleteDepth(depth int) {}
func (m *noMetricsCollector) TimedOut()               {}
func (m *noMetricsCollector) Complete() SearchMetric  { return SearchMetric{} }
