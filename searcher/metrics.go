package searcher

import (
	"sync/atomic"
	"time"
)

// DecisionMetrics describes the work behind one top-level decision, nested
// simulated decisions included.
type DecisionMetrics struct {
	StartTime         time.Time
	Duration          time.Duration
	Decisions         int64
	OracleEvaluations int64
	SimulatedTurns    int64
}

type MetricsCollector interface {
	Start()
	AddDecision()
	AddOracleEvaluations(n int)
	AddSimulatedTurn()
	Complete() DecisionMetrics
}

type metricsCollector struct {
	startTime         time.Time
	decisions         atomic.Int64
	oracleEvaluations atomic.Int64
	simulatedTurns    atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters for a new decision.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.decisions.Store(0)
	m.oracleEvaluations.Store(0)
	m.simulatedTurns.Store(0)
}

func (m *metricsCollector) AddDecision() {
	m.decisions.Add(1)
}

func (m *metricsCollector) AddOracleEvaluations(n int) {
	m.oracleEvaluations.Add(int64(n))
}

func (m *metricsCollector) AddSimulatedTurn() {
	m.simulatedTurns.Add(1)
}

func (m *metricsCollector) Complete() DecisionMetrics {
	return DecisionMetrics{
		StartTime:         m.startTime,
		Duration:          time.Since(m.startTime),
		Decisions:         m.decisions.Load(),
		OracleEvaluations: m.oracleEvaluations.Load(),
		SimulatedTurns:    m.simulatedTurns.Load(),
	}
}

type noMetricsCollector struct{}

var noMetrics MetricsCollector = &noMetricsCollector{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                    {}
func (m *noMetricsCollector) AddDecision()              {}
func (m *noMetricsCollector) AddOracleEvaluations(int)  {}
func (m *noMetricsCollector) AddSimulatedTurn()         {}
func (m *noMetricsCollector) Complete() DecisionMetrics { return DecisionMetrics{} }
