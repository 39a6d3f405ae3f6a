// Package penalty maps constraint violations (excess vehicle load, total
// route time warp) to a cost penalty via tunable positive coefficients.
//
// Manager's two penalty methods are pure functions of their argument and
// the current coefficients; they never look at ProblemData or a Route. This
// mirrors the teacher's flow.FlowOptions / tsp.Options: a small, deliberately
// dumb configuration value that other packages consult, never a component
// that reaches back into the objects it penalizes.
package penalty

import "sync/atomic"

// Manager holds the two adaptive penalty coefficients used by Individual's
// cost function and by Exchange's move evaluator. Coefficients are stored
// behind atomics rather than a mutex: callers only ever swap a scalar
// (never read-modify-write), so a lock would buy nothing but contention.
// This lets Manager be freely shared across concurrent search sessions and
// tuned in place, without the coarser sync.RWMutex the teacher reaches for
// when a whole struct (core.Graph) needs multi-field consistency.
type Manager struct {
	capacityCoeff atomic.Int64
	timeWarpCoeff atomic.Int64
}

// New builds a Manager with the given initial coefficients. Both must be
// positive; New clamps non-positive input up to 1 rather than panicking,
// since these values commonly arrive from a deserialized Config the caller
// does not fully control (see package config, which does validate at the
// boundary and is the recommended construction path).
func New(initialCapacityPenalty, initialTimeWarpPenalty int64) *Manager {
	m := &Manager{}
	m.capacityCoeff.Store(clampPositive(initialCapacityPenalty))
	m.timeWarpCoeff.Store(clampPositive(initialTimeWarpPenalty))

	return m
}

func clampPositive(v int64) int64 {
	if v <= 0 {
		return 1
	}

	return v
}

// CapacityCoeff returns the current load-penalty coefficient.
func (m *Manager) CapacityCoeff() int64 { return m.capacityCoeff.Load() }

// TimeWarpCoeff returns the current time-warp-penalty coefficient.
func (m *Manager) TimeWarpCoeff() int64 { return m.timeWarpCoeff.Load() }

// SetCapacityCoeff tunes the load-penalty coefficient between search
// iterations, letting a driver adapt penalty pressure based on how
// frequently infeasible solutions are being generated.
func (m *Manager) SetCapacityCoeff(v int64) { m.capacityCoeff.Store(clampPositive(v)) }

// SetTimeWarpCoeff tunes the time-warp-penalty coefficient between search
// iterations.
func (m *Manager) SetTimeWarpCoeff(v int64) { m.timeWarpCoeff.Store(clampPositive(v)) }

// LoadPenalty returns excessLoad·capacityCoeff, or 0 if excessLoad ≤ 0.
// Callers compute excessLoad = load − vehicleCapacity themselves; Manager
// has no notion of a specific vehicle's capacity.
func (m *Manager) LoadPenalty(excessLoad int64) int64 {
	if excessLoad <= 0 {
		return 0
	}

	return excessLoad * m.capacityCoeff.Load()
}

// TimeWarpPenalty returns totalWarp·timeWarpCoeff, or 0 if totalWarp ≤ 0.
func (m *Manager) TimeWarpPenalty(totalWarp int64) int64 {
	if totalWarp <= 0 {
		return 0
	}

	return totalWarp * m.timeWarpCoeff.Load()
}
