package localsearch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/solverkit/cvrptw/individual"
	"github.com/solverkit/cvrptw/metrics"
	"github.com/solverkit/cvrptw/penalty"
	"github.com/solverkit/cvrptw/problem"
	"github.com/solverkit/cvrptw/route"
)

// StopFunc is a caller-provided predicate consulted periodically during
// each sweep (see Run for how often). Run stops once it returns true, ctx is done, or a full sweep finds no
// improving move — the single cancellation contract the core defines; no
// other primitive suspends or cancels a Session.
type StopFunc func() bool

// Report summarizes one Run call.
type Report struct {
	Sweeps         int
	MovesEvaluated int64
	MovesApplied   int64
	FinalCost      int64
	Duration       time.Duration
}

// Session is the single owner of one search's mutable route.Pool. It
// holds the shared, read-only ProblemData and PenaltyManager a sweep
// scores moves against, and drives a configured list of Exchange
// operators over the pool until convergence.
type Session struct {
	// ID is a stable identifier for this session, used as a metrics
	// label so multiple concurrent sessions' counters don't collide.
	ID string

	pool *route.Pool
	data *problem.Data
	mgr  *penalty.Manager
	ops  []Exchange

	recorder *metrics.Recorder

	checkEvery int
}

// SessionOption mutates a Session under construction, in the same
// functional-options idiom package config builds Config from.
type SessionOption func(*Session)

// WithCheckEvery overrides how many candidate evaluations Run lets pass
// between stop/ctx checks. Panics if n is not positive.
func WithCheckEvery(n int) SessionOption {
	if n <= 0 {
		panic("localsearch: WithCheckEvery requires n > 0")
	}

	return func(s *Session) { s.checkEvery = n }
}

// NewSession builds a Session over pool, scoring candidate moves with mgr
// and trying every operator in ops, in order, for each (U,V) pair every
// sweep. recorder may be nil to run without metrics.
func NewSession(pool *route.Pool, mgr *penalty.Manager, ops []Exchange, recorder *metrics.Recorder, opts ...SessionOption) *Session {
	s := &Session{
		ID:         uuid.NewString(),
		pool:       pool,
		data:       pool.Data(),
		mgr:        mgr,
		ops:        ops,
		recorder:   recorder,
		checkEvery: 2048,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// candidate is one (operator, U, V) scored during a sweep.
type candidate struct {
	op    Exchange
	u, v  *route.Node
	delta int64
}

// Run repeatedly sweeps every (U,V) client pair across every configured
// operator, applying the single best strictly-improving move found each
// sweep (and calling Update on every route it touched), until a sweep
// finds no improving move, stop returns true, or ctx is done.
//
// ctx and stop are both consulted only once every checkEvery candidate
// evaluations, via a rate.Sometimes limiter — the same amortization a
// bitmasked iteration counter buys a tight loop, generalized here into a
// reusable limiter so one throttle serves both checks uniformly instead
// of two separate bitmasks.
func (s *Session) Run(ctx context.Context, stop StopFunc) Report {
	start := time.Now()
	var report Report

	limiter := rate.Sometimes{Every: s.checkEvery}
	stopped := false
	checkStop := func() bool {
		limiter.Do(func() {
			if ctx.Err() != nil || (stop != nil && stop()) {
				stopped = true
			}
		})

		return stopped
	}

	for {
		sweepStart := time.Now()
		sweepEvaluated, sweepApplied := s.sweep(checkStop, &stopped)
		report.Sweeps++
		report.MovesEvaluated += sweepEvaluated
		report.MovesApplied += sweepApplied

		if s.recorder != nil {
			s.recorder.ObserveSweep(s.ID, sweepEvaluated, sweepApplied, time.Since(sweepStart))
		}

		if stopped || sweepApplied == 0 {
			break
		}
	}

	report.FinalCost = s.cost()
	report.Duration = time.Since(start)

	return report
}

// sweep scans every (U,V) pair across every configured operator, applies
// the single best strictly-improving move found (if any), and returns how
// many candidates it evaluated and whether it applied one (0 or 1).
func (s *Session) sweep(checkStop func() bool, stopped *bool) (evaluated, applied int64) {
	var best *candidate

	us := s.candidateU()
	vs := s.candidateV()

	for _, u := range us {
		if *stopped {
			break
		}

		for _, v := range vs {
			if *stopped {
				break
			}
			if u == v {
				continue
			}

			for _, op := range s.ops {
				if checkStop() {
					*stopped = true
					break
				}
				evaluated++

				delta := op.Evaluate(u, v, s.mgr)
				if delta < 0 && (best == nil || delta < best.delta) {
					best = &candidate{op: op, u: u, v: v, delta: delta}
				}
			}
		}
	}

	if best == nil {
		return evaluated, 0
	}

	uRoute, vRoute := best.u.Route(), best.v.Route()
	best.op.Apply(best.u, best.v)
	uRoute.Update()
	if vRoute != uRoute {
		vRoute.Update()
	}

	return evaluated, 1
}

// candidateU returns every client Node as a candidate relocate/swap
// source.
func (s *Session) candidateU() []*route.Node {
	nbClients := s.data.NbClients()
	out := make([]*route.Node, 0, nbClients)
	for c := 1; c <= nbClients; c++ {
		out = append(out, s.pool.NodeOf(c))
	}

	return out
}

// candidateV returns every client Node plus each route's start depot
// sentinel, so a move can relocate or swap a segment into the front of
// any route (including an empty one) and not merely after another
// client.
func (s *Session) candidateV() []*route.Node {
	nbClients := s.data.NbClients()
	out := make([]*route.Node, 0, nbClients+s.pool.NbRoutes())
	for c := 1; c <= nbClients; c++ {
		out = append(out, s.pool.NodeOf(c))
	}
	for k := 0; k < s.pool.NbRoutes(); k++ {
		out = append(out, s.pool.RouteAt(k).Start())
	}

	return out
}

// cost re-derives the penalized objective of the pool's current working
// state via the same Dump/individual.New round trip a caller uses to
// re-serialize an Individual once search settles.
func (s *Session) cost() int64 {
	ind, err := individual.New(s.data, s.mgr, s.pool.Dump())
	if err != nil {
		// Dump always yields exactly NbVehicles route lists.
		panic(err)
	}

	return ind.Cost()
}
