// Package cvrptw is an optimization core for the Capacitated Vehicle
// Routing Problem with Time Windows: given a depot, a set of clients with
// demand and service-time windows, and a fleet of capacity-limited
// vehicles, it represents candidate solutions, scores them against a
// penalized objective, and improves them with parametric local search.
//
// Everything lives under subpackages:
//
//	problem/     — the immutable CVRPTW instance: clients, distance matrix, capacity
//	penalty/     — tunable coefficients mapping constraint violations to cost
//	tws/         — the time-window-segment algebra routes are scored with
//	route/       — the mutable doubly-linked route/pool working state
//	individual/  — an immutable whole-solution snapshot and its penalized cost
//	localsearch/ — the Exchange<N,M> move operator and the Session driver loop
//	metrics/     — optional Prometheus instrumentation for a running Session
//	config/      — functional-options configuration, with YAML loading
//	testfixture/ — small hand-checkable instances used across this module's tests
//
// A typical run loads or builds a problem.Data, seeds a route.Pool with an
// initial solution, and drives a localsearch.Session until it converges:
//
//	data, _ := problem.Load(r)
//	mgr := penalty.New(20, 6)
//	pool := route.NewPool(data)
//	pool.Load(initialRoutes)
//	sess := localsearch.NewSession(pool, mgr, []localsearch.Exchange{
//		localsearch.Relocate1, localsearch.Relocate2, localsearch.SwapOneOne,
//	}, nil)
//	report := sess.Run(context.Background(), nil)
package cvrptw
