package localsearch

import (
	"github.com/solverkit/cvrptw/penalty"
	"github.com/solverkit/cvrptw/route"
	"github.com/solverkit/cvrptw/tws"
)

// evalSwapMove computes the exact penalized-cost delta of trading U's
// N-node segment for V's M-node segment in place, when M > 0.
func (e Exchange) evalSwapMove(u, v *route.Node, mgr *penalty.Manager) int64 {
	uRoute := u.Route()
	vRoute := v.Route()
	data := uRoute.Data()

	endU := u
	if e.N > 1 {
		endU = uRoute.At(u.Position + e.N - 1)
	}
	endV := v
	if e.M > 1 {
		endV = vRoute.At(v.Position + e.M - 1)
	}

	posU, posV := u.Position, v.Position

	current := uRoute.DistBetween(posU-1, posU+e.N) + vRoute.DistBetween(posV-1, posV+e.M)

	// p(U) -> V -> ... -> endV -> n(endU)
	// p(V) -> U -> ... -> endU -> n(endV)
	proposed := data.Dist(u.Prev().Client, v.Client) +
		vRoute.DistBetween(posV, posV+e.M-1) +
		data.Dist(endV.Client, endU.Next().Client) +
		data.Dist(v.Prev().Client, u.Client) +
		uRoute.DistBetween(posU, posU+e.N-1) +
		data.Dist(endU.Client, endV.Next().Client)

	deltaCost := proposed - current

	if uRoute != vRoute {
		if uRoute.IsFeasible() && vRoute.IsFeasible() && deltaCost >= 0 {
			return deltaCost
		}

		uTWS := tws.MergeAll(data.Dist,
			u.Prev().TWBefore,
			vRoute.TWBetween(posV, posV+e.M-1),
			endU.Next().TWAfter,
		)

		deltaCost += mgr.TimeWarpPenalty(uTWS.TotalTimeWarp())
		deltaCost -= mgr.TimeWarpPenalty(uRoute.TimeWarp())

		vTWS := tws.MergeAll(data.Dist,
			v.Prev().TWBefore,
			uRoute.TWBetween(posU, posU+e.N-1),
			endV.Next().TWAfter,
		)

		deltaCost += mgr.TimeWarpPenalty(vTWS.TotalTimeWarp())
		deltaCost -= mgr.TimeWarpPenalty(vRoute.TimeWarp())

		loadU := uRoute.LoadBetween(posU, posU+e.N-1)
		loadV := vRoute.LoadBetween(posV, posV+e.M-1)
		loadDiff := loadU - loadV

		deltaCost += loadPenaltyDelta(mgr, data.VehicleCapacity, uRoute.Load()-loadDiff)
		deltaCost -= loadPenaltyDelta(mgr, data.VehicleCapacity, uRoute.Load())

		deltaCost += loadPenaltyDelta(mgr, data.VehicleCapacity, vRoute.Load()+loadDiff)
		deltaCost -= loadPenaltyDelta(mgr, data.VehicleCapacity, vRoute.Load())

		return deltaCost
	}

	// Within the same route.
	if !uRoute.HasTimeWarp() && deltaCost >= 0 {
		return deltaCost
	}

	var merged tws.TWS
	if posU < posV {
		merged = tws.MergeAll(data.Dist,
			u.Prev().TWBefore,
			uRoute.TWBetween(posV, posV+e.M-1),
			uRoute.TWBetween(posU+e.N, posV-1),
			uRoute.TWBetween(posU, posU+e.N-1),
			endV.Next().TWAfter,
		)
	} else {
		merged = tws.MergeAll(data.Dist,
			v.Prev().TWBefore,
			uRoute.TWBetween(posU, posU+e.N-1),
			uRoute.TWBetween(posV+e.M, posU-1),
			uRoute.TWBetween(posV, posV+e.M-1),
			endU.Next().TWAfter,
		)
	}

	deltaCost += mgr.TimeWarpPenalty(merged.TotalTimeWarp())
	deltaCost -= mgr.TimeWarpPenalty(uRoute.TimeWarp())

	return deltaCost
}
