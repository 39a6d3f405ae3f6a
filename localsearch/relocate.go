package localsearch

import (
	"github.com/solverkit/cvrptw/penalty"
	"github.com/solverkit/cvrptw/route"
	"github.com/solverkit/cvrptw/tws"
)

// evalRelocateMove computes the exact penalized-cost delta of relocating
// U's N-node segment to directly after V, when M == 0 (nothing in V's
// route moves). U's segment is removed from its route and U itself takes
// V's old successor's place.
func (e Exchange) evalRelocateMove(u, v *route.Node, mgr *penalty.Manager) int64 {
	uRoute := u.Route()
	data := uRoute.Data()

	endU := u
	if e.N > 1 {
		endU = uRoute.At(u.Position + e.N - 1)
	}
	posU := u.Position

	current := uRoute.DistBetween(posU-1, posU+e.N) + data.Dist(v.Client, v.Next().Client)

	proposed := data.Dist(v.Client, u.Client) +
		uRoute.DistBetween(posU, posU+e.N-1) +
		data.Dist(endU.Client, v.Next().Client) +
		data.Dist(u.Prev().Client, endU.Next().Client)

	deltaCost := proposed - current

	vRoute := v.Route()

	if uRoute != vRoute {
		if uRoute.IsFeasible() && deltaCost >= 0 {
			return deltaCost
		}

		uTWS := tws.Merge(u.Prev().TWBefore, endU.Next().TWAfter, data.Dist)

		deltaCost += mgr.TimeWarpPenalty(uTWS.TotalTimeWarp())
		deltaCost -= mgr.TimeWarpPenalty(uRoute.TimeWarp())

		segLoad := uRoute.LoadBetween(posU, posU+e.N-1)

		deltaCost += loadPenaltyDelta(mgr, data.VehicleCapacity, uRoute.Load()-segLoad)
		deltaCost -= loadPenaltyDelta(mgr, data.VehicleCapacity, uRoute.Load())

		if deltaCost >= 0 {
			// Even without accounting for V's route, this move cannot
			// improve the solution.
			return deltaCost
		}

		deltaCost += loadPenaltyDelta(mgr, data.VehicleCapacity, vRoute.Load()+segLoad)
		deltaCost -= loadPenaltyDelta(mgr, data.VehicleCapacity, vRoute.Load())

		vTWS := tws.MergeAll(data.Dist,
			v.TWBefore,
			uRoute.TWBetween(posU, posU+e.N-1),
			v.Next().TWAfter,
		)

		deltaCost += mgr.TimeWarpPenalty(vTWS.TotalTimeWarp())
		deltaCost -= mgr.TimeWarpPenalty(vRoute.TimeWarp())

		return deltaCost
	}

	// Within the same route.
	if !uRoute.HasTimeWarp() && deltaCost >= 0 {
		return deltaCost
	}

	posV := v.Position

	var merged tws.TWS
	if posU < posV {
		merged = tws.MergeAll(data.Dist,
			u.Prev().TWBefore,
			uRoute.TWBetween(posU+e.N, posV),
			uRoute.TWBetween(posU, posU+e.N-1),
			v.Next().TWAfter,
		)
	} else {
		merged = tws.MergeAll(data.Dist,
			v.TWBefore,
			uRoute.TWBetween(posU, posU+e.N-1),
			uRoute.TWBetween(posV+1, posU-1),
			endU.Next().TWAfter,
		)
	}

	deltaCost += mgr.TimeWarpPenalty(merged.TotalTimeWarp())
	deltaCost -= mgr.TimeWarpPenalty(uRoute.TimeWarp())

	return deltaCost
}
