package engine

import "time"

// Stats accumulates search counters. The counters add and the two depth
// fields take the maximum (see Add): the zero value is the identity,
// and Add is associative, so Stats values can be
// combined across moves, games, and concurrent harness tasks without
// special-casing an empty accumulator.
type Stats struct {
	NodesVisited       uint64
	LeavesVisited      uint64
	AlphaBetaCutoffs   uint64
	TranspositionHits  uint64
	TranspositionStore uint64
	TimeSpent          time.Duration
	DeepestCompleted   int // deepest depth fully searched before the deadline
	DeepestTouched     int // deepest depth entered at all, complete or not
	NextDepthProgress  float64 // fractional progress into the next, incomplete depth
	TotalPlies         uint64
}

// Add returns the element-wise sum of s and other. DeepestCompleted and
// DeepestTouched take the maximum rather than the sum, since they
// describe a single search's reach rather than a count to accumulate;
// combining stats across many games still wants "the deepest any game
// reached", and taking the max is still associative and has 0 as its
// identity.
func (s Stats) Add(other Stats) Stats {
	deepestCompleted := s.DeepestCompleted
	if other.DeepestCompleted > deepestCompleted {
		deepestCompleted = other.DeepestCompleted
	}
	deepestTouched := s.DeepestTouched
	if other.DeepestTouched > deepestTouched {
		deepestTouched = other.DeepestTouched
	}
	return Stats{
		NodesVisited:       s.NodesVisited + other.NodesVisited,
		LeavesVisited:      s.LeavesVisited + other.LeavesVisited,
		AlphaBetaCutoffs:   s.AlphaBetaCutoffs + other.AlphaBetaCutoffs,
		TranspositionHits:  s.TranspositionHits + other.TranspositionHits,
		TranspositionStore: s.TranspositionStore + other.TranspositionStore,
		TimeSpent:          s.TimeSpent + other.TimeSpent,
		DeepestCompleted:   deepestCompleted,
		DeepestTouched:     deepestTouched,
		NextDepthProgress:  s.NextDepthProgress + other.NextDepthProgress,
		TotalPlies:         s.TotalPlies + other.TotalPlies,
	}
}

// Average divides every additive counter by n, useful for reporting
// per-move or per-game averages over a batch of Stats. DeepestCompleted
// and DeepestTouched are maxima, not sums, so they are returned
// unchanged. n <= 0 returns the zero Stats.
func (s Stats) Average(n int) Stats {
	if n <= 0 {
		return Stats{}
	}
	return Stats{
		NodesVisited:       s.NodesVisited / uint64(n),
		LeavesVisited:      s.LeavesVisited / uint64(n),
		AlphaBetaCutoffs:   s.AlphaBetaCutoffs / uint64(n),
		TranspositionHits:  s.TranspositionHits / uint64(n),
		TranspositionStore: s.TranspositionStore / uint64(n),
		TimeSpent:          s.TimeSpent / time.Duration(n),
		DeepestCompleted:   s.DeepestCompleted,
		DeepestTouched:     s.DeepestTouched,
		NextDepthProgress:  s.NextDepthProgress / float64(n),
		TotalPlies:         s.TotalPlies / uint64(n),
	}
}
