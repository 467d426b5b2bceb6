package batch

import "alkaloid/internal/resolve"

// Stats accumulates run counters. Counters only grow, once per item.
type Stats struct {
	Total      int
	Skipped    int
	Full       int
	Degraded   int
	Unresolved int
	Failed     int

	// UniqueEntries counts deduplicated reference entries written across
	// all sections. Compounds counts the distinct compound labels those
	// entries matched, summed per item.
	UniqueEntries int
	Compounds     int
}

func (s *Stats) record(tier resolve.Tier) {
	s.Total++
	switch tier {
	case resolve.TierFull:
		s.Full++
	case resolve.TierDegraded:
		s.Degraded++
	default:
		s.Unresolved++
	}
}

func (s *Stats) recordFailure() {
	s.Total++
	s.Failed++
}
