package queue

import "github.com/nafemage/OSProject2/internal/core"

// Ordering selects the comparator used by Sort and InsertSorted.
type Ordering int

const (
	// InsertionOrder compares every pair as equal, so InsertSorted appends.
	InsertionOrder Ordering = iota
	ByArrival
	ByRemainingBurst
	// ByArrivalThenBurst breaks arrival ties with the shorter remaining burst.
	ByArrivalThenBurst
	// ByBurstThenArrival breaks remaining burst ties with the earlier arrival.
	ByBurstThenArrival
)

func (o Ordering) Less(a, b *core.ProcessControlBlock) bool {
	switch o {
	case ByArrival:
		return a.Arrival < b.Arrival
	case ByRemainingBurst:
		return a.RemainingBurstTime < b.RemainingBurstTime
	case ByArrivalThenBurst:
		if a.Arrival != b.Arrival {
			return a.Arrival < b.Arrival
		}
		return a.RemainingBurstTime < b.RemainingBurstTime
	case ByBurstThenArrival:
		if a.RemainingBurstTime != b.RemainingBurstTime {
			return a.RemainingBurstTime < b.RemainingBurstTime
		}
		return a.Arrival < b.Arrival
	}
	return false
}

func (o Ordering) String() string {
	switch o {
	case InsertionOrder:
		return "insertion"
	case ByArrival:
		return "arrival"
	case ByRemainingBurst:
		return "burst"
	case ByArrivalThenBurst:
		return "arrival-burst"
	case ByBurstThenArrival:
		return "burst-arrival"
	}
	return "unknown"
}
