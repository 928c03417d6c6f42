package schedulers

import (
	"fmt"
	"strings"

	"github.com/nafemage/OSProject2/internal/queue"
	"github.com/nafemage/OSProject2/internal/responses"
)

type Algorithm int

const (
	FirstComeFirstServe Algorithm = iota
	ShortestJobFirst
	RoundRobin
	ShortestRemainingTimeFirst
	Priority
)

var algorithmNames = map[Algorithm][2]string{
	FirstComeFirstServe:        {"FCFS", "first_come_first_serve"},
	ShortestJobFirst:           {"SJF", "shortest_job_first"},
	RoundRobin:                 {"RR", "round_robin"},
	ShortestRemainingTimeFirst: {"SRTF", "shortest_remaining_time_first"},
	Priority:                   {"P", "priority"},
}

// Algorithms lists the algorithms that produce a schedule.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, ShortestRemainingTimeFirst}
}

func (a Algorithm) String() string {
	if names, ok := algorithmNames[a]; ok {
		return names[0]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// LongName is the snake_case name of the algorithm.
func (a Algorithm) LongName() string {
	if names, ok := algorithmNames[a]; ok {
		return names[1]
	}
	return a.String()
}

// ParseAlgorithm accepts the short or long name of an algorithm, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, algorithm := range []Algorithm{FirstComeFirstServe, ShortestJobFirst, RoundRobin, ShortestRemainingTimeFirst, Priority} {
		names := algorithmNames[algorithm]
		if strings.EqualFold(name, names[0]) || strings.EqualFold(name, names[1]) {
			return algorithm, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Run dispatches to the scheduler of algorithm. timeQuantum is only read by
// round robin.
func Run(algorithm Algorithm, readyQueue *queue.ReadyQueue, result *responses.ScheduleResult, timeQuantum int) error {
	switch algorithm {
	case FirstComeFirstServe:
		return ScheduleFirstComeFirstServe(readyQueue, result)
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(readyQueue, result)
	case RoundRobin:
		return ScheduleRoundRobin(readyQueue, result, timeQuantum)
	case ShortestRemainingTimeFirst:
		return ScheduleShortestRemainingTimeFirst(readyQueue, result)
	case Priority:
		return SchedulePriority(readyQueue, result)
	}
	return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algorithm)
}
