package schedulers

import (
	"testing"

	"github.com/nafemage/OSProject2/internal/responses"
)

func TestShortestRemainingTimeFirst(t *testing.T) {
	tests := []struct {
		name         string
		arrivals     []int
		burstTimes   []int
		waiting      float64
		turnAround   float64
		totalRunTime int
	}{
		{"single process", []int{25}, []int{100}, 0, 100, 125},
		{"reference file", []int{0, 1, 2, 3}, []int{15, 10, 5, 20}, 11.75, 24.25, 50},
		{"late shorter arrival", []int{30, 25, 24}, []int{100, 106, 5}, 34.67, 105, 235},
		{"close bursts", []int{0, 2, 4, 1, 1, 1}, []int{100, 96, 93, 99, 98, 98}, 239.67, 337, 584},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count := len(tt.arrivals)
			readyQueue, _ := createReadyQueue(t, tt.arrivals, zeroPriorities(count), tt.burstTimes)
			var result responses.ScheduleResult

			if err := ScheduleShortestRemainingTimeFirst(readyQueue, &result); err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			expectResult(t, result, tt.waiting, tt.turnAround, tt.totalRunTime)
			if !readyQueue.Empty() {
				t.Errorf("Expected empty ready queue, got size %d", readyQueue.Size())
			}
		})
	}
}

func TestShortestRemainingTimeFirst_Preemption(t *testing.T) {
	readyQueue, _ := createReadyQueue(t, []int{0, 1, 2, 3}, zeroPriorities(4), []int{15, 10, 5, 20})
	var result responses.ScheduleResult

	if err := ScheduleShortestRemainingTimeFirst(readyQueue, &result); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if order := completionOrder(result); !equalInts(order, []int{3, 2, 1, 4}) {
		t.Errorf("Expected completion order [3 2 1 4], got %v", order)
	}
	expected := map[int]int{3: 7, 2: 16, 1: 30, 4: 50}
	for _, detail := range result.Details {
		if detail.CompletionTime != expected[detail.ProcessId] {
			t.Errorf("Expected pid %d to complete at %d, got %d", detail.ProcessId, expected[detail.ProcessId], detail.CompletionTime)
		}
	}
	// pid 4 waits from 3 until 30 before its first tick
	expectNear(t, "average response time", 27.0/4, result.AverageResponseTime)
}

func TestShortestRemainingTimeFirst_EqualRemainingDoesNotPreempt(t *testing.T) {
	// at t=2 the running process has 4 left, the same as the newcomer
	readyQueue, _ := createReadyQueue(t, []int{0, 2}, zeroPriorities(2), []int{6, 4})
	var result responses.ScheduleResult

	if err := ScheduleShortestRemainingTimeFirst(readyQueue, &result); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if order := completionOrder(result); !equalInts(order, []int{1, 2}) {
		t.Errorf("Expected completion order [1 2], got %v", order)
	}
}

func TestShortestRemainingTimeFirst_ZeroBursts(t *testing.T) {
	readyQueue, _ := createReadyQueue(t, []int{0, 0}, zeroPriorities(2), []int{0, 0})
	var result responses.ScheduleResult

	if err := ScheduleShortestRemainingTimeFirst(readyQueue, &result); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expectResult(t, result, 0, 0, 0)
	if result.CpuUtilization != 0 || result.CpuThroughput != 0 {
		t.Errorf("Expected zero utilization and throughput, got %+v", result)
	}
}
