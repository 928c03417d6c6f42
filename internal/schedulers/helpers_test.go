package schedulers

import (
	"math"
	"testing"

	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/queue"
	"github.com/nafemage/OSProject2/internal/responses"
)

const tolerance = 0.01

func createReadyQueue(t *testing.T, arrivals, priorities, burstTimes []int) (*queue.ReadyQueue, []*core.ProcessControlBlock) {
	t.Helper()
	blocks := make([]*core.ProcessControlBlock, len(arrivals))
	for i := range arrivals {
		blocks[i] = core.NewProcessControlBlock(i+1, arrivals[i], priorities[i], burstTimes[i])
	}
	readyQueue, err := queue.FromBlocks(blocks...)
	if err != nil {
		t.Fatalf("Failed to create ready queue: %v", err)
	}
	return readyQueue, blocks
}

func zeroPriorities(count int) []int {
	return make([]int, count)
}

func expectNear(t *testing.T, name string, expected, actual float64) {
	t.Helper()
	if math.Abs(expected-actual) > tolerance {
		t.Errorf("Expected %s %.2f, got %.4f", name, expected, actual)
	}
}

func expectResult(t *testing.T, result responses.ScheduleResult, waiting, turnAround float64, totalRunTime int) {
	t.Helper()
	expectNear(t, "average waiting time", waiting, result.AverageWaitingTime)
	expectNear(t, "average turnaround time", turnAround, result.AverageTurnAroundTime)
	if result.TotalRunTime != totalRunTime {
		t.Errorf("Expected total run time %d, got %d", totalRunTime, result.TotalRunTime)
	}
}

func completionOrder(result responses.ScheduleResult) []int {
	order := make([]int, 0, len(result.Details))
	for _, detail := range result.Details {
		order = append(order, detail.ProcessId)
	}
	return order
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
