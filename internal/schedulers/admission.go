package schedulers

import (
	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/queue"
)

// enqueueProcesses moves every backlog block that has arrived by the cpu clock
// into arrived, placed according to ordering. An empty arrived queue means the
// cpu has nothing to run, so it idles until the earliest backlog arrival first.
// backlog must be sorted by arrival.
func enqueueProcesses(backlog, arrived *queue.ReadyQueue, cpu *core.Cpu, ordering queue.Ordering) error {
	front := backlog.Front()
	if front == nil {
		return nil
	}
	if arrived.Empty() {
		cpu.IdleUntil(front.Arrival)
	}

	for !backlog.Empty() && backlog.Front().Arrival <= cpu.Clock() {
		proccess, err := backlog.PopFront()
		if err != nil {
			return err
		}
		if err := arrived.InsertSorted(proccess, ordering); err != nil {
			return err
		}
	}
	return nil
}
