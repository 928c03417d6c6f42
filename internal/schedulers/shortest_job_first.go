package schedulers

import (
	"log"

	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/queue"
	"github.com/nafemage/OSProject2/internal/responses"
)

// ScheduleShortestJobFirst is non-preemptive: whenever the cpu frees up it
// runs the arrived process with the shortest burst to completion.
func ScheduleShortestJobFirst(readyQueue *queue.ReadyQueue, result *responses.ScheduleResult) error {
	if err := validate(readyQueue, result); err != nil {
		return err
	}
	log.Println("running sjf algorithm ...")

	cpu := core.NewCpu()
	recorder := newScheduleRecorder(readyQueue.Size())

	for !readyQueue.Empty() {
		index := selectShortestJob(readyQueue, cpu.Clock())
		if index < 0 {
			// nothing has arrived yet
			cpu.IdleUntil(earliestArrival(readyQueue))
			continue
		}

		proccess, err := readyQueue.Remove(index)
		if err != nil {
			return err
		}
		recorder.dispatch(proccess, cpu.Clock())
		cpu.Execute(proccess, proccess.RemainingBurstTime)
		recorder.complete(proccess, cpu.Clock())
	}

	*result = generateResponse(recorder, cpu.Metric())
	log.Printf("response is: %+v", *result)
	return nil
}

// selectShortestJob returns the index of the arrived process with the smallest
// remaining burst, earliest arrival and then queue position breaking ties, or
// -1 when no process has arrived by clock.
func selectShortestJob(readyQueue *queue.ReadyQueue, clock int) int {
	selected := -1
	for i := 0; i < readyQueue.Size(); i++ {
		candidate := readyQueue.At(i)
		if candidate.Arrival > clock {
			continue
		}
		if selected < 0 || queue.ByBurstThenArrival.Less(candidate, readyQueue.At(selected)) {
			selected = i
		}
	}
	return selected
}

func earliestArrival(readyQueue *queue.ReadyQueue) int {
	earliest := readyQueue.Front().Arrival
	for _, proccess := range readyQueue.Blocks() {
		if proccess.Arrival < earliest {
			earliest = proccess.Arrival
		}
	}
	return earliest
}
