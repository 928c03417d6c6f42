package schedulers

import (
	"log"

	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/queue"
	"github.com/nafemage/OSProject2/internal/responses"
)

// ScheduleShortestRemainingTimeFirst advances the clock one unit at a time and
// always runs the arrived process with the least remaining burst, so a new
// arrival with a shorter burst preempts the running process on the next tick.
func ScheduleShortestRemainingTimeFirst(readyQueue *queue.ReadyQueue, result *responses.ScheduleResult) error {
	if err := validate(readyQueue, result); err != nil {
		return err
	}
	log.Println("running srtf algorithm ...")

	readyQueue.Sort(queue.ByArrivalThenBurst)

	cpu := core.NewCpu()
	recorder := newScheduleRecorder(readyQueue.Size())

	current := queue.New(readyQueue.Size())
	defer current.Clear()

	if err := enqueueProcesses(readyQueue, current, cpu, queue.ByBurstThenArrival); err != nil {
		return err
	}

	for !current.Empty() {
		// the front only ever shrinks, so the current queue stays sorted
		proccess := current.Front()
		recorder.dispatch(proccess, cpu.Clock())
		cpu.Execute(proccess, min(proccess.RemainingBurstTime, 1))

		if proccess.Completed {
			if _, err := current.PopFront(); err != nil {
				return err
			}
			recorder.complete(proccess, cpu.Clock())
		}

		if err := enqueueProcesses(readyQueue, current, cpu, queue.ByBurstThenArrival); err != nil {
			return err
		}
	}

	*result = generateResponse(recorder, cpu.Metric())
	log.Printf("response is: %+v", *result)
	return nil
}
