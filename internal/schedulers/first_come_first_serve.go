package schedulers

import (
	"log"

	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/queue"
	"github.com/nafemage/OSProject2/internal/responses"
)

// ScheduleFirstComeFirstServe runs every process to completion in arrival order.
func ScheduleFirstComeFirstServe(readyQueue *queue.ReadyQueue, result *responses.ScheduleResult) error {
	if err := validate(readyQueue, result); err != nil {
		return err
	}
	log.Println("running fcfs algorithm ...")

	// sort jobs by arrival time
	readyQueue.Sort(queue.ByArrival)

	cpu := core.NewCpu()
	recorder := newScheduleRecorder(readyQueue.Size())

	for !readyQueue.Empty() {
		proccess, err := readyQueue.PopFront()
		if err != nil {
			return err
		}

		cpu.IdleUntil(proccess.Arrival)
		recorder.dispatch(proccess, cpu.Clock())
		cpu.Execute(proccess, proccess.RemainingBurstTime)
		recorder.complete(proccess, cpu.Clock())
	}

	*result = generateResponse(recorder, cpu.Metric())
	log.Printf("response is: %+v", *result)
	return nil
}
