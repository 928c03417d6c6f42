package schedulers

import (
	"log"

	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/queue"
	"github.com/nafemage/OSProject2/internal/responses"
)

// ScheduleRoundRobin hands out the cpu in slices of at most timeQuantum units,
// cycling over the arrived processes in arrival order. A process that arrives
// mid-cycle takes its place in the rotation behind every earlier arrival.
func ScheduleRoundRobin(readyQueue *queue.ReadyQueue, result *responses.ScheduleResult, timeQuantum int) error {
	if err := validate(readyQueue, result); err != nil {
		return err
	}
	if timeQuantum <= 0 {
		return ErrInvalidQuantum
	}
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)

	readyQueue.Sort(queue.ByArrival)

	cpu := core.NewCpu()
	recorder := newScheduleRecorder(readyQueue.Size())
	recorder.waitingAtFirstDispatch = true

	arrived := queue.New(readyQueue.Size())
	defer arrived.Clear()

	if err := enqueueProcesses(readyQueue, arrived, cpu, queue.InsertionOrder); err != nil {
		return err
	}

	cursor := 0
	for !arrived.Empty() {
		proccess := arrived.At(cursor)
		recorder.dispatch(proccess, cpu.Clock())
		cpu.Execute(proccess, min(proccess.RemainingBurstTime, timeQuantum))

		if proccess.Completed {
			if _, err := arrived.Remove(cursor); err != nil {
				return err
			}
			recorder.complete(proccess, cpu.Clock())
		} else {
			cursor++
		}

		if err := enqueueProcesses(readyQueue, arrived, cpu, queue.InsertionOrder); err != nil {
			return err
		}
		if cursor >= arrived.Size() {
			cursor = 0
		}
	}

	*result = generateResponse(recorder, cpu.Metric())
	log.Printf("response is: %+v", *result)
	return nil
}
