package requests

import (
	"errors"
	"fmt"

	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/queue"
)

var ErrInvalidJob = errors.New("invalid job")

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}
type ScheduleRequests struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum"`
}

// ReadyQueue builds a fresh ready queue from the jobs. Jobs without a process
// id are numbered by their position.
func (r *ScheduleRequests) ReadyQueue() (*queue.ReadyQueue, error) {
	readyQueue := queue.New(len(r.Jobs))
	for i, job := range r.Jobs {
		if job.ArrivalTime < 0 || job.BurstTime < 0 || job.Priority < 0 {
			return nil, fmt.Errorf("%w: job #%d has a negative field", ErrInvalidJob, i+1)
		}
		processId := job.ProcessId
		if processId == 0 {
			processId = i + 1
		}
		if err := readyQueue.PushBack(core.NewProcessControlBlock(processId, job.ArrivalTime, job.Priority, job.BurstTime)); err != nil {
			return nil, err
		}
	}
	return readyQueue, nil
}
