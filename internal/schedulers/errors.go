package schedulers

import (
	"errors"
	"fmt"

	"github.com/nafemage/OSProject2/internal/queue"
	"github.com/nafemage/OSProject2/internal/responses"
)

var (
	ErrNilReadyQueue    = errors.New("ready queue is nil")
	ErrNilResult        = errors.New("schedule result is nil")
	ErrEmptyReadyQueue  = errors.New("ready queue is empty")
	ErrInvalidQuantum   = errors.New("time quantum must be positive")
	ErrInvalidBlock     = errors.New("invalid process control block")
	ErrNotImplemented   = errors.New("scheduling algorithm is not implemented")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

func validate(readyQueue *queue.ReadyQueue, result *responses.ScheduleResult) error {
	if readyQueue == nil {
		return ErrNilReadyQueue
	}
	if result == nil {
		return ErrNilResult
	}
	if readyQueue.Empty() {
		return ErrEmptyReadyQueue
	}
	for _, block := range readyQueue.Blocks() {
		if block.Arrival < 0 || block.RemainingBurstTime < 0 || block.RemainingBurstTime > block.TotalBurstTime {
			return fmt.Errorf("%w: %s", ErrInvalidBlock, block)
		}
	}
	return nil
}
