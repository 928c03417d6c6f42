package schedulers

import (
	"github.com/nafemage/OSProject2/internal/queue"
	"github.com/nafemage/OSProject2/internal/responses"
)

// SchedulePriority has no scheduling policy behind it and always fails.
func SchedulePriority(readyQueue *queue.ReadyQueue, result *responses.ScheduleResult) error {
	if err := validate(readyQueue, result); err != nil {
		return err
	}
	return ErrNotImplemented
}
