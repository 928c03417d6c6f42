package core

import "fmt"

// ProcessControlBlock is the scheduling state of one simulated process.
// Arrival, Priority and TotalBurstTime never change once the block is created.
type ProcessControlBlock struct {
	ProcessId          int
	Arrival            int
	Priority           int
	RemainingBurstTime int
	TotalBurstTime     int
	Started            bool
	Completed          bool
}

func NewProcessControlBlock(processId, arrival, priority, burstTime int) *ProcessControlBlock {
	return &ProcessControlBlock{
		ProcessId:          processId,
		Arrival:            arrival,
		Priority:           priority,
		RemainingBurstTime: burstTime,
		TotalBurstTime:     burstTime,
	}
}

// ElapsedBurstTime is the cpu time the process has received so far.
func (p *ProcessControlBlock) ElapsedBurstTime() int {
	return p.TotalBurstTime - p.RemainingBurstTime
}

func (p *ProcessControlBlock) String() string {
	return fmt.Sprintf("pid:%d arrival:%d priority:%d burst:%d/%d", p.ProcessId, p.Arrival, p.Priority, p.RemainingBurstTime, p.TotalBurstTime)
}
