package core

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// VirtualCpu runs a process for executionTime units. executionTime must not
// exceed the remaining burst time of the block.
func VirtualCpu(processControlBlock *ProcessControlBlock, executionTime int) {
	processControlBlock.RemainingBurstTime -= executionTime
}

// Cpu is a single simulated processor. The clock only moves through Execute
// and IdleUntil, it has nothing to do with wall-clock time.
type Cpu struct {
	clock  int
	metric CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{}
}

func (c *Cpu) Clock() int {
	return c.clock
}

// Execute gives the process executionTime units of cpu and advances the clock.
func (c *Cpu) Execute(processControlBlock *ProcessControlBlock, executionTime int) {
	processControlBlock.Started = true
	VirtualCpu(processControlBlock, executionTime)
	if processControlBlock.RemainingBurstTime == 0 {
		processControlBlock.Completed = true
	}

	c.clock += executionTime
	c.metric.UtilizationTime += executionTime
	c.metric.TotalTime = c.clock
}

// IdleUntil fast-forwards the clock to time when the cpu is behind it.
func (c *Cpu) IdleUntil(time int) {
	if c.clock >= time {
		return
	}
	c.metric.IdleTime += time - c.clock
	c.clock = time
	c.metric.TotalTime = c.clock
}

func (c *Cpu) Metric() CpuMetric {
	return c.metric
}
