package schedulers

import (
	"github.com/nafemage/OSProject2/internal/core"
	"github.com/nafemage/OSProject2/internal/responses"
	"github.com/nafemage/OSProject2/internal/util"
)

type scheduleRecorder struct {
	processCount  int
	responseTimes map[*core.ProcessControlBlock]int
	details       []responses.ProcessResponse

	// round robin counts waiting time once, at the first dispatch
	waitingAtFirstDispatch bool
}

func newScheduleRecorder(processCount int) *scheduleRecorder {
	return &scheduleRecorder{
		processCount:  processCount,
		responseTimes: make(map[*core.ProcessControlBlock]int, processCount),
		details:       make([]responses.ProcessResponse, 0, processCount),
	}
}

// dispatch is called every time a process is picked to run.
func (r *scheduleRecorder) dispatch(proccess *core.ProcessControlBlock, clock int) {
	if !proccess.Started {
		r.responseTimes[proccess] = clock - proccess.Arrival
	}
	proccess.Started = true
}

func (r *scheduleRecorder) complete(proccess *core.ProcessControlBlock, clock int) {
	responseTime := r.responseTimes[proccess]
	delete(r.responseTimes, proccess)

	turnAroundTime := clock - proccess.Arrival
	waitingTime := turnAroundTime - proccess.TotalBurstTime
	if r.waitingAtFirstDispatch {
		waitingTime = responseTime
	}

	r.details = append(r.details, responses.ProcessResponse{
		ProcessId:      proccess.ProcessId,
		ArrivalTime:    proccess.Arrival,
		BurstTime:      proccess.TotalBurstTime,
		Priority:       proccess.Priority,
		CompletionTime: clock,
		ResponseTime:   float64(responseTime),
		TurnAroundTime: float64(turnAroundTime),
		WaitingTime:    float64(waitingTime),
	})
}

func generateResponse(recorder *scheduleRecorder, metric core.CpuMetric) responses.ScheduleResult {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(recorder.details)

	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(recorder.processCount) / float64(metric.TotalTime)
	}

	return responses.ScheduleResult{
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		TotalRunTime:          metric.TotalTime,
		IdleTime:              metric.IdleTime,
		AverageResponseTime:   averageResponseTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Details:               recorder.details,
	}
}
