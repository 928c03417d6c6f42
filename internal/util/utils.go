package util

import "github.com/nafemage/OSProject2/internal/responses"

// CalculateAverage averages the per-process metrics. An empty slice yields zeros.
func CalculateAverage(details []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(details) == 0 {
		return
	}

	var waitingTimeSum, responseTimeSum, turnAroundTimeSum float64
	for _, detail := range details {
		waitingTimeSum += detail.WaitingTime
		responseTimeSum += detail.ResponseTime
		turnAroundTimeSum += detail.TurnAroundTime
	}

	count := float64(len(details))
	return waitingTimeSum / count, responseTimeSum / count, turnAroundTimeSum / count
}
