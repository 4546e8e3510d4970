package util

import "os-scheduler/internal/responses"

// CalculateAverage returns ok=false for an empty slice instead of dividing by zero.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64, ok bool) {
	if len(proccessDetails) == 0 {
		return 0, 0, 0, false
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTimeAroundTime = turnAroundTimeSum / proccessCount
	return averageWaitingTime, averageResponseTime, averageTimeAroundTime, true
}
