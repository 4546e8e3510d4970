package schedulers

import (
	"log/slog"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

func generateResponse(algorithm Algorithm, table *core.Table, cpu *core.CPU, logger *slog.Logger) responses.ScheduleResponse {
	proccessDetails := make([]responses.ProcessResponse, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		details := generateProcessDetails(table.At(i))
		logger.Debug("process completed",
			"pid", details.ProcessId,
			"completion_time", details.CompletionTime,
			"waiting_time", details.WaitingTime,
		)
		proccessDetails = append(proccessDetails, details)
	}

	var response = responses.ScheduleResponse{
		Algorithm: string(algorithm),
		TotalTime: cpu.Metric.TotalTime,
		IdleTime:  cpu.Metric.IdleTime,
		Details:   proccessDetails,
		Timeline:  cpu.Timeline,
	}
	if cpu.Metric.TotalTime > 0 {
		response.CpuUtilization = float64(cpu.Metric.UtilizationTime) / float64(cpu.Metric.TotalTime)
		response.CpuThroughput = float64(table.Len()) / float64(cpu.Metric.TotalTime)
	}

	if averageWaitingTime, averageResponseTime, averageTimeAroundTime, ok := util.CalculateAverage(proccessDetails); ok {
		response.Averages = &responses.AverageResponse{
			WaitingTime:    averageWaitingTime,
			ResponseTime:   averageResponseTime,
			TurnAroundTime: averageTimeAroundTime,
		}
	}
	return response
}

func generateProcessDetails(proccess *core.Process) responses.ProcessResponse {
	turnAroundTime := proccess.CompletionTime - proccess.ArrivalTime
	return responses.ProcessResponse{
		ProcessId:      proccess.Pid,
		ArrivalTime:    proccess.ArrivalTime,
		BurstTime:      proccess.BurstTime,
		Priority:       proccess.Priority,
		CompletionTime: proccess.CompletionTime,
		TurnAroundTime: turnAroundTime,
		WaitingTime:    turnAroundTime - proccess.BurstTime,
		ResponseTime:   proccess.StartTime - proccess.ArrivalTime,
	}
}
