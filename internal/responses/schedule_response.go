package responses

import "os-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	CompletionTime int `json:"completion_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
	ResponseTime   int `json:"response_time"`
}

// AverageResponse is omitted for an empty workload.
type AverageResponse struct {
	WaitingTime    float64 `json:"average_waiting_time"`
	ResponseTime   float64 `json:"average_response_time"`
	TurnAroundTime float64 `json:"average_turn_around_time"`
}

type ScheduleResponse struct {
	RunId          string            `json:"run_id"`
	Algorithm      string            `json:"algorithm"`
	TotalTime      int               `json:"total_time"`
	IdleTime       int               `json:"idle_time"`
	CpuUtilization float64           `json:"cpu_utilization"`
	CpuThroughput  float64           `json:"cpu_throughput"`
	Averages       *AverageResponse  `json:"averages,omitempty"`
	Details        []ProcessResponse `json:"details"`
	Timeline       []core.Slice      `json:"timeline"`
}
