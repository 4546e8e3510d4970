package requests

import "os-scheduler/internal/core"

type Job struct {
	ProcessId   int `json:"process_id" yaml:"process_id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	Quantum     int   `json:"quantum,omitempty" yaml:"quantum,omitempty"`
	QuantumHigh int   `json:"quantum_high,omitempty" yaml:"quantum_high,omitempty"`
	QuantumLow  int   `json:"quantum_low,omitempty" yaml:"quantum_low,omitempty"`
}

// Table builds a process table from the jobs, keeping their order.
func (r *ScheduleRequests) Table() *core.Table {
	table := core.NewTable()
	for _, job := range r.Jobs {
		table.AddProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority)
	}
	return table
}
