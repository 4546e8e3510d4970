package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type Algorithm string

const (
	FCFS               Algorithm = "fcfs"
	SJF                Algorithm = "sjf"
	Priority           Algorithm = "priority"
	PriorityPreemptive Algorithm = "priority-preemptive"
	RoundRobin         Algorithm = "rr"
	MultilevelQueue    Algorithm = "mlq"
)

// Algorithms lists every algorithm in the order RunAll reports them.
var Algorithms = []Algorithm{FCFS, SJF, Priority, PriorityPreemptive, RoundRobin, MultilevelQueue}

var (
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	ErrInvalidQuantum   = errors.New("time quantum must be > 0")
)

var aliases = map[string]Algorithm{
	"first-come-first-serve":  FCFS,
	"shortest-job-first":      SJF,
	"priority-non-preemptive": Priority,
	"round-robin":             RoundRobin,
	"multilevel-queue":        MultilevelQueue,
}

func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, algorithm := range Algorithms {
		if string(algorithm) == name {
			return algorithm, nil
		}
	}
	if algorithm, ok := aliases[name]; ok {
		return algorithm, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

func (a Algorithm) Title() string {
	switch a {
	case FCFS:
		return "First-come, first-serve"
	case SJF:
		return "Shortest-job-first"
	case Priority:
		return "Priority"
	case PriorityPreemptive:
		return "Priority (preemptive)"
	case RoundRobin:
		return "Round-robin"
	case MultilevelQueue:
		return "Multilevel queue"
	}
	return string(a)
}

// Params carries the quanta; only rr and mlq read them.
type Params struct {
	Quantum     int
	QuantumHigh int
	QuantumLow  int
}

func (p Params) Validate(algorithm Algorithm) error {
	switch algorithm {
	case RoundRobin:
		if p.Quantum <= 0 {
			return fmt.Errorf("round robin quantum %d: %w", p.Quantum, ErrInvalidQuantum)
		}
	case MultilevelQueue:
		if p.QuantumHigh <= 0 {
			return fmt.Errorf("high queue quantum %d: %w", p.QuantumHigh, ErrInvalidQuantum)
		}
		if p.QuantumLow <= 0 {
			return fmt.Errorf("low queue quantum %d: %w", p.QuantumLow, ErrInvalidQuantum)
		}
	}
	return nil
}

type scheduleFunc func(table *core.Table, params Params) *core.CPU

var schedulers = map[Algorithm]scheduleFunc{
	FCFS:               ScheduleFirstComeFirstServe,
	SJF:                ScheduleShortestJobFirst,
	Priority:           SchedulePriority,
	PriorityPreemptive: SchedulePriorityPreemptive,
	RoundRobin:         ScheduleRoundRobin,
	MultilevelQueue:    ScheduleMultilevelQueue,
}

// Simulate runs the algorithm directly on table, leaving completion times in it.
func Simulate(table *core.Table, algorithm Algorithm, params Params) (*core.CPU, error) {
	schedule, ok := schedulers[algorithm]
	if !ok {
		return nil, fmt.Errorf("%q: %w", algorithm, ErrUnknownAlgorithm)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(algorithm); err != nil {
		return nil, err
	}
	return schedule(table, params), nil
}

// Run simulates on a copy of table, so the caller's workload can be reused
// for another algorithm, and returns the report.
func Run(table *core.Table, algorithm Algorithm, params Params, logger *slog.Logger) (responses.ScheduleResponse, error) {
	if logger == nil {
		logger = slog.Default()
	}
	runId := uuid.NewString()
	logger = logger.With("run_id", runId, "algorithm", string(algorithm))
	logger.Info("running algorithm",
		"processes", table.Len(),
		"quantum", params.Quantum,
		"quantum_high", params.QuantumHigh,
		"quantum_low", params.QuantumLow,
	)

	run := table.Clone()
	cpu, err := Simulate(run, algorithm, params)
	if err != nil {
		logger.Warn("simulation rejected", "error", err)
		return responses.ScheduleResponse{}, err
	}

	response := generateResponse(algorithm, run, cpu, logger)
	response.RunId = runId
	logger.Debug("simulation finished", "total_time", response.TotalTime, "idle_time", response.IdleTime)
	return response, nil
}

// RunAll runs every algorithm against the same baseline workload.
func RunAll(table *core.Table, params Params, logger *slog.Logger) ([]responses.ScheduleResponse, error) {
	reports := make([]responses.ScheduleResponse, 0, len(Algorithms))
	for _, algorithm := range Algorithms {
		response, err := Run(table, algorithm, params, logger)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", algorithm, err)
		}
		reports = append(reports, response)
	}
	return reports, nil
}
