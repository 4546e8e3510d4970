package core

import (
	"errors"
	"fmt"
)

// Unset marks a completion or start time that has not been reached in the current run.
const Unset = -1

var (
	ErrInvalidArrival = errors.New("arrival time must be >= 0")
	ErrInvalidBurst   = errors.New("burst time must be > 0")
)

// Process is one simulated workload unit. Lower Priority values win.
type Process struct {
	Pid         int
	ArrivalTime int
	BurstTime   int
	Priority    int

	RemainingTime  int
	CompletionTime int
	StartTime      int
}

func (p *Process) Done() bool {
	return p.RemainingTime == 0
}

// Table keeps processes in insertion order. The index of a process in the
// table is the tie-break key used by every algorithm.
type Table struct {
	processes []Process
}

func NewTable() *Table {
	return &Table{processes: make([]Process, 0)}
}

// AddProcess appends a process. Nothing is validated here, see Validate.
func (t *Table) AddProcess(pid, arrival, burst, priority int) {
	t.processes = append(t.processes, Process{
		Pid:            pid,
		ArrivalTime:    arrival,
		BurstTime:      burst,
		Priority:       priority,
		RemainingTime:  burst,
		CompletionTime: Unset,
		StartTime:      Unset,
	})
}

// AddJob appends a process with the default priority 0.
func (t *Table) AddJob(pid, arrival, burst int) {
	t.AddProcess(pid, arrival, burst, 0)
}

// Reset restores the transient fields of every process before a run.
func (t *Table) Reset() {
	for i := range t.processes {
		t.processes[i].RemainingTime = t.processes[i].BurstTime
		t.processes[i].CompletionTime = Unset
		t.processes[i].StartTime = Unset
	}
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	processes := make([]Process, len(t.processes))
	copy(processes, t.processes)
	return &Table{processes: processes}
}

func (t *Table) Len() int {
	return len(t.processes)
}

// At returns the process stored at index i; the pointer stays valid until the next AddProcess.
func (t *Table) At(i int) *Process {
	return &t.processes[i]
}

// Processes returns a copy of the records in insertion order.
func (t *Table) Processes() []Process {
	processes := make([]Process, len(t.processes))
	copy(processes, t.processes)
	return processes
}

// Validate rejects negative arrivals and non-positive bursts. Duplicate pids are allowed.
func (t *Table) Validate() error {
	for i, p := range t.processes {
		if p.ArrivalTime < 0 {
			return fmt.Errorf("process %d (pid %d): %w", i, p.Pid, ErrInvalidArrival)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("process %d (pid %d): %w", i, p.Pid, ErrInvalidBurst)
		}
	}
	return nil
}

// NextArrival returns the earliest arrival strictly after now among unfinished
// processes accepted by eligible, or false when there is none.
func (t *Table) NextArrival(now int, eligible func(i int) bool) (int, bool) {
	next, found := 0, false
	for i, p := range t.processes {
		if p.ArrivalTime <= now || !eligible(i) {
			continue
		}
		if !found || p.ArrivalTime < next {
			next, found = p.ArrivalTime, true
		}
	}
	return next, found
}
