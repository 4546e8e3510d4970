package schedulers

import "os-scheduler/internal/core"

// ScheduleShortestJobFirst is non-preemptive; the key is (burst time, table index).
func ScheduleShortestJobFirst(table *core.Table, _ Params) *core.CPU {
	return scheduleNonPreemptive(table, func(p *core.Process) int { return p.BurstTime })
}

// scheduleNonPreemptive repeatedly runs the arrived, unfinished process with
// the smallest key until it completes. With nothing eligible the clock jumps
// to the next arrival.
func scheduleNonPreemptive(table *core.Table, key func(p *core.Process) int) *core.CPU {
	table.Reset()
	cpu := core.NewCPU()

	for completed := 0; completed < table.Len(); {
		index := selectProcess(table, cpu.Clock, key)
		if index < 0 {
			next, ok := table.NextArrival(cpu.Clock, func(i int) bool { return !table.At(i).Done() })
			if !ok {
				break
			}
			cpu.IdleUntil(next)
			continue
		}
		cpu.Execute(table, index, table.At(index).RemainingTime)
		completed++
	}
	return cpu
}

// selectProcess returns the index of the arrived, unfinished process with the
// smallest key, or -1. Ties go to the lowest index.
func selectProcess(table *core.Table, now int, key func(p *core.Process) int) int {
	selected, best := -1, 0
	for i := 0; i < table.Len(); i++ {
		proccess := table.At(i)
		if proccess.ArrivalTime > now || proccess.Done() {
			continue
		}
		if k := key(proccess); selected < 0 || k < best {
			selected, best = i, k
		}
	}
	return selected
}
