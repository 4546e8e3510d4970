package schedulers

import "os-scheduler/internal/core"

func byPriority(p *core.Process) int {
	return p.Priority
}

// SchedulePriority is non-preemptive; the key is (priority, table index) and
// lower priority values run first.
func SchedulePriority(table *core.Table, _ Params) *core.CPU {
	return scheduleNonPreemptive(table, byPriority)
}

// SchedulePriorityPreemptive re-selects the running process whenever a process
// arrives or one completes, which are the only instants where the tick-by-tick
// choice can change. A process earlier in the table keeps winning ties against
// a later arrival of equal priority.
func SchedulePriorityPreemptive(table *core.Table, _ Params) *core.CPU {
	table.Reset()
	cpu := core.NewCPU()
	unfinished := func(i int) bool { return !table.At(i).Done() }

	for completed := 0; completed < table.Len(); {
		index := selectProcess(table, cpu.Clock, byPriority)
		next, arriving := table.NextArrival(cpu.Clock, unfinished)
		if index < 0 {
			if !arriving {
				break
			}
			cpu.IdleUntil(next)
			continue
		}

		ticks := table.At(index).RemainingTime
		if arriving && next-cpu.Clock < ticks {
			ticks = next - cpu.Clock
		}
		if cpu.Execute(table, index, ticks) {
			completed++
		}
	}
	return cpu
}
