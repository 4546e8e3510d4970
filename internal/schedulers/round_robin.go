package schedulers

import "os-scheduler/internal/core"

// ScheduleRoundRobin runs each dispatched process for at most params.Quantum
// ticks. Processes that arrive during a slice are queued before the process
// that was just preempted.
func ScheduleRoundRobin(table *core.Table, params Params) *core.CPU {
	table.Reset()
	cpu := core.NewCPU()
	roundRobinQueue := newProcessQueue()
	queued := make([]bool, table.Len())

	for completed := 0; completed < table.Len(); {
		admitArrivals(table, cpu.Clock, queued, roundRobinQueue.AddToEnd)

		index, ok := roundRobinQueue.RemoveFromTop()
		if !ok {
			next, arriving := table.NextArrival(cpu.Clock, notQueued(queued))
			if !arriving {
				break
			}
			cpu.IdleUntil(next)
			continue
		}

		ticks := min(params.Quantum, table.At(index).RemainingTime)
		done := cpu.Execute(table, index, ticks)

		// context switch: arrivals first, then the preempted process
		admitArrivals(table, cpu.Clock, queued, roundRobinQueue.AddToEnd)
		if done {
			completed++
		} else {
			roundRobinQueue.AddToEnd(index)
		}
	}
	return cpu
}
