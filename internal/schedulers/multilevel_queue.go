package schedulers

import "os-scheduler/internal/core"

// HighPriorityLimit is the largest priority value placed in the high queue.
const HighPriorityLimit = 2

// ScheduleMultilevelQueue keeps two round robin queues. A process is placed in
// one of them when it arrives and never moves. The low queue is served only
// when the high queue is empty at a dispatch decision; a running low slice is
// never cut short.
func ScheduleMultilevelQueue(table *core.Table, params Params) *core.CPU {
	table.Reset()
	cpu := core.NewCPU()
	highQueue := newProcessQueue()
	lowQueue := newProcessQueue()
	queued := make([]bool, table.Len())

	sendProccessToQueue := func(index int) {
		if table.At(index).Priority <= HighPriorityLimit {
			highQueue.AddToEnd(index)
		} else {
			lowQueue.AddToEnd(index)
		}
	}

	for completed := 0; completed < table.Len(); {
		admitArrivals(table, cpu.Clock, queued, sendProccessToQueue)

		queue, quantum := highQueue, params.QuantumHigh
		if highQueue.Len() == 0 {
			queue, quantum = lowQueue, params.QuantumLow
		}

		index, ok := queue.RemoveFromTop()
		if !ok {
			next, arriving := table.NextArrival(cpu.Clock, notQueued(queued))
			if !arriving {
				break
			}
			cpu.IdleUntil(next)
			continue
		}

		ticks := min(quantum, table.At(index).RemainingTime)
		done := cpu.Execute(table, index, ticks)

		admitArrivals(table, cpu.Clock, queued, sendProccessToQueue)
		if done {
			completed++
		} else {
			queue.AddToEnd(index)
		}
	}
	return cpu
}
