package schedulers

import (
	"sort"

	"os-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// The sort is stable so equal arrivals keep their table order.
func ScheduleFirstComeFirstServe(table *core.Table, _ Params) *core.CPU {
	table.Reset()
	cpu := core.NewCPU()

	order := make([]int, table.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return table.At(order[i]).ArrivalTime < table.At(order[j]).ArrivalTime
	})

	for _, index := range order {
		proccess := table.At(index)
		cpu.IdleUntil(proccess.ArrivalTime)
		cpu.Execute(table, index, proccess.RemainingTime)
	}
	return cpu
}
