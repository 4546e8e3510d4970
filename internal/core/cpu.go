package core

// Slice is one contiguous stretch of CPU time given to a process.
type Slice struct {
	Pid   int `json:"pid"`
	Index int `json:"-"`
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is the simulated single core: a clock plus the Gantt timeline of what ran on it.
type CPU struct {
	Clock    int
	Timeline []Slice
	Metric   CpuMetric
}

func NewCPU() *CPU {
	return &CPU{Timeline: make([]Slice, 0)}
}

// IdleUntil moves the clock forward to t without running anything.
func (c *CPU) IdleUntil(t int) {
	if t <= c.Clock {
		return
	}
	c.Metric.IdleTime += t - c.Clock
	c.Clock = t
	c.Metric.TotalTime = c.Clock
}

// Execute runs the process at index for ticks and reports whether it finished.
// Consecutive slices of the same process are merged in the timeline.
func (c *CPU) Execute(table *Table, index, ticks int) bool {
	proccess := table.At(index)
	if proccess.StartTime == Unset {
		proccess.StartTime = c.Clock
	}

	start := c.Clock
	c.Clock += ticks
	proccess.RemainingTime -= ticks
	c.Metric.UtilizationTime += ticks
	c.Metric.TotalTime = c.Clock

	if n := len(c.Timeline); n > 0 && c.Timeline[n-1].Index == index && c.Timeline[n-1].Stop == start {
		c.Timeline[n-1].Stop = c.Clock
	} else {
		c.Timeline = append(c.Timeline, Slice{Pid: proccess.Pid, Index: index, Start: start, Stop: c.Clock})
	}

	if proccess.RemainingTime <= 0 {
		proccess.RemainingTime = 0
		proccess.CompletionTime = c.Clock
		return true
	}
	return false
}
