package schedulers

import "os-scheduler/internal/core"

// processQueue is a FIFO of table indices.
type processQueue struct {
	queue []int
}

func newProcessQueue() *processQueue {
	return &processQueue{queue: make([]int, 0)}
}

func (p *processQueue) AddToEnd(index int) {
	p.queue = append(p.queue, index)
}

func (p *processQueue) RemoveFromTop() (int, bool) {
	if len(p.queue) > 0 {
		item := p.queue[0]
		p.queue = p.queue[1:]
		return item, true
	}
	return 0, false
}

func (p *processQueue) Len() int {
	return len(p.queue)
}

// admitArrivals hands every process that has arrived by now and was never
// queued to enqueue, in table order, and flags it as queued.
func admitArrivals(table *core.Table, now int, queued []bool, enqueue func(index int)) {
	for i := 0; i < table.Len(); i++ {
		if queued[i] || table.At(i).ArrivalTime > now {
			continue
		}
		queued[i] = true
		enqueue(i)
	}
}

func notQueued(queued []bool) func(int) bool {
	return func(i int) bool { return !queued[i] }
}
