package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_AddProcessAndReset(t *testing.T) {
	table := NewTable()
	table.AddProcess(1, 0, 5, 2)
	table.AddJob(2, 3, 4)

	require.Equal(t, 2, table.Len())
	assert.Equal(t, 0, table.At(1).Priority)
	assert.Equal(t, Unset, table.At(0).CompletionTime)

	table.At(0).RemainingTime = 0
	table.At(0).CompletionTime = 5
	table.At(0).StartTime = 0
	table.Reset()

	p := table.At(0)
	assert.Equal(t, 5, p.RemainingTime)
	assert.Equal(t, Unset, p.CompletionTime)
	assert.Equal(t, Unset, p.StartTime)
}

func TestTable_CloneIsIndependent(t *testing.T) {
	table := NewTable()
	table.AddProcess(1, 0, 5, 0)

	clone := table.Clone()
	clone.At(0).CompletionTime = 9
	clone.AddProcess(2, 1, 1, 0)

	assert.Equal(t, Unset, table.At(0).CompletionTime)
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		arrival int
		burst   int
		wantErr error
	}{
		{"valid", 0, 1, nil},
		{"negative arrival", -1, 1, ErrInvalidArrival},
		{"zero burst", 0, 0, ErrInvalidBurst},
		{"negative burst", 2, -4, ErrInvalidBurst},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable()
			table.AddProcess(1, 0, 1, 0)
			table.AddProcess(1, tt.arrival, tt.burst, 0)
			err := table.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTable_NextArrival(t *testing.T) {
	table := NewTable()
	table.AddJob(1, 0, 1)
	table.AddJob(2, 7, 1)
	table.AddJob(3, 4, 1)

	next, ok := table.NextArrival(0, func(int) bool { return true })
	require.True(t, ok)
	assert.Equal(t, 4, next)

	next, ok = table.NextArrival(0, func(i int) bool { return i != 2 })
	require.True(t, ok)
	assert.Equal(t, 7, next)

	_, ok = table.NextArrival(7, func(int) bool { return true })
	assert.False(t, ok)
}

func TestCPU_ExecuteAndIdle(t *testing.T) {
	table := NewTable()
	table.AddJob(1, 2, 3)
	table.AddJob(2, 2, 1)
	cpu := NewCPU()

	cpu.IdleUntil(2)
	cpu.IdleUntil(1)
	assert.False(t, cpu.Execute(table, 0, 2))
	assert.True(t, cpu.Execute(table, 0, 1))
	assert.True(t, cpu.Execute(table, 1, 1))

	assert.Equal(t, []Slice{
		{Pid: 1, Index: 0, Start: 2, Stop: 5},
		{Pid: 2, Index: 1, Start: 5, Stop: 6},
	}, cpu.Timeline)
	assert.Equal(t, CpuMetric{TotalTime: 6, UtilizationTime: 4, IdleTime: 2}, cpu.Metric)
	assert.Equal(t, 2, table.At(0).StartTime)
	assert.Equal(t, 5, table.At(0).CompletionTime)
	assert.Equal(t, 0, table.At(0).RemainingTime)
}
