package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

// Render writes a titled Gantt chart and schedule table for one run.
func Render(w io.Writer, title string, response responses.ScheduleResponse) {
	outputTitle(w, title)
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []core.Slice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintf(w, "(empty)\n\n")
		return
	}

	var bar, ticks strings.Builder
	bar.WriteString("|")
	clock := 0
	for _, slice := range gantt {
		if clock < slice.Start {
			writeCell(&bar, &ticks, "idle", clock)
		}
		writeCell(&bar, &ticks, fmt.Sprint(slice.Pid), slice.Start)
		clock = slice.Stop
	}
	ticks.WriteString(fmt.Sprint(gantt[len(gantt)-1].Stop))

	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, ticks.String())
	_, _ = fmt.Fprintln(w)
}

const cellWidth = 8

func writeCell(bar, ticks *strings.Builder, label string, start int) {
	padding := max(cellWidth-len(label), 0)
	bar.WriteString(strings.Repeat(" ", padding/2))
	bar.WriteString(label)
	bar.WriteString(strings.Repeat(" ", padding-padding/2))
	bar.WriteString("|")

	tick := fmt.Sprint(start)
	ticks.WriteString(tick)
	ticks.WriteString(strings.Repeat(" ", max(cellWidth+1-len(tick), 1)))
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Exit", "Turnaround", "Wait", "Response"})
	for _, d := range response.Details {
		table.Append([]string{
			fmt.Sprint(d.ProcessId),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		})
	}
	if averages := response.Averages; averages != nil {
		table.SetFooter([]string{"", "", "", "", "",
			fmt.Sprintf("Average\n%.2f", averages.TurnAroundTime),
			fmt.Sprintf("Average\n%.2f", averages.WaitingTime),
			fmt.Sprintf("Average\n%.2f", averages.ResponseTime),
		})
	}
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.2f%%, idle %d of %d ticks, throughput %.2f/t\n\n",
		response.CpuUtilization*100, response.IdleTime, response.TotalTime, response.CpuThroughput)
}
