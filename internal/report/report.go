package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/nafemage/OSProject2/internal/responses"
)

// PrintScheduleResult writes the three summary lines of a schedule result.
func PrintScheduleResult(w io.Writer, result responses.ScheduleResult) error {
	_, err := fmt.Fprintf(w, "Average Waiting Time: %f\nAverage Turnaround Time: %f\nTotal Run time: %d\n",
		result.AverageWaitingTime, result.AverageTurnAroundTime, result.TotalRunTime)
	return err
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// RenderScheduleTable writes a titled table of the per-process details with
// the averages and throughput in the footer.
func RenderScheduleTable(w io.Writer, title string, result responses.ScheduleResult) {
	outputTitle(w, title)

	rows := make([][]string, 0, len(result.Details))
	for _, detail := range result.Details {
		rows = append(rows, []string{
			fmt.Sprint(detail.ProcessId),
			fmt.Sprint(detail.Priority),
			fmt.Sprint(detail.BurstTime),
			fmt.Sprint(detail.ArrivalTime),
			fmt.Sprint(detail.WaitingTime),
			fmt.Sprint(detail.TurnAroundTime),
			fmt.Sprint(detail.CompletionTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.CpuThroughput)})
	table.Render()
}

// Write renders result in format, "text" or "table".
func Write(w io.Writer, format, title string, result responses.ScheduleResult) error {
	switch format {
	case "text":
		return PrintScheduleResult(w, result)
	case "table":
		RenderScheduleTable(w, title, result)
		return PrintScheduleResult(w, result)
	}
	return fmt.Errorf("unknown report format %q", format)
}
