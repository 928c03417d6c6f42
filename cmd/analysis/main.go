package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/nafemage/OSProject2/config"
	"github.com/nafemage/OSProject2/internal/loader"
	"github.com/nafemage/OSProject2/internal/report"
	"github.com/nafemage/OSProject2/internal/responses"
	"github.com/nafemage/OSProject2/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	if err := run(os.Args...); err != nil {
		if errors.Is(err, ErrInvalidArgs) || errors.Is(err, schedulers.ErrUnknownAlgorithm) {
			printUsage(os.Args[0])
		}
		log.Fatal(err)
	}
}

func run(args ...string) error {
	if len(args) < 3 || len(args) > 4 {
		return fmt.Errorf("%w: expected <pcb file> <schedule algorithm> [quantum]", ErrInvalidArgs)
	}

	algorithm, err := schedulers.ParseAlgorithm(args[2])
	if err != nil {
		return err
	}

	format := "table"
	timeQuantum := 0
	if cfg, err := config.LoadSchedulerConfig("./"); err == nil {
		format = cfg.ReportFormat
		timeQuantum = cfg.RoundRobinTimeQuantum
	}
	if len(args) == 4 {
		timeQuantum, err = strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("%w: quantum %q is not a number", ErrInvalidArgs, args[3])
		}
	}

	readyQueue, err := loader.LoadProcessControlBlocks(args[1])
	if err != nil {
		return err
	}

	var result responses.ScheduleResult
	if err := schedulers.Run(algorithm, readyQueue, &result, timeQuantum); err != nil {
		return fmt.Errorf("%s: %w", algorithm.LongName(), err)
	}
	return report.Write(os.Stdout, format, algorithm.LongName(), result)
}

func printUsage(program string) {
	fmt.Printf("%s <pcb file> <schedule algorithm> [quantum]\n", program)
	fmt.Println("The valid algorithms are:")
	fmt.Println("First come first serve: 'FCFS' OR 'first_come_first_serve'.")
	fmt.Println("Shortest job first: 'SJF' OR 'shortest_job_first'.")
	fmt.Println("Round robin: 'RR' OR 'round_robin'.")
	fmt.Println("Shortest remaining time first: 'SRTF' OR 'shortest_remaining_time_first'.")
}
