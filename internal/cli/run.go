package cli

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"os-scheduler/internal/report"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

type runOptions struct {
	file        string
	algorithm   string
	quantum     int
	quantumHigh int
	quantumLow  int
	asJSON      bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a workload file and print the schedule",
		Example: `  os-scheduler run --file workload.csv --algorithm rr --quantum 2
  os-scheduler run --file workload.yaml --algorithm all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.file == "" {
				return errors.New("--file is required")
			}
			request, err := workload.LoadFile(opts.file)
			if err != nil {
				return err
			}
			params := resolveParams(opts, request.Quantum, request.QuantumHigh, request.QuantumLow)

			var reports []responses.ScheduleResponse
			if strings.EqualFold(opts.algorithm, "all") {
				reports, err = schedulers.RunAll(request.Table(), params, logger)
			} else {
				var algorithm schedulers.Algorithm
				algorithm, err = schedulers.ParseAlgorithm(opts.algorithm)
				if err != nil {
					return err
				}
				var response responses.ScheduleResponse
				response, err = schedulers.Run(request.Table(), algorithm, params, logger)
				reports = []responses.ScheduleResponse{response}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(reports)
			}
			for _, response := range reports {
				report.Render(out, schedulers.Algorithm(response.Algorithm).Title(), response)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Workload file (.csv, .yaml, .json)")
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "all", "fcfs, sjf, priority, priority-preemptive, rr, mlq or all")
	cmd.Flags().IntVarP(&opts.quantum, "quantum", "q", 0, "Round robin quantum")
	cmd.Flags().IntVar(&opts.quantumHigh, "quantum-high", 0, "Multilevel queue high level quantum")
	cmd.Flags().IntVar(&opts.quantumLow, "quantum-low", 0, "Multilevel queue low level quantum")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print reports as JSON")
	return cmd
}

// resolveParams prefers flags, then the workload file, then the config.
func resolveParams(opts runOptions, fileQuantum, fileHigh, fileLow int) schedulers.Params {
	pick := func(values ...int) int {
		for _, v := range values {
			if v != 0 {
				return v
			}
		}
		return 0
	}
	return schedulers.Params{
		Quantum:     pick(opts.quantum, fileQuantum, cfg.RoundRobinTimeQuantum),
		QuantumHigh: pick(opts.quantumHigh, fileHigh, cfg.MultilevelQueueHigh),
		QuantumLow:  pick(opts.quantumLow, fileLow, cfg.MultilevelQueueLow),
	}
}

