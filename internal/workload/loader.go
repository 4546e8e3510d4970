package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// LoadFile picks the decoder from the file extension: .csv, .yaml/.yml or .json.
func LoadFile(path string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f)
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	}
	return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
}

// LoadCSV reads "pid,arrival,burst[,priority]" rows. A first row whose pid
// column is not a number is taken as a header. Errors name the file line.
func LoadCSV(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	request := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0)}
	for first := true; ; first = false {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if first && len(row) > 0 {
			if _, err := strconv.Atoi(row[0]); err != nil {
				continue
			}
		}

		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("line %d: want 3 or 4 columns, got %d", line, len(row))
		}
		values := make([]int, 4)
		for j, field := range row {
			values[j], err = strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, j+1, err)
			}
		}
		request.Jobs = append(request.Jobs, requests.Job{
			ProcessId:   values[0],
			ArrivalTime: values[1],
			BurstTime:   values[2],
			Priority:    values[3],
		})
	}
	return request, nil
}

func LoadYAML(r io.Reader) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml workload: %w", err)
	}
	return &request, nil
}

func LoadJSON(r io.Reader) (*requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := json.NewDecoder(r).Decode(&request); err != nil {
		return nil, fmt.Errorf("decode json workload: %w", err)
	}
	return &request, nil
}
