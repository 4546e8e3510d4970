package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-scheduler/config"
	"os-scheduler/internal/logging"
	"os-scheduler/internal/responses"
)

func TestHandler_Schedule(t *testing.T) {
	cfg := &config.SchedulerConfig{RoundRobinTimeQuantum: 2, MultilevelQueueHigh: 2, MultilevelQueueLow: 4}
	app := NewApp(cfg, logging.NewLoggerWithWriter(slog.LevelError, "text", io.Discard))

	const jobs = `"jobs":[{"process_id":1,"arrival_time":0,"burst_time":5},{"process_id":2,"arrival_time":2,"burst_time":3},{"process_id":3,"arrival_time":4,"burst_time":1}]`

	tests := []struct {
		name            string
		path            string
		body            string
		wantedStatus    int
		wantCompletions []int
		wantErr         string
	}{
		{
			name:            "fcfs",
			path:            "/api/v1/fcfs",
			body:            `{` + jobs + `}`,
			wantedStatus:    http.StatusOK,
			wantCompletions: []int{5, 8, 9},
		},
		{
			name:            "sjf",
			path:            "/api/v1/sjf",
			body:            `{` + jobs + `}`,
			wantedStatus:    http.StatusOK,
			wantCompletions: []int{5, 9, 6},
		},
		{
			name:            "round robin uses configured quantum",
			path:            "/api/v1/rr",
			body:            `{` + jobs + `}`,
			wantedStatus:    http.StatusOK,
			wantCompletions: []int{9, 8, 7},
		},
		{
			name:            "round robin with request quantum",
			path:            "/api/v1/rr",
			body:            `{"quantum":5,` + jobs + `}`,
			wantedStatus:    http.StatusOK,
			wantCompletions: []int{5, 8, 9},
		},
		{
			name:            "empty workload",
			path:            "/api/v1/mlq",
			body:            `{"jobs":[]}`,
			wantedStatus:    http.StatusOK,
			wantCompletions: []int{},
		},
		{
			name:         "invalid burst",
			path:         "/api/v1/priority",
			body:         `{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":0}]}`,
			wantedStatus: http.StatusBadRequest,
			wantErr:      "burst time must be > 0",
		},
		{
			name:         "negative quantum",
			path:         "/api/v1/rr",
			body:         `{"quantum":-1,` + jobs + `}`,
			wantedStatus: http.StatusBadRequest,
			wantErr:      "time quantum must be > 0",
		},
		{
			name:         "malformed body",
			path:         "/api/v1/priority-preemptive",
			body:         `{"jobs":`,
			wantedStatus: http.StatusBadRequest,
			wantErr:      "invalid request format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantedStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			if tt.wantErr != "" {
				var errBody map[string]string
				require.NoError(t, json.Unmarshal(body, &errBody))
				assert.Contains(t, errBody["error"], tt.wantErr)
				return
			}

			var response responses.ScheduleResponse
			require.NoError(t, json.Unmarshal(body, &response))
			got := make([]int, 0, len(response.Details))
			for _, d := range response.Details {
				got = append(got, d.CompletionTime)
			}
			assert.Equal(t, tt.wantCompletions, got)
			if len(tt.wantCompletions) == 0 {
				assert.Nil(t, response.Averages)
			}
		})
	}
}

func TestHandler_AllAlgorithms(t *testing.T) {
	cfg := &config.SchedulerConfig{RoundRobinTimeQuantum: 2, MultilevelQueueHigh: 2, MultilevelQueueLow: 4}
	app := NewApp(cfg, logging.NewLoggerWithWriter(slog.LevelError, "text", io.Discard))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/all",
		strings.NewReader(`{"jobs":[{"process_id":1,"arrival_time":0,"burst_time":5,"priority":3},{"process_id":2,"arrival_time":1,"burst_time":2,"priority":1}]}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var reports []responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reports))
	require.Len(t, reports, 6)
	assert.Equal(t, "fcfs", reports[0].Algorithm)
	assert.Equal(t, "mlq", reports[5].Algorithm)
	// preemptive priority lets pid 2 in at t=1
	assert.Equal(t, 3, reports[3].Details[1].CompletionTime)
	assert.Equal(t, 7, reports[3].Details[0].CompletionTime)
}
