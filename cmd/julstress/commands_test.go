package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunCommandJSON(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "stress.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("rounds: 1\nproducers: 2\npushes_per_producer: 100\n"), 0o600))

	out, _, err := execute(t, "run", "--config", cfgPath,
		"--workers", "2", "--iterations", "1000", "--capacity", "10", "--seed", "5", "--json")
	require.NoError(t, err)

	var report struct {
		RunID   string `json:"run_id"`
		Results []struct {
			Workload string `json:"workload"`
			Wraps    int    `json:"wraps"`
		} `json:"results"`
		Metrics map[string]float64 `json:"metrics"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.NotEmpty(t, report.RunID)
	require.Len(t, report.Results, 2)
	assert.Equal(t, "ring", report.Results[1].Workload)
	assert.Equal(t, 20, report.Results[1].Wraps)
	assert.Equal(t, 2000.0, report.Metrics["jul_lock_acquisitions_total{workload=lock}"])
}

func TestRunCommandText(t *testing.T) {
	out, _, err := execute(t, "run", "--rounds", "1", "--iterations", "500", "--producers", "1", "--capacity", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "lock  round 0: acquisitions=1000")
	assert.Contains(t, out, "jul_ring_pushes_total")
}

func TestRunCommandRejectsBadInput(t *testing.T) {
	_, _, err := execute(t, "run", "--capacity", "0")
	assert.Error(t, err)

	_, _, err = execute(t, "run", "--log-level", "loud")
	assert.ErrorContains(t, err, "log-level")

	_, _, err = execute(t, "run", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestProbesCommand(t *testing.T) {
	out, _, err := execute(t, "probes")
	require.NoError(t, err)

	var state map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Contains(t, state, "platform.cpus")
	assert.Contains(t, state, "cpu.features")
}
