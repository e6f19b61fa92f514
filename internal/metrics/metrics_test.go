package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSolve_CountsByMode(t *testing.T) {
	r := New()

	require.NoError(t, r.ObserveSolve(Solve{EmergencyMode: false, Selected: 2, Candidates: 3, Utilization: 0.5}))
	require.NoError(t, r.ObserveSolve(Solve{EmergencyMode: true, Selected: 1, Candidates: 4, Truncated: true, NodesPruned: 7}))
	require.NoError(t, r.ObserveSolve(Solve{EmergencyMode: true, Selected: 4, Candidates: 4, Utilization: 0.9, NodesPruned: 3}))

	assert.Equal(t, 1.0, testutil.ToFloat64(r.solves.WithLabelValues("normal")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.solves.WithLabelValues("emergency")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.truncated))
	assert.Equal(t, 10.0, testutil.ToFloat64(r.nodesPruned))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.selected), "gauges keep the latest run")
	assert.Equal(t, 0.9, testutil.ToFloat64(r.utilization))
}

func TestObserveSolve_Histograms(t *testing.T) {
	r := New()

	require.NoError(t, r.ObserveSolve(Solve{NodesExpanded: 12, Duration: 3 * time.Millisecond}))

	n, err := testutil.GatherAndCount(r.Gatherer(),
		"budgetwise_solver_nodes_expanded", "budgetwise_solve_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTextfile_WritesAfterEverySolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "budgetwise.prom")
	r := NewTextfile(path)

	require.NoError(t, r.ObserveSolve(Solve{Selected: 3}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `budgetwise_solves_total{mode="normal"} 1`)
	assert.Contains(t, string(data), "budgetwise_last_selected_items 3")
}

func TestTextfile_UnwritablePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	r := NewTextfile(filepath.Join(blocker, "budgetwise.prom"))

	assert.ErrorContains(t, r.ObserveSolve(Solve{}), "creating metrics directory")
	assert.Equal(t, 1.0, testutil.ToFloat64(r.solves.WithLabelValues("normal")), "observation is kept")
}
