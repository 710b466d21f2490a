package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	stdout, _, err := execute(t, "run", "testdata/concrete.yaml", "testdata/less.yaml")
	require.NoError(t, err)
	require.Equal(t, "concrete: [1 99 3] size=3 cap=4\nless: [1 99 2] size=3 cap=3\n", stdout)
}

func TestRunMetrics(t *testing.T) {
	stdout, _, err := execute(t, "run", "--metrics", "testdata/concrete.yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, `vecctl_vector_size{vector="concrete"} 3`)
	assert.Contains(t, stdout, `vecctl_vector_capacity{vector="concrete"} 4`)
	assert.Contains(t, stdout, `vecctl_vector_reallocations_total{vector="concrete"} 3`)
	assert.Contains(t, stdout, `vecctl_vector_utilization_ratio{vector="concrete"} 0.75`)
}

func TestRunDebugLogging(t *testing.T) {
	_, stderr, err := execute(t, "run", "--log.level", "debug", "testdata/less.yaml")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=info")
	assert.Contains(t, stderr, `msg="scenario finished"`)
	assert.Contains(t, stderr, "scenario=less")
}

func TestRunDuplicateNames(t *testing.T) {
	_, _, err := execute(t, "run", "testdata/less.yaml", "testdata/less.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRunFailingScenario(t *testing.T) {
	file := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("steps: [{op: pop_back}]\n"), 0o644))

	stdout, stderr, err := execute(t, "run", file)
	require.Error(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "level=error")
	assert.Contains(t, err.Error(), "pop_back on empty vector")
}

func TestRunInvalidLogLevel(t *testing.T) {
	_, _, err := execute(t, "run", "--log.level", "loud", "testdata/less.yaml")
	require.Error(t, err)
}

func TestRunRequiresFiles(t *testing.T) {
	_, _, err := execute(t, "run")
	require.Error(t, err)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"testdata/less.yaml", "testdata/concrete.yaml", "less [1 99 2] < concrete [1 99 3]\n"},
		{"testdata/concrete.yaml", "testdata/less.yaml", "concrete [1 99 3] > less [1 99 2]\n"},
		{"testdata/concrete.yaml", "testdata/concrete.yaml", "concrete [1 99 3] == concrete [1 99 3]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			stdout, _, err := execute(t, "compare", tt.a, tt.b)
			require.NoError(t, err)
			require.Equal(t, tt.want, stdout)
		})
	}
}
