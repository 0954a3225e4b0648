package assetshandler

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	customerrors "maxsubarray/app/pkg/custom-types/custom-errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`
log_level: debug
workers: 3
datasets:
  - name: classic
    values: [-2, 1, -3, 4, -1, 2, 1, -5, 4]
  - name: wave
    type: float64
    generate:
      length: 100
      expr: "float(I % 10) - 4.5"
  - name: ledger
    values_file: ledger.txt
`))
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, config.SlogLevel())
	assert.Equal(t, 3, config.Workers)
	require.Len(t, config.Datasets, 3)

	assert.Equal(t, TypeInt64, config.Datasets[0].Type)
	assert.True(t, config.Datasets[0].HasValues())

	assert.Equal(t, TypeFloat64, config.Datasets[1].Type)
	assert.False(t, config.Datasets[1].HasValues())
	assert.Equal(t, 100, config.Datasets[1].Generate.Length)

	assert.Equal(t, "ledger.txt", config.Datasets[2].ValuesFile)
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := ParseConfig([]byte(`
datasets:
  - name: empty
    values: []
`))
	require.NoError(t, err)

	assert.Equal(t, 1, config.Workers)
	assert.Equal(t, slog.LevelInfo, config.SlogLevel())
	assert.True(t, config.Datasets[0].HasValues())
}

func TestParseConfigValidation(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"no datasets", `workers: 2`, "datasets"},
		{"bad level", "log_level: loud\ndatasets: [{name: a, values: [1]}]", "log_level"},
		{"negative workers", "workers: -1\ndatasets: [{name: a, values: [1]}]", "workers"},
		{"missing name", "datasets: [{values: [1]}]", "datasets[0].name"},
		{"duplicate name", "datasets: [{name: a, values: [1]}, {name: a, values: [2]}]", "datasets[1].name"},
		{"bad type", "datasets: [{name: a, type: int8, values: [1]}]", "datasets[0].type"},
		{"no source", "datasets: [{name: a}]", "datasets[0]"},
		{"two sources", "datasets: [{name: a, values: [1], values_file: x.txt}]", "datasets[0]"},
		{"zero length", "datasets: [{name: a, generate: {length: 0, expr: I}}]", "datasets[0].generate.length"},
		{"empty expr", "datasets: [{name: a, generate: {length: 3}}]", "datasets[0].generate.expr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.doc))
			require.Error(t, err)

			var cfgErr customerrors.ConfigError
			require.True(t, errors.As(err, &cfgErr), "got %v", err)
			assert.Equal(t, tt.field, cfgErr.Field())
		})
	}
}

func TestParseConfigMalformedYAML(t *testing.T) {
	_, err := ParseConfig([]byte("datasets: [unterminated"))
	assert.ErrorContains(t, err, "error unmarshalling config")
}

func TestReadValuesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("  1 \n# comment\n\n-2\n3.5\n"), 0o644))

	values, err := ReadValuesFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "-2", "3.5"}, values)
}
