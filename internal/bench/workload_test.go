package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kolkov/socow/vec"
)

func TestParse(t *testing.T) {
	w, err := Parse([]byte(`
requires: v0.1.0
scenarios:
  - name: small
    inline: 4
    elements: 5
    clones: 2
    mutations: 3
    iterations: 10
`))
	require.NoError(t, err)
	require.Len(t, w.Scenarios, 1)
	assert.Equal(t, Scenario{
		Name: "small", Inline: 4, Elements: 5, Clones: 2, Mutations: 3, Iterations: 10,
	}, w.Scenarios[0])
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown field", "scenarios:\n  - name: a\n    inline: 4\n    elements: 1\n    iterations: 1\n    bogus: 1\n"},
		{"no scenarios", "requires: v0.1.0\n"},
		{"bad inline", "scenarios:\n  - name: a\n    inline: 3\n    elements: 1\n    iterations: 1\n"},
		{"no name", "scenarios:\n  - inline: 4\n    elements: 1\n    iterations: 1\n"},
		{"no elements", "scenarios:\n  - name: a\n    inline: 4\n    iterations: 1\n"},
		{"negative clones", "scenarios:\n  - name: a\n    inline: 4\n    elements: 1\n    clones: -1\n    iterations: 1\n"},
		{"no iterations", "scenarios:\n  - name: a\n    inline: 4\n    elements: 1\n"},
		{"duplicate", "scenarios:\n  - {name: a, inline: 4, elements: 1, iterations: 1}\n  - {name: a, inline: 8, elements: 1, iterations: 1}\n"},
		{"not yaml", "scenarios: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.ErrorIs(t, err, ErrInvalidWorkload)
		})
	}
}

func TestParseVersionRequirement(t *testing.T) {
	_, err := Parse([]byte("requires: v99.0.0\nscenarios:\n  - {name: a, inline: 4, elements: 1, iterations: 1}\n"))
	require.ErrorIs(t, err, vec.ErrVersion)
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"scenarios:\n  - {name: a, inline: 2, elements: 3, clones: 1, mutations: 1, iterations: 1}\n"), 0o600))

	w, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a", w.Scenarios[0].Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
