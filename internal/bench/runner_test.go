package bench

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceChecksum replays a scenario on plain slices.
func referenceChecksum(s Scenario) int64 {
	var sum int64
	for it := 0; it < s.Iterations; it++ {
		src := make([]int64, s.Elements)
		for i := range src {
			src[i] = int64(i)
		}
		for c := 0; c < s.Clones; c++ {
			v := append([]int64(nil), src...)
			for m := 0; m < s.Mutations; m++ {
				mid := len(v) / 2
				switch m % 5 {
				case 0:
					v[mid]++
				case 1:
					v = append(v[:mid], append([]int64{int64(m)}, v[mid:]...)...)
				case 2:
					v = append(v, v[0])
				case 3:
					if len(v) > 1 {
						v = append(v[:mid], v[mid+1:]...)
					}
				case 4:
					if len(v) > 1 {
						v = v[:len(v)-1]
					}
				}
			}
			for _, x := range v {
				sum += x
			}
		}
	}
	return sum
}

func TestRunScenarioMatchesReference(t *testing.T) {
	for _, inline := range InlineSizes {
		s := Scenario{Name: "ref", Inline: inline, Elements: 7, Clones: 3, Mutations: 11, Iterations: 2}
		res, err := RunScenario(context.Background(), s)
		require.NoError(t, err)
		assert.Equal(t, referenceChecksum(s), res.Checksum, "inline %d", inline)
		assert.Equal(t, 2*(7+3+3*11), res.Ops)
	}
}

func TestRunScenarioSingleElement(t *testing.T) {
	s := Scenario{Name: "one", Inline: 1, Elements: 1, Clones: 2, Mutations: 20, Iterations: 3}
	res, err := RunScenario(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, referenceChecksum(s), res.Checksum)
}

func TestRunScenarioCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunScenario(ctx, Scenario{Name: "c", Inline: 4, Elements: 1, Iterations: 1})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerRun(t *testing.T) {
	w := Default()
	for i := range w.Scenarios {
		w.Scenarios[i].Iterations = 3
	}

	r := &Runner{Parallel: 4}
	results, err := r.Run(context.Background(), w)
	require.NoError(t, err)
	require.Len(t, results, len(w.Scenarios))
	for i, res := range results {
		assert.Equal(t, w.Scenarios[i].Name, res.Scenario)
		assert.Equal(t, w.Scenarios[i].Inline, res.Inline)
		assert.Equal(t, referenceChecksum(w.Scenarios[i]), res.Checksum)
	}
}

func TestRunnerRejectsInvalid(t *testing.T) {
	r := &Runner{}
	_, err := r.Run(context.Background(), &Workload{})
	require.ErrorIs(t, err, ErrInvalidWorkload)
}
