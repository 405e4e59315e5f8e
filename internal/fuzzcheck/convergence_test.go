package fuzzcheck

import (
	"math/rand"
	"os"
	"testing"

	"github.com/coreseekdev/delta/pkg/delta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvergenceRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const trials = 500
	for i := 0; i < trials; i++ {
		baseLen := rng.Intn(12)
		base := RandomBase(rng, baseLen)
		a := RandomDelta(rng, baseLen)
		b := RandomDelta(rng, baseLen)

		mismatch, err := CheckConvergence(base, a, b)
		require.NoError(t, err)
		if mismatch != nil {
			t.Fatalf("trial %d: %s", i, mismatch.Error())
		}
	}
}

func TestConvergenceScenarios(t *testing.T) {
	data, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	scenarios, err := LoadScenarios(data)
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			a := s.BuildA()
			b := s.BuildB()
			require.Equal(t, a.BaseLength(), b.BaseLength(), "scenario fixture must derive both deltas from the same base length")

			bPrime, err := delta.Transform(a, b, true)
			require.NoError(t, err)
			aPrime, err := delta.Transform(b, a, false)
			require.NoError(t, err)

			left, err := delta.Compose(a, bPrime)
			require.NoError(t, err)
			right, err := delta.Compose(b, aPrime)
			require.NoError(t, err)

			leftDoc, err := ApplyString[delta.LastWriteWins[bool]](s.Base, left)
			require.NoError(t, err)
			rightDoc, err := ApplyString[delta.LastWriteWins[bool]](s.Base, right)
			require.NoError(t, err)

			assert.Equal(t, leftDoc, rightDoc)
		})
	}
}
