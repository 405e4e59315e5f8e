package fuzzcheck

import (
	"math/rand"

	"github.com/coreseekdev/delta/pkg/delta"
)

// alphabet is the character pool random inserts draw from.
const alphabet = "abcdefghij"

// RandomDelta builds a random Delta[string, delta.Unit] whose BaseLength
// equals baseLen exactly, by repeatedly choosing retain/delete/insert steps
// until the base is fully consumed.
func RandomDelta(rng *rand.Rand, baseLen int) *delta.Delta[string, delta.Unit] {
	d := delta.NewDelta[string, delta.Unit](delta.StringSeq{})
	remaining := baseLen
	for remaining > 0 || rng.Intn(4) == 0 {
		switch rng.Intn(3) {
		case 0:
			d.Insert(randomString(rng, 1+rng.Intn(3)), delta.None[delta.Unit]())
		case 1:
			if remaining == 0 {
				continue
			}
			n := 1 + rng.Intn(remaining)
			d.Retain(n, delta.None[delta.Unit]())
			remaining -= n
		case 2:
			if remaining == 0 {
				continue
			}
			n := 1 + rng.Intn(remaining)
			d.Delete(n)
			remaining -= n
		}
	}
	return d
}

func randomString(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

// RandomBase returns a random base document of the given length.
func RandomBase(rng *rand.Rand, n int) string {
	return randomString(rng, n)
}
