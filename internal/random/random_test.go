package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillUniformBounds(t *testing.T) {
	rng := NewRNG(4711)

	v := make([]float64, 4096)
	rng.FillUniform(v, 0, 100)

	for _, x := range v {
		assert.GreaterOrEqual(t, x, 0.0)
		assert.LessOrEqual(t, x, 100.0)
	}
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFillUniformDegenerateRange(t *testing.T) {
	rng := NewRNG(1)
	v := make([]float64, 3)
	rng.FillUniform(v, 42, 42)
	assert.Equal(t, []float64{42, 42, 42}, v)
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	va, vb := make([]float64, 16), make([]float64, 16)
	for range 100 {
		a.FillUniform(va, 0, 100)
		b.FillUniform(vb, 0, 100)
		assert.Equal(t, va, vb)
	}
}
