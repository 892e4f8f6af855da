package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatisticKnownValues(t *testing.T) {
	s := Statistic{}
	for _, v := range []float64{1, 2, 3, 4, 5} {
		s.Push(v)
	}
	assert.Equal(t, 5, s.Iterations())
	assert.True(t, FuzzyEqual(s.Mean(), 3.0))
	assert.True(t, FuzzyEqual(s.Variance(), 2.5))
	assert.True(t, FuzzyEqual(s.Stdev(), math.Sqrt(2.5)))
	assert.True(t, FuzzyEqual(s.StandardError(), math.Sqrt(2.5/5)))
	assert.Equal(t, 5.0, s.Last())
	assert.Equal(t, 1.0, s.Min())
	assert.Equal(t, 5.0, s.Max())
}

func TestStatisticEmpty(t *testing.T) {
	s := Statistic{}
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 0.0, s.StandardError())
}

func TestStatisticSingle(t *testing.T) {
	s := Statistic{}
	s.Push(42)
	assert.Equal(t, 42.0, s.Mean())
	assert.Equal(t, 0.0, s.Variance())
	assert.Equal(t, 42.0, s.Min())
	assert.Equal(t, 42.0, s.Max())
}

func TestZVal(t *testing.T) {
	assert.InDelta(t, 1.96, ZVal(95), 0.01)
	assert.InDelta(t, 2.58, ZVal(99), 0.01)
}
