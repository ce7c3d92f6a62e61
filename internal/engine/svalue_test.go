package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSValue(t *testing.T) {
	assert.Equal(t, 1.0, SValue(0.5))
	assert.Equal(t, 2.0, SValue(0.25))
	assert.InDelta(t, -math.Log2(0.05), SValue(0.05), 1e-12)
}

func TestSValueEdges(t *testing.T) {
	assert.True(t, math.IsInf(SValue(0), 1))
	assert.True(t, math.IsInf(SValue(-0.1), 1))
	assert.Equal(t, 0.0, SValue(1))
	assert.Equal(t, 0.0, SValue(1.5))
}
