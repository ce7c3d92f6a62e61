package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededStreamDeterministic(t *testing.T) {
	a := New().SeededStream("sampling", 42)
	b := New().SeededStream("sampling", 42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestSeededStreamNameSeparatesStreams(t *testing.T) {
	a := New().SeededStream("sampling", 42)
	b := New().SeededStream("permutation", 42)

	assert.NotEqual(t, a.Float64(), b.Float64())
}

func TestRunStreamMixesRunID(t *testing.T) {
	adapter := New()

	a := adapter.RunStream("run-a", 7)
	b := adapter.RunStream("run-b", 7)
	assert.NotEqual(t, a.Float64(), b.Float64())

	c := adapter.RunStream("run-a", 7)
	d := adapter.RunStream("run-a", 7)
	assert.Equal(t, c.Float64(), d.Float64())
}
