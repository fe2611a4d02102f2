package prng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministic(t *testing.T) {
	a, b := New(1234), New(1234)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(), b.Float())
	}
}

func TestFloatBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 10000; i++ {
		v := r.Float()
		assert.True(t, v >= 0 && v < 1, "Float out of [0,1): %v", v)
	}
}

func TestIntBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 10000; i++ {
		v := r.Int(17)
		assert.True(t, v >= 0 && v < 17, "Int out of [0,n): %v", v)
	}
}
