package infix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	prec := map[rune]int{'+': 1, '-': 1, '*': 2, '/': 2, '^': 3}
	for _, sym := range Operators {
		o, ok := lookup(sym)
		require.True(t, ok, "operator %q", sym)
		assert.Equal(t, prec[sym], o.prec, "operator %q", sym)
		assert.Equal(t, sym == '^', o.right, "operator %q", sym)
	}
	for _, sym := range "%!&|.a (" {
		_, ok := lookup(sym)
		assert.False(t, ok, "operator %q", sym)
	}
}

func TestOpEval(t *testing.T) {
	cases := []struct {
		sym         rune
		left, right float64
		want        float64
	}{
		{'+', 2, 3, 5},
		{'-', 2, 3, -1},
		{'*', 2, 3, 6},
		{'/', 3, 2, 1.5},
		{'^', 2, 10, 1024},
	}
	for _, c := range cases {
		o, ok := lookup(c.sym)
		require.True(t, ok, "operator %q", c.sym)
		assert.Equal(t, c.want, o.eval(c.left, c.right), "%g %c %g", c.left, c.sym, c.right)
	}
	o, _ := lookup('/')
	assert.True(t, math.IsInf(o.eval(5, 0), 1), "5/0")
}

func TestOpReduces(t *testing.T) {
	add, _ := lookup('+')
	sub, _ := lookup('-')
	mul, _ := lookup('*')
	pow, _ := lookup('^')
	// Left-associative operators reduce stacked operators of equal or
	// higher precedence.
	assert.True(t, add.reduces(sub))
	assert.True(t, add.reduces(mul))
	assert.True(t, mul.reduces(mul))
	assert.False(t, mul.reduces(add))
	// Exponentiation is right-associative, so it does not reduce itself.
	assert.False(t, pow.reduces(pow))
	assert.True(t, add.reduces(pow))
}
