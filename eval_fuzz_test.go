package infix_test

import (
	"math"
	"testing"

	"github.com/tdmoss/infix"
)

func FuzzEvalString(f *testing.F) {
	f.Add("2+3*4")
	f.Add("(2+3")
	f.Add("2^3^2")
	f.Add("5/0")
	f.Fuzz(func(t *testing.T, s string) {
		r1, err1 := infix.EvalString(s)
		r2, err2 := infix.EvalString(s)
		if (err1 == nil) != (err2 == nil) {
			t.Errorf("evaluating %q: errors differ: %v, %v", s, err1, err2)
		}
		if err1 != nil {
			return
		}
		if r1 != r2 && !(math.IsNaN(r1) && math.IsNaN(r2)) {
			t.Errorf("evaluating %q: results differ: %g, %g", s, r1, r2)
		}
	})
}
