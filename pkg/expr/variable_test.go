package expr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatArithmetic(t *testing.T) {
	v := Operation(
		Operation(Lit(6.0), Lit(2.0), OpMultiply),
		Operation(Lit(1.0), Lit(4.0), OpSubtract),
		OpAdd,
	)
	assert.Equal(t, 9.0, v.Eval())

	quot := Operation(Lit(1.0), Lit(8.0), OpDivide)
	assert.Equal(t, 0.125, quot.Eval())
}

func TestFloatDivideByZero(t *testing.T) {
	for _, lhs := range []float64{0.0, 1.0, -3.5, math.MaxFloat64} {
		v := Operation(Lit(lhs), Lit(0.0), OpDivide)
		assert.Equal(t, 0.0, v.Eval(), "lhs=%v", lhs)
	}

	// The zero divisor may itself be computed.
	v := Operation(Lit(2.0), Operation(Lit(1.0), Lit(1.0), OpSubtract), OpDivide)
	assert.Equal(t, 0.0, v.Eval())
}

func TestUintCheckedArithmetic(t *testing.T) {
	cases := []struct {
		name string
		v    *UintVar
		want uint32
	}{
		{"add overflow", Operation(Lit(uint32(math.MaxUint32)), Lit(uint32(1)), OpAdd), 0},
		{"subtract underflow", Operation(Lit(uint32(0)), Lit(uint32(1)), OpSubtract), 0},
		{"divide by zero", Operation(Lit(uint32(7)), Lit(uint32(0)), OpDivide), 0},
		{"multiply overflow", Operation(Lit(uint32(1 << 31)), Lit(uint32(2)), OpMultiply), 0},
		{"add", Operation(Lit(uint32(40)), Lit(uint32(2)), OpAdd), 42},
		{"subtract", Operation(Lit(uint32(44)), Lit(uint32(2)), OpSubtract), 42},
		{"multiply", Operation(Lit(uint32(21)), Lit(uint32(2)), OpMultiply), 42},
		{"divide", Operation(Lit(uint32(84)), Lit(uint32(2)), OpDivide), 42},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.Eval())
		})
	}
}

func TestSetNamed(t *testing.T) {
	v := Operation(
		Named("frequency", 1.0),
		Operation(Named("frequency", 1.0), Named("other", 2.0), OpMultiply),
		OpAdd,
	)
	v.SetNamed("frequency", 3.0)

	require.Equal(t, 9.0, v.Eval())

	// Unmatched names leave the tree untouched.
	v.SetNamed("missing", 100.0)
	assert.Equal(t, 9.0, v.Eval())

	// Literals are never patched, even with an empty name.
	lit := Lit(5.0)
	lit.SetNamed("", 1.0)
	assert.Equal(t, 5.0, lit.Eval())
}

func TestNilVariableEvaluatesToZero(t *testing.T) {
	var f *FloatVar
	var u *UintVar
	assert.Equal(t, 0.0, f.Eval())
	assert.Equal(t, uint32(0), u.Eval())
}
