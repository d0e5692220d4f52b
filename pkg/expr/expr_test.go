package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePoints = [][3]float64{
	{0.0, 0.0, 0.0},
	{0.37, 0.61, 0.0},
	{-1.25, 0.5, 0.0},
	{3.7, -2.1, 0.0},
	{0.001, -0.001, 0.0},
}

func fbm(seed uint32, octaves uint32) *Expr {
	return &Expr{
		Kind:        KindFbm,
		SourceType:  SourcePerlin,
		Seed:        Lit(seed),
		Octaves:     Lit(octaves),
		Frequency:   Lit(1.0),
		Lacunarity:  Lit(2.0),
		Persistence: Lit(0.5),
	}
}

func TestOctaveClamp(t *testing.T) {
	pairs := [][2]uint32{
		{0, 1},
		{1000, MaxOctaves},
		{MaxOctaves + 1, MaxOctaves},
	}
	for _, pair := range pairs {
		clamped, reference := fbm(7, pair[0]).Noise(), fbm(7, pair[1]).Noise()
		for _, p := range samplePoints {
			assert.Equal(t, reference.Sample(p[0], p[1], p[2]), clamped.Sample(p[0], p[1], p[2]),
				"octaves %d should sample like %d at %v", pair[0], pair[1], p)
		}
	}
}

func TestCurveDegradesToZero(t *testing.T) {
	pt := func(in, out float64) ControlPoint {
		return ControlPoint{Input: Lit(in), Output: Lit(out)}
	}
	source := &Expr{Kind: KindConstant, Value: Lit(0.5)}

	tooFew := &Expr{
		Kind:          KindCurve,
		Source:        source,
		ControlPoints: []ControlPoint{pt(-1, -1), pt(0, 0), pt(1, 1)},
	}
	duplicated := &Expr{
		Kind:   KindCurve,
		Source: source,
		ControlPoints: []ControlPoint{
			pt(-1, -1), pt(0, 0), pt(0, 0.5), pt(1, 1),
		},
	}
	for _, e := range []*Expr{tooFew, duplicated} {
		for _, p := range samplePoints {
			assert.Equal(t, 0.0, e.Sample(p[0], p[1], p[2]))
		}
	}

	// Four distinct inputs make a live spline again.
	valid := &Expr{
		Kind:   KindCurve,
		Source: &Expr{Kind: KindConstant, Value: Lit(0.0)},
		ControlPoints: []ControlPoint{
			pt(-1, -1), pt(-1.0/3.0, -1.0/3.0), pt(1.0/3.0, 1.0/3.0), pt(1, 1),
		},
	}
	assert.InDelta(t, 0.0, valid.Sample(0, 0, 0), 1e-12)
}

func TestTerraceDegradesToZero(t *testing.T) {
	source := &Expr{Kind: KindConstant, Value: Lit(0.5)}

	tooFew := &Expr{Kind: KindTerrace, Source: source, ControlValues: []*FloatVar{Lit(1.0)}}
	identical := &Expr{
		Kind:          KindTerrace,
		Source:        source,
		ControlValues: []*FloatVar{Lit(0.5), Lit(0.5), Lit(0.5)},
	}
	for _, e := range []*Expr{tooFew, identical} {
		for _, p := range samplePoints {
			assert.Equal(t, 0.0, e.Sample(p[0], p[1], p[2]))
		}
	}

	steps := []*FloatVar{Lit(-1.0), Lit(1.0)}
	terrace := &Expr{
		Kind:          KindTerrace,
		Source:        &Expr{Kind: KindConstant, Value: Lit(0.0)},
		ControlValues: steps,
	}
	assert.Equal(t, -0.5, terrace.Sample(0, 0, 0))

	inverted := &Expr{
		Kind:          KindTerrace,
		Source:        &Expr{Kind: KindConstant, Value: Lit(0.0)},
		ControlValues: steps,
		Inverted:      true,
	}
	assert.Equal(t, 0.5, inverted.Sample(0, 0, 0))
}

func TestClampReordersBounds(t *testing.T) {
	e := &Expr{
		Kind:       KindClamp,
		Source:     &Expr{Kind: KindConstant, Value: Lit(0.9)},
		LowerBound: Lit(0.5),
		UpperBound: Lit(-0.5),
	}
	assert.Equal(t, 0.5, e.Sample(0, 0, 0))
}

func TestCombinators(t *testing.T) {
	c := func(v float64) *Expr { return &Expr{Kind: KindConstant, Value: Lit(v)} }

	add := &Expr{Kind: KindAdd, Operands: []*Expr{c(0.25), c(0.5)}}
	assert.Equal(t, 0.75, add.Sample(0, 0, 0))

	min := &Expr{Kind: KindMin, Operands: []*Expr{c(0.25), c(0.5)}}
	assert.Equal(t, 0.25, min.Sample(0, 0, 0))

	// A control of -1 blends fully to the first source, +1 to the second.
	blendA := &Expr{Kind: KindBlend, Operands: []*Expr{c(0.25), c(0.5)}, Control: c(-1.0)}
	blendB := &Expr{Kind: KindBlend, Operands: []*Expr{c(0.25), c(0.5)}, Control: c(1.0)}
	assert.Equal(t, 0.25, blendA.Sample(0, 0, 0))
	assert.Equal(t, 0.5, blendB.Sample(0, 0, 0))

	sel := func(control float64) *Expr {
		return &Expr{
			Kind:       KindSelect,
			Operands:   []*Expr{c(-0.75), c(0.75)},
			Control:    c(control),
			LowerBound: Lit(-0.5),
			UpperBound: Lit(0.5),
			Falloff:    Lit(0.0),
		}
	}
	assert.Equal(t, 0.75, sel(0.0).Sample(0, 0, 0), "control inside the band selects the second source")
	assert.Equal(t, -0.75, sel(0.9).Sample(0, 0, 0), "control outside the band selects the first source")

	missing := &Expr{Kind: KindAdd, Operands: []*Expr{c(0.25)}}
	assert.Equal(t, 0.25, missing.Sample(0, 0, 0), "a missing operand samples as zero")
}

func TestSetF64ReachesNestedParameters(t *testing.T) {
	tree := &Expr{
		Kind:   KindScaleBias,
		Source: fbm(1, 4),
		Scale:  Named("gain", 1.0),
		Bias:   Lit(0.0),
	}
	tree.Source.Frequency = Named("frequency", 1.0)

	tree.SetF64("gain", 2.0)
	tree.SetF64("frequency", 3.0)

	assert.Equal(t, 2.0, tree.Scale.Eval())
	assert.Equal(t, 3.0, tree.Source.Frequency.Eval())

	reference := &Expr{
		Kind:   KindScaleBias,
		Source: fbm(1, 4),
		Scale:  Lit(2.0),
		Bias:   Lit(0.0),
	}
	reference.Source.Frequency = Lit(3.0)
	for _, p := range samplePoints {
		assert.Equal(t, reference.Sample(p[0], p[1], p[2]), tree.Sample(p[0], p[1], p[2]))
	}
}

func TestSetU32ReachesSeeds(t *testing.T) {
	tree := fbm(0, 4)
	tree.Seed = Named("seed", uint32(0))

	before := tree.Sample(0.37, 0.61, 0.0)
	tree.SetU32("seed", 99)
	after := tree.Sample(0.37, 0.61, 0.0)

	assert.Equal(t, fbm(99, 4).Sample(0.37, 0.61, 0.0), after)
	assert.NotEqual(t, before, after)
}

func TestCodecRoundTrip(t *testing.T) {
	tree := &Expr{
		Kind:       KindSelect,
		Operands:   []*Expr{fbm(3, 5), {Kind: KindWorley, Seed: Lit(uint32(9)), Frequency: Lit(2.0), DistanceFunction: DistanceManhattan, ReturnType: ReturnValue}},
		Control:    &Expr{Kind: KindPerlin, Seed: Lit(uint32(4))},
		LowerBound: Named("lower", -0.3),
		UpperBound: Lit(0.6),
		Falloff:    Lit(0.1),
	}
	tree.Operands[0].Frequency = Operation(Named("base", 1.0), Lit(2.0), OpMultiply)

	data, err := Marshal(tree)
	require.NoError(t, err)

	decoded, err := Unmarshal(data)
	require.NoError(t, err)

	for _, p := range samplePoints {
		require.Equal(t, tree.Sample(p[0], p[1], p[2]), decoded.Sample(p[0], p[1], p[2]))
	}

	// Named parameters survive the round trip and stay patchable.
	decoded.SetF64("base", 3.0)
	tree.SetF64("base", 3.0)
	require.Equal(t, 6.0, decoded.Operands[0].Frequency.Eval())
	for _, p := range samplePoints {
		require.Equal(t, tree.Sample(p[0], p[1], p[2]), decoded.Sample(p[0], p[1], p[2]))
	}
}
