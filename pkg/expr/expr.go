// Package expr models composed noise functions as immutable expression
// trees. A tree is built once by the graph compiler (or decoded from an
// exported file), shared read-only across tile renders, and turned into a
// runnable sampler with Noise. Named parameters anywhere in a tree can be
// re-patched in place with SetF64 and SetU32 without recompiling.
package expr

import "noisegraph/pkg/noise"

// MaxOctaves caps the octave count of every fractal variant. Counts outside
// [1, MaxOctaves] are clamped before the sampler is built.
const MaxOctaves = noise.MaxOctaves

// Kind discriminates the closed set of expression variants.
type Kind string

const (
	KindAbs            Kind = "Abs"
	KindAdd            Kind = "Add"
	KindBasicMulti     Kind = "BasicMulti"
	KindBillow         Kind = "Billow"
	KindBlend          Kind = "Blend"
	KindCheckerboard   Kind = "Checkerboard"
	KindClamp          Kind = "Clamp"
	KindConstant       Kind = "Constant"
	KindConstantU32    Kind = "ConstantU32"
	KindCurve          Kind = "Curve"
	KindCylinders      Kind = "Cylinders"
	KindDisplace       Kind = "Displace"
	KindExponent       Kind = "Exponent"
	KindFbm            Kind = "Fbm"
	KindHybridMulti    Kind = "HybridMulti"
	KindMax            Kind = "Max"
	KindMin            Kind = "Min"
	KindMultiply       Kind = "Multiply"
	KindNegate         Kind = "Negate"
	KindOpenSimplex    Kind = "OpenSimplex"
	KindPerlin         Kind = "Perlin"
	KindPerlinSurflet  Kind = "PerlinSurflet"
	KindPower          Kind = "Power"
	KindRidgedMulti    Kind = "RidgedMulti"
	KindRotatePoint    Kind = "RotatePoint"
	KindScaleBias      Kind = "ScaleBias"
	KindScalePoint     Kind = "ScalePoint"
	KindSelect         Kind = "Select"
	KindSimplex        Kind = "Simplex"
	KindSuperSimplex   Kind = "SuperSimplex"
	KindTerrace        Kind = "Terrace"
	KindTranslatePoint Kind = "TranslatePoint"
	KindTurbulence     Kind = "Turbulence"
	KindValue          Kind = "Value"
	KindWorley         Kind = "Worley"
)

// SourceType selects the inner generator of fractal and turbulence variants.
type SourceType string

const (
	SourceOpenSimplex   SourceType = "OpenSimplex"
	SourcePerlin        SourceType = "Perlin"
	SourcePerlinSurflet SourceType = "PerlinSurflet"
	SourceSimplex       SourceType = "Simplex"
	SourceSuperSimplex  SourceType = "SuperSimplex"
	SourceValue         SourceType = "Value"
	SourceWorley        SourceType = "Worley"
)

// DistanceFunction selects the Worley distance metric.
type DistanceFunction string

const (
	DistanceChebyshev        DistanceFunction = "Chebyshev"
	DistanceEuclidean        DistanceFunction = "Euclidean"
	DistanceEuclideanSquared DistanceFunction = "EuclideanSquared"
	DistanceManhattan        DistanceFunction = "Manhattan"
)

// ReturnType selects what the Worley generator reports.
type ReturnType string

const (
	ReturnDistance ReturnType = "Distance"
	ReturnValue    ReturnType = "Value"
)

// ControlPoint is one input/output pair of a Curve variant.
type ControlPoint struct {
	Input  *FloatVar `yaml:"input"`
	Output *FloatVar `yaml:"output"`
}

// Expr is one node of an expression tree: a closed tagged union discriminated
// by Kind. Only the fields relevant to a node's kind are populated; the rest
// stay nil and are omitted from the exported form. Children are exclusively
// owned by their parent — a tree is never a DAG.
type Expr struct {
	Kind Kind `yaml:"kind"`

	// Child expressions.
	Source       *Expr   `yaml:"source,omitempty"`       // unary modifiers, transforms, Curve, Terrace, Turbulence, Displace
	Operands     []*Expr `yaml:"operands,omitempty"`     // binary combinators; Blend/Select sources
	Control      *Expr   `yaml:"control,omitempty"`      // Blend, Select
	DisplaceAxes []*Expr `yaml:"displaceAxes,omitempty"` // Displace: x, y, z, w

	// Generator and fractal parameters, in resolution order.
	SourceType  SourceType `yaml:"sourceType,omitempty"`
	Seed        *UintVar   `yaml:"seed,omitempty"`
	Size        *UintVar   `yaml:"size,omitempty"` // Checkerboard
	Octaves     *UintVar   `yaml:"octaves,omitempty"`
	Frequency   *FloatVar  `yaml:"frequency,omitempty"`
	Lacunarity  *FloatVar  `yaml:"lacunarity,omitempty"`
	Persistence *FloatVar  `yaml:"persistence,omitempty"`
	Attenuation *FloatVar  `yaml:"attenuation,omitempty"` // RidgedMulti
	Power       *FloatVar  `yaml:"power,omitempty"`       // Turbulence
	Roughness   *UintVar   `yaml:"roughness,omitempty"`   // Turbulence

	// Modifier parameters.
	Exponent   *FloatVar `yaml:"exponent,omitempty"`
	Scale      *FloatVar `yaml:"scale,omitempty"`
	Bias       *FloatVar `yaml:"bias,omitempty"`
	LowerBound *FloatVar `yaml:"lowerBound,omitempty"` // Clamp, Select
	UpperBound *FloatVar `yaml:"upperBound,omitempty"`
	Falloff    *FloatVar `yaml:"falloff,omitempty"`

	Axes []*FloatVar `yaml:"axes,omitempty"` // RotatePoint, ScalePoint, TranslatePoint: x, y, z, w

	Value    *FloatVar `yaml:"value,omitempty"`    // Constant
	ValueU32 *UintVar  `yaml:"valueU32,omitempty"` // ConstantU32

	Inverted      bool           `yaml:"inverted,omitempty"`      // Terrace
	ControlPoints []ControlPoint `yaml:"controlPoints,omitempty"` // Curve
	ControlValues []*FloatVar    `yaml:"controlValues,omitempty"` // Terrace

	DistanceFunction DistanceFunction `yaml:"distanceFunction,omitempty"` // Worley
	ReturnType       ReturnType       `yaml:"returnType,omitempty"`
}

// Sample builds the tree's sampler and evaluates it at one point. Callers
// sampling many points should build the sampler once with Noise instead.
func (e *Expr) Sample(x, y, z float64) float64 {
	return e.Noise().Sample(x, y, z)
}

// Noise resolves every parameter to its current value and builds the
// immutable sampler tree. Octave counts are clamped into [1, MaxOctaves] and
// Curve/Terrace variants with invalid control points degrade to a
// constant-zero source, since the underlying spline samplers require valid
// control points at construction.
func (e *Expr) Noise() noise.Sampler {
	if e == nil {
		return noise.Constant(0.0)
	}
	switch e.Kind {
	case KindAbs:
		return noise.Abs(e.Source.Noise())
	case KindAdd:
		return noise.Add(e.operand(0), e.operand(1))
	case KindBasicMulti:
		return noise.NewBasicMulti(sourceFunc(e.SourceType), e.Seed.Eval(), e.octaves(),
			e.Frequency.Eval(), e.Lacunarity.Eval(), e.Persistence.Eval())
	case KindBillow:
		return noise.NewBillow(sourceFunc(e.SourceType), e.Seed.Eval(), e.octaves(),
			e.Frequency.Eval(), e.Lacunarity.Eval(), e.Persistence.Eval())
	case KindBlend:
		return noise.Blend(e.operand(0), e.operand(1), e.Control.Noise())
	case KindCheckerboard:
		return noise.NewCheckerboard(e.Size.Eval())
	case KindClamp:
		lower, upper := e.LowerBound.Eval(), e.UpperBound.Eval()
		return noise.Clamp(e.Source.Noise(), lower, upper)
	case KindConstant:
		return noise.Constant(e.Value.Eval())
	case KindConstantU32:
		return noise.Constant(float64(e.ValueU32.Eval()))
	case KindCurve:
		return e.curve()
	case KindCylinders:
		return noise.NewCylinders(e.Frequency.Eval())
	case KindDisplace:
		return noise.Displace(e.Source.Noise(),
			e.displaceAxis(0), e.displaceAxis(1), e.displaceAxis(2), e.displaceAxis(3))
	case KindExponent:
		return noise.Exponent(e.Source.Noise(), e.Exponent.Eval())
	case KindFbm:
		return noise.NewFbm(sourceFunc(e.SourceType), e.Seed.Eval(), e.octaves(),
			e.Frequency.Eval(), e.Lacunarity.Eval(), e.Persistence.Eval())
	case KindHybridMulti:
		return noise.NewHybridMulti(sourceFunc(e.SourceType), e.Seed.Eval(), e.octaves(),
			e.Frequency.Eval(), e.Lacunarity.Eval(), e.Persistence.Eval())
	case KindMax:
		return noise.Max(e.operand(0), e.operand(1))
	case KindMin:
		return noise.Min(e.operand(0), e.operand(1))
	case KindMultiply:
		return noise.Multiply(e.operand(0), e.operand(1))
	case KindNegate:
		return noise.Negate(e.Source.Noise())
	case KindOpenSimplex:
		return noise.NewOpenSimplex(e.Seed.Eval())
	case KindPerlin:
		return noise.NewPerlin(e.Seed.Eval())
	case KindPerlinSurflet:
		return noise.NewPerlinSurflet(e.Seed.Eval())
	case KindPower:
		return noise.Power(e.operand(0), e.operand(1))
	case KindRidgedMulti:
		return noise.NewRidgedMulti(sourceFunc(e.SourceType), e.Seed.Eval(), e.octaves(),
			e.Frequency.Eval(), e.Lacunarity.Eval(), e.Persistence.Eval(), e.Attenuation.Eval())
	case KindRotatePoint:
		return noise.RotatePoint(e.Source.Noise(), e.axis(0), e.axis(1), e.axis(2), e.axis(3))
	case KindScaleBias:
		return noise.ScaleBias(e.Source.Noise(), e.Scale.Eval(), e.Bias.Eval())
	case KindScalePoint:
		return noise.ScalePoint(e.Source.Noise(), e.axis(0), e.axis(1), e.axis(2), e.axis(3))
	case KindSelect:
		return noise.Select(e.operand(0), e.operand(1), e.Control.Noise(),
			e.LowerBound.Eval(), e.UpperBound.Eval(), e.Falloff.Eval())
	case KindSimplex:
		return noise.NewSimplex(e.Seed.Eval())
	case KindSuperSimplex:
		return noise.NewSuperSimplex(e.Seed.Eval())
	case KindTerrace:
		return e.terrace()
	case KindTranslatePoint:
		return noise.TranslatePoint(e.Source.Noise(), e.axis(0), e.axis(1), e.axis(2), e.axis(3))
	case KindTurbulence:
		return noise.NewTurbulence(e.Source.Noise(), sourceFunc(e.SourceType), e.Seed.Eval(),
			e.Frequency.Eval(), e.Power.Eval(), e.Roughness.Eval())
	case KindValue:
		return noise.NewValue(e.Seed.Eval())
	case KindWorley:
		return noise.NewWorley(e.Seed.Eval(), e.Frequency.Eval(), distanceFunc(e.DistanceFunction), returnType(e.ReturnType))
	}
	return noise.Constant(0.0)
}

func (e *Expr) operand(i int) noise.Sampler {
	if i >= len(e.Operands) {
		return noise.Constant(0.0)
	}
	return e.Operands[i].Noise()
}

func (e *Expr) displaceAxis(i int) noise.Sampler {
	if i >= len(e.DisplaceAxes) {
		return noise.Constant(0.0)
	}
	return e.DisplaceAxes[i].Noise()
}

func (e *Expr) axis(i int) float64 {
	if i >= len(e.Axes) {
		return 0.0
	}
	return e.Axes[i].Eval()
}

func (e *Expr) octaves() uint32 {
	o := e.Octaves.Eval()
	if o < 1 {
		return 1
	}
	if o > MaxOctaves {
		return MaxOctaves
	}
	return o
}

// curve checks the Curve preconditions before building the spline: at least
// four control points with at least four pairwise distinct input values.
func (e *Expr) curve() noise.Sampler {
	if len(e.ControlPoints) < 4 || !distinctInputs(e.ControlPoints) {
		return noise.Constant(0.0)
	}
	points := make([]noise.CurvePoint, len(e.ControlPoints))
	for i, cp := range e.ControlPoints {
		points[i] = noise.CurvePoint{Input: cp.Input.Eval(), Output: cp.Output.Eval()}
	}
	return noise.Curve(e.Source.Noise(), points)
}

// distinctInputs reports whether at least four distinct input values occur,
// tracking only the first three distinct inputs seen.
func distinctInputs(points []ControlPoint) bool {
	var seen [3]float64
	n := 0
	for _, cp := range points {
		input := cp.Input.Eval()
		known := false
		for _, s := range seen[:n] {
			if s == input {
				known = true
				break
			}
		}
		if known {
			continue
		}
		if n == 3 {
			return true
		}
		seen[n] = input
		n++
	}
	return false
}

// terrace checks the Terrace preconditions before building the sampler: at
// least two control points that are not all numerically identical.
func (e *Expr) terrace() noise.Sampler {
	if len(e.ControlValues) < 2 {
		return noise.Constant(0.0)
	}
	values := make([]float64, len(e.ControlValues))
	identical := true
	for i, cv := range e.ControlValues {
		values[i] = cv.Eval()
		if values[i] != values[0] {
			identical = false
		}
	}
	if identical {
		return noise.Constant(0.0)
	}
	return noise.Terrace(e.Source.Noise(), values, e.Inverted)
}

func sourceFunc(ty SourceType) noise.SourceFunc {
	switch ty {
	case SourceOpenSimplex, SourceSuperSimplex:
		// SuperSimplex folds into OpenSimplex inside fractals.
		return noise.NewOpenSimplex
	case SourcePerlinSurflet:
		return noise.NewPerlinSurflet
	case SourceSimplex:
		return noise.NewSimplex
	case SourceValue:
		return noise.NewValue
	case SourceWorley:
		return func(seed uint32) noise.Sampler {
			return noise.NewWorley(seed, 1.0, noise.Euclidean, noise.ReturnDistance)
		}
	default:
		return noise.NewPerlin
	}
}

func distanceFunc(fn DistanceFunction) noise.DistanceFunc {
	switch fn {
	case DistanceChebyshev:
		return noise.Chebyshev
	case DistanceEuclideanSquared:
		return noise.EuclideanSquared
	case DistanceManhattan:
		return noise.Manhattan
	default:
		return noise.Euclidean
	}
}

func returnType(ty ReturnType) noise.WorleyReturn {
	if ty == ReturnValue {
		return noise.ReturnValue
	}
	return noise.ReturnDistance
}
