package noise

import (
	"math"
	"testing"
)

var points = [][3]float64{
	{0.0, 0.0, 0.0},
	{0.37, 0.61, 0.29},
	{-1.25, 0.5, 2.0},
	{3.7, -2.1, -0.4},
	{10.01, 10.02, 10.03},
}

var generators = map[string]SourceFunc{
	"perlin":        NewPerlin,
	"opensimplex":   NewOpenSimplex,
	"supersimplex":  NewSuperSimplex,
	"simplex":       NewSimplex,
	"perlinsurflet": NewPerlinSurflet,
	"value":         NewValue,
}

func TestGeneratorsDeterministic(t *testing.T) {
	for name, f := range generators {
		a, b := f(42), f(42)
		for _, p := range points {
			va, vb := a.Sample(p[0], p[1], p[2]), b.Sample(p[0], p[1], p[2])
			if va != vb {
				t.Errorf("%s: same seed sampled %v and %v at %v", name, va, vb, p)
			}
		}
	}
}

func TestGeneratorsSeedVariation(t *testing.T) {
	for name, f := range generators {
		a, b := f(1), f(2)
		differs := false
		for _, p := range points {
			if a.Sample(p[0], p[1], p[2]) != b.Sample(p[0], p[1], p[2]) {
				differs = true
				break
			}
		}
		if !differs {
			t.Errorf("%s: seeds 1 and 2 agree at every probe point", name)
		}
	}
}

func TestGeneratorsStayBounded(t *testing.T) {
	for name, f := range generators {
		s := f(7)
		for _, p := range points {
			v := s.Sample(p[0], p[1], p[2])
			if math.IsNaN(v) || v < -1.5 || v > 1.5 {
				t.Errorf("%s: sample %v at %v out of range", name, v, p)
			}
		}
	}
}

func TestCheckerboard(t *testing.T) {
	s := NewCheckerboard(0)
	if got := s.Sample(0.5, 0.5, 0.5); got != -1.0 {
		t.Errorf("cell (0,0,0) = %v, want -1", got)
	}
	if got := s.Sample(1.5, 0.5, 0.5); got != 1.0 {
		t.Errorf("cell (1,0,0) = %v, want 1", got)
	}

	// Doubling the cell side keeps both probes in the first cell.
	wide := NewCheckerboard(1)
	if got := wide.Sample(1.5, 0.5, 0.5); got != -1.0 {
		t.Errorf("size 1 cell (0,0,0) = %v, want -1", got)
	}
}

func TestCylinders(t *testing.T) {
	s := NewCylinders(1.0)
	if got := s.Sample(0, 0, 0); got != 1.0 {
		t.Errorf("axis sample = %v, want 1", got)
	}
	if got := s.Sample(0.5, 0, 0); got != -1.0 {
		t.Errorf("half-radius sample = %v, want -1", got)
	}
	// The y axis does not affect the radial distance.
	if s.Sample(0.3, 5.0, 0.4) != s.Sample(0.3, -5.0, 0.4) {
		t.Error("samples vary along the cylinder axis")
	}
}

func TestWorley(t *testing.T) {
	a := NewWorley(3, 1.0, Euclidean, ReturnDistance)
	b := NewWorley(3, 1.0, Euclidean, ReturnDistance)
	for _, p := range points {
		va, vb := a.Sample(p[0], p[1], p[2]), b.Sample(p[0], p[1], p[2])
		if va != vb {
			t.Errorf("same seed sampled %v and %v at %v", va, vb, p)
		}
		if va < -1.0 || va > 1.0 {
			t.Errorf("distance return %v at %v out of [-1, 1]", va, p)
		}
	}

	value := NewWorley(3, 1.0, Euclidean, ReturnValue)
	differs := false
	for _, p := range points {
		v := value.Sample(p[0], p[1], p[2])
		if v < -1.0 || v > 1.0 {
			t.Errorf("value return %v at %v out of [-1, 1]", v, p)
		}
		if v != a.Sample(p[0], p[1], p[2]) {
			differs = true
		}
	}
	if !differs {
		t.Error("value and distance returns agree at every probe point")
	}
}

func TestFractalsDeterministic(t *testing.T) {
	fractals := map[string]func() Sampler{
		"fbm":         func() Sampler { return NewFbm(NewPerlin, 5, 4, 1.0, 2.0, 0.5) },
		"billow":      func() Sampler { return NewBillow(NewPerlin, 5, 4, 1.0, 2.0, 0.5) },
		"basicmulti":  func() Sampler { return NewBasicMulti(NewPerlin, 5, 4, 1.0, 2.0, 0.5) },
		"hybridmulti": func() Sampler { return NewHybridMulti(NewPerlin, 5, 4, 1.0, 2.0, 0.5) },
		"ridgedmulti": func() Sampler { return NewRidgedMulti(NewPerlin, 5, 4, 1.0, 2.0, 0.5, 2.0) },
	}
	for name, build := range fractals {
		a, b := build(), build()
		for _, p := range points {
			va, vb := a.Sample(p[0], p[1], p[2]), b.Sample(p[0], p[1], p[2])
			if va != vb {
				t.Errorf("%s: identical construction sampled %v and %v at %v", name, va, vb, p)
			}
			if math.IsNaN(va) || math.IsInf(va, 0) {
				t.Errorf("%s: sample %v at %v", name, va, p)
			}
		}
	}
}

func TestTurbulenceDistorts(t *testing.T) {
	source := NewPerlin(1)
	turbulent := NewTurbulence(source, NewPerlin, 1, 1.0, 1.0, 3)
	differs := false
	for _, p := range points {
		if turbulent.Sample(p[0], p[1], p[2]) != source.Sample(p[0], p[1], p[2]) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("turbulence left every probe point undistorted")
	}

	// Zero power turns the distortion off.
	still := NewTurbulence(source, NewPerlin, 1, 1.0, 0.0, 3)
	for _, p := range points {
		if got, want := still.Sample(p[0], p[1], p[2]), source.Sample(p[0], p[1], p[2]); got != want {
			t.Errorf("zero-power turbulence sampled %v, want %v at %v", got, want, p)
		}
	}
}

func TestCurveSpline(t *testing.T) {
	linear := []CurvePoint{
		{-1.0, -1.0}, {-1.0 / 3.0, -1.0 / 3.0}, {1.0 / 3.0, 1.0 / 3.0}, {1.0, 1.0},
	}
	s := Curve(Constant(0.0), linear)
	if got := s.Sample(0, 0, 0); math.Abs(got) > 1e-12 {
		t.Errorf("identity spline at 0 = %v", got)
	}

	// Outside the spline the edge output holds.
	if got := Curve(Constant(5.0), linear).Sample(0, 0, 0); got != 1.0 {
		t.Errorf("above spline = %v, want 1", got)
	}
	if got := Curve(Constant(-5.0), linear).Sample(0, 0, 0); got != -1.0 {
		t.Errorf("below spline = %v, want -1", got)
	}
}

func TestTerraceSteps(t *testing.T) {
	s := Terrace(Constant(0.0), []float64{-1.0, 1.0}, false)
	if got := s.Sample(0, 0, 0); got != -0.5 {
		t.Errorf("midpoint terrace = %v, want -0.5", got)
	}
	inv := Terrace(Constant(0.0), []float64{-1.0, 1.0}, true)
	if got := inv.Sample(0, 0, 0); got != 0.5 {
		t.Errorf("inverted midpoint terrace = %v, want 0.5", got)
	}

	// Control points arrive in any order.
	unsorted := Terrace(Constant(0.0), []float64{1.0, -1.0}, false)
	if got := unsorted.Sample(0, 0, 0); got != -0.5 {
		t.Errorf("unsorted terrace = %v, want -0.5", got)
	}
}

func TestTransformsRelocateSampling(t *testing.T) {
	source := NewPerlin(9)

	translated := TranslatePoint(source, 0.5, 0.0, 0.0, 0.0)
	if got, want := translated.Sample(0.1, 0.2, 0.3), source.Sample(0.6, 0.2, 0.3); got != want {
		t.Errorf("translate sampled %v, want %v", got, want)
	}

	scaled := ScalePoint(source, 2.0, 2.0, 2.0, 1.0)
	if got, want := scaled.Sample(0.1, 0.2, 0.3), source.Sample(0.2, 0.4, 0.6); got != want {
		t.Errorf("scale sampled %v, want %v", got, want)
	}

	// A full turn is the identity.
	full := RotatePoint(source, 0.0, 360.0, 0.0, 0.0)
	for _, p := range points {
		if got, want := full.Sample(p[0], p[1], p[2]), source.Sample(p[0], p[1], p[2]); math.Abs(got-want) > 1e-9 {
			t.Errorf("full rotation sampled %v, want %v at %v", got, want, p)
		}
	}
}
