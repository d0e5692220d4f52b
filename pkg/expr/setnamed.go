package expr

// SetF64 patches every float64 parameter named name anywhere in the tree,
// recursing through all child expressions. Names absent from the tree are a
// no-op. Used to re-sample exported trees with new parameter values without
// recompiling from the graph.
func (e *Expr) SetF64(name string, value float64) {
	if e == nil {
		return
	}
	for _, v := range []*FloatVar{
		e.Frequency, e.Lacunarity, e.Persistence, e.Attenuation, e.Power,
		e.Exponent, e.Scale, e.Bias, e.LowerBound, e.UpperBound, e.Falloff,
		e.Value,
	} {
		v.SetNamed(name, value)
	}
	for _, v := range e.Axes {
		v.SetNamed(name, value)
	}
	for _, cp := range e.ControlPoints {
		cp.Input.SetNamed(name, value)
		cp.Output.SetNamed(name, value)
	}
	for _, v := range e.ControlValues {
		v.SetNamed(name, value)
	}
	e.Source.SetF64(name, value)
	e.Control.SetF64(name, value)
	for _, child := range e.Operands {
		child.SetF64(name, value)
	}
	for _, child := range e.DisplaceAxes {
		child.SetF64(name, value)
	}
}

// SetU32 patches every uint32 parameter named name anywhere in the tree,
// recursing through all child expressions.
func (e *Expr) SetU32(name string, value uint32) {
	if e == nil {
		return
	}
	for _, v := range []*UintVar{e.Seed, e.Size, e.Octaves, e.Roughness, e.ValueU32} {
		v.SetNamed(name, value)
	}
	e.Source.SetU32(name, value)
	e.Control.SetU32(name, value)
	for _, child := range e.Operands {
		child.SetU32(name, value)
	}
	for _, child := range e.DisplaceAxes {
		child.SetU32(name, value)
	}
}
