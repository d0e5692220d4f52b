package graph

import "noisegraph/pkg/expr"

// Per-kind literal defaults applied to unconnected ports.
const (
	DefaultOctaves     = 6
	DefaultFrequency   = 1.0
	DefaultLacunarity  = 2.0943951023931953
	DefaultPersistence = 0.5
	DefaultAttenuation = 2.0
	DefaultPower       = 1.0
	DefaultRoughness   = 3
)

// Compile resolves the node at root into a fresh expression tree. Every
// input port resolves to its literal value when unconnected, to a (possibly
// named) variable when fed by a constant or arithmetic node, and to the
// connected node's own compiled sub-expression otherwise. Compilation is
// deterministic and total over a well-formed graph: two compiles of an
// unchanged region produce value-identical trees.
func Compile(g *Graph, root NodeID) *expr.Expr {
	n := g.Node(root)
	if n == nil {
		return &expr.Expr{Kind: expr.KindConstant, Value: expr.Lit(0.0)}
	}
	switch n.Kind {
	case expr.KindAbs, expr.KindNegate:
		return &expr.Expr{Kind: n.Kind, Source: subExpr(g, n, 0)}
	case expr.KindAdd, expr.KindMax, expr.KindMin, expr.KindMultiply, expr.KindPower:
		return &expr.Expr{Kind: n.Kind, Operands: []*expr.Expr{subExpr(g, n, 0), subExpr(g, n, 1)}}
	case expr.KindBasicMulti, expr.KindBillow, expr.KindFbm, expr.KindHybridMulti:
		return &expr.Expr{
			Kind:        n.Kind,
			SourceType:  n.SourceType,
			Seed:        u32Var(g, n, 0),
			Octaves:     u32Var(g, n, 1),
			Frequency:   f64Var(g, n, 2),
			Lacunarity:  f64Var(g, n, 3),
			Persistence: f64Var(g, n, 4),
		}
	case expr.KindRidgedMulti:
		return &expr.Expr{
			Kind:        n.Kind,
			SourceType:  n.SourceType,
			Seed:        u32Var(g, n, 0),
			Octaves:     u32Var(g, n, 1),
			Frequency:   f64Var(g, n, 2),
			Lacunarity:  f64Var(g, n, 3),
			Persistence: f64Var(g, n, 4),
			Attenuation: f64Var(g, n, 5),
		}
	case expr.KindBlend:
		return &expr.Expr{
			Kind:     n.Kind,
			Operands: []*expr.Expr{subExpr(g, n, 0), subExpr(g, n, 1)},
			Control:  subExpr(g, n, 2),
		}
	case expr.KindSelect:
		return &expr.Expr{
			Kind:       n.Kind,
			Operands:   []*expr.Expr{subExpr(g, n, 0), subExpr(g, n, 1)},
			Control:    subExpr(g, n, 2),
			LowerBound: f64Var(g, n, 3),
			UpperBound: f64Var(g, n, 4),
			Falloff:    f64Var(g, n, 5),
		}
	case expr.KindCheckerboard:
		return &expr.Expr{Kind: n.Kind, Size: u32Var(g, n, 0)}
	case expr.KindClamp:
		return &expr.Expr{
			Kind:       n.Kind,
			Source:     subExpr(g, n, 0),
			LowerBound: f64Var(g, n, 1),
			UpperBound: f64Var(g, n, 2),
		}
	case expr.KindConstant:
		return &expr.Expr{Kind: n.Kind, Value: constVar(n.Name, n.F64)}
	case expr.KindConstantU32:
		return &expr.Expr{Kind: n.Kind, ValueU32: constVar(n.Name, n.U32)}
	case expr.KindCurve:
		points := make([]expr.ControlPoint, 0, (len(n.Inputs)-1)/2)
		for port := 1; port+1 < len(n.Inputs); port += 2 {
			points = append(points, expr.ControlPoint{
				Input:  f64Var(g, n, port),
				Output: f64Var(g, n, port+1),
			})
		}
		return &expr.Expr{Kind: n.Kind, Source: subExpr(g, n, 0), ControlPoints: points}
	case expr.KindTerrace:
		values := make([]*expr.FloatVar, 0, len(n.Inputs)-1)
		for port := 1; port < len(n.Inputs); port++ {
			values = append(values, f64Var(g, n, port))
		}
		return &expr.Expr{Kind: n.Kind, Source: subExpr(g, n, 0), Inverted: n.Inverted, ControlValues: values}
	case expr.KindCylinders:
		return &expr.Expr{Kind: n.Kind, Frequency: f64Var(g, n, 0)}
	case expr.KindDisplace:
		return &expr.Expr{
			Kind:   n.Kind,
			Source: subExpr(g, n, 0),
			DisplaceAxes: []*expr.Expr{
				subExpr(g, n, 1), subExpr(g, n, 2), subExpr(g, n, 3), subExpr(g, n, 4),
			},
		}
	case expr.KindExponent:
		return &expr.Expr{Kind: n.Kind, Source: subExpr(g, n, 0), Exponent: f64Var(g, n, 1)}
	case expr.KindScaleBias:
		return &expr.Expr{
			Kind:   n.Kind,
			Source: subExpr(g, n, 0),
			Scale:  f64Var(g, n, 1),
			Bias:   f64Var(g, n, 2),
		}
	case expr.KindRotatePoint, expr.KindScalePoint, expr.KindTranslatePoint:
		return &expr.Expr{
			Kind:   n.Kind,
			Source: subExpr(g, n, 0),
			Axes: []*expr.FloatVar{
				f64Var(g, n, 1), f64Var(g, n, 2), f64Var(g, n, 3), f64Var(g, n, 4),
			},
		}
	case expr.KindTurbulence:
		return &expr.Expr{
			Kind:       n.Kind,
			Source:     subExpr(g, n, 0),
			SourceType: n.SourceType,
			Seed:       u32Var(g, n, 1),
			Frequency:  f64Var(g, n, 2),
			Power:      f64Var(g, n, 3),
			Roughness:  u32Var(g, n, 4),
		}
	case expr.KindOpenSimplex, expr.KindPerlin, expr.KindPerlinSurflet,
		expr.KindSimplex, expr.KindSuperSimplex, expr.KindValue:
		return &expr.Expr{Kind: n.Kind, Seed: u32Var(g, n, 0)}
	case expr.KindWorley:
		return &expr.Expr{
			Kind:             n.Kind,
			Seed:             u32Var(g, n, 0),
			Frequency:        f64Var(g, n, 1),
			DistanceFunction: n.DistanceFunction,
			ReturnType:       n.ReturnType,
		}
	}
	return &expr.Expr{Kind: expr.KindConstant, Value: expr.Lit(0.0)}
}

// subExpr resolves a source port: the connected node's compiled
// sub-expression, or a constant-zero source when unconnected.
func subExpr(g *Graph, n *Node, port int) *expr.Expr {
	if port < len(n.Inputs) {
		if id := n.Inputs[port].Node; id != NoNode {
			return Compile(g, id)
		}
	}
	return &expr.Expr{Kind: expr.KindConstant, Value: expr.Lit(0.0)}
}

// f64Var resolves a float64 parameter port to a variable: the port's literal
// when unconnected, the feeding constant's (possibly named) value, or the
// feeding arithmetic node's operation tree.
func f64Var(g *Graph, n *Node, port int) *expr.FloatVar {
	if port >= len(n.Inputs) {
		return expr.Lit(0.0)
	}
	p := n.Inputs[port]
	if p.Node == NoNode {
		return expr.Lit(p.F64)
	}
	return f64VarOf(g, p.Node, p.F64)
}

func f64VarOf(g *Graph, id NodeID, fallback float64) *expr.FloatVar {
	n := g.Node(id)
	if n == nil {
		return expr.Lit(fallback)
	}
	switch n.Kind {
	case expr.KindConstant:
		return constVar(n.Name, n.F64)
	case KindOpF64:
		return expr.Operation(f64Var(g, n, 0), f64Var(g, n, 1), n.Op)
	}
	return expr.Lit(fallback)
}

// u32Var resolves a uint32 parameter port, mirroring f64Var.
func u32Var(g *Graph, n *Node, port int) *expr.UintVar {
	if port >= len(n.Inputs) {
		return expr.Lit(uint32(0))
	}
	p := n.Inputs[port]
	if p.Node == NoNode {
		return expr.Lit(p.U32)
	}
	return u32VarOf(g, p.Node, p.U32)
}

func u32VarOf(g *Graph, id NodeID, fallback uint32) *expr.UintVar {
	n := g.Node(id)
	if n == nil {
		return expr.Lit(fallback)
	}
	switch n.Kind {
	case expr.KindConstantU32:
		return constVar(n.Name, n.U32)
	case KindOpU32:
		return expr.Operation(u32Var(g, n, 0), u32Var(g, n, 1), n.Op)
	}
	return expr.Lit(fallback)
}

func constVar[T expr.Scalar](name string, value T) *expr.Variable[T] {
	if name != "" {
		return expr.Named(name, value)
	}
	return expr.Lit(value)
}
