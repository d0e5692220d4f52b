package graph

import "noisegraph/pkg/expr"

// Prototype constructs a node of one kind with its default port layout.
type Prototype func() *Node

var prototypes = map[NodeKind]Prototype{}

// Register adds a node prototype under the provided kind.
func Register(kind NodeKind, f Prototype) {
	if kind == "" || f == nil {
		return
	}
	prototypes[kind] = f
}

// Prototypes exposes the registry of available node prototypes.
func Prototypes() map[NodeKind]Prototype {
	return prototypes
}

// NewNode builds a node of the given kind from its registered prototype.
func NewNode(kind NodeKind) *Node {
	if f, ok := prototypes[kind]; ok {
		return f()
	}
	return nil
}

func ports(n int) []Port {
	p := make([]Port, n)
	for i := range p {
		p[i].Node = NoNode
	}
	return p
}

func seedPort() Port { return Port{Node: NoNode} }

func f64Port(v float64) Port { return Port{Node: NoNode, F64: v} }

func fractalPorts() []Port {
	return []Port{
		seedPort(),                          // seed
		{Node: NoNode, U32: DefaultOctaves}, // octaves
		f64Port(DefaultFrequency),
		f64Port(DefaultLacunarity),
		f64Port(DefaultPersistence),
	}
}

func init() {
	for _, kind := range []NodeKind{
		expr.KindOpenSimplex, expr.KindPerlin, expr.KindPerlinSurflet,
		expr.KindSimplex, expr.KindSuperSimplex, expr.KindValue,
	} {
		kind := kind
		Register(kind, func() *Node { return &Node{Kind: kind, Inputs: ports(1)} })
	}
	for _, kind := range []NodeKind{
		expr.KindBasicMulti, expr.KindBillow, expr.KindFbm, expr.KindHybridMulti,
	} {
		kind := kind
		Register(kind, func() *Node {
			return &Node{Kind: kind, SourceType: expr.SourcePerlin, Inputs: fractalPorts()}
		})
	}
	Register(expr.KindRidgedMulti, func() *Node {
		return &Node{
			Kind:       expr.KindRidgedMulti,
			SourceType: expr.SourcePerlin,
			Inputs:     append(fractalPorts(), f64Port(DefaultAttenuation)),
		}
	})
	Register(expr.KindWorley, func() *Node {
		return &Node{
			Kind:             expr.KindWorley,
			DistanceFunction: expr.DistanceEuclidean,
			ReturnType:       expr.ReturnDistance,
			Inputs:           []Port{seedPort(), f64Port(DefaultFrequency)},
		}
	})
	Register(expr.KindTurbulence, func() *Node {
		return &Node{
			Kind:       expr.KindTurbulence,
			SourceType: expr.SourcePerlin,
			Inputs: []Port{
				{Node: NoNode}, // source
				seedPort(),
				f64Port(DefaultFrequency),
				f64Port(DefaultPower),
				{Node: NoNode, U32: DefaultRoughness},
			},
		}
	})
	for _, kind := range []NodeKind{expr.KindAbs, expr.KindNegate} {
		kind := kind
		Register(kind, func() *Node { return &Node{Kind: kind, Inputs: ports(1)} })
	}
	for _, kind := range []NodeKind{
		expr.KindAdd, expr.KindMax, expr.KindMin, expr.KindMultiply, expr.KindPower,
	} {
		kind := kind
		Register(kind, func() *Node { return &Node{Kind: kind, Inputs: ports(2)} })
	}
	Register(expr.KindBlend, func() *Node {
		return &Node{Kind: expr.KindBlend, Inputs: ports(3)}
	})
	Register(expr.KindSelect, func() *Node {
		return &Node{
			Kind: expr.KindSelect,
			Inputs: []Port{
				{Node: NoNode}, {Node: NoNode}, {Node: NoNode},
				f64Port(-1.0), f64Port(1.0), f64Port(0.0),
			},
		}
	})
	Register(expr.KindClamp, func() *Node {
		return &Node{
			Kind:   expr.KindClamp,
			Inputs: []Port{{Node: NoNode}, f64Port(-1.0), f64Port(1.0)},
		}
	})
	Register(expr.KindExponent, func() *Node {
		return &Node{Kind: expr.KindExponent, Inputs: []Port{{Node: NoNode}, f64Port(1.0)}}
	})
	Register(expr.KindScaleBias, func() *Node {
		return &Node{
			Kind:   expr.KindScaleBias,
			Inputs: []Port{{Node: NoNode}, f64Port(1.0), f64Port(0.0)},
		}
	})
	for _, kind := range []NodeKind{expr.KindRotatePoint, expr.KindTranslatePoint} {
		kind := kind
		Register(kind, func() *Node { return &Node{Kind: kind, Inputs: ports(5)} })
	}
	Register(expr.KindScalePoint, func() *Node {
		return &Node{
			Kind: expr.KindScalePoint,
			Inputs: []Port{
				{Node: NoNode}, f64Port(1.0), f64Port(1.0), f64Port(1.0), f64Port(1.0),
			},
		}
	})
	Register(expr.KindDisplace, func() *Node {
		return &Node{Kind: expr.KindDisplace, Inputs: ports(5)}
	})
	Register(expr.KindCheckerboard, func() *Node {
		return &Node{Kind: expr.KindCheckerboard, Inputs: ports(1)}
	})
	Register(expr.KindCylinders, func() *Node {
		return &Node{Kind: expr.KindCylinders, Inputs: []Port{f64Port(DefaultFrequency)}}
	})
	// Curve starts with the minimum valid spline; Terrace with two steps.
	Register(expr.KindCurve, func() *Node {
		n := &Node{Kind: expr.KindCurve, Inputs: ports(9)}
		for i := 0; i < 4; i++ {
			in := -1.0 + float64(i)*(2.0/3.0)
			n.Inputs[1+i*2].F64 = in
			n.Inputs[2+i*2].F64 = in
		}
		return n
	})
	Register(expr.KindTerrace, func() *Node {
		n := &Node{Kind: expr.KindTerrace, Inputs: ports(3)}
		n.Inputs[1].F64 = -1.0
		n.Inputs[2].F64 = 1.0
		return n
	})
	Register(expr.KindConstant, func() *Node {
		return &Node{Kind: expr.KindConstant, Name: "value"}
	})
	Register(expr.KindConstantU32, func() *Node {
		return &Node{Kind: expr.KindConstantU32, Name: "seed"}
	})
	for _, kind := range []NodeKind{KindOpF64, KindOpU32} {
		kind := kind
		Register(kind, func() *Node {
			return &Node{Kind: kind, Op: expr.OpAdd, Inputs: ports(2)}
		})
	}
}
