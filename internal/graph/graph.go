// Package graph holds the mutable, editor-facing node graph and the compiler
// that resolves a graph subtree into an immutable expression tree. Nodes live
// in an arena indexed by integer id with explicit input ports and output
// index sets; the graph is never a pointer web. Keeping the graph acyclic is
// the editor's responsibility and is not re-checked here.
package graph

import "noisegraph/pkg/expr"

// NodeKind discriminates node variants. Most kinds mirror expression
// variants; the extra kinds below exist only in the graph and compile into
// parameter values rather than sub-expressions.
type NodeKind = expr.Kind

const (
	// KindOpF64 combines two float64 inputs arithmetically.
	KindOpF64 NodeKind = "OpF64"
	// KindOpU32 combines two uint32 inputs arithmetically.
	KindOpU32 NodeKind = "OpU32"
)

// NodeID identifies a node within its graph's arena.
type NodeID int

// NoNode marks an unconnected input port.
const NoNode NodeID = -1

// Port is one typed input slot of a node. When Node is NoNode the port's
// literal value applies; otherwise the identified node produces the input.
type Port struct {
	Node NodeID
	F64  float64
	U32  uint32
}

// Node is one entry of the graph arena.
type Node struct {
	Kind NodeKind

	// Name labels constant nodes. Labeled constants compile into named
	// variables so exported trees can be patched by name.
	Name string

	Op               expr.Op
	SourceType       expr.SourceType
	DistanceFunction expr.DistanceFunction
	ReturnType       expr.ReturnType
	Inverted         bool

	// Constant payloads.
	F64 float64
	U32 uint32

	Inputs  []Port
	Outputs map[NodeID]struct{}
}

// Graph is an arena of nodes. Removed slots stay nil so ids remain stable.
type Graph struct {
	nodes []*Node
}

// New returns an empty graph.
func New() *Graph { return &Graph{} }

// Add appends a node to the arena and returns its id.
func (g *Graph) Add(n *Node) NodeID {
	if n.Outputs == nil {
		n.Outputs = map[NodeID]struct{}{}
	}
	g.nodes = append(g.nodes, n)
	return NodeID(len(g.nodes) - 1)
}

// Node returns the node for id, or nil for removed or unknown ids.
func (g *Graph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Kind returns the node's variant kind, or the empty kind for unknown ids.
func (g *Graph) Kind(id NodeID) NodeKind {
	if n := g.Node(id); n != nil {
		return n.Kind
	}
	return ""
}

// Connect wires from's output into to's input port, replacing any previous
// connection on that port.
func (g *Graph) Connect(from, to NodeID, port int) {
	src, dst := g.Node(from), g.Node(to)
	if src == nil || dst == nil || port < 0 || port >= len(dst.Inputs) {
		return
	}
	g.Disconnect(to, port)
	dst.Inputs[port].Node = from
	src.Outputs[to] = struct{}{}
}

// Disconnect clears to's input port, leaving the port's literal in effect.
func (g *Graph) Disconnect(to NodeID, port int) {
	dst := g.Node(to)
	if dst == nil || port < 0 || port >= len(dst.Inputs) {
		return
	}
	prev := dst.Inputs[port].Node
	dst.Inputs[port].Node = NoNode
	if src := g.Node(prev); src != nil && !g.feeds(prev, to) {
		delete(src.Outputs, to)
	}
}

// feeds reports whether any input port of to is still connected to from.
func (g *Graph) feeds(from, to NodeID) bool {
	dst := g.Node(to)
	if dst == nil {
		return false
	}
	for _, p := range dst.Inputs {
		if p.Node == from {
			return true
		}
	}
	return false
}

// Remove deletes a node, clearing every link into and out of it. The arena
// slot stays nil so other ids are unaffected.
func (g *Graph) Remove(id NodeID) {
	n := g.Node(id)
	if n == nil {
		return
	}
	for _, p := range n.Inputs {
		if src := g.Node(p.Node); src != nil {
			delete(src.Outputs, id)
		}
	}
	for out := range n.Outputs {
		if dst := g.Node(out); dst != nil {
			for i := range dst.Inputs {
				if dst.Inputs[i].Node == id {
					dst.Inputs[i].Node = NoNode
				}
			}
		}
	}
	g.nodes[id] = nil
}

// SetF64 updates a port's float64 literal.
func (g *Graph) SetF64(id NodeID, port int, value float64) {
	if n := g.Node(id); n != nil && port >= 0 && port < len(n.Inputs) {
		n.Inputs[port].F64 = value
	}
}

// SetU32 updates a port's uint32 literal.
func (g *Graph) SetU32(id NodeID, port int, value uint32) {
	if n := g.Node(id); n != nil && port >= 0 && port < len(n.Inputs) {
		n.Inputs[port].U32 = value
	}
}

// HasPreview reports whether the node produces a noise value and therefore a
// preview image. Constant and arithmetic nodes only feed parameters.
func (g *Graph) HasPreview(id NodeID) bool {
	switch g.Kind(id) {
	case "", expr.KindConstant, expr.KindConstantU32, KindOpF64, KindOpU32:
		return false
	}
	return true
}

// Dependents returns every node downstream of id, transitively, in
// breadth-first order. An edit to id invalidates the previews of all of them.
func (g *Graph) Dependents(id NodeID) []NodeID {
	var order []NodeID
	seen := map[NodeID]struct{}{id: {}}
	queue := []NodeID{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		n := g.Node(cur)
		if n == nil {
			continue
		}
		for out := range n.Outputs {
			if _, ok := seen[out]; ok {
				continue
			}
			seen[out] = struct{}{}
			order = append(order, out)
			queue = append(queue, out)
		}
	}
	return order
}

// PreviewNodes returns the id of every node that produces a preview image.
func (g *Graph) PreviewNodes() []NodeID {
	var ids []NodeID
	for i := range g.nodes {
		if id := NodeID(i); g.HasPreview(id) {
			ids = append(ids, id)
		}
	}
	return ids
}
