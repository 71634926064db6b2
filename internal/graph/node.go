package graph

import "github.com/coregx/waverex/internal/nodeset"

// Node is one vertex of a compiled pattern's graph: a State to evaluate
// plus an ordered, duplicate-free set of outgoing edges.
//
// Ids are assigned by an Arena in allocation order and never change
// after creation, except for a whole subgraph being shifted upward as a
// unit by mapSequenceIDs while it is grafted onto an enclosing graph.
type Node struct {
	id      uint32
	State   State
	edges   *nodeset.Set[*Node]
	members *nodeset.Set[*Node]
}

// NodeID satisfies nodeset.Identifiable.
func (n *Node) NodeID() uint32 { return n.id }

// ID returns the node's sequence id.
func (n *Node) ID() uint32 { return n.id }

// HasEdges reports whether n has at least one outgoing edge that is not
// merely a back-edge (a loop to itself or to an earlier node). This is
// the "terminal" test used throughout matching and graph construction:
// a node whose only edges point at ids <= its own does not count as
// having somewhere forward to go.
func (n *Node) HasEdges() bool {
	if n.edges == nil {
		return false
	}
	max, ok := n.edges.Max()
	if !ok {
		return false
	}
	return max.id > n.id
}

// Edges returns outgoing edges in ascending id order, including any
// back-edges.
func (n *Node) Edges() []*Node {
	if n.edges == nil {
		return nil
	}
	return n.edges.Values()
}

// Members returns {n} union every node forward-reachable from n via
// outgoing edges, computed lazily and cached until n's own edges change
// (or Concat is called on n). Adding an edge to another node in the
// traversed set does not clear n's cache.
func (n *Node) Members() *nodeset.Set[*Node] {
	if n.members == nil {
		set := nodeset.New[*Node]()
		seekMembers(n, set)
		n.members = set
	}
	return n.members
}

func seekMembers(n *Node, into *nodeset.Set[*Node]) {
	if into.Contains(n.id) {
		return
	}
	into.Insert(n)
	if n.edges == nil {
		return
	}
	n.edges.Each(func(e *Node) {
		if e.id > n.id {
			seekMembers(e, into)
		}
	})
}

// End returns the member of n's own subgraph with the largest id.
func (n *Node) End() *Node {
	end := n
	n.Members().Each(func(m *Node) {
		if m.id > end.id {
			end = m
		}
	})
	return end
}

func (n *Node) onEdgesChanged() {
	n.members = nil
}

func (n *Node) addEdge(child *Node) {
	if n.edges == nil {
		n.edges = nodeset.New[*Node]()
	}
	n.edges.Insert(child)
	n.onEdgesChanged()
}

// mapSequenceIDs shifts the id of every member of n's subgraph upward
// by zero. Because the shift is uniform, the ascending order already
// recorded in any cached edge or members set remains valid; no cache
// needs invalidating here.
func (n *Node) mapSequenceIDs(zero uint32) {
	n.Members().Each(func(m *Node) {
		m.id += zero
	})
}

// Submit runs the five-step node matcher: evaluate this node's own
// state, then — unless that alone already accepts at end of input — try
// each outgoing edge in ascending id order, returning the first
// success. A node with no forward edges accepts unconditionally once
// its own state matches. budget is decremented on every call and the
// match fails closed once it is exhausted, bounding recursion depth for
// patterns that would otherwise backtrack or loop without limit.
func (n *Node) Submit(subject string, at int, budget *int) (int, bool) {
	if *budget <= 0 {
		// -1 marks the budget as exhausted so every caller fails too.
		*budget = -1
		return 0, false
	}
	*budget--

	match, ok := n.State.Submit(subject, at, budget)
	if !ok || *budget < 0 {
		return 0, false
	}

	if !n.HasEdges() && match >= len(subject) {
		return match, true
	}

	for _, e := range n.Edges() {
		if r, ok := e.Submit(subject, match, budget); ok {
			return r, true
		}
		if *budget < 0 {
			return 0, false
		}
	}

	if !n.HasEdges() {
		return match, true
	}
	return 0, false
}
