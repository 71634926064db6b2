package graph

import "github.com/coregx/waverex/internal/arena"

// Arena owns every Node of a single compiled pattern.
type Arena struct {
	store *arena.Arena[*Node]
}

// NewArena returns an empty Arena sized for roughly capacityHint nodes.
func NewArena(capacityHint int) *Arena {
	return &Arena{store: arena.New[*Node](capacityHint)}
}

// New allocates a fresh Node with the given state and the next sequence
// id from this arena.
func (a *Arena) New(state State) *Node {
	return a.store.Alloc(func(id uint32) *Node {
		return &Node{id: id, State: state}
	})
}

// Nodes returns every node allocated so far, in allocation order.
func (a *Arena) Nodes() []*Node {
	return a.store.All()
}

// Precompute forces every node's members cache, so the finished graph
// can be read concurrently by multiple goroutines without any of them
// racing on a lazy first computation.
func (a *Arena) Precompute() {
	for _, n := range a.store.All() {
		n.Members()
	}
}

// Push relabels child's subgraph to sit just above n's current highest
// id, adds an edge from n to child, and returns child. Used where a
// sibling subgraph is simply appended as an alternative path out of n.
func (n *Node) Push(child *Node) *Node {
	zero := n.End().id + 1
	child.mapSequenceIDs(zero)
	n.addEdge(child)
	return child
}

// Merge relabels child's subgraph above n's current highest id, then
// attaches it via Concat: every currently-terminal member of n's own
// subgraph gains an edge to child. Used to extend every dangling path
// of n with a continuation, rather than adding a single new path.
func (n *Node) Merge(child *Node) *Node {
	zero := n.End().id + 1
	child.mapSequenceIDs(zero)
	return n.Concat(child)
}

// Concat adds an edge to child from every node in n's own subgraph that
// is currently terminal (has no forward edges of its own). Unlike Push
// and Merge it performs no id relabeling: callers are responsible for
// child's ids already being correctly ranged (e.g. a self-loop, where
// child is n itself).
func (n *Node) Concat(child *Node) *Node {
	n.Members().Each(func(m *Node) {
		if !m.HasEdges() {
			m.addEdge(child)
		}
	})
	n.onEdgesChanged()
	return child
}

// Or builds the "A|B" alternation: a fresh hub with edges to both
// operands, tried in id order (a was parsed first and so sits at lower
// ids, giving it priority when both could match).
func Or(arena *Arena, a, b *Node) *Node {
	hub := arena.New(State{Kind: Eps})
	hub.Push(a)
	hub.Push(b)
	return hub
}

// Quest builds the "A?" optional: a fresh hub merged with A (so every
// dangling end of A also reaches the hub's continuation) and pushed an
// empty epsilon exit, giving a path that skips A entirely.
func Quest(arena *Arena, a *Node) *Node {
	hub := arena.New(State{Kind: Eps})
	hub.Merge(a)
	exit := arena.New(State{Kind: Eps})
	hub.Push(exit)
	return hub
}

// Star builds the "A*" zero-or-more: a fresh hub merged with A, then
// concatenated with itself so every terminal reachable from the hub
// (which, after the merge, includes A's own terminals) gains a
// back-edge to the hub, before an epsilon exit is pushed as the path
// that stops the loop.
func Star(arena *Arena, a *Node) *Node {
	hub := arena.New(State{Kind: Eps})
	hub.Merge(a)
	hub.Concat(hub)
	exit := arena.New(State{Kind: Eps})
	hub.Push(exit)
	return hub
}

// Plus builds the "A+" one-or-more: no new hub node — A's own terminals
// gain a back-edge to A's own head, forcing at least one traversal of A
// before the loop can be taken.
func Plus(a *Node) *Node {
	return a.Concat(a)
}

// Wave builds the "A~B" bounded-until: a fresh hub that tries B first
// (pushed at the lower id range) and falls back to one traversal of A
// (pushed after, at a higher range, with its own terminals looped back
// to the hub) only if B fails. A None node is merged onto A's
// terminals, at ids above anything else in the graph, so that reaching
// one of them without ever going through B does not silently accept —
// B is mandatory.
func Wave(arena *Arena, a, b *Node) *Node {
	hub := arena.New(State{Kind: Eps})
	hub.Push(b)
	hub.Push(a).Concat(hub)
	none := arena.New(State{Kind: None})
	a.Merge(none)
	return hub
}
