package audiograph

// Graph manages a network of Nodes connected by directed source->sink
// edges and samples them one frame at a time in topological order.
//
// Edge enumeration policy: incoming edges of a sink are walked most
// recently connected first. SetSources compensates by inserting in
// reverse so that its caller-supplied order survives into the sample-time
// enumeration; SetSourcesRev is the mirror operation, used by the postfix
// compiler where sources arrive already reversed (stack pop order).
type Graph struct {
	channels int
	nodes    []Node
	// incoming[sink] holds the NodeIDs feeding sink, most-recently-added
	// first.
	incoming [][]NodeID
	// scratch is reused across every node's Sample call during a single
	// traversal and across traversals; it is sized once at construction.
	scratch Frame
	// order is the cached topological order; empty when the graph is
	// empty or cyclic.
	order []NodeID
}

// NewGraph creates an empty graph for the given channel count and
// pre-allocates the scratch buffer shared by every node's Sample call.
func NewGraph(channels int) *Graph {
	return &Graph{
		channels: channels,
		scratch:  make(Frame, channels*MaxSources),
	}
}

// Channels returns the channel count fixed at construction.
func (g *Graph) Channels() int { return g.channels }

// AddNode takes ownership of n and returns a stable handle to it.
func (g *Graph) AddNode(n Node) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, n)
	g.incoming = append(g.incoming, nil)
	return id
}

// Node returns the node behind id. Panics if id is out of range, same as
// any other slice-index misuse by the caller.
func (g *Graph) Node(id NodeID) Node { return g.nodes[id] }

func (g *Graph) clearSources(sink NodeID) {
	g.incoming[sink] = g.incoming[sink][:0]
}

func (g *Graph) prepend(sink, source NodeID) {
	g.incoming[sink] = append(g.incoming[sink], 0)
	copy(g.incoming[sink][1:], g.incoming[sink][:len(g.incoming[sink])-1])
	g.incoming[sink][0] = source
}

// Connect clears b's incoming edges and adds a single edge a->b.
func (g *Graph) Connect(a, b NodeID) {
	g.clearSources(b)
	g.prepend(b, a)
	g.UpdateOrder()
}

// Chain connects nodes[i] -> nodes[i+1] for each consecutive pair,
// clearing each sink's prior sources except nodes[0], whose sources are
// left untouched.
func (g *Graph) Chain(nodes []NodeID) {
	for i := 0; i < len(nodes)-1; i++ {
		g.clearSources(nodes[i+1])
		g.prepend(nodes[i+1], nodes[i])
	}
	g.UpdateOrder()
}

// SetSources clears sink's incoming edges then connects sources so that
// the sample-time enumeration yields them in the given order.
func (g *Graph) SetSources(sink NodeID, sources []NodeID) {
	g.clearSources(sink)
	for i := len(sources) - 1; i >= 0; i-- {
		g.prepend(sink, sources[i])
	}
	g.UpdateOrder()
}

// SetSourcesRev is the mirror of SetSources: the sample-time enumeration
// yields sources in reverse of the given order.
func (g *Graph) SetSourcesRev(sink NodeID, sources []NodeID) {
	g.clearSources(sink)
	for _, s := range sources {
		g.prepend(sink, s)
	}
	g.UpdateOrder()
}

// Clear drops every node and edge, returning the graph to its
// just-constructed state (the scratch buffer is kept).
func (g *Graph) Clear() {
	g.nodes = nil
	g.incoming = nil
	g.order = nil
}

// UpdateOrder recomputes the cached topological order. On a cycle the
// order is set empty, degrading Sample to a safe no-op rather than
// looping forever. Every mutating method above calls this already; it is
// exported so callers building a graph through lower-level means can
// request a recompute explicitly.
func (g *Graph) UpdateOrder() {
	order, ok := toposort(g.incoming, len(g.nodes))
	if !ok {
		g.order = g.order[:0]
		return
	}
	g.order = order
}

// toposort computes a topological order of n nodes from their incoming
// edge lists using Kahn's algorithm. ok is false on a cycle.
func toposort(incoming [][]NodeID, n int) (order []NodeID, ok bool) {
	indegree := make([]int, n)
	outgoing := make([][]NodeID, n)
	for sink, sources := range incoming {
		indegree[sink] = len(sources)
		for _, src := range sources {
			outgoing[src] = append(outgoing[src], NodeID(sink))
		}
	}

	queue := make([]NodeID, 0, n)
	for id := 0; id < n; id++ {
		if indegree[id] == 0 {
			queue = append(queue, NodeID(id))
		}
	}

	order = make([]NodeID, 0, n)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range outgoing[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != n {
		return nil, false
	}
	return order, true
}

// Sample computes and returns the next frame of the graph's output.
// external is copied into the scratch buffer for every root node (one
// with no sources); its first channels scalars are the host input frame
// and anything beyond that is the automation parameter snapshot read by
// Parameter nodes. Every other node reads its sources' outputs as
// computed earlier in the same traversal. Returns the output of the
// last node in topological order, or the (unspecified) scratch buffer
// contents if the graph is empty or cyclic.
func (g *Graph) Sample(external Frame) Frame {
	channels := g.channels
	for _, id := range g.order {
		n := g.nodes[id]
		if n.Inputs() > 0 {
			for i, src := range g.incoming[id] {
				offset := i * channels
				copy(g.scratch[offset:offset+channels], g.nodes[src].Output())
			}
		} else {
			copy(g.scratch, external)
		}
		n.Sample(g.scratch)
	}
	if len(g.order) == 0 {
		return g.scratch
	}
	return g.nodes[g.order[len(g.order)-1]].Output()
}
