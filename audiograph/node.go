package audiograph

// Node is the capability every DSP node in the graph implements. A Node
// owns whatever internal state it needs to produce bit-identical output
// for identical input sequences; the graph never reaches into that state,
// it only calls these three methods.
type Node interface {
	// Inputs returns how many source connections this node requires.
	// It determines how many contiguous channel-wide slots of the input
	// slice passed to Sample belong to this node.
	Inputs() uint8

	// Output returns the node's most recently computed frame. It must be
	// idempotent: calling it twice with no intervening Sample leaves the
	// returned frame unchanged.
	Output() Frame

	// Sample advances the node by exactly one frame. input is a flat
	// buffer of length Inputs()*channels, laid out source-major then
	// channel-minor: input[k*channels+c] is channel c of the k-th source.
	// A node with Inputs() == 0 may still read the first `channels`
	// scalars of input as the host's external frame.
	Sample(input Frame)
}

// NodeID is a stable handle to a node owned by a Graph. It stays valid
// until the node (or the whole graph) is removed, and is reused after a
// graph reset.
type NodeID int
