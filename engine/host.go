package engine

import (
	"log"
	"sync"

	"github.com/ul/sound-garden-vst/audiograph"
	"github.com/ul/sound-garden-vst/compiler"
)

// EditorBridge is the callback surface the host calls into after a
// recompile, named after the two functions the original script bridge
// exposed to the core: ReportError mirrors Error.report(msg), SetText
// mirrors Editor.set_text(text). Implementations are free to ignore
// either call.
type EditorBridge interface {
	// ReportError is called with the compile error message, or an empty
	// string on success (clearing any previously reported error).
	ReportError(msg string)
}

// TextSetter is an optional capability a bridge may additionally
// implement to receive the program text that was just set, e.g. to seed
// an editor UI when the host pushes an initial program.
type TextSetter interface {
	SetText(text string)
}

// NopBridge discards every callback; useful for hosts (or tests) that
// don't have an editor attached.
type NopBridge struct{}

func (NopBridge) ReportError(string) {}

// LogBridge reports compile errors through the standard logger.
type LogBridge struct{}

func (LogBridge) ReportError(msg string) {
	if msg != "" {
		log.Printf("compile error: %s", msg)
	}
}

// Host owns the live graph behind a mutex shared between the audio
// thread (Sample) and the editor thread (GraphTextChange). Replacement
// is wholesale reassignment of the graph pointer; the old graph is
// dropped by whichever side holds the lock when the swap happens.
type Host struct {
	mu       sync.Mutex
	graph    *audiograph.Graph
	context  *Context
	lastText string
	out      audiograph.Frame
}

// NewHost builds a Host with an empty initial graph sized from ctx.
func NewHost(ctx *Context) *Host {
	channels := ctx.Channels()
	return &Host{graph: audiograph.NewGraph(channels), context: ctx, out: make(audiograph.Frame, channels)}
}

// Sample is the audio-thread entry point: it locks, delegates to the
// live graph, copies the result into a buffer owned by the Host (sized
// once at construction) so the caller never holds a reference into the
// graph's internal scratch buffer past the lock, and unlocks. It never
// allocates.
func (h *Host) Sample(external audiograph.Frame) audiograph.Frame {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := h.graph.Sample(external)
	copy(h.out, out)
	return h.out
}

// GraphTextChange is the editor-thread entry point: it compiles text
// against a snapshot of the context and, on success, swaps it in under
// the lock and reports success (empty error string) through bridge; on
// failure the live graph is left untouched and the error is reported
// instead.
func (h *Host) GraphTextChange(text string, bridge EditorBridge) {
	ctx := h.context.Snapshot()
	g, err := compiler.Compile(text, ctx)
	if err != nil {
		bridge.ReportError(err.Error())
		return
	}

	h.mu.Lock()
	h.graph = g
	h.lastText = text
	h.mu.Unlock()

	bridge.ReportError("")
	if setter, ok := bridge.(TextSetter); ok {
		setter.SetText(text)
	}
}

// LastText returns the program text behind the currently live graph.
func (h *Host) LastText() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.lastText
}
