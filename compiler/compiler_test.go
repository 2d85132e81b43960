package compiler

import (
	"math"
	"testing"

	"github.com/ul/sound-garden-vst/audiograph"
)

func testContext() Context {
	return Context{Channels: 2, SampleRate: 48000, Parameters: 16}
}

func sampleN(t *testing.T, g *audiograph.Graph, channels, n int) audiograph.Frame {
	t.Helper()
	external := make(audiograph.Frame, channels)
	var out audiograph.Frame
	for i := 0; i < n; i++ {
		out = g.Sample(external)
	}
	return out
}

func TestCompile_EmptyProgram(t *testing.T) {
	g, err := Compile("", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := g.Sample(make(audiograph.Frame, 2))
	if len(out) != 2 {
		t.Fatalf("expected a 2-channel frame back from an empty graph, got %v", out)
	}
}

func TestCompile_AddLiteralsInExpectedOrder(t *testing.T) {
	g, err := Compile("1 2 +", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := g.Sample(make(audiograph.Frame, 2))
	if out[0] != 3 || out[1] != 3 {
		t.Fatalf("expected 3 on every channel, got %v", out)
	}
}

func TestCompile_ConstantArithmetic(t *testing.T) {
	g, err := Compile("1 1 +", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := g.Sample(make(audiograph.Frame, 2))
	if out[0] != 2 || out[1] != 2 {
		t.Fatalf("expected 2.0 on every channel, got %v", out)
	}
}

func TestCompile_Sine440At48Frames(t *testing.T) {
	g, err := Compile("440 s", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := sampleN(t, g, 2, 48)
	want := math.Sin(2 * math.Pi * 440 * 48 / 48000)
	if math.Abs(out[0]-want) > 1e-6 {
		t.Fatalf("expected approximately %v, got %v", want, out[0])
	}
}

func TestCompile_Sine440HalfAmplitude(t *testing.T) {
	full, err := Compile("440 s", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	half, err := Compile("440 s 0.5 *", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fullOut := sampleN(t, full, 2, 100)
	halfOut := sampleN(t, half, 2, 100)
	if math.Abs(halfOut[0]-fullOut[0]/2) > 1e-9 {
		t.Fatalf("expected half amplitude, got full=%v half=%v", fullOut[0], halfOut[0])
	}
}

func TestCompile_InputPassthrough(t *testing.T) {
	g, err := Compile("in", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := g.Sample(audiograph.Frame{0.1, 0.2})
	if out[0] != 0.1 || out[1] != 0.2 {
		t.Fatalf("expected passthrough of [0.1, 0.2], got %v", out)
	}
	out = g.Sample(audiograph.Frame{0.3, 0.4})
	if out[0] != 0.3 || out[1] != 0.4 {
		t.Fatalf("expected passthrough of [0.3, 0.4], got %v", out)
	}
}

func TestCompile_DupSquares(t *testing.T) {
	g, err := Compile("2 dup *", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := g.Sample(make(audiograph.Frame, 2))
	if out[0] != 4 || out[1] != 4 {
		t.Fatalf("expected 4.0, got %v", out)
	}
}

func TestCompile_DupOnEmptyStackErrors(t *testing.T) {
	_, err := Compile("dup", testContext())
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected a *CompileError, got %v", err)
	}
	if ce.TokenIndex != 1 {
		t.Fatalf("expected token index 1, got %d", ce.TokenIndex)
	}
	if ce.Error() != "Nothing to dup at #1!" {
		t.Fatalf("unexpected message: %q", ce.Error())
	}
}

func TestCompile_UnaryPlusErrorsAtSecondToken(t *testing.T) {
	_, err := Compile("+", testContext())
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected a *CompileError, got %v", err)
	}
	if ce.TokenIndex != 1 {
		t.Fatalf("expected token index 1 for bare '+', got %d", ce.TokenIndex)
	}

	_, err = Compile("1 +", testContext())
	ce, ok = err.(*CompileError)
	if !ok {
		t.Fatalf("expected a *CompileError, got %v", err)
	}
	if ce.TokenIndex != 2 {
		t.Fatalf("expected token index 2 for '1 +', got %d", ce.TokenIndex)
	}
}

func TestCompile_UnknownModule(t *testing.T) {
	_, err := Compile("bogus", testContext())
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected a *CompileError, got %v", err)
	}
	if ce.Error() != "Node #1 `bogus` is unknown module." {
		t.Fatalf("unexpected message: %q", ce.Error())
	}
}

func TestCompile_StackOperatorUnderflow(t *testing.T) {
	cases := []struct {
		program string
		want    string
	}{
		{"pop", "Nothing to pop at #1!"},
		{"swap", "Nothing to swap at #1!"},
		{"1 swap", "Nothing to swap at #2!"},
		{"rot", "Nothing to rot at #1!"},
		{"1 2 rot", "Nothing to rot at #3!"},
	}
	for _, c := range cases {
		_, err := Compile(c.program, testContext())
		ce, ok := err.(*CompileError)
		if !ok {
			t.Fatalf("program %q: expected a *CompileError, got %v", c.program, err)
		}
		if ce.Error() != c.want {
			t.Fatalf("program %q: expected %q, got %q", c.program, c.want, ce.Error())
		}
	}
}

func TestCompile_ParameterTap(t *testing.T) {
	g, err := Compile("param:1", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	external := audiograph.Frame{0, 0, 10, 20}
	out := g.Sample(external)
	if out[0] != 20 || out[1] != 20 {
		t.Fatalf("expected parameter 1 (20) broadcast, got %v", out)
	}
}

func TestCompile_BadParameterIndexIsUnknownModule(t *testing.T) {
	_, err := Compile("param:x", testContext())
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected a *CompileError, got %v", err)
	}
	if ce.Error() != "Node #1 `param:x` is unknown module." {
		t.Fatalf("unexpected message: %q", ce.Error())
	}
}

func TestCompile_SwapReordersSources(t *testing.T) {
	// 10 20 swap - : pushes 10, 20, swap gives stack [20,10], then '-'
	// pops top-first (10, 20), set_sources_rev yields (20,10) so sub sees
	// x=20, y=10 -> 20-10=10.
	g, err := Compile("10 20 swap -", testContext())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := g.Sample(make(audiograph.Frame, 2))
	if out[0] != 10 {
		t.Fatalf("expected 10, got %v", out[0])
	}
}
