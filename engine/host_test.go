package engine

import "testing"

type recordingBridge struct {
	lastErr  string
	lastText string
}

func (b *recordingBridge) ReportError(msg string) { b.lastErr = msg }
func (b *recordingBridge) SetText(text string)    { b.lastText = text }

func TestHost_GraphTextChangeSuccessClearsError(t *testing.T) {
	ctx := NewContext(2, 48000, 16)
	h := NewHost(ctx)
	bridge := &recordingBridge{lastErr: "stale error"}

	h.GraphTextChange("1 1 +", bridge)

	if bridge.lastErr != "" {
		t.Fatalf("expected error to be cleared, got %q", bridge.lastErr)
	}
	if bridge.lastText != "1 1 +" {
		t.Fatalf("expected bridge to receive the new text, got %q", bridge.lastText)
	}

	out := h.Sample(make([]float64, 2))
	if out[0] != 2 || out[1] != 2 {
		t.Fatalf("expected 2.0 on every channel, got %v", out)
	}
}

func TestHost_GraphTextChangeFailureLeavesGraphUntouched(t *testing.T) {
	ctx := NewContext(2, 48000, 16)
	h := NewHost(ctx)
	bridge := &recordingBridge{}

	h.GraphTextChange("1 1 +", bridge)
	h.GraphTextChange("dup", bridge)

	if bridge.lastErr != "Nothing to dup at #1!" {
		t.Fatalf("expected compile error to be reported, got %q", bridge.lastErr)
	}

	out := h.Sample(make([]float64, 2))
	if out[0] != 2 || out[1] != 2 {
		t.Fatalf("expected the previous graph to remain live, got %v", out)
	}
}

func TestHost_NopBridgeIgnoresCallbacks(t *testing.T) {
	ctx := NewContext(2, 48000, 16)
	h := NewHost(ctx)
	h.GraphTextChange("1 1 +", NopBridge{})
	out := h.Sample(make([]float64, 2))
	if out[0] != 2 {
		t.Fatalf("expected 2.0, got %v", out[0])
	}
}
