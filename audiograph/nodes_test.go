package audiograph

import (
	"math"
	"testing"
)

func TestConstant_OutputsXForever(t *testing.T) {
	c := NewConstant(2, 0.5)
	for i := 0; i < 3; i++ {
		c.Sample(nil)
		if c.Output()[0] != 0.5 || c.Output()[1] != 0.5 {
			t.Fatalf("Constant drifted: %v", c.Output())
		}
	}
}

func TestInput_PassesExternalFrameThrough(t *testing.T) {
	in := NewInput(2)
	in.Sample(Frame{0.1, 0.2})
	if in.Output()[0] != 0.1 || in.Output()[1] != 0.2 {
		t.Fatalf("expected passthrough, got %v", in.Output())
	}
	in.Sample(Frame{0.3, 0.4})
	if in.Output()[0] != 0.3 || in.Output()[1] != 0.4 {
		t.Fatalf("expected passthrough on second frame, got %v", in.Output())
	}
}

func TestParameter_ReadsExternalFrameOffset(t *testing.T) {
	p := NewParameter(2, 1)
	external := Frame{0, 0, 10, 20}
	p.Sample(external)
	if p.Output()[0] != 20 || p.Output()[1] != 20 {
		t.Fatalf("expected parameter 1 (20) broadcast to both channels, got %v", p.Output())
	}
}

func TestSampleAndHold_HoldsBetweenTriggers(t *testing.T) {
	sh := NewSampleAndHold(1)
	sh.Sample(Frame{1, 5}) // trigger, sample 5
	if sh.Output()[0] != 5 {
		t.Fatalf("expected hold of 5, got %v", sh.Output()[0])
	}
	sh.Sample(Frame{0, 99}) // no trigger, stays at 5
	if sh.Output()[0] != 5 {
		t.Fatalf("expected output to stay held at 5, got %v", sh.Output()[0])
	}
}

func TestPan3_EqualPowerAtCenter(t *testing.T) {
	p := NewPan3(2)
	p.Sample(Frame{1, 1, 0, 0})
	l, r := p.Output()[0], p.Output()[1]
	// at c=0: left = sqrt(1)*1 + sqrt(0)*1 = 1, right = sqrt(0)*1 + sqrt(1)*1 = 1
	if math.Abs(l-1) > 1e-9 || math.Abs(r-1) > 1e-9 {
		t.Fatalf("expected centered stereo pass-through l=1,r=1, got l=%v r=%v", l, r)
	}
}

func TestMetro_FiresAtExpectedRate(t *testing.T) {
	const sampleRate = 48000
	const freq = 1000 // fires every 48 frames
	m := NewMetro(1, sampleRate)
	fires := 0
	for i := 0; i < sampleRate; i++ {
		m.Sample(Frame{freq})
		if m.Output()[0] == 1 {
			fires++
		}
	}
	want := sampleRate / (sampleRate / freq)
	if fires < want-1 || fires > want+1 {
		t.Fatalf("expected about %d fires, got %d", want, fires)
	}
}

func TestZip_AssemblesFirstChannelOfEachSource(t *testing.T) {
	z := NewZip(2)
	// flat input: source0 = [10, 99], source1 = [20, 98]
	z.Sample(Frame{10, 99, 20, 98})
	if z.Output()[0] != 10 || z.Output()[1] != 20 {
		t.Fatalf("expected [10, 20], got %v", z.Output())
	}
}

func TestBiQuadLPF_PassesDCAtUnityAfterSettling(t *testing.T) {
	const sampleRate = 48000
	bq := NewBiQuad(1, sampleRate, BiQuadLPF)
	var out Sample
	for i := 0; i < sampleRate; i++ {
		bq.Sample(Frame{1, 200, 0.707})
		out = bq.Output()[0]
	}
	if math.Abs(out-1) > 1e-2 {
		t.Fatalf("expected BiQuad LPF DC response near 1, got %v", out)
	}
}
