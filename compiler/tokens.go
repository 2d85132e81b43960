package compiler

import "github.com/ul/sound-garden-vst/audiograph"

// Context is the read-only snapshot of engine state the compiler needs
// to manufacture nodes: channel count and sample rate are baked into
// every node at construction time, and parameter count bounds which
// param:<N> tokens are meaningful (the compiler itself does not enforce
// that bound; out-of-range parameter taps simply read past the host's
// supplied parameter vector, which is the host adapter's contract to
// keep sized correctly).
type Context struct {
	Channels   int
	SampleRate int
	Parameters int
}

type nodeFactory func(ctx Context) audiograph.Node

// catalog maps every node-producing postfix token (including aliases)
// to the factory that builds it. This table, and nothing else, is the
// authority on what a token compiles to; it mirrors the token grammar
// one-for-one.
var catalog = map[string]nodeFactory{
	"s":    func(ctx Context) audiograph.Node { return audiograph.NewOsc(ctx.Channels, ctx.SampleRate, audiograph.Sine) },
	"sine": func(ctx Context) audiograph.Node { return audiograph.NewOscPhase(ctx.Channels, ctx.SampleRate, audiograph.Sine) },
	"t":    func(ctx Context) audiograph.Node { return audiograph.NewOsc(ctx.Channels, ctx.SampleRate, audiograph.Triangle) },
	"tri":  func(ctx Context) audiograph.Node { return audiograph.NewOscPhase(ctx.Channels, ctx.SampleRate, audiograph.Triangle) },
	"w":    func(ctx Context) audiograph.Node { return audiograph.NewPhasor(ctx.Channels, ctx.SampleRate) },
	"saw":  func(ctx Context) audiograph.Node { return audiograph.NewPhasor0(ctx.Channels, ctx.SampleRate) },
	"p":      func(ctx Context) audiograph.Node { return audiograph.NewPulse(ctx.Channels, ctx.SampleRate) },
	"pulse":  func(ctx Context) audiograph.Node { return audiograph.NewPulse(ctx.Channels, ctx.SampleRate) },
	"+": func(ctx Context) audiograph.Node { return audiograph.NewFn2(ctx.Channels, audiograph.Add) },
	"-": func(ctx Context) audiograph.Node { return audiograph.NewFn2(ctx.Channels, audiograph.Sub) },
	"*": func(ctx Context) audiograph.Node { return audiograph.NewFn2(ctx.Channels, audiograph.Mul) },
	"/": func(ctx Context) audiograph.Node { return audiograph.NewFn2(ctx.Channels, audiograph.Div) },
	`\`: func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Recip) },
	"^":   func(ctx Context) audiograph.Node { return audiograph.NewFn2(ctx.Channels, audiograph.Pow) },
	"pow": func(ctx Context) audiograph.Node { return audiograph.NewFn2(ctx.Channels, audiograph.Pow) },
	"unit": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Unit) },
	"r":     func(ctx Context) audiograph.Node { return audiograph.NewFn3(ctx.Channels, audiograph.Range) },
	"range": func(ctx Context) audiograph.Node { return audiograph.NewFn3(ctx.Channels, audiograph.Range) },
	"n":     func(ctx Context) audiograph.Node { return audiograph.NewNoise(ctx.Channels) },
	"noise": func(ctx Context) audiograph.Node { return audiograph.NewNoise(ctx.Channels) },
	"delay":    func(ctx Context) audiograph.Node { return audiograph.NewDelay(ctx.Channels, ctx.SampleRate, 60) },
	"fb":       func(ctx Context) audiograph.Node { return audiograph.NewFeedback(ctx.Channels, ctx.SampleRate, 60) },
	"feedback": func(ctx Context) audiograph.Node { return audiograph.NewFeedback(ctx.Channels, ctx.SampleRate, 60) },
	"lpf": func(ctx Context) audiograph.Node { return audiograph.NewLPF(ctx.Channels, ctx.SampleRate) },
	"hpf": func(ctx Context) audiograph.Node { return audiograph.NewHPF(ctx.Channels, ctx.SampleRate) },
	"l":     func(ctx Context) audiograph.Node { return audiograph.NewBiQuad(ctx.Channels, ctx.SampleRate, audiograph.BiQuadLPF) },
	"bqlpf": func(ctx Context) audiograph.Node { return audiograph.NewBiQuad(ctx.Channels, ctx.SampleRate, audiograph.BiQuadLPF) },
	"h":     func(ctx Context) audiograph.Node { return audiograph.NewBiQuad(ctx.Channels, ctx.SampleRate, audiograph.BiQuadHPF) },
	"bqhpf": func(ctx Context) audiograph.Node { return audiograph.NewBiQuad(ctx.Channels, ctx.SampleRate, audiograph.BiQuadHPF) },
	"m2f":       func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Midi2Freq) },
	"midi2freq": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Midi2Freq) },
	"round":     func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Round) },
	"quantize":  func(ctx Context) audiograph.Node { return audiograph.NewFn2(ctx.Channels, audiograph.Quantize) },
	"sin": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Sin) },
	"cos": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Cos) },
	"pan":  func(ctx Context) audiograph.Node { return audiograph.NewPan3(ctx.Channels) },
	"pan1": func(ctx Context) audiograph.Node { return audiograph.NewPan1(ctx.Channels) },
	"pan2": func(ctx Context) audiograph.Node { return audiograph.NewPan2(ctx.Channels) },
	"in":    func(ctx Context) audiograph.Node { return audiograph.NewInput(ctx.Channels) },
	"input": func(ctx Context) audiograph.Node { return audiograph.NewInput(ctx.Channels) },
	"cheb2": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Cheb2) },
	"cheb3": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Cheb3) },
	"cheb4": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Cheb4) },
	"cheb5": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Cheb5) },
	"cheb6": func(ctx Context) audiograph.Node { return audiograph.NewFn1(ctx.Channels, audiograph.Cheb6) },
	"sh":            func(ctx Context) audiograph.Node { return audiograph.NewSampleAndHold(ctx.Channels) },
	"sample&hold":   func(ctx Context) audiograph.Node { return audiograph.NewSampleAndHold(ctx.Channels) },
	"m":          func(ctx Context) audiograph.Node { return audiograph.NewMetro(ctx.Channels, ctx.SampleRate) },
	"metro":      func(ctx Context) audiograph.Node { return audiograph.NewMetro(ctx.Channels, ctx.SampleRate) },
	"dm":         func(ctx Context) audiograph.Node { return audiograph.NewDMetro(ctx.Channels, ctx.SampleRate) },
	"dmetro":     func(ctx Context) audiograph.Node { return audiograph.NewDMetro(ctx.Channels, ctx.SampleRate) },
	"mh":         func(ctx Context) audiograph.Node { return audiograph.NewMetroHold(ctx.Channels, ctx.SampleRate) },
	"metroHold":  func(ctx Context) audiograph.Node { return audiograph.NewMetroHold(ctx.Channels, ctx.SampleRate) },
	"dmh":        func(ctx Context) audiograph.Node { return audiograph.NewDMetroHold(ctx.Channels, ctx.SampleRate) },
	"dmetroHold": func(ctx Context) audiograph.Node { return audiograph.NewDMetroHold(ctx.Channels, ctx.SampleRate) },
	"yin":   func(ctx Context) audiograph.Node { return audiograph.NewYin(ctx.Channels, ctx.SampleRate, 1024, 512, 0.2) },
	"pitch": func(ctx Context) audiograph.Node { return audiograph.NewYin(ctx.Channels, ctx.SampleRate, 1024, 512, 0.2) },
	"zip": func(ctx Context) audiograph.Node { return audiograph.NewZip(ctx.Channels) },
}
