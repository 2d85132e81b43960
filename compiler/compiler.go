// Package compiler turns a postfix (RPN) program string into an
// audiograph.Graph by running a stack machine over whitespace-separated
// tokens: node-producing tokens consume their declared arity off the
// stack as sources and push the new node, stack operators (pop, dup,
// swap, rot) rearrange the stack directly.
package compiler

import (
	"strconv"
	"strings"

	"github.com/ul/sound-garden-vst/audiograph"
)

// Compile builds a graph from program, or returns a *CompileError
// referencing the 1-based index and text of the token that broke
// compilation. On error the caller's previous graph (if any) is
// untouched — Compile never mutates anything but the graph it returns.
func Compile(program string, ctx Context) (*audiograph.Graph, error) {
	tokens := strings.Fields(program)
	g := audiograph.NewGraph(ctx.Channels)
	stack := make([]audiograph.NodeID, 0, len(tokens))

	for i, token := range tokens {
		index := i + 1

		if node, ok := buildNode(g, ctx, token); ok {
			arity := int(node.Inputs())
			if len(stack) < arity {
				return nil, notEnoughInputs(index, token)
			}
			idx := g.AddNode(node)
			sources := make([]audiograph.NodeID, arity)
			for k := 0; k < arity; k++ {
				sources[k] = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
			g.SetSourcesRev(idx, sources)
			stack = append(stack, idx)
			continue
		}

		switch token {
		case "pop":
			if len(stack) == 0 {
				return nil, nothingToPop(index)
			}
			stack = stack[:len(stack)-1]
		case "dup":
			if len(stack) == 0 {
				return nil, nothingToDup(index)
			}
			stack = append(stack, stack[len(stack)-1])
		case "swap":
			n := len(stack)
			if n < 2 {
				return nil, nothingToSwap(index)
			}
			stack[n-2], stack[n-1] = stack[n-1], stack[n-2]
		case "rot":
			n := len(stack)
			if n < 3 {
				return nil, nothingToRot(index)
			}
			stack[n-2], stack[n-1] = stack[n-1], stack[n-2]
			stack[n-3], stack[n-1] = stack[n-1], stack[n-3]
		default:
			return nil, unknownModule(index, token)
		}
	}

	return g, nil
}

// buildNode resolves a single token to a constructed node, trying the
// catalog, then a numeric literal, then the param:<N> prefix form. ok is
// false for stack operators and genuinely unknown tokens.
func buildNode(g *audiograph.Graph, ctx Context, token string) (node audiograph.Node, ok bool) {
	if factory, found := catalog[token]; found {
		return factory(ctx), true
	}

	if x, err := strconv.ParseFloat(token, 64); err == nil {
		return audiograph.NewConstant(ctx.Channels, x), true
	}

	if parts := strings.Split(token, ":"); parts[0] == "param" && len(parts) > 1 {
		if index, err := strconv.Atoi(parts[1]); err == nil {
			return audiograph.NewParameter(ctx.Channels, index), true
		}
	}

	return nil, false
}
