package compiler

import "fmt"

// CompileError is returned when a program fails to compile. It carries
// the 1-based token index and the offending token alongside the
// human-readable message so callers (the cmd/rpncheck front-end, tests)
// can inspect the failure structurally instead of parsing Error()'s text.
type CompileError struct {
	TokenIndex int
	Token      string
	Msg        string
}

func (e *CompileError) Error() string {
	return e.Msg
}

func notEnoughInputs(index int, token string) *CompileError {
	return &CompileError{
		TokenIndex: index,
		Token:      token,
		Msg:        fmt.Sprintf("Node #%d `%s` has not enough inputs on the stack.", index, token),
	}
}

func unknownModule(index int, token string) *CompileError {
	return &CompileError{
		TokenIndex: index,
		Token:      token,
		Msg:        fmt.Sprintf("Node #%d `%s` is unknown module.", index, token),
	}
}

func nothingToPop(index int) *CompileError {
	return &CompileError{TokenIndex: index, Token: "pop", Msg: fmt.Sprintf("Nothing to pop at #%d!", index)}
}

func nothingToDup(index int) *CompileError {
	return &CompileError{TokenIndex: index, Token: "dup", Msg: fmt.Sprintf("Nothing to dup at #%d!", index)}
}

func nothingToSwap(index int) *CompileError {
	return &CompileError{TokenIndex: index, Token: "swap", Msg: fmt.Sprintf("Nothing to swap at #%d!", index)}
}

func nothingToRot(index int) *CompileError {
	return &CompileError{TokenIndex: index, Token: "rot", Msg: fmt.Sprintf("Nothing to rot at #%d!", index)}
}
