// Command rpncheck compiles a postfix program file (or stdin) without
// playing it, reporting either a short summary of the resulting graph or
// the exact compile error, for use in editor tooling and CI.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ul/sound-garden-vst/compiler"
)

func main() {
	var (
		program    = pflag.StringP("program", "p", "", "postfix program text to compile")
		file       = pflag.StringP("file", "f", "", "path to a file containing the program to compile")
		channels   = pflag.IntP("channels", "c", 2, "output channel count")
		sampleRate = pflag.IntP("rate", "r", 48000, "sample rate in Hz")
		parameters = pflag.IntP("params", "n", 16, "number of addressable parameters")
	)
	pflag.Parse()

	text, err := loadProgram(*program, *file, pflag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := compiler.Context{Channels: *channels, SampleRate: *sampleRate, Parameters: *parameters}
	g, err := compiler.Compile(text, ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("ok: %d channel(s), sample rate %d, %d parameter(s)\n", g.Channels(), *sampleRate, *parameters)
}

// loadProgram resolves the program text to compile, in order of
// precedence: an explicit -program flag, a -file path, a positional
// file-path argument, then stdin if it is piped rather than a terminal.
func loadProgram(program, file, positional string) (string, error) {
	if program != "" {
		return program, nil
	}

	path := file
	if path == "" {
		path = positional
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	if stat, err := os.Stdin.Stat(); err == nil && stat.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	return "", fmt.Errorf("no program given: pass -program, -file, a file path argument, or pipe a program on stdin")
}
