// Command rpnplay is a minimal reference host for the postfix graph
// compiler: it plays the live graph through the system audio device and
// lets a terminal editor recompile it on the fly, one line at a time.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.design/x/clipboard"
	"golang.org/x/sync/errgroup"

	"github.com/ul/sound-garden-vst/engine"
)

type statusBridge struct {
	logger *log.Logger
}

func (b statusBridge) ReportError(msg string) {
	if msg == "" {
		b.logger.Info("graph updated")
		return
	}
	b.logger.Error("compile failed", "err", msg)
}

func main() {
	var (
		program     = flag.String("program", "", "initial postfix program text")
		file        = flag.String("file", "", "path to a file containing the initial postfix program")
		channels    = flag.Int("channels", 2, "output channel count")
		sampleRate  = flag.Int("rate", 48000, "sample rate in Hz")
		parameters  = flag.Int("parameters", 16, "number of addressable parameters")
		interactive = flag.Bool("interactive", true, "recompile the graph from stdin lines typed at a raw terminal")
		paste       = flag.Bool("paste", false, "read the initial program from the system clipboard")
	)
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})

	initial, fromPipe, err := loadInitialProgram(*program, *file, *paste)
	if err != nil {
		logger.Fatal("failed to load initial program", "err", err)
	}
	if fromPipe {
		// stdin was already consumed to load the program text; there is
		// nothing left for the raw-terminal line editor to read.
		*interactive = false
	}

	ctx := engine.NewContext(*channels, *sampleRate, *parameters)
	host := engine.NewHost(ctx)
	bridge := statusBridge{logger: logger}

	host.GraphTextChange(initial, bridge)

	player, err := NewPlayer(*sampleRate, *channels)
	if err != nil {
		logger.Fatal("failed to open audio device", "err", err)
	}
	player.SetupPlayer(host)
	player.Start()
	defer player.Close()

	logger.Info("playing", "program", initial, "channels", *channels, "rate", *sampleRate)

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !*interactive {
		<-sigCtx.Done()
		return
	}

	group, _ := errgroup.WithContext(sigCtx)
	editor := NewLineEditor(func(line string) {
		host.GraphTextChange(line, bridge)
	})

	group.Go(func() error {
		if err := editor.Start(); err != nil {
			return fmt.Errorf("editor: %w", err)
		}
		<-sigCtx.Done()
		editor.Stop()
		return nil
	})

	if err := group.Wait(); err != nil {
		logger.Error("exiting", "err", err)
	}
}

// loadInitialProgram resolves the program text to compile at startup, in
// order of precedence: an explicit -program flag, the system clipboard
// (-paste), a -file path, then stdin if it is piped rather than a
// terminal. fromPipe reports whether stdin was the source, so the caller
// can skip starting the interactive line editor on the same descriptor.
func loadInitialProgram(program, file string, paste bool) (text string, fromPipe bool, err error) {
	if program != "" {
		return program, false, nil
	}

	if paste {
		if err := clipboard.Init(); err != nil {
			return "", false, fmt.Errorf("clipboard unavailable: %w", err)
		}
		if clip := clipboard.Read(clipboard.FmtText); len(clip) > 0 {
			return strings.TrimSpace(string(clip)), false, nil
		}
	}

	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", false, fmt.Errorf("reading %s: %w", file, err)
		}
		return strings.TrimSpace(string(data)), false, nil
	}

	if stat, statErr := os.Stdin.Stat(); statErr == nil && stat.Mode()&os.ModeCharDevice == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", false, fmt.Errorf("reading stdin: %w", err)
		}
		if piped := strings.TrimSpace(string(data)); piped != "" {
			return piped, true, nil
		}
	}

	return "0", false, nil
}
