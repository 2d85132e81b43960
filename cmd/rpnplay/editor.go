package main

import (
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// LineEditor puts stdin into raw mode and assembles bytes into lines,
// calling onLine each time the user presses Enter. It is the editor
// thread described by the engine: every accepted line is a new program
// text to recompile.
type LineEditor struct {
	onLine  func(string)
	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once
	fd      int
	oldTerm *term.State
}

// NewLineEditor builds a LineEditor that calls onLine for each submitted
// program line.
func NewLineEditor(onLine func(string)) *LineEditor {
	return &LineEditor{
		onLine: onLine,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins reading in a
// goroutine; it returns once the reader has been launched.
func (e *LineEditor) Start() error {
	e.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(e.fd)
	if err != nil {
		close(e.done)
		return err
	}
	e.oldTerm = oldState

	if err := syscall.SetNonblock(e.fd, true); err != nil {
		_ = term.Restore(e.fd, e.oldTerm)
		close(e.done)
		return err
	}

	go e.loop()
	return nil
}

func (e *LineEditor) loop() {
	defer close(e.done)
	buf := make([]byte, 1)
	var line []byte

	for {
		select {
		case <-e.stopCh:
			return
		default:
		}

		n, err := syscall.Read(e.fd, buf)
		if n > 0 {
			b := buf[0]
			switch {
			case b == '\r' || b == '\n':
				if len(line) > 0 {
					e.onLine(string(line))
					line = line[:0]
				}
			case b == 0x7F || b == 0x08:
				if len(line) > 0 {
					line = line[:len(line)-1]
				}
			default:
				line = append(line, b)
			}
		}
		if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
			time.Sleep(5 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if n == 0 {
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// Stop terminates the reading goroutine and restores stdin.
func (e *LineEditor) Stop() {
	e.stopped.Do(func() {
		close(e.stopCh)
	})
	<-e.done
	if e.oldTerm != nil {
		_ = syscall.SetNonblock(e.fd, false)
		_ = term.Restore(e.fd, e.oldTerm)
	}
}
