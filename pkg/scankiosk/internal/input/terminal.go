package input

import (
	"context"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/BrandonKowalski/scankiosk/pkg/scankiosk/constants"
	"golang.org/x/term"
)

const (
	byteCtrlC     = 0x03
	byteTab       = '\t'
	byteLF        = '\n'
	byteCR        = '\r'
	byteEscape    = 0x1b
	byteBackspace = 0x7f
)

// TerminalSource reads raw key presses from a terminal.
// Scanners plugged into a desktop session type into whatever has focus, so in
// development the scanner can be pointed at the terminal running the kiosk.
type TerminalSource struct {
	In *os.File
}

// NewTerminalSource reads from stdin.
func NewTerminalSource() *TerminalSource {
	return &TerminalSource{In: os.Stdin}
}

// Run switches the terminal to raw mode, emits keys until ctx is cancelled or
// Ctrl-C is read, and restores the terminal before returning.
func (s *TerminalSource) Run(ctx context.Context, emit Emit) error {
	fd := int(s.In.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("input: raw mode: %w", err)
		}
		defer term.Restore(fd, state)
	}

	chunks := make(chan []byte)
	errs := make(chan error, 1)
	go readChunks(ctx, s.In, chunks, errs)

	var tr TerminalTranslator
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("input: read terminal: %w", err)
		case chunk := <-chunks:
			keys, interrupted := tr.Translate(chunk)
			for _, k := range keys {
				emit(k)
			}
			if interrupted {
				return ErrInterrupted
			}
		}
	}
}

// readChunks forwards reads from r until it fails or ctx is done. errs must
// have room for one error. A Read already blocked on r is not interrupted,
// but nothing read after ctx is done is delivered.
func readChunks(ctx context.Context, r io.Reader, out chan<- []byte, errs chan<- error) {
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
		if err != nil {
			errs <- err
			return
		}
	}
}

// TerminalTranslator converts raw terminal bytes into key identifiers.
// Multi-byte UTF-8 characters and escape sequences split across reads are
// carried over to the next call.
type TerminalTranslator struct {
	pending []byte
}

// Translate returns the keys in b and whether Ctrl-C was seen.
// Keys after a Ctrl-C are dropped.
func (t *TerminalTranslator) Translate(b []byte) (keys []string, interrupted bool) {
	data := append(t.pending, b...)
	t.pending = nil

	for len(data) > 0 {
		c := data[0]
		switch {
		case c == byteCtrlC:
			return keys, true
		case c == byteCR || c == byteLF:
			// CRLF is one Enter
			if c == byteCR && len(data) > 1 && data[1] == byteLF {
				data = data[1:]
			}
			keys = append(keys, constants.KeyEnter)
			data = data[1:]
		case c == byteTab:
			keys = append(keys, constants.KeyTab)
			data = data[1:]
		case c == byteBackspace || c == '\b':
			keys = append(keys, constants.KeyBackspace)
			data = data[1:]
		case c == byteEscape:
			key, n, complete := parseEscape(data)
			if !complete {
				t.pending = append(t.pending, data...)
				return keys, false
			}
			keys = append(keys, key)
			data = data[n:]
		case c < 0x20:
			keys = append(keys, constants.KeyUnknown)
			data = data[1:]
		default:
			if !utf8.FullRune(data) {
				t.pending = append(t.pending, data...)
				return keys, false
			}
			r, size := utf8.DecodeRune(data)
			if r == utf8.RuneError {
				keys = append(keys, constants.KeyUnknown)
			} else {
				keys = append(keys, string(r))
			}
			data = data[size:]
		}
	}
	return keys, false
}

// parseEscape reads a CSI arrow sequence or a lone Escape from data[0] == ESC.
func parseEscape(data []byte) (key string, n int, complete bool) {
	if len(data) == 1 {
		// A lone ESC at the end of a read is the Escape key.
		return constants.KeyEscape, 1, true
	}
	if data[1] != '[' && data[1] != 'O' {
		return constants.KeyEscape, 1, true
	}
	if len(data) < 3 {
		return "", 0, false
	}
	switch data[2] {
	case 'A':
		return constants.KeyArrowUp, 3, true
	case 'B':
		return constants.KeyArrowDown, 3, true
	case 'C':
		return constants.KeyArrowRight, 3, true
	case 'D':
		return constants.KeyArrowLeft, 3, true
	}
	// Skip the rest of an unsupported CSI sequence up to its final byte.
	for i := 2; i < len(data); i++ {
		if data[i] >= 0x40 && data[i] <= 0x7e {
			return constants.KeyUnknown, i + 1, true
		}
	}
	return "", 0, false
}
