package input

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalTranslator(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "sc7\r", []string{"s", "c", "7", "Enter"}},
		{"crlf is one enter", "A\r\n", []string{"A", "Enter"}},
		{"lf", "A\n", []string{"A", "Enter"}},
		{"tab and backspace", "\tA\x7f", []string{"Tab", "A", "Backspace"}},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []string{"ArrowUp", "ArrowDown", "ArrowRight", "ArrowLeft"}},
		{"lone escape", "\x1b", []string{"Escape"}},
		{"escape then char", "\x1bx", []string{"Escape", "x"}},
		{"unsupported csi", "\x1b[3~A", []string{"Unidentified", "A"}},
		{"control char", "\x01", []string{"Unidentified"}},
		{"utf8", "É", []string{"É"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr TerminalTranslator
			keys, interrupted := tr.Translate([]byte(tt.in))
			assert.False(t, interrupted)
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestTerminalTranslator_SplitReads(t *testing.T) {
	var tr TerminalTranslator

	e := []byte("É")
	keys, _ := tr.Translate(e[:1])
	assert.Empty(t, keys)
	keys, _ = tr.Translate(e[1:])
	assert.Equal(t, []string{"É"}, keys)

	keys, _ = tr.Translate([]byte("\x1b["))
	assert.Empty(t, keys)
	keys, _ = tr.Translate([]byte("A"))
	assert.Equal(t, []string{"ArrowUp"}, keys)
}

func TestTerminalTranslator_CtrlC(t *testing.T) {
	var tr TerminalTranslator

	keys, interrupted := tr.Translate([]byte("AB\x03CD"))
	assert.True(t, interrupted)
	assert.Equal(t, []string{"A", "B"}, keys)
}

func TestTerminalSource_ReadsPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	src := &TerminalSource{In: r}

	var keys []string
	done := make(chan error, 1)
	go func() {
		done <- src.Run(context.Background(), func(k string) { keys = append(keys, k) })
	}()

	_, err = w.Write([]byte("IV8\r"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("terminal source did not stop at EOF")
	}
	assert.Equal(t, []string{"I", "V", "8", "Enter"}, keys)
}

func TestTerminalSource_Interrupted(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	src := &TerminalSource{In: r}
	done := make(chan error, 1)
	go func() {
		done <- src.Run(context.Background(), func(string) {})
	}()

	_, err = w.Write([]byte{0x03})
	require.NoError(t, err)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrInterrupted)
	case <-time.After(2 * time.Second):
		t.Fatal("terminal source ignored Ctrl-C")
	}
}

func TestTerminalSource_ContextCancel(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	src := &TerminalSource{In: r}
	done := make(chan error, 1)
	go func() {
		done <- src.Run(ctx, func(string) {})
	}()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("terminal source ignored cancellation")
	}
}

func TestReadChunks_StopsWhenNobodyReads(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chunks := make(chan []byte)
	errs := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		readChunks(ctx, strings.NewReader("sc7\r"), chunks, errs)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("readChunks blocked on an unread channel after cancel")
	}
	assert.Empty(t, errs)
}
