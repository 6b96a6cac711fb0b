package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

const (
	keyCtrlC     = 3
	keyBackspace = 8
	keyEscape    = 27
	keyDelete    = 127

	// Starts a command line, see bridge.Bridge.Execute
	keyCommand = ':'
)

type operator interface {
	HandleKey(key byte) bool
	HandleCommand(line string)
}

// terminal reads single key presses from a terminal in raw mode
type terminal struct {
	in    io.Reader
	out   io.Writer
	fd    int
	state *term.State
}

func openTerminal(in *os.File) (*terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Raw mode does not translate newlines
	log.SetOutput(crlfWriter{os.Stderr})
	return &terminal{in: in, out: os.Stderr, fd: fd, state: state}, nil
}

func (t *terminal) restore() error {
	log.SetOutput(os.Stderr)
	if t.state == nil {
		return nil
	}
	return term.Restore(t.fd, t.state)
}

func (t *terminal) readKeys(op operator, quit context.CancelFunc) {
	keys := &keyReader{op: op, echo: t.out}
	buf := make([]byte, 16)
	for {
		n, err := t.in.Read(buf)
		for _, key := range buf[:n] {
			if keys.handle(key) {
				log.Println("Received Ctrl-C")
				quit()
				return
			}
		}
		if err != nil {
			if err != io.EOF {
				log.Errorf("Failed to read keyboard input: %v", err)
			}
			return
		}
	}
}

// keyReader dispatches single keys, or collects a command line after keyCommand until Enter.
type keyReader struct {
	op      operator
	echo    io.Writer
	editing bool
	line    []byte
}

// handle processes one key and reports whether the operator asked to quit
func (k *keyReader) handle(key byte) bool {
	if key == keyCtrlC {
		return true
	}
	if !k.editing {
		if key == keyCommand {
			k.editing = true
			k.write(":")
		} else if !k.op.HandleKey(key) {
			log.Debugf("Unbound key %q", key)
		}
		return false
	}
	switch key {
	case '\r', '\n':
		k.write("\r\n")
		k.op.HandleCommand(string(k.line))
		k.reset()
	case keyEscape:
		k.write("\r\n")
		k.reset()
	case keyBackspace, keyDelete:
		if len(k.line) > 0 {
			k.line = k.line[:len(k.line)-1]
			k.write("\b \b")
		}
	default:
		k.line = append(k.line, key)
		k.write(string(key))
	}
	return false
}

func (k *keyReader) reset() {
	k.editing = false
	k.line = k.line[:0]
}

func (k *keyReader) write(s string) {
	if k.echo != nil {
		_, _ = io.WriteString(k.echo, s)
	}
}

type crlfWriter struct {
	out io.Writer
}

func (w crlfWriter) Write(p []byte) (int, error) {
	if _, err := w.out.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
