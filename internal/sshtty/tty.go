// Package sshtty adapts an SSH session into a terminal tcell can drive, so
// each remote player gets their own screen.
package sshtty

import (
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gliderlabs/ssh"

	"github.com/samdwyer/tilequest/internal/ui"
)

// ErrNoPTY is returned for sessions that did not request a pseudo-terminal.
var ErrNoPTY = errors.New("session has no pty")

// DefaultTerm is used when the client does not send TERM.
const DefaultTerm = "xterm-256color"

// Tty implements tcell.Tty over the byte stream of an SSH session.
type Tty struct {
	rw io.ReadWriteCloser

	mu       sync.Mutex
	size     ssh.Window
	windows  <-chan ssh.Window
	onResize func()
	watch    sync.Once
}

// New wraps rw. pty carries the initial window; windows delivers later resizes.
func New(rw io.ReadWriteCloser, pty ssh.Pty, windows <-chan ssh.Window) *Tty {
	return &Tty{rw: rw, size: pty.Window, windows: windows}
}

func (t *Tty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.rw.Write(b) }
func (t *Tty) Close() error                { return t.rw.Close() }

// Start, Stop and Drain have nothing to do: the channel is already open and
// its lifetime belongs to the session handler.
func (t *Tty) Start() error { return nil }
func (t *Tty) Stop() error  { return nil }
func (t *Tty) Drain() error { return nil }

// WindowSize returns the most recent window dimensions.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.size.Width, Height: t.size.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts a
// goroutine that follows the window channel until the session closes it.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	t.watch.Do(func() {
		go t.follow()
	})
}

func (t *Tty) follow() {
	for win := range t.windows {
		t.mu.Lock()
		t.size = win
		cb := t.onResize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}

var _ tcell.Tty = (*Tty)(nil)

// termMu serializes TERM changes around terminfo screen creation, which reads
// the process environment.
var termMu sync.Mutex

// Term returns the TERM value of an SSH environment, or DefaultTerm.
func Term(environ []string) string {
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok && v != "" {
			return v
		}
	}
	return DefaultTerm
}

// NewScreen creates an initialized screen that renders into sess.
func NewScreen(sess ssh.Session) (*ui.Screen, error) {
	pty, windows, ok := sess.Pty()
	if !ok {
		return nil, ErrNoPTY
	}
	term := pty.Term
	if term == "" {
		term = Term(sess.Environ())
	}

	termMu.Lock()
	prev, had := os.LookupEnv("TERM")
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(New(sess, pty, windows))
	if had {
		_ = os.Setenv("TERM", prev)
	} else {
		_ = os.Unsetenv("TERM")
	}
	termMu.Unlock()
	if err != nil {
		return nil, err
	}
	return ui.NewScreenFrom(screen)
}
