// Package teatest runs bubbletea models synchronously in tests.
//
// Instead of starting a tea.Program, the Driver calls Update directly and
// drains every returned Cmd in the calling goroutine, so model behavior is
// deterministic to assert on. Cursor blink Cmds block on timer channels;
// they are executed with a short timeout and dropped when they stall.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrain caps recursive command draining so a message loop cannot hang
// the test.
const maxDrain = 100

// cmdTimeout separates real Cmds, which return in microseconds, from blink
// timers, which block for about half a second.
const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to a tea.Model and drains the resulting commands.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.QuitMsg is seen. The real runtime
	// intercepts it before the model, so the driver tracks it itself.
	Quitting bool
}

// New wraps model in a driver. Call DrainInit before sending anything so
// the Init command runs.
func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{T: t, Model: model}
}

// DrainInit executes the model's Init command chain.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send dispatches one message through Update and drains the result.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drain(cmd, 0)
}

// Press sends a single character key.
func (d *Driver) Press(r rune) {
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

// Type sends a string one key event at a time.
func (d *Driver) Type(s string) {
	for _, r := range s {
		d.Press(r)
	}
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrain {
		d.T.Logf("teatest: drain depth limit (%d) reached", maxDrain)
		return
	}

	msg := execWithTimeout(cmd)
	if msg == nil || isCursorBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, ok := msg.(tea.QuitMsg); ok {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	updated, next := d.Model.Update(msg)
	d.Model = updated
	d.drain(next, depth+1)
}

func execWithTimeout(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}

// isCursorBlink matches the unexported blink message types of
// bubbles/cursor, which chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink")
}
