package modes

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"termfolio/engine"
)

const (
	// ggWindow bounds the time between the two g presses of gg.
	ggWindow = 500 * time.Millisecond

	// statusRevert is how long an action label stays on the status
	// line before it falls back to the mode name.
	statusRevert = 1500 * time.Millisecond

	// scrollStep is the fixed line amount emitted per j/k press.
	scrollStep = 3
)

// Controller is the single keyboard entry point. It owns the mode
// state machine and translates keys into the wired callbacks; keys it
// does not understand are reported unhandled so the caller can pass
// them on. All methods run on the event goroutine.
type Controller struct {
	clock engine.TimeProvider

	mode     Mode
	active   bool
	tornDown bool

	bindings map[rune]Action

	// Core action callbacks. Nil callbacks are skipped.
	OnModeChange  func(m Mode)
	OnScroll      func(lines int)
	OnCycleEffect func(delta int)
	OnJumpTop     func()
	OnJumpBottom  func()

	// Mode-specific callbacks.
	OnCommand    func(cmd string)
	OnInsertRune func(r rune)
	OnSelectMove func(dx, dy int)

	// Pending g prefix, cleared by any other key or by the window
	// expiring before the second g.
	pendingKey rune
	pendingAt  time.Time

	// Single-slot transient status: the label and its revert
	// deadline. Replacing it supersedes the previous revert.
	flashText  string
	flashUntil time.Time

	command []rune
}

// NewController creates a controller in navigation mode with the
// built-in bindings, reading time from clock.
func NewController(clock engine.TimeProvider) *Controller {
	return &Controller{
		clock:    clock,
		mode:     ModeNav,
		active:   true,
		bindings: defaultBindings(),
		command:  make([]rune, 0, 32),
	}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode { return c.mode }

// SetActive gates key handling. While inactive every key is reported
// unhandled.
func (c *Controller) SetActive(b bool) { c.active = b }

// IsActive reports whether keys are being handled.
func (c *Controller) IsActive() bool { return c.active && !c.tornDown }

// CommandBuffer returns the command line typed so far.
func (c *Controller) CommandBuffer() string { return string(c.command) }

// ApplyKeymap merges key → action overrides from the config onto the
// built-in bindings. On error the existing bindings stay in place.
func (c *Controller) ApplyKeymap(overrides map[string]string) error {
	if len(overrides) == 0 {
		return nil
	}
	merged, err := mergeBindings(c.bindings, overrides)
	if err != nil {
		return err
	}
	c.bindings = merged
	return nil
}

// StatusLine returns the transient action label while its revert
// deadline is in the future, the plain mode name otherwise.
func (c *Controller) StatusLine() string {
	if !c.flashUntil.IsZero() && c.clock.Now().Before(c.flashUntil) {
		return c.flashText
	}
	return c.mode.String()
}

// Flash puts label on the status line until the revert deadline. It
// is how wired actions report their outcome.
func (c *Controller) Flash(label string) {
	if c.tornDown {
		return
	}
	c.flash(label)
}

// Teardown deactivates the controller and drops the pending prefix
// and status deadline. No timers or listeners survive it.
func (c *Controller) Teardown() {
	c.tornDown = true
	c.active = false
	c.pendingKey = 0
	c.flashUntil = time.Time{}
	c.flashText = ""
	c.command = nil
}

// HandleKey processes one key event and reports whether it was
// consumed. Escape always returns to navigation regardless of mode.
func (c *Controller) HandleKey(ev *tcell.EventKey) bool {
	if c.tornDown || !c.active {
		return false
	}
	if ev.Key() == tcell.KeyEscape {
		c.pendingKey = 0
		c.setMode(ModeNav)
		return true
	}

	switch c.mode {
	case ModeNav:
		return c.handleNav(ev)
	case ModeInsert:
		return c.handleInsert(ev)
	case ModeSelect:
		return c.handleSelect(ev)
	case ModeCommand:
		return c.handleCommand(ev)
	}
	return false
}

func (c *Controller) handleNav(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	action, ok := c.bindings[ev.Rune()]
	if !ok {
		c.pendingKey = 0
		return false
	}
	if action != ActionPrefixG {
		c.pendingKey = 0
	}

	switch action {
	case ActionModeInsert:
		c.setMode(ModeInsert)
	case ActionModeSelect:
		c.setMode(ModeSelect)
	case ActionModeCommand:
		c.setMode(ModeCommand)
	case ActionScrollDown:
		c.emitScroll(scrollStep, "scroll down")
	case ActionScrollUp:
		c.emitScroll(-scrollStep, "scroll up")
	case ActionEffectNext:
		c.emitCycle(1, "next effect")
	case ActionEffectPrev:
		c.emitCycle(-1, "prev effect")
	case ActionJumpTop:
		c.emitJumpTop()
	case ActionJumpBottom:
		c.emitJumpBottom()
	case ActionPrefixG:
		c.handlePrefixG()
	default:
		return false
	}
	return true
}

// handlePrefixG completes gg when the previous g is still fresh,
// otherwise it restarts the pending state.
func (c *Controller) handlePrefixG() {
	now := c.clock.Now()
	if c.pendingKey == 'g' && now.Sub(c.pendingAt) <= ggWindow {
		c.pendingKey = 0
		c.emitJumpTop()
		return
	}
	c.pendingKey = 'g'
	c.pendingAt = now
}

func (c *Controller) handleInsert(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	if c.OnInsertRune != nil {
		c.OnInsertRune(ev.Rune())
	}
	return true
}

func (c *Controller) handleSelect(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	var dx, dy int
	switch ev.Rune() {
	case 'h':
		dx = -1
	case 'l':
		dx = 1
	case 'k':
		dy = -1
	case 'j':
		dy = 1
	default:
		return false
	}
	if c.OnSelectMove != nil {
		c.OnSelectMove(dx, dy)
	}
	return true
}

func (c *Controller) handleCommand(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEnter:
		cmd := strings.TrimSpace(string(c.command))
		c.setMode(ModeNav)
		if cmd != "" && c.OnCommand != nil {
			c.OnCommand(cmd)
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(c.command) == 0 {
			c.setMode(ModeNav)
			return true
		}
		c.command = c.command[:len(c.command)-1]
		return true
	case tcell.KeyRune:
		c.command = append(c.command, ev.Rune())
		return true
	}
	return false
}

func (c *Controller) setMode(m Mode) {
	if c.mode == m {
		return
	}
	if c.mode == ModeCommand {
		c.command = c.command[:0]
	}
	c.mode = m
	if c.OnModeChange != nil {
		c.OnModeChange(m)
	}
	c.flash(m.String())
}

func (c *Controller) emitScroll(lines int, label string) {
	if c.OnScroll != nil {
		c.OnScroll(lines)
	}
	c.flash(label)
}

func (c *Controller) emitCycle(delta int, label string) {
	if c.OnCycleEffect != nil {
		c.OnCycleEffect(delta)
	}
	c.flash(label)
}

func (c *Controller) emitJumpTop() {
	if c.OnJumpTop != nil {
		c.OnJumpTop()
	}
	c.flash("top")
}

func (c *Controller) emitJumpBottom() {
	if c.OnJumpBottom != nil {
		c.OnJumpBottom()
	}
	c.flash("bottom")
}

func (c *Controller) flash(label string) {
	c.flashText = label
	c.flashUntil = c.clock.Now().Add(statusRevert)
}
