package client

import (
	"context"
	"errors"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/SAFAL-TIWARI/brevify/internal/render"
	"github.com/SAFAL-TIWARI/brevify/internal/summarize"
)

// ErrBusy is returned when Submit is called while a request is in flight.
var ErrBusy = errors.New("a summarization request is already in flight")

// ErrNoSummary is returned by CopyResult before any summary exists.
var ErrNoSummary = errors.New("no summary to copy")

// Copy-control labels.
const (
	CopyLabelIdle      = "Copy"
	CopyLabelConfirmed = "Copied!"
)

// Controller owns the transient UI state of one summarizer session: the
// selected mode, the selected length tier, the in-flight flag, and the last
// result. It moves Idle → Submitting → Idle exactly once per attempt; the
// return to Idle is unconditional.
type Controller struct {
	api *Client

	mu          sync.Mutex
	mode        summarize.Mode
	length      summarize.Length
	inFlight    bool
	summary     string
	copyConfirm bool
	copyTimer   *time.Timer

	// ConfirmFor is how long the copy confirmation label stays up.
	ConfirmFor time.Duration

	// writeClipboard is swappable in tests.
	writeClipboard func(string) error
}

// NewController starts with the defaults the page starts with: paragraph
// mode, the middle length tier.
func NewController(api *Client) *Controller {
	return &Controller{
		api:            api,
		mode:           summarize.DefaultMode,
		length:         summarize.DefaultLength,
		ConfirmFor:     2 * time.Second,
		writeClipboard: clipboard.WriteAll,
	}
}

// CharCount returns the character count displayed for the current input.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

// SelectMode makes m the sole active mode.
func (c *Controller) SelectMode(m summarize.Mode) error {
	parsed, err := summarize.ParseMode(string(m))
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.mode = parsed
	c.mu.Unlock()
	return nil
}

// Mode returns the currently active mode.
func (c *Controller) Mode() summarize.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SetLengthPosition maps a slider position (0..2) to its tier and returns
// the display label.
func (c *Controller) SetLengthPosition(pos int) (string, error) {
	l, err := summarize.LengthAt(pos)
	if err != nil {
		return "", err
	}
	c.mu.Lock()
	c.length = l
	c.mu.Unlock()
	return l.Label(), nil
}

// Length returns the currently selected tier.
func (c *Controller) Length() summarize.Length {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.length
}

// InFlight reports whether a submission is outstanding.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Summary returns the last successful summary (raw, with emphasis markers).
func (c *Controller) Summary() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.summary
}

// Submit validates the input and performs one request with the current mode
// and length. Validation failures abort before any network call. Whatever
// the outcome, the controller is back in the idle state when Submit returns.
func (c *Controller) Submit(ctx context.Context, text string) (string, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return "", ErrBusy
	}
	c.inFlight = true
	mode, length := c.mode, c.length
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	trimmed, err := summarize.ValidateText(text)
	if err != nil {
		return "", err
	}

	summary, err := c.api.Summarize(ctx, trimmed, mode, length)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.summary = summary
	c.mu.Unlock()
	return summary, nil
}

// CopyResult writes the plain-text rendering of the last summary to the
// system clipboard. On success the copy label confirms for ConfirmFor, then
// reverts.
func (c *Controller) CopyResult() error {
	c.mu.Lock()
	summary := c.summary
	c.mu.Unlock()

	if summary == "" {
		return ErrNoSummary
	}
	if err := c.writeClipboard(render.Plain(summary)); err != nil {
		return err
	}

	c.mu.Lock()
	c.copyConfirm = true
	if c.copyTimer != nil {
		c.copyTimer.Stop()
	}
	c.copyTimer = time.AfterFunc(c.ConfirmFor, func() {
		c.mu.Lock()
		c.copyConfirm = false
		c.mu.Unlock()
	})
	c.mu.Unlock()
	return nil
}

// CopyLabel returns the copy control's current label.
func (c *Controller) CopyLabel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.copyConfirm {
		return CopyLabelConfirmed
	}
	return CopyLabelIdle
}
