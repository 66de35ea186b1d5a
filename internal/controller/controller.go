// Package controller holds the session's navigation state and routes user
// intents to the medication and theme services.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"medtrack/internal/contextutil"
	"medtrack/internal/medication"
	"medtrack/internal/service"
)

var (
	// ErrInvalidTransition is returned when an intent does not apply to the current screen.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrBusy is returned when the form is changed while its submission is being written.
	ErrBusy = errors.New("submission in progress")
)

// Screen identifies the active screen.
type Screen int

const (
	ScreenListing Screen = iota
	ScreenEditing
)

func (s Screen) String() string {
	switch s {
	case ScreenListing:
		return "listing"
	case ScreenEditing:
		return "editing"
	default:
		return "unknown"
	}
}

// State is a snapshot of the navigation state.
type State struct {
	Screen Screen
	// Editing is the record being edited, nil when adding or listing.
	Editing *medication.Record
	// Draft is the form contents while on ScreenEditing.
	Draft medication.Draft
}

// Adding reports whether the form creates a new record.
func (s State) Adding() bool {
	return s.Screen == ScreenEditing && s.Editing == nil
}

// Controller is the sole owner of navigation state for one session.
type Controller struct {
	mu         sync.Mutex
	state      State
	submitting bool
	meds   service.MedicationService
	theme  service.ThemeService
	logger *slog.Logger
}

// New creates a Controller in the Listing state.
func New(meds service.MedicationService, theme service.ThemeService) *Controller {
	return &Controller{
		state:  State{Screen: ScreenListing},
		meds:   meds,
		theme:  theme,
		logger: slog.Default(),
	}
}

func (c *Controller) getLogger(ctx context.Context) *slog.Logger {
	if l := contextutil.LoggerFromContext(ctx); l != slog.Default() {
		return l
	}
	return c.logger
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() State {
	s := c.state
	if s.Editing != nil {
		r := *s.Editing
		s.Editing = &r
	}
	return s
}

// Subscribe opens the live record list the listing screen renders from.
func (c *Controller) Subscribe(ctx context.Context) (service.Subscription, error) {
	return c.meds.Subscribe(ctx)
}

// RequestAdd opens an empty form.
func (c *Controller) RequestAdd() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Screen != ScreenListing {
		return ErrInvalidTransition
	}
	c.state = State{Screen: ScreenEditing, Draft: medication.NewDraft()}
	return nil
}

// RequestEdit opens the form seeded from r.
func (c *Controller) RequestEdit(r medication.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Screen != ScreenListing || !r.Persisted() {
		return ErrInvalidTransition
	}
	c.state = State{Screen: ScreenEditing, Editing: &r, Draft: medication.DraftFromRecord(r)}
	return nil
}

// SetDraft replaces the form contents.
func (c *Controller) SetDraft(d medication.Draft) error {
	return c.UpdateDraft(func(draft *medication.Draft) { *draft = d })
}

// UpdateDraft applies fn to the form contents.
func (c *Controller) UpdateDraft(fn func(*medication.Draft)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Screen != ScreenEditing {
		return ErrInvalidTransition
	}
	if c.submitting {
		return ErrBusy
	}
	fn(&c.state.Draft)
	return nil
}

// Cancel discards the draft and returns to the list.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Screen != ScreenEditing {
		return ErrInvalidTransition
	}
	if c.submitting {
		return ErrBusy
	}
	c.state = State{Screen: ScreenListing}
	return nil
}

// Submit validates the draft and writes it: an insert when adding, an update
// of the edited record's id otherwise. The lock is not held during the write,
// so State stays available to the render loop; the form is frozen until the
// write finishes. The state only returns to Listing when the write succeeds.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.state.Screen != ScreenEditing {
		c.mu.Unlock()
		return ErrInvalidTransition
	}
	if c.submitting {
		c.mu.Unlock()
		return ErrBusy
	}

	logger := c.getLogger(ctx)
	target := c.snapshot()
	if err := target.Draft.Validate(); err != nil {
		c.mu.Unlock()
		logger.DebugContext(ctx, "submit inhibited", "error", err)
		return err
	}
	c.submitting = true
	c.mu.Unlock()

	err := c.write(ctx, logger, target)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.submitting = false
	if err != nil {
		return err
	}
	c.state = State{Screen: ScreenListing}
	return nil
}

func (c *Controller) write(ctx context.Context, logger *slog.Logger, target State) error {
	if target.Editing == nil {
		id, err := c.meds.Create(ctx, target.Draft)
		if err != nil {
			logger.ErrorContext(ctx, "failed to save new medication", "error", err)
			return err
		}
		logger.InfoContext(ctx, "medication added", "id", id)
		return nil
	}

	id := target.Editing.ID
	if err := c.meds.Update(ctx, id, target.Draft); err != nil {
		logger.ErrorContext(ctx, "failed to save medication", "id", id, "error", err)
		return err
	}
	logger.InfoContext(ctx, "medication saved", "id", id)
	return nil
}

// Delete removes r immediately. Only valid from the list.
func (c *Controller) Delete(ctx context.Context, r medication.Record) error {
	c.mu.Lock()
	screen := c.state.Screen
	c.mu.Unlock()

	if screen != ScreenListing {
		return ErrInvalidTransition
	}
	if err := c.meds.Delete(ctx, r.ID); err != nil {
		c.getLogger(ctx).ErrorContext(ctx, "failed to delete medication", "id", r.ID, "error", err)
		return err
	}
	return nil
}

// DarkMode returns the stored theme flag.
func (c *Controller) DarkMode(ctx context.Context) (bool, error) {
	return c.theme.DarkMode(ctx)
}

// ToggleTheme flips and persists the theme flag, returning the new value.
// On failure the stored value is returned unchanged.
func (c *Controller) ToggleTheme(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.theme.DarkMode(ctx)
	if err != nil {
		return current, err
	}
	if err := c.theme.SetDarkMode(ctx, !current); err != nil {
		c.getLogger(ctx).ErrorContext(ctx, "failed to toggle theme", "error", err)
		return current, err
	}
	return !current, nil
}
