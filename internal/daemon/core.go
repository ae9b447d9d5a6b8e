// Package daemon runs the window-management core: it mirrors window and
// output state from the backend, owns the event-loop goroutine that all
// core mutation is serialized on, and answers queries from the IPC
// layer.
package daemon

import (
	"context"
	"log/slog"
	"time"

	"github.com/quoinwm/quoin/internal/config"
	"github.com/quoinwm/quoin/internal/decor"
	"github.com/quoinwm/quoin/internal/frame"
	"github.com/quoinwm/quoin/internal/grab"
	"github.com/quoinwm/quoin/internal/output"
	"github.com/quoinwm/quoin/internal/scene"
	"github.com/quoinwm/quoin/internal/seat"
	"github.com/quoinwm/quoin/internal/snap"
	"github.com/quoinwm/quoin/internal/switcher"
	"github.com/quoinwm/quoin/internal/view"
	"github.com/quoinwm/quoin/internal/workspace"
	"github.com/quoinwm/quoin/internal/x11"
)

// Backend supplies window-system state. Implemented by x11.Connection;
// tests substitute a fake.
type Backend interface {
	Outputs() ([]*output.Output, error)
	PointerPosition() (x, y float64, err error)
	ListWindows() ([]x11.WindowInfo, error)
}

// Core ties the window-management components together. All fields are
// owned by the event-loop goroutine once Run starts; external callers
// go through Do.
type Core struct {
	cfg    *config.Config
	logger *slog.Logger

	backend Backend

	tree       *scene.Tree
	views      *view.Registry
	seat       *seat.Seat
	layout     *output.Layout
	snapper    *snap.Resolver
	grabs      *grab.Controller
	switcher   *switcher.Switcher
	workspaces *workspace.Manager

	decorations map[view.ID]*decor.Decoration
	surfaces    map[view.ID]scene.NodeID
	byXID       map[uint32]*view.View
	hover       decor.HoverState

	requests  chan func()
	startTime time.Time
}

// New assembles a core from the configuration. backend may be nil for
// a core driven purely by tests.
func New(cfg *config.Config, backend Backend, logger *slog.Logger) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	criteria, err := cfg.SwitcherCriteria()
	if err != nil {
		return nil, err
	}

	c := &Core{
		cfg:         cfg,
		logger:      logger,
		backend:     backend,
		tree:        scene.NewTree(),
		views:       view.NewRegistry(),
		layout:      output.NewLayout(),
		decorations: make(map[view.ID]*decor.Decoration),
		surfaces:    make(map[view.ID]scene.NodeID),
		byXID:       make(map[uint32]*view.View),
		requests:    make(chan func(), 16),
		startTime:   time.Now(),
	}
	c.seat = seat.New(c.views)
	c.snapper = snap.NewResolver(c.layout, cfg, logger)
	c.grabs = grab.NewController(c.seat, logger)
	c.workspaces = workspace.NewManager(cfg.Workspaces, c.seat, logger)
	c.switcher = switcher.New(c.seat, criteria, func() string {
		return c.workspaces.Current().Name
	}, logger)
	c.views.Watch(&c.hover)

	return c, nil
}

// Seat returns the core's input seat.
func (c *Core) Seat() *seat.Seat { return c.seat }

// Views returns the view registry.
func (c *Core) Views() *view.Registry { return c.views }

// Workspaces returns the workspace manager.
func (c *Core) Workspaces() *workspace.Manager { return c.workspaces }

// Grabs returns the move/resize controller.
func (c *Core) Grabs() *grab.Controller { return c.grabs }

// Switcher returns the window switcher.
func (c *Core) Switcher() *switcher.Switcher { return c.switcher }

// Layout returns the output layout.
func (c *Core) Layout() *output.Layout { return c.layout }

// Hover returns the view and titlebar button under the cursor, or
// (nil, PartNone) when the cursor is not on a button.
func (c *Core) Hover() (*view.View, frame.PartType) { return c.hover.Hovered() }

// Run drives the event loop until ctx is done, polling the backend for
// outputs, pointer position and window changes, and serving dispatched
// requests in between.
func (c *Core) Run(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	c.logger.Info("core started",
		"workspaces", len(c.cfg.Workspaces),
		"snap_range", c.cfg.SnapEdgeRange)

	c.sync()

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("core stopped")
			c.switcher.Close()
			c.grabs.Close()
			return
		case <-ticker.C:
			c.sync()
		case fn := <-c.requests:
			fn()
		}
	}
}

// Do runs fn on the event-loop goroutine and waits for it to complete.
func (c *Core) Do(fn func()) {
	done := make(chan struct{})
	c.requests <- func() {
		defer close(done)
		fn()
	}
	<-done
}

// Uptime returns how long the core has been running.
func (c *Core) Uptime() time.Duration {
	return time.Since(c.startTime)
}
