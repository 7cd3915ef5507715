// Package controller implements the application state controller for
// MIRA MÓVIL. The controller exclusively owns all mutable domain state:
// user accounts, equipment, movement records, the authentication state
// and the current screen. Presentation collaborators only read snapshots
// and invoke operations; every mutating operation validates its input,
// applies the change atomically and returns a tagged Result.
package controller

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/prn-tf/mira-movil/internal/credentials"
	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/lockout"
	"github.com/prn-tf/mira-movil/internal/metrics"
	"github.com/prn-tf/mira-movil/internal/notify"
	"github.com/prn-tf/mira-movil/internal/report"
	"github.com/prn-tf/mira-movil/internal/repository"
)

// lockoutKey is the single throttle key: the original client throttles
// logins globally, not per account.
const lockoutKey = "login"

// Config wires the controller's collaborators and policy.
type Config struct {
	Users     repository.UserRepository
	Equipment repository.EquipmentRepository
	Movements repository.MovementRepository

	Ledger   lockout.Ledger
	Verifier credentials.Verifier
	Notifier notify.Notifier

	Renderer  report.Renderer
	Artifacts report.Store

	// Metrics is optional; no instrumentation when nil.
	Metrics *metrics.Metrics

	Logger zerolog.Logger

	// MaxAttempts is the failed-login threshold. Default 3.
	MaxAttempts int

	// LockoutDuration is how long a lockout lasts. Default 2 minutes.
	LockoutDuration time.Duration

	// Latency is the artificial round-trip delay applied inside each
	// operation, standing in for a real backend call. Zero disables it.
	Latency time.Duration
}

// Controller is the application state controller.
type Controller struct {
	users     repository.UserRepository
	equipment repository.EquipmentRepository
	movements repository.MovementRepository

	ledger   lockout.Ledger
	verifier credentials.Verifier
	notifier notify.Notifier

	renderer  report.Renderer
	artifacts report.Store

	metrics *metrics.Metrics
	logger  zerolog.Logger

	maxAttempts     int
	lockoutDuration time.Duration
	latency         time.Duration

	// opMu serializes operations: the source behavior has no concurrent
	// outstanding operations, and uniqueness/existence checks must be
	// race-free under concurrent callers.
	opMu sync.Mutex

	// mu guards session, screen, unlockTimer and closed.
	mu          sync.Mutex
	session     *domain.UserAccount
	screen      domain.Screen
	unlockTimer *time.Timer
	closed      bool

	// busy is readable without blocking while an operation is in flight.
	busy atomic.Bool

	// nowFn is swapped in tests.
	nowFn func() time.Time
}

// New creates a controller. The initial screen is the login screen and no
// session is active.
func New(cfg Config) *Controller {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.LockoutDuration <= 0 {
		cfg.LockoutDuration = 2 * time.Minute
	}

	return &Controller{
		users:           cfg.Users,
		equipment:       cfg.Equipment,
		movements:       cfg.Movements,
		ledger:          cfg.Ledger,
		verifier:        cfg.Verifier,
		notifier:        cfg.Notifier,
		renderer:        cfg.Renderer,
		artifacts:       cfg.Artifacts,
		metrics:         cfg.Metrics,
		logger:          cfg.Logger.With().Str("service", "controller").Logger(),
		maxAttempts:     cfg.MaxAttempts,
		lockoutDuration: cfg.LockoutDuration,
		latency:         cfg.Latency,
		screen:          domain.ScreenLogin,
		nowFn:           time.Now,
	}
}

// Close tears the controller down, cancelling the pending auto-unlock
// timer if one is armed. The controller must not be used afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.unlockTimer != nil {
		c.unlockTimer.Stop()
		c.unlockTimer = nil
	}
}

// IsBusy reports whether an operation is currently in flight. The
// presentation layer reads this to gate interactivity.
func (c *Controller) IsBusy() bool {
	return c.busy.Load()
}

// CurrentScreen returns the screen the presentation layer should render.
func (c *Controller) CurrentScreen() domain.Screen {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.screen
}

// SetScreen navigates unconditionally. Token validity is the presentation
// layer's responsibility.
func (c *Controller) SetScreen(screen domain.Screen) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.screen = screen
}

func (c *Controller) now() time.Time {
	return c.nowFn()
}

// today returns the current date in YYYY-MM-DD form, the format every
// stored date uses.
func (c *Controller) today() string {
	return c.now().Format("2006-01-02")
}

// simulate applies the configured artificial latency. This is the point
// where a production backend would perform its network or storage call.
// Operations are not cancellable: once invoked they run to completion.
func (c *Controller) simulate() {
	if c.latency > 0 {
		time.Sleep(c.latency)
	}
}

// observe records one finished operation when metrics are configured.
func (c *Controller) observe(op string, start time.Time, success bool) {
	if c.metrics != nil {
		c.metrics.ObserveOperation(op, success, time.Since(start).Seconds())
	}
}

// sessionUser returns the authenticated account, or nil.
func (c *Controller) sessionUser() *domain.UserAccount {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return nil
	}
	cp := *c.session
	return &cp
}
