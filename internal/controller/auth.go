package controller

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/lockout"
	"github.com/prn-tf/mira-movil/internal/repository"
)

// Login attempts to authenticate. While a lockout is active the attempt
// is rejected immediately, consumes no attempt and reports the remaining
// lockout time rounded up to whole minutes. On success the session is
// established, the failed-attempt counter resets and navigation moves to
// the home screen. On failure the counter increments; reaching the
// threshold starts a lockout that expires on its own after the configured
// duration.
func (c *Controller) Login(ctx context.Context, loginName, password string) Result {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	state, err := c.ledger.Get(ctx, lockoutKey)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to read lockout state")
		return fail(KindInternal, "Could not process the login attempt.")
	}

	if state.Locked() {
		elapsed := c.now().Sub(*state.LockedSince)
		if elapsed < c.lockoutDuration {
			remaining := c.lockoutDuration - elapsed
			minutes := int(math.Ceil(remaining.Minutes()))
			if c.metrics != nil {
				c.metrics.LoginAttempts.WithLabelValues("locked").Inc()
			}
			return fail(KindAccountLocked, fmt.Sprintf("Account locked. Try again in %d minute(s).", minutes))
		}
		// The lockout lapsed without the timer firing (for example after
		// a restart). Unlock before processing the attempt.
		c.expireLockout(ctx)
		state = lockout.State{}
	}

	start := time.Now()
	c.busy.Store(true)
	defer c.busy.Store(false)
	c.simulate()

	user, err := c.users.GetByLoginName(ctx, loginName)
	switch {
	case err == repository.ErrNotFound:
		user = nil
	case err != nil:
		c.logger.Error().Err(err).Str("login_name", loginName).Msg("failed to look up account")
		return fail(KindInternal, "Could not process the login attempt.")
	}

	if user != nil && user.CanAuthenticate() && c.verifier.Verify(user, password) {
		if err := c.ledger.Clear(ctx, lockoutKey); err != nil {
			c.logger.Error().Err(err).Msg("failed to clear lockout state")
			return fail(KindInternal, "Could not process the login attempt.")
		}

		c.mu.Lock()
		c.stopUnlockTimerLocked()
		cp := *user
		c.session = &cp
		c.screen = domain.ScreenHome
		c.mu.Unlock()

		if c.metrics != nil {
			c.metrics.LoginAttempts.WithLabelValues("success").Inc()
		}
		c.observe("login", start, true)
		c.logger.Info().Str("login_name", user.LoginName).Msg("user signed in")
		return ok("Signed in successfully.")
	}

	state, err = c.ledger.RecordFailure(ctx, lockoutKey, c.now(), c.maxAttempts)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to record login failure")
		return fail(KindInternal, "Could not process the login attempt.")
	}

	if c.metrics != nil {
		c.metrics.LoginAttempts.WithLabelValues("invalid_credentials").Inc()
	}
	c.observe("login", start, false)

	if state.Locked() {
		c.armUnlockTimer()
		if c.metrics != nil {
			c.metrics.Lockouts.Inc()
		}
		c.logger.Warn().
			Int("failed_attempts", state.FailedCount).
			Dur("lockout_duration", c.lockoutDuration).
			Msg("login lockout started")
		minutes := int(math.Ceil(c.lockoutDuration.Minutes()))
		return fail(KindAccountLocked, fmt.Sprintf("Maximum attempts exceeded. Account locked for %d minute(s).", minutes))
	}

	remaining := c.maxAttempts - state.FailedCount
	c.logger.Debug().Str("login_name", loginName).Int("attempts_remaining", remaining).Msg("invalid credentials")
	return fail(KindInvalidCredentials, fmt.Sprintf("Invalid credentials. Attempts remaining: %d.", remaining))
}

// Logout ends the session: the user is cleared, the failed-attempt
// counter resets and navigation returns to the login screen.
func (c *Controller) Logout(ctx context.Context) {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	if err := c.ledger.Clear(ctx, lockoutKey); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear lockout state on logout")
	}

	c.mu.Lock()
	c.stopUnlockTimerLocked()
	var loginName string
	if c.session != nil {
		loginName = c.session.LoginName
	}
	c.session = nil
	c.screen = domain.ScreenLogin
	c.mu.Unlock()

	if loginName != "" {
		c.logger.Info().Str("login_name", loginName).Msg("user signed out")
	}
}

// RequestPasswordReset asks the notifier to deliver a reset link when the
// email belongs to a registered account, regardless of its status. No
// state is mutated.
func (c *Controller) RequestPasswordReset(ctx context.Context, email string) Result {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	start := time.Now()
	c.busy.Store(true)
	defer c.busy.Store(false)
	c.simulate()

	_, err := c.users.GetByEmail(ctx, email)
	switch {
	case err == repository.ErrNotFound:
		c.observe("password_reset", start, false)
		return fail(KindNotFound, "Email address is not registered.")
	case err != nil:
		c.logger.Error().Err(err).Msg("failed to look up account by email")
		return fail(KindInternal, "Could not process the request.")
	}

	if err := c.notifier.SendPasswordReset(ctx, email); err != nil {
		c.logger.Error().Err(err).Msg("failed to send password reset")
		c.observe("password_reset", start, false)
		return fail(KindInternal, "Could not send the recovery link.")
	}

	c.observe("password_reset", start, true)
	return ok("A recovery link has been sent to your email address.")
}

// Snapshot returns the current authentication state.
func (c *Controller) Snapshot(ctx context.Context) (domain.AuthState, error) {
	state, err := c.ledger.Get(ctx, lockoutKey)
	if err != nil {
		return domain.AuthState{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	snap := domain.AuthState{
		Authenticated:  c.session != nil,
		FailedAttempts: state.FailedCount,
		Locked:         state.Locked(),
		LockedSince:    state.LockedSince,
	}
	if c.session != nil {
		cp := *c.session
		snap.User = &cp
	}
	return snap, nil
}

// armUnlockTimer schedules the automatic unlock for the lockout that just
// began, superseding any previously armed timer.
func (c *Controller) armUnlockTimer() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.stopUnlockTimerLocked()
	c.unlockTimer = time.AfterFunc(c.lockoutDuration, c.autoUnlock)
}

// autoUnlock fires once per lockout episode when the duration elapses
// with no further user action.
func (c *Controller) autoUnlock() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.unlockTimer = nil
	c.mu.Unlock()

	if err := c.ledger.Clear(context.Background(), lockoutKey); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear expired lockout")
		return
	}
	c.logger.Info().Msg("lockout expired, login re-enabled")
}

// expireLockout clears a lapsed lockout found during a login attempt.
func (c *Controller) expireLockout(ctx context.Context) {
	c.mu.Lock()
	c.stopUnlockTimerLocked()
	c.mu.Unlock()

	if err := c.ledger.Clear(ctx, lockoutKey); err != nil {
		c.logger.Error().Err(err).Msg("failed to clear expired lockout")
		return
	}
	c.logger.Info().Msg("lockout expired, login re-enabled")
}

// stopUnlockTimerLocked cancels the pending auto-unlock. Callers hold mu.
func (c *Controller) stopUnlockTimerLocked() {
	if c.unlockTimer != nil {
		c.unlockTimer.Stop()
		c.unlockTimer = nil
	}
}
