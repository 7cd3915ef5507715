package controller

import (
	"context"
	"time"

	"github.com/prn-tf/mira-movil/internal/domain"
	"github.com/prn-tf/mira-movil/internal/repository"
)

// RegisterUserInput contains the fields for a new user account.
type RegisterUserInput struct {
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Cedula    string      `json:"cedula"`
	Email     string      `json:"email"`
	LoginName string      `json:"login_name"`
	Password  string      `json:"password"`
	Role      domain.Role `json:"role"`
}

// RegisterUser validates the input and creates an active account dated
// today. The first violation found is the one reported, in this order:
// cédula, email, login name, role, then uniqueness of login name, cédula
// and email. No partial mutation occurs on failure.
func (c *Controller) RegisterUser(ctx context.Context, input RegisterUserInput) Result {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	start := time.Now()
	c.busy.Store(true)
	defer c.busy.Store(false)
	c.simulate()

	switch err := domain.ValidateCedula(input.Cedula); err {
	case nil:
	case domain.ErrCedulaChecksum:
		c.observe("register_user", start, false)
		return fail(KindChecksumFailed, "Invalid cédula: check digit does not match.")
	default:
		c.observe("register_user", start, false)
		return fail(KindInvalidFormat, "Invalid cédula: must be exactly 10 digits.")
	}

	if err := domain.ValidateEmail(input.Email); err != nil {
		c.observe("register_user", start, false)
		return fail(KindInvalidFormat, "Invalid email address format.")
	}

	if err := domain.ValidateLoginName(input.LoginName); err != nil {
		c.observe("register_user", start, false)
		return fail(KindInvalidFormat, "Invalid login name: at least 3 characters, letters, digits or underscore.")
	}

	if !input.Role.Valid() {
		c.observe("register_user", start, false)
		return fail(KindInvalidFormat, "Unknown role.")
	}

	// Uniqueness checks in priority order: login name, cédula, email.
	if exists, err := c.users.ExistsByLoginName(ctx, input.LoginName); err != nil {
		c.logger.Error().Err(err).Msg("failed to check login name uniqueness")
		return fail(KindInternal, "Could not register the user.")
	} else if exists {
		c.observe("register_user", start, false)
		return fail(KindDuplicateField, "Login name is already in use.")
	}

	if exists, err := c.users.ExistsByCedula(ctx, input.Cedula); err != nil {
		c.logger.Error().Err(err).Msg("failed to check cédula uniqueness")
		return fail(KindInternal, "Could not register the user.")
	} else if exists {
		c.observe("register_user", start, false)
		return fail(KindDuplicateField, "Cédula is already registered.")
	}

	if exists, err := c.users.ExistsByEmail(ctx, input.Email); err != nil {
		c.logger.Error().Err(err).Msg("failed to check email uniqueness")
		return fail(KindInternal, "Could not register the user.")
	} else if exists {
		c.observe("register_user", start, false)
		return fail(KindDuplicateField, "Email address is already registered.")
	}

	hash, err := c.verifier.Hash(input.Password)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to hash password")
		return fail(KindInternal, "Could not register the user.")
	}

	user := domain.NewUserAccount(
		input.FirstName, input.LastName, input.Cedula,
		input.Email, input.LoginName, input.Role, c.today(),
	)
	user.PasswordHash = hash

	if err := c.users.Create(ctx, user); err != nil {
		c.logger.Error().Err(err).Str("login_name", input.LoginName).Msg("failed to create user")
		return fail(KindInternal, "Could not register the user.")
	}

	c.observe("register_user", start, true)
	c.logger.Info().
		Str("user_id", user.ID).
		Str("login_name", user.LoginName).
		Str("role", string(user.Role)).
		Msg("user created")
	return ok("User created successfully.")
}

// UpdateUserInput contains the mutable account fields. Nil fields are
// left unchanged; everything else about an account is fixed at
// registration.
type UpdateUserInput struct {
	Role   *domain.Role          `json:"role,omitempty"`
	Status *domain.AccountStatus `json:"status,omitempty"`
}

// UpdateUser changes an account's role and/or status.
func (c *Controller) UpdateUser(ctx context.Context, id string, input UpdateUserInput) Result {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	start := time.Now()
	c.busy.Store(true)
	defer c.busy.Store(false)
	c.simulate()

	if input.Role != nil && !input.Role.Valid() {
		c.observe("update_user", start, false)
		return fail(KindInvalidFormat, "Unknown role.")
	}
	if input.Status != nil && !input.Status.Valid() {
		c.observe("update_user", start, false)
		return fail(KindInvalidFormat, "Unknown account status.")
	}

	user, err := c.users.GetByID(ctx, id)
	switch {
	case err == repository.ErrNotFound:
		c.observe("update_user", start, false)
		return fail(KindNotFound, "User not found.")
	case err != nil:
		c.logger.Error().Err(err).Str("user_id", id).Msg("failed to get user")
		return fail(KindInternal, "Could not update the user.")
	}

	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}

	if err := c.users.Update(ctx, user); err != nil {
		c.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return fail(KindInternal, "Could not update the user.")
	}

	c.observe("update_user", start, true)
	c.logger.Info().Str("user_id", id).Msg("user updated")
	return ok("User updated successfully.")
}

// DeleteUser removes an account. The delete is blocked while any movement
// record carries the account's login name as its actor; movements are
// immutable, so the block never cascades.
func (c *Controller) DeleteUser(ctx context.Context, id string) Result {
	c.opMu.Lock()
	defer c.opMu.Unlock()

	start := time.Now()
	c.busy.Store(true)
	defer c.busy.Store(false)
	c.simulate()

	user, err := c.users.GetByID(ctx, id)
	switch {
	case err == repository.ErrNotFound:
		c.observe("delete_user", start, false)
		return fail(KindNotFound, "User not found.")
	case err != nil:
		c.logger.Error().Err(err).Str("user_id", id).Msg("failed to get user")
		return fail(KindInternal, "Could not delete the user.")
	}

	referenced, err := c.movements.ExistsByActor(ctx, user.LoginName)
	if err != nil {
		c.logger.Error().Err(err).Str("user_id", id).Msg("failed to check movement references")
		return fail(KindInternal, "Could not delete the user.")
	}
	if referenced {
		c.observe("delete_user", start, false)
		return fail(KindHasDependencies, "User cannot be deleted: movement records reference this account.")
	}

	if err := c.users.Delete(ctx, id); err != nil {
		c.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return fail(KindInternal, "Could not delete the user.")
	}

	c.observe("delete_user", start, true)
	c.logger.Info().Str("user_id", id).Str("login_name", user.LoginName).Msg("user deleted")
	return ok("User deleted successfully.")
}

// ListUsers returns a snapshot of every account in insertion order.
func (c *Controller) ListUsers(ctx context.Context) ([]*domain.UserAccount, error) {
	return c.users.List(ctx)
}
