package commands

import (
	"errors"

	"printflow/internal/pkg/errs"
	"printflow/internal/pkg/guard"
)

var ErrRequestPasswordResetCommandIsNotConstructed = errors.New(
	"RequestPasswordResetCommand must be created via NewRequestPasswordResetCommand constructor",
)

// RequestPasswordResetCommand represents a password reset request from the
// login screen. Succeeds regardless of whether the e-mail is known, so the
// endpoint cannot be used to enumerate accounts.
type RequestPasswordResetCommand struct { //nolint:recvcheck //using for validation
	email string

	guard guard.ConstructorGuard
}

// NewRequestPasswordResetCommand creates a command to request a reset.
// Returns an error if the e-mail is empty.
func NewRequestPasswordResetCommand(email string) (RequestPasswordResetCommand, error) {
	cmd := RequestPasswordResetCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setEmail(email); err != nil {
		return RequestPasswordResetCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRequestPasswordResetCommandIsNotConstructed if validation fails.
func (c RequestPasswordResetCommand) Validate() error {
	return c.guard.Validate(ErrRequestPasswordResetCommandIsNotConstructed)
}

// Email returns the login e-mail the reset was requested for.
func (c RequestPasswordResetCommand) Email() string {
	return c.email
}

func (c *RequestPasswordResetCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
