package commands

import (
	"context"
)

// SignOutCommandHandler clears the stored session within a single
// transaction.
type SignOutCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSignOutCommandHandler creates a handler for sign-out operations.
func NewSignOutCommandHandler(uowFactory SessionUoWFactory) SignOutCommandHandler {
	return SignOutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-out command.
func (h SignOutCommandHandler) Handle(ctx context.Context, command SignOutCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()

	if err := sessionRepo.Clear(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
