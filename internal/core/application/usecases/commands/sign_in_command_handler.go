package commands

import (
	"context"
	"time"

	"yumyum/internal/core/domain/model/session"
)

// SignInCommandHandler validates the credentials through the session
// aggregate and persists the resulting session within a single transaction.
type SignInCommandHandler struct {
	uowFactory SessionUoWFactory
}

// NewSignInCommandHandler creates a handler for sign-in operations.
func NewSignInCommandHandler(uowFactory SessionUoWFactory) SignInCommandHandler {
	return SignInCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-in command and returns the new session. Signing
// in over an existing session replaces it.
func (h SignInCommandHandler) Handle(ctx context.Context, command SignInCommand) (*session.Session, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	newSession, err := session.NewSession(command.Email(), command.Password(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessionRepo := uow.SessionRepository()

	if err = sessionRepo.Save(ctx, newSession); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newSession, nil
}
