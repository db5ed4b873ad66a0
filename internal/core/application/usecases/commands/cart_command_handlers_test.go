package commands_test

import (
	"context"
	"errors"
	"testing"

	"yumyum/internal/core/application/usecases/commands"
	"yumyum/internal/core/domain/model/cart"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectCartRoundTrip(uow *MockCartUoW, repo *MockCartRepository, existing *cart.Cart) *MockCartUoWFactory {
	ctx := mock.Anything
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", ctx).Return(existing, nil).Once(),
		repo.On("Save", ctx, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()
	return factory
}

func TestAddCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	existing := cart.NewCart()
	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := expectCartRoundTrip(uow, repo, existing)

	cmd, err := commands.NewAddCartItemCommand("jollof-rice", 2)
	require.NoError(t, err)

	h := commands.NewAddCartItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, 2, existing.ItemsCount())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestAddCartItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	factory := new(MockCartUoWFactory)
	h := commands.NewAddCartItemCommandHandler(factory)

	err := h.Handle(ctx, commands.AddCartItemCommand{}) // not constructed properly
	require.Error(t, err)
}

func TestAddCartItemCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := context.Background()
	uow := new(MockCartUoW)
	factory := new(MockCartUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	cmd, _ := commands.NewAddCartItemCommand("jollof-rice", 1)
	h := commands.NewAddCartItemCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
}

func TestSetCartQuantityCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	existing := cart.RestoreCart([]cart.Line{cart.NewLine("suya", 2)})
	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := expectCartRoundTrip(uow, repo, existing)

	cmd, err := commands.NewSetCartQuantityCommand("suya", 7)
	require.NoError(t, err)

	h := commands.NewSetCartQuantityCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, 7, existing.ItemsCount())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveCartItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	existing := cart.RestoreCart([]cart.Line{cart.NewLine("suya", 2)})
	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := expectCartRoundTrip(uow, repo, existing)

	cmd, err := commands.NewRemoveCartItemCommand("suya")
	require.NoError(t, err)

	h := commands.NewRemoveCartItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, existing.IsEmpty())
	repo.AssertExpectations(t)
}

func TestClearCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	existing := cart.RestoreCart([]cart.Line{cart.NewLine("suya", 2), cart.NewLine("zobo", 1)})
	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := expectCartRoundTrip(uow, repo, existing)

	cmd := commands.NewClearCartCommand()

	h := commands.NewClearCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, existing.IsEmpty())
	repo.AssertExpectations(t)
}

func TestReplaceCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	existing := cart.RestoreCart([]cart.Line{cart.NewLine("suya", 2)})
	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	factory := expectCartRoundTrip(uow, repo, existing)

	cmd := commands.NewReplaceCartCommand([]cart.Line{
		cart.NewLine("jollof-rice", 1),
		cart.NewLine("chapman", 2),
	})

	h := commands.NewReplaceCartCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	lines := existing.Lines()
	require.Len(t, lines, 2)
	require.Equal(t, "jollof-rice", lines[0].ItemID())
	repo.AssertExpectations(t)
}

func TestReplaceCartCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := context.Background()
	existing := cart.NewCart()
	repo := new(MockCartRepository)
	uow := new(MockCartUoW)
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("CartRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(existing, nil).Once(),
		repo.On("Save", mock.Anything, existing).Return(errors.New("save error")).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReplaceCartCommandHandler(factory)
	require.Error(t, h.Handle(ctx, commands.NewReplaceCartCommand(nil)))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
