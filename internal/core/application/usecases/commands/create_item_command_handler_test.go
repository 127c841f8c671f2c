package commands_test

import (
	"errors"
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/catalog"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateItemCommand(
		kernel.NewUUID(), "Pen", decimal.NewFromFloat(1.50), nil, 100)

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetAll", ctx).Return([]*catalog.Item{}, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil).Once(),
		uow.On("TrackFact", mock.Anything).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateItemCommand{} // not constructed properly
	factory := new(MockCatalogUoWFactory)
	h := commands.NewCreateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateItemCommandHandler_Handle_DuplicateID(t *testing.T) {
	ctx := t.Context()
	itemID := kernel.NewUUID()
	existing, err := catalog.RestoreItem(
		itemID, "Pen", decimal.NewFromInt(1), nil, 0, time.Now().UTC())
	require.NoError(t, err)

	cmd, _ := commands.NewCreateItemCommand(itemID, "Pencil", decimal.NewFromInt(2), nil, 0)

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetAll", ctx).Return([]*catalog.Item{existing}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_InvalidValue(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateItemCommand(
		kernel.NewUUID(), "", decimal.Zero, nil, -1)

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetAll", ctx).Return([]*catalog.Item{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateItemCommand(
		kernel.NewUUID(), "Pen", decimal.NewFromInt(1), nil, 0)

	repo := new(MockItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ItemRepository").Return(repo).Once(),
		repo.On("GetAll", ctx).Return([]*catalog.Item{}, nil).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*catalog.Item")).Return(nil).Once(),
		uow.On("TrackFact", mock.Anything).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
