package commands_test

import (
	"testing"

	"tawsil/internal/core/application/usecases/commands"
	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Soft deletion must make an order vanish for everyone but an admin,
// for writes just like for reads.

func softDeletedOrderAggregate(t *testing.T, owner string) *order.Order {
	t.Helper()
	aggregate := newOrderAggregate(t, owner)
	require.NoError(t, aggregate.MarkDeleted(principal(t, owner, account.RoleManager)))
	return aggregate
}

func expectGetOnly(uow *MockOrderUoW, repo *MockOrderRepository, aggregate *order.Order) {
	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", mock.Anything).Return(nil).Once(),
	)
}

func TestEditOrderCommandHandler_Handle_SoftDeletedNotFoundForOwner(t *testing.T) {
	ctx := t.Context()
	owner := principal(t, "manager@example.com", account.RoleManager)
	aggregate := softDeletedOrderAggregate(t, owner.Email())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectGetOnly(uow, repo, aggregate)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewEditOrderCommand(aggregate.ID(), owner, validDetails())
	require.NoError(t, err)

	h := commands.NewEditOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestChangeOrderStatusCommandHandler_Handle_SoftDeletedNotFoundForCourier(t *testing.T) {
	ctx := t.Context()
	courier := principal(t, "courier@example.com", account.RoleMurasel)
	aggregate := softDeletedOrderAggregate(t, "manager@example.com")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectGetOnly(uow, repo, aggregate)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewChangeOrderStatusCommand(aggregate.ID(), courier, order.StatusInProgress, nil)
	require.NoError(t, err)

	h := commands.NewChangeOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "UpdateWhere")
	uow.AssertNotCalled(t, "Commit")
}

func TestDeleteOrderCommandHandler_Handle_SoftDeletedNotFoundForOwner(t *testing.T) {
	ctx := t.Context()
	owner := principal(t, "manager@example.com", account.RoleManager)
	aggregate := softDeletedOrderAggregate(t, owner.Email())

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	expectGetOnly(uow, repo, aggregate)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDeleteOrderCommand(aggregate.ID(), owner)
	require.NoError(t, err)

	h := commands.NewDeleteOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestDeleteOrderCommandHandler_Handle_AdminStillSeesSoftDeleted(t *testing.T) {
	ctx := t.Context()
	admin := principal(t, "admin@example.com", account.RoleAdmin)
	aggregate := softDeletedOrderAggregate(t, "manager@example.com")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Delete", mock.Anything, aggregate.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	cmd, err := commands.NewDeleteOrderCommand(aggregate.ID(), admin)
	require.NoError(t, err)

	h := commands.NewDeleteOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
