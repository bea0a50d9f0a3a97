package commands_test

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFulfillmentOrderRepo struct{ mock.Mock }

func (m *MockFulfillmentOrderRepo) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFulfillmentOrderRepo) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFulfillmentOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

// confirmedOrder builds a confirmed order with a single physical line of the
// given quantity.
func confirmedOrder(t *testing.T, quantity int) (*order.Order, *order.Line) {
	t.Helper()

	orderID := kernel.NewUUID()
	line, err := order.NewLine(
		kernel.NewUUID(), orderID, kernel.NewUUID(), quantity, decimal.NewFromInt(20), true)
	require.NoError(t, err)

	billing, err := kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		orderID, kernel.NewUUID(), "avery@example.com", billing, &billing, nil, "pi_123",
		[]*order.Line{line})
	require.NoError(t, err)
	require.NoError(t, aggregate.Confirm())

	return aggregate, line
}

func TestCreateFulfillmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	aggregate, line := confirmedOrder(t, 3)
	fulfillmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateFulfillmentCommand(aggregate.ID(), fulfillmentID,
		[]order.FulfillmentEntry{{OrderLineID: line.ID(), Quantity: 2}})
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepo)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateFulfillmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Processing, aggregate.Status())
	require.Len(t, aggregate.Fulfillments(), 1)
	assert.Equal(t, fulfillmentID, aggregate.Fulfillments()[0].ID())
	assert.Equal(t, 2, line.FulfilledQuantity())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateFulfillmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateFulfillmentCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	handler := commands.NewCreateFulfillmentCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateFulfillmentCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateFulfillmentCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	lineID := kernel.NewUUID()
	cmd, err := commands.NewCreateFulfillmentCommand(orderID, kernel.NewUUID(),
		[]order.FulfillmentEntry{{OrderLineID: lineID, Quantity: 1}})
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepo)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateFulfillmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateFulfillmentCommandHandler_Handle_OverAssignmentRollsBack(t *testing.T) {
	ctx := t.Context()

	aggregate, line := confirmedOrder(t, 2)
	cmd, err := commands.NewCreateFulfillmentCommand(aggregate.ID(), kernel.NewUUID(),
		[]order.FulfillmentEntry{{OrderLineID: line.ID(), Quantity: 3}})
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepo)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateFulfillmentCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var ruleErr *errs.BusinessRuleViolationError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "INSUFFICIENT_ORDER_LINE_ASSIGNABLE_QUANTITY", ruleErr.Code)
	assert.Equal(t, 0, line.FulfilledQuantity())
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestConfirmOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	line, err := order.NewLine(
		kernel.NewUUID(), orderID, kernel.NewUUID(), 1, decimal.NewFromInt(20), true)
	require.NoError(t, err)
	billing, err := kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		orderID, kernel.NewUUID(), "avery@example.com", billing, &billing, nil, "pi_123",
		[]*order.Line{line})
	require.NoError(t, err)

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepo)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, aggregate.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmOrderCommandHandler_Handle_AlreadyConfirmed(t *testing.T) {
	ctx := t.Context()

	aggregate, _ := confirmedOrder(t, 1)
	cmd, err := commands.NewConfirmOrderCommand(aggregate.ID())
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepo)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var ruleErr *errs.BusinessRuleViolationError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "ORDER_STATUS_MUST_BE_CREATED", ruleErr.Code)
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestConfirmOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	line, err := order.NewLine(
		kernel.NewUUID(), orderID, kernel.NewUUID(), 1, decimal.NewFromInt(20), true)
	require.NoError(t, err)
	billing, err := kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		orderID, kernel.NewUUID(), "avery@example.com", billing, &billing, nil, "pi_123",
		[]*order.Line{line})
	require.NoError(t, err)

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	require.NoError(t, err)

	orderRepo := new(MockFulfillmentOrderRepo)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewConfirmOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
