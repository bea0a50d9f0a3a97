package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompleteOrderRepo struct{ mock.Mock }

func (m *MockCompleteOrderRepo) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCompleteOrderRepo) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCompleteOrderRepo) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCompleteMailSender struct{ mock.Mock }

func (m *MockCompleteMailSender) SendOrderCreated(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockCompleteUoW struct{ mock.Mock }

func (m *MockCompleteUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompleteUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompleteUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCompleteUoW) CheckoutRepository() ports.CheckoutRepository {
	args := m.Called()
	return args.Get(0).(ports.CheckoutRepository)
}

func (m *MockCompleteUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockCompleteUoWFactory struct{ mock.Mock }

func (m *MockCompleteUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// readyCheckout builds a checkout that satisfies every completion
// precondition: payment intent, billing address, shipping address and method.
func readyCheckout(t *testing.T) *checkout.Checkout {
	t.Helper()

	line, err := checkout.NewLine(
		kernel.NewUUID(), kernel.NewUUID(), 2, decimal.NewFromInt(20), 500, true)
	require.NoError(t, err)

	address, err := kernel.NewAddress("Avery Stone", "1 Main St", "", "Springfield", "12345", "US")
	require.NoError(t, err)
	snapshot, err := shipping.NewMethodSnapshot(kernel.NewUUID(), "Standard", decimal.NewFromInt(5))
	require.NoError(t, err)

	aggregate, err := checkout.RestoreCheckout(
		kernel.NewUUID(), kernel.NewUUID(), "avery@example.com", "203.0.113.10",
		[]*checkout.Line{line}, &address, &address, &snapshot, "pi_123",
		false, false, false, time.Now().UTC())
	require.NoError(t, err)

	return aggregate
}

func TestCompleteCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	aggregate := readyCheckout(t)
	cmd, err := commands.NewCompleteCheckoutCommand(aggregate.ID(), kernel.NewUUID(), true, false)
	require.NoError(t, err)

	checkoutRepo := new(MockCreateCheckoutRepo)
	orderRepo := new(MockCompleteOrderRepo)
	payments := new(MockCreateCheckoutPayments)
	mailSender := new(MockCompleteMailSender)
	uow := new(MockCompleteUoW)
	factory := new(MockCompleteUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		checkoutRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		payments.On("Capture", ctx, "pi_123").Return(nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		checkoutRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once(),
		mailSender.On("SendOrderCreated", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCompleteCheckoutCommandHandler(factory, payments, mailSender)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := orderRepo.Calls[0]
	created := addCall.Arguments[1].(*order.Order)
	assert.Equal(t, cmd.OrderID(), created.ID())
	assert.Equal(t, order.Created, created.Status())
	assert.Equal(t, aggregate.Email(), created.Email())
	assert.Equal(t, "pi_123", created.PaymentID())
	require.Len(t, created.Lines(), 1)
	assert.Equal(t, 2, created.Lines()[0].Quantity())
	require.NotNil(t, created.ShippingMethod())

	assert.True(t, aggregate.SaveCustomerAddresses())
	assert.False(t, aggregate.SavePaymentMethodAsDefault())

	checkoutRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	payments.AssertExpectations(t)
	mailSender.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CompleteCheckoutCommand{} // not constructed properly

	factory := new(MockCompleteUoWFactory)
	handler := commands.NewCompleteCheckoutCommandHandler(
		factory, new(MockCreateCheckoutPayments), new(MockCompleteMailSender))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCompleteCheckoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCompleteCheckoutCommandHandler_Handle_CheckoutNotReady(t *testing.T) {
	ctx := t.Context()

	// No payment intent yet
	line, err := checkout.NewLine(
		kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(20), 500, true)
	require.NoError(t, err)
	aggregate, err := checkout.NewCheckout(
		kernel.NewUUID(), kernel.NewUUID(), "avery@example.com", "203.0.113.10",
		[]*checkout.Line{line}, time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewCompleteCheckoutCommand(aggregate.ID(), kernel.NewUUID(), false, false)
	require.NoError(t, err)

	checkoutRepo := new(MockCreateCheckoutRepo)
	orderRepo := new(MockCompleteOrderRepo)
	payments := new(MockCreateCheckoutPayments)
	uow := new(MockCompleteUoW)
	factory := new(MockCompleteUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		checkoutRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCompleteCheckoutCommandHandler(factory, payments, new(MockCompleteMailSender))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var ruleErr *errs.BusinessRuleViolationError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "CHECKOUT_MISSING_DETAILS", ruleErr.Code)
	payments.AssertNotCalled(t, "Capture")
	uow.AssertNotCalled(t, "Commit")
}

func TestCompleteCheckoutCommandHandler_Handle_CaptureError(t *testing.T) {
	ctx := t.Context()

	aggregate := readyCheckout(t)
	cmd, err := commands.NewCompleteCheckoutCommand(aggregate.ID(), kernel.NewUUID(), false, false)
	require.NoError(t, err)

	checkoutRepo := new(MockCreateCheckoutRepo)
	orderRepo := new(MockCompleteOrderRepo)
	payments := new(MockCreateCheckoutPayments)
	uow := new(MockCompleteUoW)
	factory := new(MockCompleteUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		checkoutRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		payments.On("Capture", ctx, "pi_123").Return(errors.New("card declined")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCompleteCheckoutCommandHandler(factory, payments, new(MockCompleteMailSender))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "card declined")
	orderRepo.AssertNotCalled(t, "Add")
	checkoutRepo.AssertNotCalled(t, "Delete")
	uow.AssertNotCalled(t, "Commit")
}

func TestCompleteCheckoutCommandHandler_Handle_MailErrorRollsBack(t *testing.T) {
	ctx := t.Context()

	aggregate := readyCheckout(t)
	cmd, err := commands.NewCompleteCheckoutCommand(aggregate.ID(), kernel.NewUUID(), false, false)
	require.NoError(t, err)

	checkoutRepo := new(MockCreateCheckoutRepo)
	orderRepo := new(MockCompleteOrderRepo)
	payments := new(MockCreateCheckoutPayments)
	mailSender := new(MockCompleteMailSender)
	uow := new(MockCompleteUoW)
	factory := new(MockCompleteUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		checkoutRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		payments.On("Capture", ctx, "pi_123").Return(nil).Once(),
		orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		checkoutRepo.On("Delete", ctx, aggregate.ID()).Return(nil).Once(),
		mailSender.On("SendOrderCreated", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("smtp unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCompleteCheckoutCommandHandler(factory, payments, mailSender)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "smtp unavailable")
	uow.AssertNotCalled(t, "Commit")
}
