package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireCheckoutsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	withPayment := checkoutWithPayment(t, "pi_old")
	withoutPayment := checkoutWithPayment(t, "")
	expired := []*checkout.Checkout{withPayment, withoutPayment}

	cmd, err := commands.NewExpireCheckoutsCommand(24 * time.Hour)
	require.NoError(t, err)

	checkoutRepo := new(MockCreateCheckoutRepo)
	payments := new(MockCreateCheckoutPayments)
	uow := new(MockCreateCheckoutUoW)
	factory := new(MockCreateCheckoutUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		checkoutRepo.On("GetAllCreatedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return(expired, nil).Once(),
		payments.On("Cancel", ctx, "pi_old").Return(nil).Once(),
		checkoutRepo.On("Delete", ctx, withPayment.ID()).Return(nil).Once(),
		checkoutRepo.On("Delete", ctx, withoutPayment.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewExpireCheckoutsCommandHandler(factory, payments)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, count)

	// The cutoff handed to the repository reflects the max age
	cutoff := checkoutRepo.Calls[0].Arguments[1].(time.Time)
	assert.WithinDuration(t, time.Now().UTC().Add(-24*time.Hour), cutoff, time.Minute)

	checkoutRepo.AssertExpectations(t)
	payments.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestExpireCheckoutsCommandHandler_Handle_NothingExpired(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewExpireCheckoutsCommand(24 * time.Hour)
	require.NoError(t, err)

	checkoutRepo := new(MockCreateCheckoutRepo)
	payments := new(MockCreateCheckoutPayments)
	uow := new(MockCreateCheckoutUoW)
	factory := new(MockCreateCheckoutUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		checkoutRepo.On("GetAllCreatedBefore", ctx, mock.AnythingOfType("time.Time")).
			Return([]*checkout.Checkout{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewExpireCheckoutsCommandHandler(factory, payments)
	count, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
	checkoutRepo.AssertNotCalled(t, "Delete")
	payments.AssertNotCalled(t, "Cancel")
}

func TestExpireCheckoutsCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ExpireCheckoutsCommand{} // not constructed properly

	factory := new(MockCreateCheckoutUoWFactory)
	handler := commands.NewExpireCheckoutsCommandHandler(factory, new(MockCreateCheckoutPayments))
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrExpireCheckoutsCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
