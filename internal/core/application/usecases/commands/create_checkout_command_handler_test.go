package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/checkout"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/domain/model/store"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCreateCheckoutUsers struct{ mock.Mock }

func (m *MockCreateCheckoutUsers) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCreateCheckoutVariants struct{ mock.Mock }

func (m *MockCreateCheckoutVariants) GetAll(ctx context.Context, ids []kernel.UUID) ([]*product.Variant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Variant), args.Error(1)
}

type MockCreateCheckoutConfigs struct{ mock.Mock }

func (m *MockCreateCheckoutConfigs) GetActive(ctx context.Context) (*store.Configuration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.Configuration), args.Error(1)
}

type MockCreateCheckoutPayments struct{ mock.Mock }

func (m *MockCreateCheckoutPayments) RequestIntent(
	ctx context.Context, amount decimal.Decimal, currency string, idempotencyKey string,
) (string, error) {
	args := m.Called(ctx, amount, currency, idempotencyKey)
	return args.String(0), args.Error(1)
}

func (m *MockCreateCheckoutPayments) UpdateIntent(ctx context.Context, paymentID string, amount decimal.Decimal) error {
	args := m.Called(ctx, paymentID, amount)
	return args.Error(0)
}

func (m *MockCreateCheckoutPayments) Capture(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

func (m *MockCreateCheckoutPayments) Cancel(ctx context.Context, paymentID string) error {
	args := m.Called(ctx, paymentID)
	return args.Error(0)
}

type MockCreateCheckoutRepo struct{ mock.Mock }

func (m *MockCreateCheckoutRepo) Add(ctx context.Context, aggregate *checkout.Checkout) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCreateCheckoutRepo) Update(ctx context.Context, aggregate *checkout.Checkout) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCreateCheckoutRepo) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCreateCheckoutRepo) Get(ctx context.Context, id kernel.UUID) (*checkout.Checkout, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Checkout), args.Error(1)
}

func (m *MockCreateCheckoutRepo) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*checkout.Checkout, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkout.Checkout), args.Error(1)
}

func (m *MockCreateCheckoutRepo) GetAllCreatedBefore(ctx context.Context, cutoff time.Time) ([]*checkout.Checkout, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checkout.Checkout), args.Error(1)
}

type MockCreateCheckoutUoW struct{ mock.Mock }

func (m *MockCreateCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCreateCheckoutUoW) CheckoutRepository() ports.CheckoutRepository {
	args := m.Called()
	return args.Get(0).(ports.CheckoutRepository)
}

type MockCreateCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCreateCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

func physicalVariant(t *testing.T, price int64, massGrams int) *product.Variant {
	t.Helper()
	variant, err := product.RestoreVariant(
		kernel.NewUUID(), kernel.NewUUID(), "Mug", decimal.NewFromInt(price), massGrams, true, true)
	require.NoError(t, err)
	return variant
}

func digitalVariant(t *testing.T, price int64) *product.Variant {
	t.Helper()
	variant, err := product.RestoreVariant(
		kernel.NewUUID(), kernel.NewUUID(), "E-book", decimal.NewFromInt(price), 0, false, true)
	require.NoError(t, err)
	return variant
}

func storeConfiguration(t *testing.T, massUnit string) *store.Configuration {
	t.Helper()
	configuration, err := store.RestoreConfiguration("USD", massUnit)
	require.NoError(t, err)
	return configuration
}

func TestCreateCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	variant := physicalVariant(t, 25, 500)
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCheckoutCommand(
		kernel.NewUUID(), customerID, "avery@example.com", "203.0.113.10",
		[]commands.CheckoutLineInput{{VariantID: variant.ID(), Quantity: 2}})
	require.NoError(t, err)

	users := new(MockCreateCheckoutUsers)
	variants := new(MockCreateCheckoutVariants)
	configs := new(MockCreateCheckoutConfigs)
	payments := new(MockCreateCheckoutPayments)
	checkoutRepo := new(MockCreateCheckoutRepo)
	uow := new(MockCreateCheckoutUoW)
	factory := new(MockCreateCheckoutUoWFactory)

	mock.InOrder(
		users.On("Exists", ctx, customerID).Return(true, nil).Once(),
		configs.On("GetActive", ctx).Return(storeConfiguration(t, "g"), nil).Once(),
		variants.On("GetAll", ctx, []kernel.UUID{variant.ID()}).
			Return([]*product.Variant{variant}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		checkoutRepo.On("GetByCustomer", ctx, customerID).Return(nil, errs.ErrObjectNotFound).Once(),
		checkoutRepo.On("Add", ctx, mock.AnythingOfType("*checkout.Checkout")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCheckoutCommandHandler(factory, users, variants, configs, payments)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Physical checkouts get no payment intent until shipping is selected
	payments.AssertNotCalled(t, "RequestIntent")

	addCall := checkoutRepo.Calls[1]
	added := addCall.Arguments[1].(*checkout.Checkout)
	assert.Equal(t, cmd.CheckoutID(), added.ID())
	assert.True(t, added.ShippingRequired())
	assert.True(t, decimal.NewFromInt(50).Equal(added.ItemsTotal()))

	checkoutRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateCheckoutCommandHandler_Handle_DigitalCheckoutGetsIntent(t *testing.T) {
	ctx := t.Context()

	variant := digitalVariant(t, 15)
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCheckoutCommand(
		kernel.NewUUID(), customerID, "avery@example.com", "203.0.113.10",
		[]commands.CheckoutLineInput{{VariantID: variant.ID(), Quantity: 2}})
	require.NoError(t, err)

	users := new(MockCreateCheckoutUsers)
	variants := new(MockCreateCheckoutVariants)
	configs := new(MockCreateCheckoutConfigs)
	payments := new(MockCreateCheckoutPayments)
	checkoutRepo := new(MockCreateCheckoutRepo)
	uow := new(MockCreateCheckoutUoW)
	factory := new(MockCreateCheckoutUoWFactory)

	mock.InOrder(
		users.On("Exists", ctx, customerID).Return(true, nil).Once(),
		configs.On("GetActive", ctx).Return(storeConfiguration(t, ""), nil).Once(),
		variants.On("GetAll", ctx, []kernel.UUID{variant.ID()}).
			Return([]*product.Variant{variant}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		checkoutRepo.On("GetByCustomer", ctx, customerID).Return(nil, errs.ErrObjectNotFound).Once(),
		payments.On("RequestIntent", ctx,
			mock.MatchedBy(func(amount decimal.Decimal) bool {
				return amount.Equal(decimal.NewFromInt(30))
			}),
			"USD", cmd.CheckoutID().String()).Return("pi_123", nil).Once(),
		checkoutRepo.On("Add", ctx, mock.AnythingOfType("*checkout.Checkout")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCheckoutCommandHandler(factory, users, variants, configs, payments)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	addCall := checkoutRepo.Calls[1]
	added := addCall.Arguments[1].(*checkout.Checkout)
	assert.Equal(t, "pi_123", added.PaymentID())

	payments.AssertExpectations(t)
	checkoutRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCheckoutCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateCheckoutCommand{} // not constructed properly

	factory := new(MockCreateCheckoutUoWFactory)
	handler := commands.NewCreateCheckoutCommandHandler(
		factory, new(MockCreateCheckoutUsers), new(MockCreateCheckoutVariants),
		new(MockCreateCheckoutConfigs), new(MockCreateCheckoutPayments))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateCheckoutCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCheckoutCommandHandler_Handle_UnknownCustomer(t *testing.T) {
	ctx := t.Context()

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCheckoutCommand(
		kernel.NewUUID(), customerID, "avery@example.com", "203.0.113.10",
		[]commands.CheckoutLineInput{{VariantID: kernel.NewUUID(), Quantity: 1}})
	require.NoError(t, err)

	users := new(MockCreateCheckoutUsers)
	users.On("Exists", ctx, customerID).Return(false, nil).Once()

	factory := new(MockCreateCheckoutUoWFactory)
	handler := commands.NewCreateCheckoutCommandHandler(
		factory, users, new(MockCreateCheckoutVariants),
		new(MockCreateCheckoutConfigs), new(MockCreateCheckoutPayments))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCheckoutCommandHandler_Handle_UnpublishedVariant(t *testing.T) {
	ctx := t.Context()

	unpublished, err := product.RestoreVariant(
		kernel.NewUUID(), kernel.NewUUID(), "Draft", decimal.NewFromInt(10), 100, true, false)
	require.NoError(t, err)

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCheckoutCommand(
		kernel.NewUUID(), customerID, "avery@example.com", "203.0.113.10",
		[]commands.CheckoutLineInput{{VariantID: unpublished.ID(), Quantity: 1}})
	require.NoError(t, err)

	users := new(MockCreateCheckoutUsers)
	variants := new(MockCreateCheckoutVariants)
	configs := new(MockCreateCheckoutConfigs)

	mock.InOrder(
		users.On("Exists", ctx, customerID).Return(true, nil).Once(),
		configs.On("GetActive", ctx).Return(storeConfiguration(t, "g"), nil).Once(),
		variants.On("GetAll", ctx, []kernel.UUID{unpublished.ID()}).
			Return([]*product.Variant{unpublished}, nil).Once(),
	)

	factory := new(MockCreateCheckoutUoWFactory)
	handler := commands.NewCreateCheckoutCommandHandler(
		factory, users, variants, configs, new(MockCreateCheckoutPayments))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var ruleErr *errs.BusinessRuleViolationError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "CHECKOUT_VARIANT_NOT_PUBLISHED", ruleErr.Code)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCheckoutCommandHandler_Handle_MissingMassUnit(t *testing.T) {
	ctx := t.Context()

	variant := physicalVariant(t, 25, 500)
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCheckoutCommand(
		kernel.NewUUID(), customerID, "avery@example.com", "203.0.113.10",
		[]commands.CheckoutLineInput{{VariantID: variant.ID(), Quantity: 1}})
	require.NoError(t, err)

	users := new(MockCreateCheckoutUsers)
	variants := new(MockCreateCheckoutVariants)
	configs := new(MockCreateCheckoutConfigs)

	mock.InOrder(
		users.On("Exists", ctx, customerID).Return(true, nil).Once(),
		configs.On("GetActive", ctx).Return(storeConfiguration(t, ""), nil).Once(),
		variants.On("GetAll", ctx, []kernel.UUID{variant.ID()}).
			Return([]*product.Variant{variant}, nil).Once(),
	)

	factory := new(MockCreateCheckoutUoWFactory)
	handler := commands.NewCreateCheckoutCommandHandler(
		factory, users, variants, configs, new(MockCreateCheckoutPayments))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var ruleErr *errs.BusinessRuleViolationError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "CHECKOUT_MISSING_MASS_UNIT", ruleErr.Code)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateCheckoutCommandHandler_Handle_CheckoutAlreadyExists(t *testing.T) {
	ctx := t.Context()

	variant := physicalVariant(t, 25, 500)
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCheckoutCommand(
		kernel.NewUUID(), customerID, "avery@example.com", "203.0.113.10",
		[]commands.CheckoutLineInput{{VariantID: variant.ID(), Quantity: 1}})
	require.NoError(t, err)

	existingLine, err := checkout.NewLine(
		kernel.NewUUID(), variant.ID(), 1, decimal.NewFromInt(25), 500, true)
	require.NoError(t, err)
	existing, err := checkout.NewCheckout(
		kernel.NewUUID(), customerID, "avery@example.com", "203.0.113.10",
		[]*checkout.Line{existingLine}, time.Now().UTC())
	require.NoError(t, err)

	users := new(MockCreateCheckoutUsers)
	variants := new(MockCreateCheckoutVariants)
	configs := new(MockCreateCheckoutConfigs)
	checkoutRepo := new(MockCreateCheckoutRepo)
	uow := new(MockCreateCheckoutUoW)
	factory := new(MockCreateCheckoutUoWFactory)

	mock.InOrder(
		users.On("Exists", ctx, customerID).Return(true, nil).Once(),
		configs.On("GetActive", ctx).Return(storeConfiguration(t, "g"), nil).Once(),
		variants.On("GetAll", ctx, []kernel.UUID{variant.ID()}).
			Return([]*product.Variant{variant}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		checkoutRepo.On("GetByCustomer", ctx, customerID).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCheckoutCommandHandler(
		factory, users, variants, configs, new(MockCreateCheckoutPayments))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	var ruleErr *errs.BusinessRuleViolationError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "CHECKOUT_ALREADY_EXISTS", ruleErr.Code)
	uow.AssertNotCalled(t, "Commit")
}

func TestCreateCheckoutCommandHandler_Handle_IntentError(t *testing.T) {
	ctx := t.Context()

	variant := digitalVariant(t, 15)
	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCheckoutCommand(
		kernel.NewUUID(), customerID, "avery@example.com", "203.0.113.10",
		[]commands.CheckoutLineInput{{VariantID: variant.ID(), Quantity: 1}})
	require.NoError(t, err)

	users := new(MockCreateCheckoutUsers)
	variants := new(MockCreateCheckoutVariants)
	configs := new(MockCreateCheckoutConfigs)
	payments := new(MockCreateCheckoutPayments)
	checkoutRepo := new(MockCreateCheckoutRepo)
	uow := new(MockCreateCheckoutUoW)
	factory := new(MockCreateCheckoutUoWFactory)

	mock.InOrder(
		users.On("Exists", ctx, customerID).Return(true, nil).Once(),
		configs.On("GetActive", ctx).Return(storeConfiguration(t, ""), nil).Once(),
		variants.On("GetAll", ctx, []kernel.UUID{variant.ID()}).
			Return([]*product.Variant{variant}, nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CheckoutRepository").Return(checkoutRepo).Once(),
		checkoutRepo.On("GetByCustomer", ctx, customerID).Return(nil, errs.ErrObjectNotFound).Once(),
		payments.On("RequestIntent", ctx, mock.Anything, "USD", cmd.CheckoutID().String()).
			Return("", errors.New("provider unavailable")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateCheckoutCommandHandler(factory, users, variants, configs, payments)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "provider unavailable")
	checkoutRepo.AssertNotCalled(t, "Add")
	uow.AssertNotCalled(t, "Commit")
}
