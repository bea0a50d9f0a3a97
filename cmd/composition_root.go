package cmd

import (
	"log/slog"

	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/mail"
	"storefront/internal/adapters/out/payment"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/adapters/out/postgres/catalogrepo"
	"storefront/internal/adapters/out/postgres/customerrepo"
	"storefront/internal/adapters/out/postgres/shippingrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/ports"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory

	catalogRepo  *catalogrepo.GormCatalogRepository
	customerRepo *customerrepo.GormCustomerRepository
	shippingRepo *shippingrepo.GormShippingRepository
	payments     ports.PaymentGateway
	mailSender   ports.MailSender
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	paymentGateway, err := payment.NewRestPaymentGateway(config.PaymentServiceURL, config.PaymentServiceAPIKey)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		catalogRepo:  catalogrepo.NewGormCatalogRepository(gormDB),
		customerRepo: customerrepo.NewGormCustomerRepository(gormDB),
		shippingRepo: shippingrepo.NewGormShippingRepository(gormDB),
		payments:     paymentGateway,
		mailSender:   mail.NewLogMailSender(logger),
		logger:       logger,
	}, nil
}

func (c *CompositionRoot) checkoutUoWFactory() commands.CheckoutUoWFactory {
	return FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCheckoutCommandHandler() commands.CreateCheckoutCommandHandler {
	return commands.NewCreateCheckoutCommandHandler(
		c.checkoutUoWFactory(), c.customerRepo, c.catalogRepo, c.catalogRepo, c.payments)
}

func (c *CompositionRoot) CreateCreateCheckoutAddressCommandHandler() commands.CreateCheckoutAddressCommandHandler {
	return commands.NewCreateCheckoutAddressCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCheckoutAddressCommandHandler() commands.UpdateCheckoutAddressCommandHandler {
	return commands.NewUpdateCheckoutAddressCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateSetCheckoutAddressCommandHandler() commands.SetCheckoutAddressCommandHandler {
	return commands.NewSetCheckoutAddressCommandHandler(c.checkoutUoWFactory(), c.customerRepo)
}

func (c *CompositionRoot) CreateUseSingleAddressCommandHandler() commands.UseSingleAddressCommandHandler {
	return commands.NewUseSingleAddressCommandHandler(c.checkoutUoWFactory())
}

func (c *CompositionRoot) CreateSetShippingMethodCommandHandler() commands.SetShippingMethodCommandHandler {
	return commands.NewSetShippingMethodCommandHandler(
		c.checkoutUoWFactory(), c.shippingRepo, c.catalogRepo, c.payments)
}

func (c *CompositionRoot) CreateCompleteCheckoutCommandHandler() commands.CompleteCheckoutCommandHandler {
	return commands.NewCompleteCheckoutCommandHandler(c.uoWFactory(), c.payments, c.mailSender)
}

func (c *CompositionRoot) CreateCancelCheckoutCommandHandler() commands.CancelCheckoutCommandHandler {
	return commands.NewCancelCheckoutCommandHandler(c.checkoutUoWFactory(), c.payments)
}

func (c *CompositionRoot) CreateExpireCheckoutsCommandHandler() commands.ExpireCheckoutsCommandHandler {
	return commands.NewExpireCheckoutsCommandHandler(c.checkoutUoWFactory(), c.payments)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateFulfillmentCommandHandler() commands.CreateFulfillmentCommandHandler {
	return commands.NewCreateFulfillmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddFulfillmentLinesCommandHandler() commands.AddFulfillmentLinesCommandHandler {
	return commands.NewAddFulfillmentLinesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateFulfillmentLineQuantitiesCommandHandler() commands.UpdateFulfillmentLineQuantitiesCommandHandler {
	return commands.NewUpdateFulfillmentLineQuantitiesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteFulfillmentLinesCommandHandler() commands.DeleteFulfillmentLinesCommandHandler {
	return commands.NewDeleteFulfillmentLinesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteFulfillmentCommandHandler() commands.CompleteFulfillmentCommandHandler {
	return commands.NewCompleteFulfillmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteFulfillmentCommandHandler() commands.DeleteFulfillmentCommandHandler {
	return commands.NewDeleteFulfillmentCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateTrackingNumberCommandHandler() commands.UpdateTrackingNumberCommandHandler {
	return commands.NewUpdateTrackingNumberCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateFulfillOrderCommandHandler() commands.FulfillOrderCommandHandler {
	return commands.NewFulfillOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUndoFulfillOrderCommandHandler() commands.UndoFulfillOrderCommandHandler {
	return commands.NewUndoFulfillOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateReinstateOrderCommandHandler() commands.ReinstateOrderCommandHandler {
	return commands.NewReinstateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetCustomerCheckoutQueryHandler() queries.GetCustomerCheckoutQueryHandler {
	return queries.NewGetCustomerCheckoutQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetIncompleteOrdersQueryHandler() queries.GetIncompleteOrdersQueryHandler {
	return queries.NewGetIncompleteOrdersQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case handler into the REST server.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateCheckout:        c.CreateCreateCheckoutCommandHandler(),
		CreateCheckoutAddress: c.CreateCreateCheckoutAddressCommandHandler(),
		UpdateCheckoutAddress: c.CreateUpdateCheckoutAddressCommandHandler(),
		SetCheckoutAddress:    c.CreateSetCheckoutAddressCommandHandler(),
		UseSingleAddress:      c.CreateUseSingleAddressCommandHandler(),
		SetShippingMethod:     c.CreateSetShippingMethodCommandHandler(),
		CompleteCheckout:      c.CreateCompleteCheckoutCommandHandler(),
		CancelCheckout:        c.CreateCancelCheckoutCommandHandler(),

		ConfirmOrder:                    c.CreateConfirmOrderCommandHandler(),
		CreateFulfillment:               c.CreateCreateFulfillmentCommandHandler(),
		AddFulfillmentLines:             c.CreateAddFulfillmentLinesCommandHandler(),
		UpdateFulfillmentLineQuantities: c.CreateUpdateFulfillmentLineQuantitiesCommandHandler(),
		DeleteFulfillmentLines:          c.CreateDeleteFulfillmentLinesCommandHandler(),
		CompleteFulfillment:             c.CreateCompleteFulfillmentCommandHandler(),
		DeleteFulfillment:               c.CreateDeleteFulfillmentCommandHandler(),
		UpdateTrackingNumber:            c.CreateUpdateTrackingNumberCommandHandler(),
		FulfillOrder:                    c.CreateFulfillOrderCommandHandler(),
		UndoFulfillOrder:                c.CreateUndoFulfillOrderCommandHandler(),
		CancelOrder:                     c.CreateCancelOrderCommandHandler(),
		ReinstateOrder:                  c.CreateReinstateOrderCommandHandler(),

		GetCustomerCheckout: c.CreateGetCustomerCheckoutQueryHandler(),
		GetIncompleteOrders: c.CreateGetIncompleteOrdersQueryHandler(),
	})
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpireCheckoutsCommandHandler(), c.config.CheckoutMaxAge, c.logger)
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
