// Package http exposes the checkout and order lifecycle over a REST API.
package http

import (
	"errors"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Checkout command handlers
	createCheckoutHandler        commands.CreateCheckoutCommandHandler
	createCheckoutAddressHandler commands.CreateCheckoutAddressCommandHandler
	updateCheckoutAddressHandler commands.UpdateCheckoutAddressCommandHandler
	setCheckoutAddressHandler    commands.SetCheckoutAddressCommandHandler
	useSingleAddressHandler      commands.UseSingleAddressCommandHandler
	setShippingMethodHandler     commands.SetShippingMethodCommandHandler
	completeCheckoutHandler      commands.CompleteCheckoutCommandHandler
	cancelCheckoutHandler        commands.CancelCheckoutCommandHandler

	// Order command handlers
	confirmOrderHandler                    commands.ConfirmOrderCommandHandler
	createFulfillmentHandler               commands.CreateFulfillmentCommandHandler
	addFulfillmentLinesHandler             commands.AddFulfillmentLinesCommandHandler
	updateFulfillmentLineQuantitiesHandler commands.UpdateFulfillmentLineQuantitiesCommandHandler
	deleteFulfillmentLinesHandler          commands.DeleteFulfillmentLinesCommandHandler
	completeFulfillmentHandler             commands.CompleteFulfillmentCommandHandler
	deleteFulfillmentHandler               commands.DeleteFulfillmentCommandHandler
	updateTrackingNumberHandler            commands.UpdateTrackingNumberCommandHandler
	fulfillOrderHandler                    commands.FulfillOrderCommandHandler
	undoFulfillOrderHandler                commands.UndoFulfillOrderCommandHandler
	cancelOrderHandler                     commands.CancelOrderCommandHandler
	reinstateOrderHandler                  commands.ReinstateOrderCommandHandler

	// Query handlers
	getCustomerCheckoutHandler queries.GetCustomerCheckoutQueryHandler
	getIncompleteOrdersHandler queries.GetIncompleteOrdersQueryHandler
}

// Handlers bundles every use case handler the server dispatches to.
type Handlers struct {
	CreateCheckout        commands.CreateCheckoutCommandHandler
	CreateCheckoutAddress commands.CreateCheckoutAddressCommandHandler
	UpdateCheckoutAddress commands.UpdateCheckoutAddressCommandHandler
	SetCheckoutAddress    commands.SetCheckoutAddressCommandHandler
	UseSingleAddress      commands.UseSingleAddressCommandHandler
	SetShippingMethod     commands.SetShippingMethodCommandHandler
	CompleteCheckout      commands.CompleteCheckoutCommandHandler
	CancelCheckout        commands.CancelCheckoutCommandHandler

	ConfirmOrder                    commands.ConfirmOrderCommandHandler
	CreateFulfillment               commands.CreateFulfillmentCommandHandler
	AddFulfillmentLines             commands.AddFulfillmentLinesCommandHandler
	UpdateFulfillmentLineQuantities commands.UpdateFulfillmentLineQuantitiesCommandHandler
	DeleteFulfillmentLines          commands.DeleteFulfillmentLinesCommandHandler
	CompleteFulfillment             commands.CompleteFulfillmentCommandHandler
	DeleteFulfillment               commands.DeleteFulfillmentCommandHandler
	UpdateTrackingNumber            commands.UpdateTrackingNumberCommandHandler
	FulfillOrder                    commands.FulfillOrderCommandHandler
	UndoFulfillOrder                commands.UndoFulfillOrderCommandHandler
	CancelOrder                     commands.CancelOrderCommandHandler
	ReinstateOrder                  commands.ReinstateOrderCommandHandler

	GetCustomerCheckout queries.GetCustomerCheckoutQueryHandler
	GetIncompleteOrders queries.GetIncompleteOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{
		createCheckoutHandler:        handlers.CreateCheckout,
		createCheckoutAddressHandler: handlers.CreateCheckoutAddress,
		updateCheckoutAddressHandler: handlers.UpdateCheckoutAddress,
		setCheckoutAddressHandler:    handlers.SetCheckoutAddress,
		useSingleAddressHandler:      handlers.UseSingleAddress,
		setShippingMethodHandler:     handlers.SetShippingMethod,
		completeCheckoutHandler:      handlers.CompleteCheckout,
		cancelCheckoutHandler:        handlers.CancelCheckout,

		confirmOrderHandler:                    handlers.ConfirmOrder,
		createFulfillmentHandler:               handlers.CreateFulfillment,
		addFulfillmentLinesHandler:             handlers.AddFulfillmentLines,
		updateFulfillmentLineQuantitiesHandler: handlers.UpdateFulfillmentLineQuantities,
		deleteFulfillmentLinesHandler:          handlers.DeleteFulfillmentLines,
		completeFulfillmentHandler:             handlers.CompleteFulfillment,
		deleteFulfillmentHandler:               handlers.DeleteFulfillment,
		updateTrackingNumberHandler:            handlers.UpdateTrackingNumber,
		fulfillOrderHandler:                    handlers.FulfillOrder,
		undoFulfillOrderHandler:                handlers.UndoFulfillOrder,
		cancelOrderHandler:                     handlers.CancelOrder,
		reinstateOrderHandler:                  handlers.ReinstateOrder,

		getCustomerCheckoutHandler: handlers.GetCustomerCheckout,
		getIncompleteOrdersHandler: handlers.GetIncompleteOrders,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/checkouts", s.CreateCheckout)
	api.GET("/customers/:customerId/checkout", s.GetCustomerCheckout)
	api.POST("/checkouts/:checkoutId/addresses", s.CreateCheckoutAddress)
	api.PATCH("/checkouts/:checkoutId/addresses", s.UpdateCheckoutAddress)
	api.PUT("/checkouts/:checkoutId/addresses", s.SetCheckoutAddress)
	api.PUT("/checkouts/:checkoutId/single-address", s.UseSingleAddress)
	api.PUT("/checkouts/:checkoutId/shipping-method", s.SetShippingMethod)
	api.POST("/checkouts/:checkoutId/complete", s.CompleteCheckout)
	api.DELETE("/checkouts/:checkoutId", s.CancelCheckout)

	api.GET("/orders/incomplete", s.GetIncompleteOrders)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/fulfillments", s.CreateFulfillment)
	api.POST("/orders/:orderId/fulfillments/:fulfillmentId/lines", s.AddFulfillmentLines)
	api.PATCH("/orders/:orderId/fulfillments/:fulfillmentId/lines", s.UpdateFulfillmentLineQuantities)
	api.DELETE("/orders/:orderId/fulfillments/:fulfillmentId/lines", s.DeleteFulfillmentLines)
	api.POST("/orders/:orderId/fulfillments/:fulfillmentId/complete", s.CompleteFulfillment)
	api.DELETE("/orders/:orderId/fulfillments/:fulfillmentId", s.DeleteFulfillment)
	api.PUT("/orders/:orderId/fulfillments/:fulfillmentId/tracking", s.UpdateTrackingNumber)
	api.POST("/orders/:orderId/fulfill", s.FulfillOrder)
	api.POST("/orders/:orderId/undo-fulfill", s.UndoFulfillOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/reinstate", s.ReinstateOrder)
}

// Error is the standard error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

// writeError maps application errors to HTTP status codes: missing objects to
// 404, validation failures to 400 and business rule violations to 409.
func writeError(ctx echo.Context, err error) error {
	var ruleErr *errs.BusinessRuleViolationError
	if errors.As(err, &ruleErr) {
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Rule:    ruleErr.Code,
			Message: ruleErr.Message,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound), errors.Is(err, errs.ErrObjectsNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func parseAddressKind(value string) (commands.AddressKind, error) {
	switch value {
	case "billing":
		return commands.BillingAddressKind, nil
	case "shipping":
		return commands.ShippingAddressKind, nil
	default:
		return commands.UnknownAddressKind, errs.NewValueIsInvalidError("kind")
	}
}

type addressBody struct {
	FullName    string `json:"fullName"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	CountryCode string `json:"countryCode"`
}

func (b addressBody) toDomain() (kernel.Address, error) {
	return kernel.NewAddress(b.FullName, b.Line1, b.Line2, b.City, b.PostalCode, b.CountryCode)
}

// CreateCheckout handles POST /api/v1/checkouts - opens a checkout for a customer.
func (s *Server) CreateCheckout(ctx echo.Context) error {
	var body struct {
		CustomerID string `json:"customerId"`
		Email      string `json:"email"`
		Lines      []struct {
			VariantID string `json:"variantId"`
			Quantity  int    `json:"quantity"`
		} `json:"lines"`
	}
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return writeError(ctx, err)
	}

	lines := make([]commands.CheckoutLineInput, 0, len(body.Lines))
	for _, line := range body.Lines {
		variantID, lineErr := kernel.UUIDFromString(line.VariantID)
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		lines = append(lines, commands.CheckoutLineInput{VariantID: variantID, Quantity: line.Quantity})
	}

	checkoutID := kernel.NewUUID()
	cmd, err := commands.NewCreateCheckoutCommand(checkoutID, customerID, body.Email, ctx.RealIP(), lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createCheckoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"checkoutId": checkoutID.String()})
}

// GetCustomerCheckout handles GET /api/v1/customers/:customerId/checkout.
func (s *Server) GetCustomerCheckout(ctx echo.Context) error {
	customerID, err := pathUUID(ctx, "customerId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerCheckoutQuery(customerID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getCustomerCheckoutHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]any{
		"id":                 response.ID.String(),
		"email":              response.Email,
		"shippingRequired":   response.ShippingRequired,
		"hasPayment":         response.HasPayment,
		"shippingMethodName": response.ShippingMethodName,
		"itemsTotal":         response.ItemsTotal.String(),
		"total":              response.Total.String(),
	})
}

// CreateCheckoutAddress handles POST /api/v1/checkouts/:checkoutId/addresses.
func (s *Server) CreateCheckoutAddress(ctx echo.Context) error {
	checkoutID, err := pathUUID(ctx, "checkoutId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Kind    string      `json:"kind"`
		Address addressBody `json:"address"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := parseAddressKind(body.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	address, err := body.Address.toDomain()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateCheckoutAddressCommand(checkoutID, kind, address)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createCheckoutAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCheckoutAddress handles PATCH /api/v1/checkouts/:checkoutId/addresses.
// Fields map keys present with a null value clear the field, absent keys are
// left untouched.
func (s *Server) UpdateCheckoutAddress(ctx echo.Context) error {
	checkoutID, err := pathUUID(ctx, "checkoutId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Kind   string             `json:"kind"`
		Fields map[string]*string `json:"fields"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := parseAddressKind(body.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	var patch kernel.AddressPatch
	for field, value := range body.Fields {
		target, ok := map[string]*kernel.Optional[string]{
			"fullName":    &patch.FullName,
			"line1":       &patch.Line1,
			"line2":       &patch.Line2,
			"city":        &patch.City,
			"postalCode":  &patch.PostalCode,
			"countryCode": &patch.CountryCode,
		}[field]
		if !ok {
			return badRequest(ctx, "Unknown address field: "+field)
		}
		if value == nil {
			*target = kernel.Null[string]()
		} else {
			*target = kernel.Some(*value)
		}
	}

	cmd, err := commands.NewUpdateCheckoutAddressCommand(checkoutID, kind, patch)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateCheckoutAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetCheckoutAddress handles PUT /api/v1/checkouts/:checkoutId/addresses -
// points the checkout address at a saved address book entry.
func (s *Server) SetCheckoutAddress(ctx echo.Context) error {
	checkoutID, err := pathUUID(ctx, "checkoutId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Kind              string `json:"kind"`
		CustomerAddressID string `json:"customerAddressId"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	kind, err := parseAddressKind(body.Kind)
	if err != nil {
		return writeError(ctx, err)
	}

	customerAddressID, err := kernel.UUIDFromString(body.CustomerAddressID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetCheckoutAddressCommand(checkoutID, kind, customerAddressID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setCheckoutAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UseSingleAddress handles PUT /api/v1/checkouts/:checkoutId/single-address.
func (s *Server) UseSingleAddress(ctx echo.Context) error {
	checkoutID, err := pathUUID(ctx, "checkoutId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUseSingleAddressCommand(checkoutID, body.Enabled)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.useSingleAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetShippingMethod handles PUT /api/v1/checkouts/:checkoutId/shipping-method.
func (s *Server) SetShippingMethod(ctx echo.Context) error {
	checkoutID, err := pathUUID(ctx, "checkoutId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		MethodID string `json:"methodId"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	methodID, err := kernel.UUIDFromString(body.MethodID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetShippingMethodCommand(checkoutID, methodID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setShippingMethodHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteCheckout handles POST /api/v1/checkouts/:checkoutId/complete -
// captures payment and converts the checkout into an order.
func (s *Server) CompleteCheckout(ctx echo.Context) error {
	checkoutID, err := pathUUID(ctx, "checkoutId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		SaveCustomerAddresses      bool `json:"saveCustomerAddresses"`
		SavePaymentMethodAsDefault bool `json:"savePaymentMethodAsDefault"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCompleteCheckoutCommand(
		checkoutID, orderID, body.SaveCustomerAddresses, body.SavePaymentMethodAsDefault)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeCheckoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// CancelCheckout handles DELETE /api/v1/checkouts/:checkoutId.
func (s *Server) CancelCheckout(ctx echo.Context) error {
	checkoutID, err := pathUUID(ctx, "checkoutId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelCheckoutCommand(checkoutID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelCheckoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetIncompleteOrders handles GET /api/v1/orders/incomplete.
func (s *Server) GetIncompleteOrders(ctx echo.Context) error {
	query := queries.NewGetIncompleteOrdersQuery()

	orders, err := s.getIncompleteOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]map[string]any, len(orders))
	for i, item := range orders {
		response[i] = map[string]any{
			"id":        item.ID.String(),
			"email":     item.Email,
			"status":    item.Status.String(),
			"lineCount": item.LineCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConfirmOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type fulfillmentEntryBody struct {
	OrderLineID string `json:"orderLineId"`
	Quantity    int    `json:"quantity"`
}

func fulfillmentEntries(bodies []fulfillmentEntryBody) ([]order.FulfillmentEntry, error) {
	entries := make([]order.FulfillmentEntry, 0, len(bodies))
	for _, body := range bodies {
		orderLineID, err := kernel.UUIDFromString(body.OrderLineID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, order.FulfillmentEntry{OrderLineID: orderLineID, Quantity: body.Quantity})
	}
	return entries, nil
}

// CreateFulfillment handles POST /api/v1/orders/:orderId/fulfillments.
func (s *Server) CreateFulfillment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Lines []fulfillmentEntryBody `json:"lines"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	entries, err := fulfillmentEntries(body.Lines)
	if err != nil {
		return writeError(ctx, err)
	}

	fulfillmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateFulfillmentCommand(orderID, fulfillmentID, entries)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"fulfillmentId": fulfillmentID.String()})
}

// AddFulfillmentLines handles POST /api/v1/orders/:orderId/fulfillments/:fulfillmentId/lines.
func (s *Server) AddFulfillmentLines(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}
	fulfillmentID, err := pathUUID(ctx, "fulfillmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Lines []fulfillmentEntryBody `json:"lines"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	entries, err := fulfillmentEntries(body.Lines)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddFulfillmentLinesCommand(orderID, fulfillmentID, entries)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addFulfillmentLinesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateFulfillmentLineQuantities handles PATCH /api/v1/orders/:orderId/fulfillments/:fulfillmentId/lines.
func (s *Server) UpdateFulfillmentLineQuantities(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}
	fulfillmentID, err := pathUUID(ctx, "fulfillmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Changes []struct {
			FulfillmentLineID string `json:"fulfillmentLineId"`
			Quantity          int    `json:"quantity"`
		} `json:"changes"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	changes := make([]order.QuantityChange, 0, len(body.Changes))
	for _, change := range body.Changes {
		fulfillmentLineID, changeErr := kernel.UUIDFromString(change.FulfillmentLineID)
		if changeErr != nil {
			return writeError(ctx, changeErr)
		}
		changes = append(changes, order.QuantityChange{
			FulfillmentLineID: fulfillmentLineID,
			Quantity:          change.Quantity,
		})
	}

	cmd, err := commands.NewUpdateFulfillmentLineQuantitiesCommand(orderID, fulfillmentID, changes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateFulfillmentLineQuantitiesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteFulfillmentLines handles DELETE /api/v1/orders/:orderId/fulfillments/:fulfillmentId/lines.
func (s *Server) DeleteFulfillmentLines(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}
	fulfillmentID, err := pathUUID(ctx, "fulfillmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		FulfillmentLineIDs []string `json:"fulfillmentLineIds"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ids := make([]kernel.UUID, 0, len(body.FulfillmentLineIDs))
	for _, raw := range body.FulfillmentLineIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		ids = append(ids, id)
	}

	cmd, err := commands.NewDeleteFulfillmentLinesCommand(orderID, fulfillmentID, ids)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteFulfillmentLinesHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteFulfillment handles POST /api/v1/orders/:orderId/fulfillments/:fulfillmentId/complete.
func (s *Server) CompleteFulfillment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}
	fulfillmentID, err := pathUUID(ctx, "fulfillmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		TrackingNumber string `json:"trackingNumber"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteFulfillmentCommand(orderID, fulfillmentID, body.TrackingNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteFulfillment handles DELETE /api/v1/orders/:orderId/fulfillments/:fulfillmentId.
func (s *Server) DeleteFulfillment(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}
	fulfillmentID, err := pathUUID(ctx, "fulfillmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteFulfillmentCommand(orderID, fulfillmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteFulfillmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateTrackingNumber handles PUT /api/v1/orders/:orderId/fulfillments/:fulfillmentId/tracking.
func (s *Server) UpdateTrackingNumber(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}
	fulfillmentID, err := pathUUID(ctx, "fulfillmentId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		TrackingNumber string `json:"trackingNumber"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateTrackingNumberCommand(orderID, fulfillmentID, body.TrackingNumber)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateTrackingNumberHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FulfillOrder handles POST /api/v1/orders/:orderId/fulfill.
func (s *Server) FulfillOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFulfillOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.fulfillOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UndoFulfillOrder handles POST /api/v1/orders/:orderId/undo-fulfill.
func (s *Server) UndoFulfillOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUndoFulfillOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.undoFulfillOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReinstateOrder handles POST /api/v1/orders/:orderId/reinstate.
func (s *Server) ReinstateOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReinstateOrderCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.reinstateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
