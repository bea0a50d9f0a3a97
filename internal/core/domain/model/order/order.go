package order

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/shipping"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for the post-checkout fulfillment lifecycle.
// It owns the order lines (with their quantity ledgers) and the fulfillments,
// and is the only place fulfillment bookkeeping happens, so the ledger
// invariants hold after every operation:
//
//   - for every line, 0 <= fulfilledQuantity <= quantity
//   - the sum of a line's fulfillment-line quantities across all fulfillments
//     equals its fulfilledQuantity
//
// The shape of an order is immutable once created: lines, addresses, the
// shipping snapshot and the payment reference are fixed at checkout
// completion. Only the status and the fulfillment state change afterwards.
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	email          string
	status         Status
	previousStatus Status

	billingAddress  kernel.Address
	shippingAddress *kernel.Address
	shippingMethod  *shipping.MethodSnapshot
	paymentID       string

	lines        []*Line
	fulfillments []*Fulfillment

	guard kernel.ConstructorGuard
}

// FulfillmentEntry requests the assignment of a quantity of one order line to
// a fulfillment.
type FulfillmentEntry struct {
	OrderLineID kernel.UUID
	Quantity    int
}

// QuantityChange requests the replacement of one fulfillment line's quantity.
type QuantityChange struct {
	FulfillmentLineID kernel.UUID
	Quantity          int
}

// NewOrder creates an order in Created status from the data captured at
// checkout completion. The shipping address and method snapshot are nil for
// orders containing only digital goods.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	email string,
	billingAddress kernel.Address,
	shippingAddress *kernel.Address,
	shippingMethod *shipping.MethodSnapshot,
	paymentID string,
	lines []*Line,
) (*Order, error) {
	o := &Order{
		status:          Created,
		previousStatus:  Created,
		shippingAddress: shippingAddress,
		shippingMethod:  shippingMethod,
		guard:           kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setEmail(email),
		o.setBillingAddress(billingAddress),
		o.setPaymentID(paymentID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	if shippingAddress != nil {
		if err := shippingAddress.Validate(); err != nil {
			return nil, err
		}
	}
	if shippingMethod != nil {
		if err := shippingMethod.Validate(); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its status
// history and fulfillments.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	email string,
	status Status,
	previousStatus Status,
	billingAddress kernel.Address,
	shippingAddress *kernel.Address,
	shippingMethod *shipping.MethodSnapshot,
	paymentID string,
	lines []*Line,
	fulfillments []*Fulfillment,
) (*Order, error) {
	o, err := NewOrder(id, customerID, email, billingAddress, shippingAddress, shippingMethod, paymentID, lines)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(status.Validate(), previousStatus.Validate()); err != nil {
		return nil, err
	}
	for _, f := range fulfillments {
		if err = f.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.previousStatus = previousStatus
	o.fulfillments = append([]*Fulfillment(nil), fulfillments...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the id of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Email returns the customer contact email captured at checkout.
func (o *Order) Email() string { return o.email }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// PreviousStatus returns the status recorded by the last status-saving
// transition (fulfill or cancel). It is a single slot, not a history.
func (o *Order) PreviousStatus() Status { return o.previousStatus }

// BillingAddress returns the billing address.
func (o *Order) BillingAddress() kernel.Address { return o.billingAddress }

// ShippingAddress returns the shipping address, nil for digital-only orders.
func (o *Order) ShippingAddress() *kernel.Address { return o.shippingAddress }

// ShippingMethod returns the shipping method snapshot, nil for digital-only
// orders.
func (o *Order) ShippingMethod() *shipping.MethodSnapshot { return o.shippingMethod }

// PaymentID returns the captured payment reference.
func (o *Order) PaymentID() string { return o.paymentID }

// Lines returns the order lines.
func (o *Order) Lines() []*Line {
	return append([]*Line(nil), o.lines...)
}

// Fulfillments returns the order's fulfillments.
func (o *Order) Fulfillments() []*Fulfillment {
	return append([]*Fulfillment(nil), o.fulfillments...)
}

// LineByID returns the order line with the given id.
func (o *Order) LineByID(id kernel.UUID) (*Line, error) {
	for _, line := range o.lines {
		if line.id.IsEqual(id) {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderLineId", id.String())
}

// FulfillmentByID returns the fulfillment with the given id.
func (o *Order) FulfillmentByID(id kernel.UUID) (*Fulfillment, error) {
	for _, f := range o.fulfillments {
		if f.id.IsEqual(id) {
			return f, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("fulfillmentId", id.String())
}

// Confirm transitions the order from Created to Confirmed. Any other current
// status is rejected.
func (o *Order) Confirm() error {
	if o.status != Created {
		return errs.NewBusinessRuleViolationError(
			"ORDER_STATUS_MUST_BE_CREATED",
			"order %s is in status %s, must be %s to confirm", o.id, o.status, Created,
		)
	}
	o.status = Confirmed
	return nil
}

// CreateFulfillment opens a new fulfillment and assigns the given entries to
// it. Creating the first fulfillment moves a Confirmed order to Processing.
// The whole batch fails if any entry violates the ledger rules.
func (o *Order) CreateFulfillment(id kernel.UUID, entries []FulfillmentEntry) (*Fulfillment, error) {
	if err := o.ensureProcessable(); err != nil {
		return nil, err
	}

	fulfillment, err := NewFulfillment(id, o.id)
	if err != nil {
		return nil, err
	}

	if err = o.assignEntries(fulfillment, entries); err != nil {
		return nil, err
	}

	o.fulfillments = append(o.fulfillments, fulfillment)
	if o.status == Confirmed {
		o.status = Processing
	}

	return fulfillment, nil
}

// AddFulfillmentLines assigns additional entries to an existing open or
// completed fulfillment. The whole batch fails if any entry violates the
// ledger rules.
func (o *Order) AddFulfillmentLines(fulfillmentID kernel.UUID, entries []FulfillmentEntry) error {
	if err := o.ensureProcessable(); err != nil {
		return err
	}

	fulfillment, err := o.FulfillmentByID(fulfillmentID)
	if err != nil {
		return err
	}

	if err = o.assignEntries(fulfillment, entries); err != nil {
		return err
	}

	if o.status == Confirmed {
		o.status = Processing
	}
	return nil
}

// UpdateFulfillmentLineQuantities replaces the quantities of the referenced
// fulfillment lines. For each change, the new quantity is validated against
// the order line's assignable quantity as if the fulfillment line's current
// contribution were first subtracted. The whole batch fails on any violation.
func (o *Order) UpdateFulfillmentLineQuantities(fulfillmentID kernel.UUID, changes []QuantityChange) error {
	if err := o.ensureProcessable(); err != nil {
		return err
	}

	fulfillment, err := o.FulfillmentByID(fulfillmentID)
	if err != nil {
		return err
	}

	// Resolve everything against a single snapshot before mutating anything.
	type resolvedChange struct {
		fulfillmentLine *FulfillmentLine
		orderLine       *Line
		newQuantity     int
	}

	resolved := make([]resolvedChange, 0, len(changes))
	missing := make([]string, 0)
	projected := make(map[kernel.UUID]int)

	for _, change := range changes {
		fulfillmentLine := fulfillment.lineByID(change.FulfillmentLineID)
		if fulfillmentLine == nil {
			if o.fulfillmentLineExists(change.FulfillmentLineID) {
				return errs.NewBusinessRuleViolationError(
					"LINE_DOES_NOT_BELONG_TO_FULFILLMENT",
					"fulfillment line %s does not belong to fulfillment %s",
					change.FulfillmentLineID, fulfillmentID,
				)
			}
			missing = append(missing, change.FulfillmentLineID.String())
			continue
		}

		orderLine, lineErr := o.LineByID(fulfillmentLine.orderLineID)
		if lineErr != nil {
			return lineErr
		}

		if change.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}

		if _, ok := projected[orderLine.id]; !ok {
			projected[orderLine.id] = orderLine.fulfilledQuantity
		}
		projected[orderLine.id] += change.Quantity - fulfillmentLine.quantity

		resolved = append(resolved, resolvedChange{
			fulfillmentLine: fulfillmentLine,
			orderLine:       orderLine,
			newQuantity:     change.Quantity,
		})
	}

	if len(missing) > 0 {
		return errs.NewObjectsNotFoundError("fulfillmentLineId", missing)
	}

	for _, change := range resolved {
		if projected[change.orderLine.id] > change.orderLine.quantity {
			return errInsufficientAssignableQuantity(change.orderLine,
				change.newQuantity-change.fulfillmentLine.quantity)
		}
	}

	for _, change := range resolved {
		change.orderLine.fulfilledQuantity += change.newQuantity - change.fulfillmentLine.quantity
		change.fulfillmentLine.quantity = change.newQuantity
	}

	return nil
}

// DeleteFulfillmentLines removes the referenced fulfillment lines and
// releases their quantities back to the order lines. Unlike add and update,
// deletion is forgiving: ids that do not resolve to a line of the given
// fulfillment are silently skipped.
func (o *Order) DeleteFulfillmentLines(fulfillmentID kernel.UUID, fulfillmentLineIDs []kernel.UUID) error {
	if err := o.ensureProcessable(); err != nil {
		return err
	}

	fulfillment, err := o.FulfillmentByID(fulfillmentID)
	if err != nil {
		return err
	}

	for _, id := range fulfillmentLineIDs {
		fulfillmentLine := fulfillment.lineByID(id)
		if fulfillmentLine == nil {
			continue
		}

		orderLine, lineErr := o.LineByID(fulfillmentLine.orderLineID)
		if lineErr != nil {
			return lineErr
		}

		if err = orderLine.release(fulfillmentLine.quantity); err != nil {
			return err
		}
		fulfillment.removeLine(id)
	}

	return nil
}

// CompleteFulfillment seals the fulfillment, optionally recording a tracking
// number, and moves a Processing order to PartiallyFulfilled. Subsequent
// completions leave the order PartiallyFulfilled.
func (o *Order) CompleteFulfillment(fulfillmentID kernel.UUID, trackingNumber string) error {
	if err := o.ensureProcessable(); err != nil {
		return err
	}

	fulfillment, err := o.FulfillmentByID(fulfillmentID)
	if err != nil {
		return err
	}

	if err = fulfillment.complete(trackingNumber); err != nil {
		return err
	}

	if o.status == Processing {
		o.status = PartiallyFulfilled
	}
	return nil
}

// DeleteFulfillment removes a fulfillment entirely, cascading over its lines:
// every contained fulfillment line is removed and its order line's fulfilled
// quantity decremented, regardless of whether the fulfillment was completed.
func (o *Order) DeleteFulfillment(fulfillmentID kernel.UUID) error {
	if err := o.ensureProcessable(); err != nil {
		return err
	}

	fulfillment, err := o.FulfillmentByID(fulfillmentID)
	if err != nil {
		return err
	}

	for _, fulfillmentLine := range fulfillment.Lines() {
		orderLine, lineErr := o.LineByID(fulfillmentLine.orderLineID)
		if lineErr != nil {
			return lineErr
		}
		if err = orderLine.release(fulfillmentLine.quantity); err != nil {
			return err
		}
		fulfillment.removeLine(fulfillmentLine.id)
	}

	for i, f := range o.fulfillments {
		if f.id.IsEqual(fulfillmentID) {
			o.fulfillments = append(o.fulfillments[:i], o.fulfillments[i+1:]...)
			break
		}
	}

	return nil
}

// UpdateTrackingNumber records a tracking number on a completed fulfillment
// without changing the order status. Rejected on cancelled orders.
func (o *Order) UpdateTrackingNumber(fulfillmentID kernel.UUID, trackingNumber string) error {
	if o.status == Cancelled {
		return errAlreadyCancelled(o)
	}

	fulfillment, err := o.FulfillmentByID(fulfillmentID)
	if err != nil {
		return err
	}

	return fulfillment.setTrackingNumber(trackingNumber)
}

// Fulfill marks the order as fulfilled, saving the prior status so the
// transition can be undone. Every shipping-required line must be fully
// fulfilled; lines not requiring shipping are ignored by the check.
func (o *Order) Fulfill() error {
	if err := o.ensureProcessable(); err != nil {
		return err
	}

	for _, line := range o.lines {
		if line.shippingRequired && !line.IsFullyFulfilled() {
			return errs.NewBusinessRuleViolationError(
				"CANNOT_FULFILL_ORDER_WITH_UNFULFILLED_LINES",
				"order %s has unfulfilled line %s (%d of %d fulfilled)",
				o.id, line.id, line.fulfilledQuantity, line.quantity,
			)
		}
	}

	o.previousStatus = o.status
	o.status = Fulfilled
	return nil
}

// UndoFulfill reverses Fulfill, restoring the status saved by it. Only valid
// on a Fulfilled order.
func (o *Order) UndoFulfill() error {
	if o.status != Fulfilled {
		return errs.NewBusinessRuleViolationError(
			"ORDER_NOT_FULFILLED",
			"order %s is in status %s, must be %s to undo fulfillment", o.id, o.status, Fulfilled,
		)
	}
	o.status = o.previousStatus
	return nil
}

// Cancel cancels the order from any status except Cancelled itself, saving
// the prior status so the order can be reinstated.
func (o *Order) Cancel() error {
	if o.status == Cancelled {
		return errAlreadyCancelled(o)
	}
	o.previousStatus = o.status
	o.status = Cancelled
	return nil
}

// Reinstate reverses Cancel, restoring the status saved by it. Only valid on
// a Cancelled order.
func (o *Order) Reinstate() error {
	if o.status != Cancelled {
		return errs.NewBusinessRuleViolationError(
			"ORDER_NOT_CANCELLED",
			"order %s is in status %s, must be %s to reinstate", o.id, o.status, Cancelled,
		)
	}
	o.status = o.previousStatus
	return nil
}

// assignEntries validates a batch of entries against a consistent snapshot of
// the affected order lines, then applies it. Entries referencing order lines
// that do not require shipping are skipped, not rejected. A fulfillment line
// already existing for an (fulfillment, order line) pair grows instead of
// being duplicated.
func (o *Order) assignEntries(fulfillment *Fulfillment, entries []FulfillmentEntry) error {
	missing := make([]string, 0)
	requested := make(map[kernel.UUID]int)
	resolved := make([]*Line, 0, len(entries))

	for _, entry := range entries {
		line, err := o.LineByID(entry.OrderLineID)
		if err != nil {
			missing = append(missing, entry.OrderLineID.String())
			continue
		}

		if !line.orderID.IsEqual(o.id) {
			return errs.NewBusinessRuleViolationError(
				"LINE_DOES_NOT_BELONG_TO_ORDER",
				"order line %s does not belong to order %s", line.id, o.id,
			)
		}

		if !line.shippingRequired {
			continue
		}

		if entry.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}

		if _, ok := requested[line.id]; !ok {
			resolved = append(resolved, line)
		}
		requested[line.id] += entry.Quantity
	}

	if len(missing) > 0 {
		return errs.NewObjectsNotFoundError("orderLineId", missing)
	}

	for _, line := range resolved {
		if requested[line.id] > line.AssignableQuantity() {
			return errInsufficientAssignableQuantity(line, requested[line.id])
		}
	}

	for _, line := range resolved {
		amount := requested[line.id]
		if err := line.assign(amount); err != nil {
			return err
		}

		if existing := fulfillment.lineForOrderLine(line.id); existing != nil {
			existing.quantity += amount
			continue
		}

		fulfillmentLine, err := newFulfillmentLine(kernel.NewUUID(), fulfillment.id, line.id, amount)
		if err != nil {
			return err
		}
		fulfillment.lines = append(fulfillment.lines, fulfillmentLine)
	}

	return nil
}

func (o *Order) fulfillmentLineExists(id kernel.UUID) bool {
	for _, f := range o.fulfillments {
		if f.lineByID(id) != nil {
			return true
		}
	}
	return false
}

func (o *Order) ensureProcessable() error {
	if !o.status.IsProcessable() {
		return errs.NewBusinessRuleViolationError(
			"ORDER_NOT_PROCESSABLE",
			"order %s is in status %s and cannot be processed", o.id, o.status,
		)
	}
	return nil
}

func errAlreadyCancelled(o *Order) error {
	return errs.NewBusinessRuleViolationError(
		"ORDER_ALREADY_CANCELLED",
		"order %s is already cancelled", o.id,
	)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	o.email = email
	return nil
}

func (o *Order) setBillingAddress(billingAddress kernel.Address) error {
	if err := billingAddress.Validate(); err != nil {
		return err
	}
	o.billingAddress = billingAddress
	return nil
}

func (o *Order) setPaymentID(paymentID string) error {
	if paymentID == "" {
		return errs.NewValueIsRequiredError("paymentId")
	}
	o.paymentID = paymentID
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if !line.orderID.IsEqual(o.id) {
			return errs.NewBusinessRuleViolationError(
				"LINE_DOES_NOT_BELONG_TO_ORDER",
				"order line %s does not belong to order %s", line.id, o.id,
			)
		}
	}
	o.lines = append([]*Line(nil), lines...)
	return nil
}
