package order

import (
	"errors"
	"time"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/station"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNumberIsRequired is returned when an order is created without a
	// human-readable order number.
	ErrOrderNumberIsRequired = errors.New("order number is required")

	// ErrCustomerNameIsRequired is returned when an order is created without a
	// customer name.
	ErrCustomerNameIsRequired = errors.New("customer name is required")

	// ErrOrderItemsAreRequired is returned when an order is created with an
	// empty item list. The item list is the verification baseline and an order
	// without items has nothing to process.
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")

	// ErrVerificationNotAllowed is returned when starting a verification pass
	// at a station whose derived state does not permit it.
	ErrVerificationNotAllowed = errors.New("station state does not permit verification")

	// ErrBypassNotAllowed is returned when requesting a bypass at a station
	// whose derived state does not permit it.
	ErrBypassNotAllowed = errors.New("station state does not permit a bypass request")

	// ErrCompletionNotAllowed is returned when completing a station whose
	// derived state does not permit completion.
	ErrCompletionNotAllowed = errors.New("station state does not permit completion")

	// ErrBypassCompletionRequired is returned when standard completion is
	// submitted for a pass whose bypass was approved; such passes must complete
	// through the bypassed-completion command carrying the bypass reference.
	ErrBypassCompletionRequired = errors.New("approved bypass requires bypassed completion")

	// ErrBypassNotApproved is returned when bypassed completion is submitted
	// for a pass whose bypass is not in approved status.
	ErrBypassNotApproved = errors.New("bypass request is not approved")

	// ErrBypassRequestMismatch is returned when the bypass reference carried by
	// a bypassed completion does not belong to the station's open pass.
	ErrBypassRequestMismatch = errors.New("bypass request does not belong to this work process")

	// ErrBypassRequestNotFound is returned when resolving a bypass request that
	// does not exist on the order.
	ErrBypassRequestNotFound = errors.New("bypass request not found")
)

// Order represents a laundry order in the system. It is the aggregate root
// that owns the immutable item list placed by the customer and the work
// process records accumulated as the order moves through the stations.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, order number, and customer name
//   - Must contain at least one order item; items are immutable once placed
//   - At most one open work process pass exists per station: a new pass is
//     only permitted when no pass exists or the previous pass's bypass was
//     rejected
//   - A completion timestamp is never set before a verification pass exists
//     for that station
//   - Bypass requests transition only through admin resolution
//
// The per-station workflow state is never stored; it is derived on demand via
// DeriveStationState.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// orderNumber is the human-readable order reference (e.g. "LND-2026-0042")
	orderNumber string

	// customerName identifies the customer who placed the order
	customerName string

	// items is the ordered, immutable list of laundry items placed
	items []OrderItem

	// paymentStatus is the payment state carried as reference data
	paymentStatus PaymentStatus

	// createdAt is when the order was placed
	createdAt time.Time

	// workProcesses holds one record per station pass, in creation order
	workProcesses []*WorkProcess

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order with validation. The order starts with payment
// pending and no work processes.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - orderNumber: Human-readable order reference (must not be empty)
//   - customerName: Customer who placed the order (must not be empty)
//   - items: Laundry items placed (must contain at least one valid item)
//   - createdAt: Placement timestamp
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	items []OrderItem,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		paymentStatus: PaymentPending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerName(customerName),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its payment
// status and accumulated work processes. All restored parts are validated to
// ensure data integrity.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerName string,
	items []OrderItem,
	paymentStatus PaymentStatus,
	createdAt time.Time,
	workProcesses []*WorkProcess,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, customerName, items, createdAt)
	if err != nil {
		return nil, err
	}

	if err = paymentStatus.Validate(); err != nil {
		return nil, err
	}
	o.paymentStatus = paymentStatus

	for _, wp := range workProcesses {
		if err = wp.Validate(); err != nil {
			return nil, err
		}
	}
	o.workProcesses = append([]*WorkProcess(nil), workProcesses...)

	return o, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order reference.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerName returns the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Items returns a copy of the immutable item list placed by the customer.
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// PaymentStatus returns the payment state of the order.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// WorkProcesses returns a copy of the station pass records in creation order.
func (o *Order) WorkProcesses() []*WorkProcess {
	return append([]*WorkProcess(nil), o.workProcesses...)
}

// Total returns the sum of all line totals on the order.
func (o *Order) Total() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// MarkPaid sets the payment status to paid. Payment settlement itself happens
// outside the station workflow.
func (o *Order) MarkPaid() {
	o.paymentStatus = PaymentPaid
}

// FindWorkProcess returns the latest pass for the given station, or nil when
// the station has no pass yet. The latest pass decides the derived station
// state: an earlier pass can only be superseded after its bypass was
// rejected.
func (o *Order) FindWorkProcess(st station.Station) *WorkProcess {
	for i := len(o.workProcesses) - 1; i >= 0; i-- {
		if o.workProcesses[i].Station() == st {
			return o.workProcesses[i]
		}
	}
	return nil
}

// FindBypassRequest returns the work process owning the bypass request with
// the given ID, or (nil, nil) when no such request exists on the order.
func (o *Order) FindBypassRequest(bypassRequestID kernel.UUID) (*WorkProcess, *BypassRequest) {
	for _, wp := range o.workProcesses {
		if b := wp.Bypass(); b != nil && b.ID().IsEqual(bypassRequestID) {
			return wp, b
		}
	}
	return nil, nil
}

// StationState derives the current workflow state of the given station.
// See DeriveStationState for the precedence rules.
func (o *Order) StationState(st station.Station) StationState {
	return DeriveStationState(o, st)
}

// StartWorkProcess opens a verification pass at the given station.
//
// This method enforces the following business rules:
//   - The derived station state must permit verification (no open pass, or
//     the previous pass's bypass was rejected)
//   - The recorded tally is stored on the pass as the worker's count
//
// Returns the created pass, or an error when the station state forbids a new
// pass or any identifier is invalid.
func (o *Order) StartWorkProcess(
	processID kernel.UUID,
	st station.Station,
	employeeID kernel.UUID,
	recordedItems []RecordedItem,
	startedAt time.Time,
) (*WorkProcess, error) {
	if !o.StationState(st).CanSubmitVerification() {
		return nil, ErrVerificationNotAllowed
	}

	wp, err := newWorkProcess(processID, st, employeeID, recordedItems, startedAt)
	if err != nil {
		return nil, err
	}

	o.workProcesses = append(o.workProcesses, wp)
	return wp, nil
}

// RequestBypass escalates a verification mismatch at the given station.
//
// A bypass originates from a failed verification, so it is only permitted
// where a fresh verification would be (state verify or bypass_rejected). The
// call opens a new pass recording the mismatched tally and attaches a pending
// bypass request to it. While the request is pending, all further worker
// actions at the station are blocked by state derivation.
func (o *Order) RequestBypass(
	processID kernel.UUID,
	bypassRequestID kernel.UUID,
	st station.Station,
	employeeID kernel.UUID,
	reason string,
	recordedItems []RecordedItem,
	requestedAt time.Time,
) (*BypassRequest, error) {
	if !o.StationState(st).CanRequestBypass() {
		return nil, ErrBypassNotAllowed
	}

	bypass, err := NewBypassRequest(bypassRequestID, reason, requestedAt)
	if err != nil {
		return nil, err
	}

	wp, err := newWorkProcess(processID, st, employeeID, recordedItems, requestedAt)
	if err != nil {
		return nil, err
	}

	wp.attachBypass(bypass)
	o.workProcesses = append(o.workProcesses, wp)
	return bypass, nil
}

// ResolveBypass applies an admin decision to a pending bypass request.
//
// Approval permits completion of the owning pass despite the original
// mismatch; rejection closes the pass and forces a fresh verification.
// Returns ErrBypassRequestNotFound when no such request exists on the order,
// or a transition error when the request is already resolved.
func (o *Order) ResolveBypass(bypassRequestID kernel.UUID, approve bool, adminNote string) error {
	_, bypass := o.FindBypassRequest(bypassRequestID)
	if bypass == nil {
		return ErrBypassRequestNotFound
	}

	if approve {
		return bypass.Approve(adminNote)
	}
	return bypass.Reject(adminNote)
}

// CompleteProcess closes the open pass at the given station through the
// standard completion path.
//
// This method enforces the following business rules:
//   - The derived station state must be process
//   - A pass whose bypass was approved must complete through
//     CompleteBypassedProcess instead (ErrBypassCompletionRequired)
func (o *Order) CompleteProcess(st station.Station, notes string, completedAt time.Time) error {
	if !o.StationState(st).CanComplete() {
		return ErrCompletionNotAllowed
	}

	wp := o.FindWorkProcess(st)
	if b := wp.Bypass(); b != nil && b.Status() == BypassStatusApproved {
		return ErrBypassCompletionRequired
	}

	return wp.complete(notes, completedAt)
}

// CompleteBypassedProcess closes the open pass at the given station through
// the bypass-specific completion path, carrying the bypass reference and the
// re-verified tally.
//
// This method enforces the following business rules:
//   - The derived station state must be process
//   - The station's open pass must own the referenced bypass request
//     (ErrBypassRequestMismatch)
//   - The referenced bypass must be approved (ErrBypassNotApproved)
func (o *Order) CompleteBypassedProcess(
	st station.Station,
	bypassRequestID kernel.UUID,
	notes string,
	recordedItems []RecordedItem,
	completedAt time.Time,
) error {
	if !o.StationState(st).CanComplete() {
		return ErrCompletionNotAllowed
	}

	wp := o.FindWorkProcess(st)
	bypass := wp.Bypass()
	if bypass == nil || !bypass.ID().IsEqual(bypassRequestID) {
		return ErrBypassRequestMismatch
	}

	if bypass.Status() != BypassStatusApproved {
		return ErrBypassNotApproved
	}

	if err := wp.complete(notes, completedAt); err != nil {
		return err
	}

	if len(recordedItems) > 0 {
		wp.replaceRecordedItems(recordedItems)
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setOrderNumber validates and sets the human-readable order reference.
// This is a private method used only during construction.
func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = orderNumber
	return nil
}

// setCustomerName validates and sets the customer name.
// This is a private method used only during construction.
func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}
	o.customerName = customerName
	return nil
}

// setItems validates and sets the immutable item list.
// This is a private method used only during construction.
func (o *Order) setItems(items []OrderItem) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = append([]OrderItem(nil), items...)
	return nil
}
