package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Deps wires the ledger core to its ports.
type Deps struct {
	Orders       interfaces.IOrderRepository
	Installments interfaces.IInstallmentRepository
	Customers    interfaces.ICustomerRepository
	Transactor   interfaces.ITransactor
	Notifier     interfaces.INotifier
	Boletos      interfaces.IBoletoGateway
	Logger       *zap.Logger
	// Location decides what "today" is for due dates. Defaults to UTC.
	Location *time.Location
	Now      func() time.Time
}

// LedgerCore is shared by every use case that mutates an order or its installments.
// Commands on the same order are serialized by an in-process lock and committed as a
// single Changeset guarded by the order version.
type LedgerCore struct {
	orders       interfaces.IOrderRepository
	installments interfaces.IInstallmentRepository
	customers    interfaces.ICustomerRepository
	tx           interfaces.ITransactor
	boletos      interfaces.IBoletoGateway
	logger       *zap.Logger
	loc          *time.Location
	clock        func() time.Time
	locks        *keyedMutex
	notify       *dispatcher
}

func NewLedgerCore(d Deps) *LedgerCore {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	loc := d.Location
	if loc == nil {
		loc = time.UTC
	}
	clock := d.Now
	if clock == nil {
		clock = time.Now
	}
	return &LedgerCore{
		orders:       d.Orders,
		installments: d.Installments,
		customers:    d.Customers,
		tx:           d.Transactor,
		boletos:      d.Boletos,
		logger:       logger,
		loc:          loc,
		clock:        clock,
		locks:        newKeyedMutex(),
		notify:       &dispatcher{notifier: d.Notifier, logger: logger},
	}
}

func (c *LedgerCore) now() time.Time {
	return c.clock().UTC()
}

// today is the current calendar date in the configured location.
func (c *LedgerCore) today() time.Time {
	return entities.DateOnly(c.clock().In(c.loc))
}

// Wait blocks until pending notifications are delivered. Used on shutdown.
func (c *LedgerCore) Wait() {
	c.notify.wait()
}

// orderSession is the in-memory working copy of one order and its ledger.
type orderSession struct {
	order    entities.Order
	ledger   entities.Ledger
	original map[string]entities.Installment
	changed  map[string]bool
	removed  map[string]entities.Installment
	today    time.Time
	now      time.Time
	dirty    bool
	events   []notification
}

func (s *orderSession) touch() {
	s.dirty = true
}

// installment returns the working copy of an installment of this order.
func (s *orderSession) installment(id string) (entities.Installment, error) {
	it, ok := s.ledger.Find(id)
	if !ok {
		return entities.Installment{}, entities.NotFoundError("installment %s not found in order %s", id, s.order.ID)
	}
	return it, nil
}

// put stores an installment in the working copy, assigning an id to new ones.
func (s *orderSession) put(it entities.Installment) entities.Installment {
	if it.ID == "" {
		it.ID = uuid.NewString()
		it.CreatedAt = s.now
	}
	it.OrderID = s.order.ID
	it.CustomerID = s.order.BuyerID
	it.StoreID = s.order.StoreID
	it.UpdatedAt = s.now

	replaced := false
	for i := range s.ledger {
		if s.ledger[i].ID == it.ID {
			s.ledger[i] = it
			replaced = true
			break
		}
	}
	if !replaced {
		s.ledger = append(s.ledger, it)
	}
	delete(s.removed, it.ID)
	s.changed[it.ID] = true
	s.dirty = true
	return it
}

func (s *orderSession) drop(id string) {
	for i := range s.ledger {
		if s.ledger[i].ID == id {
			s.ledger = append(s.ledger[:i], s.ledger[i+1:]...)
			break
		}
	}
	delete(s.changed, id)
	if orig, ok := s.original[id]; ok {
		s.removed[id] = orig
	}
	s.dirty = true
}

func (s *orderSession) emit(event string, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["order_id"] = s.order.ID
	s.events = append(s.events, notification{customerID: s.order.BuyerID, event: event, payload: payload})
}

// changeset diffs the working copy against what was loaded.
func (s *orderSession) changeset(expectedVersion int64) entities.Changeset {
	cs := entities.Changeset{Order: s.order, ExpectedVersion: expectedVersion}

	ids := make([]string, 0, len(s.changed))
	for id := range s.changed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		after, ok := s.ledger.Find(id)
		if !ok {
			continue
		}
		if before, existed := s.original[id]; existed {
			cs.Track(&before, &after)
		} else {
			cs.Track(nil, &after)
		}
	}

	removed := make([]string, 0, len(s.removed))
	for id := range s.removed {
		removed = append(removed, id)
	}
	sort.Strings(removed)
	for _, id := range removed {
		before := s.removed[id]
		cs.Track(&before, nil)
	}
	return cs
}

// withOrder runs fn against a locked working copy of the order, settles the order
// state and commits everything fn changed as one Changeset. Nothing is written when
// fn leaves the session untouched.
func (c *LedgerCore) withOrder(ctx context.Context, orderID string, fn func(s *orderSession) error) (*orderSession, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, entities.ValidationError("order_id is required")
	}
	unlock := c.locks.Lock(orderID)
	defer unlock()

	s, err := c.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	prevStatus := s.order.Status

	if err := fn(s); err != nil {
		return nil, err
	}
	if !s.dirty {
		return s, nil
	}

	if _, err := s.order.Settle(s.ledger, s.today); err != nil {
		return nil, err
	}
	if s.order.Status != prevStatus {
		s.emit(EventOrderStatusChanged, map[string]any{"from": string(prevStatus), "to": string(s.order.Status)})
	}

	expected := s.order.Version
	s.order.Version = expected + 1
	s.order.UpdatedAt = s.now
	cs := s.changeset(expected)

	if err := c.tx.Commit(ctx, cs); err != nil {
		c.logger.Warn("[ledger][usecase] commit failed",
			zap.String("order_id", orderID),
			zap.Int64("expected_version", expected),
			zap.Error(err))
		return nil, err
	}
	c.logger.Info("[ledger][usecase] committed",
		zap.String("order_id", orderID),
		zap.Int64("version", s.order.Version),
		zap.String("status", string(s.order.Status)),
		zap.String("payment_status", string(s.order.PaymentStatus)),
		zap.Int("upserts", len(cs.Upserts)),
		zap.Int("deletes", len(cs.Deletes)))

	c.notify.dispatch(s.events)
	return s, nil
}

// withInstallment resolves the owning order of an installment and runs fn under its lock.
func (c *LedgerCore) withInstallment(ctx context.Context, installmentID string, fn func(s *orderSession, it entities.Installment) error) (*orderSession, entities.Installment, error) {
	installmentID = strings.TrimSpace(installmentID)
	if installmentID == "" {
		return nil, entities.Installment{}, entities.ValidationError("installment_id is required")
	}
	stored, err := c.installments.GetByID(ctx, installmentID)
	if err != nil {
		return nil, entities.Installment{}, err
	}
	if stored.ID == "" {
		return nil, entities.Installment{}, entities.NotFoundError("installment %s not found", installmentID)
	}

	s, err := c.withOrder(ctx, stored.OrderID, func(s *orderSession) error {
		it, err := s.installment(installmentID)
		if err != nil {
			return err
		}
		return fn(s, it)
	})
	if err != nil {
		return nil, entities.Installment{}, err
	}
	it, _ := s.ledger.Find(installmentID)
	return s, it, nil
}

func (c *LedgerCore) load(ctx context.Context, orderID string) (*orderSession, error) {
	order, err := c.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, entities.NotFoundError("order %s not found", orderID)
	}
	items, err := c.installments.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	s := &orderSession{
		order:    order,
		ledger:   entities.Ledger(items),
		original: make(map[string]entities.Installment, len(items)),
		changed:  map[string]bool{},
		removed:  map[string]entities.Installment{},
		today:    c.today(),
		now:      c.now(),
	}
	for _, it := range items {
		s.original[it.ID] = it
	}
	return s, nil
}

// snapshot reads an order and its ledger without locking.
func (c *LedgerCore) snapshot(ctx context.Context, orderID string) (entities.Order, entities.Ledger, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, nil, entities.ValidationError("order_id is required")
	}
	s, err := c.load(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, err
	}
	return s.order, s.ledger, nil
}

// materialize replaces the open installments of the session with schedule. Paid
// installments are retained as stored; only their total count follows the new
// schedule. Returns false when the schedule already matches.
func (s *orderSession) materialize(schedule []entities.Installment) (bool, error) {
	if s.order.Frozen() {
		return false, entities.InvalidTransitionError("order %s is %s, installments are frozen", s.order.ID, s.order.Status)
	}

	var paid, currentOpen []entities.Installment
	for _, it := range s.ledger.Active() {
		if it.Status == entities.InstallmentPaid {
			paid = append(paid, it)
		} else {
			currentOpen = append(currentOpen, it)
		}
	}

	openIDs := make(map[string]bool, len(currentOpen))
	for _, it := range currentOpen {
		openIDs[it.ID] = true
	}

	var incoming []entities.Installment
	claimed := map[string]bool{}
	for _, it := range schedule {
		if it.Status == entities.InstallmentPaid {
			if stored, ok := s.original[it.ID]; !ok || stored.Status != entities.InstallmentPaid {
				return false, entities.InvalidScheduleError("installment %q cannot enter the schedule as paid", it.ID)
			}
			continue
		}
		if it.Status == entities.InstallmentCancelled {
			continue
		}
		if it.ID != "" {
			if !openIDs[it.ID] {
				if stored, ok := s.ledger.Find(it.ID); ok {
					return false, entities.InvalidScheduleError("installment %s is %s and cannot be rescheduled", it.ID, stored.Status)
				}
				it.ID = ""
			} else if claimed[it.ID] {
				return false, entities.InvalidScheduleError("installment %s appears twice in the schedule", it.ID)
			} else {
				claimed[it.ID] = true
			}
		}
		incoming = append(incoming, it)
	}
	sort.SliceStable(incoming, func(a, b int) bool { return incoming[a].Sequence < incoming[b].Sequence })

	total := len(paid) + len(incoming)
	for i := range incoming {
		incoming[i].Amount = entities.Cents(incoming[i].Amount)
		incoming[i].DueDate = entities.DateOnly(incoming[i].DueDate)
		incoming[i].TotalCount = total
	}
	if err := validateSchedule(paid, incoming, s.order.PayableTotal); err != nil {
		return false, err
	}

	if sameOpenSchedule(currentOpen, incoming) && paidCountsMatch(paid, total) {
		return false, nil
	}

	keep := map[string]bool{}
	for _, it := range incoming {
		if it.ID != "" {
			keep[it.ID] = true
		}
	}
	for _, it := range currentOpen {
		if !keep[it.ID] {
			s.drop(it.ID)
		}
	}
	for _, it := range incoming {
		next := it
		if stored, ok := s.ledger.Find(it.ID); ok && openIDs[it.ID] {
			next = stored
			next.Sequence = it.Sequence
			next.Amount = it.Amount
			next.DueDate = it.DueDate
			next.TotalCount = it.TotalCount
		} else {
			next.ID = ""
			next.Status = entities.InstallmentPending
			next.Proof = entities.PaymentProof{Status: entities.ProofNone}
			next.PaidAt = nil
			next.Boleto = entities.Boleto{}
		}
		s.put(next)
	}
	for _, it := range paid {
		if it.TotalCount != total {
			it.TotalCount = total
			s.put(it)
		}
	}
	return true, nil
}

func validateSchedule(paid, open []entities.Installment, payable entities.Money) error {
	seen := map[int]bool{}
	sum := entities.Zero
	for _, it := range append(append([]entities.Installment{}, paid...), open...) {
		if it.Sequence < 1 {
			return entities.InvalidScheduleError("sequence numbers start at 1, got %d", it.Sequence)
		}
		if seen[it.Sequence] {
			return entities.InvalidScheduleError("duplicate sequence number %d", it.Sequence)
		}
		seen[it.Sequence] = true
		if it.Amount.IsNegative() {
			return entities.InvalidScheduleError("installment %d has a negative amount", it.Sequence)
		}
		if it.DueDate.IsZero() {
			return entities.InvalidScheduleError("installment %d has no due date", it.Sequence)
		}
		sum = sum.Add(it.Amount)
	}
	if len(paid)+len(open) > 0 && !entities.WithinTolerance(sum, payable) {
		return entities.InvalidScheduleError("installments sum %s but the payable total is %s",
			sum.StringFixed(2), payable.StringFixed(2))
	}
	return nil
}

func sameOpenSchedule(current, incoming []entities.Installment) bool {
	if len(current) != len(incoming) {
		return false
	}
	for i := range current {
		want := incoming[i]
		if want.ID == "" {
			want.ID = current[i].ID
		}
		want.Status = current[i].Status
		if current[i].ID != want.ID || !current[i].SameSchedule(want) {
			return false
		}
	}
	return true
}

func paidCountsMatch(paid []entities.Installment, total int) bool {
	for _, it := range paid {
		if it.TotalCount != total {
			return false
		}
	}
	return true
}
