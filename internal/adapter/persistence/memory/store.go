// Package memory keeps orders, installments and customer accounts in process.
// It honours the same conditional-write semantics as the DynamoDB and PostgreSQL
// stores and backs the tests and the STORAGE_DRIVER=memory mode.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"
)

type Store struct {
	mu           sync.RWMutex
	orders       map[string]entities.Order
	installments map[string]entities.Installment
	customers    map[string]entities.Customer
	now          func() time.Time
}

var _ interfaces.ITransactor = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		orders:       map[string]entities.Order{},
		installments: map[string]entities.Installment{},
		customers:    map[string]entities.Customer{},
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) Orders() *OrderRepository             { return &OrderRepository{s: s} }
func (s *Store) Installments() *InstallmentRepository { return &InstallmentRepository{s: s} }
func (s *Store) Customers() *CustomerRepository       { return &CustomerRepository{s: s} }

// Commit applies the changeset or nothing at all.
func (s *Store) Commit(_ context.Context, cs entities.Changeset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.orders[cs.Order.ID]
	switch {
	case cs.NewOrder && exists:
		return entities.ConcurrentModificationError("order %s already exists", cs.Order.ID)
	case !cs.NewOrder && !exists:
		return entities.NotFoundError("order %s not found", cs.Order.ID)
	case !cs.NewOrder && stored.Version != cs.ExpectedVersion:
		return entities.ConcurrentModificationError("order %s changed: expected version %d, found %d",
			cs.Order.ID, cs.ExpectedVersion, stored.Version)
	}

	next := make(map[string]entities.Installment, len(cs.Upserts))
	for _, it := range cs.Upserts {
		next[it.ID] = it
	}
	deleted := make(map[string]bool, len(cs.Deletes))
	for _, it := range cs.Deletes {
		deleted[it.ID] = true
	}
	if err := s.checkSequences(cs.Order.ID, next, deleted); err != nil {
		return err
	}

	s.orders[cs.Order.ID] = cloneOrder(cs.Order)
	for id, it := range next {
		s.installments[id] = it
	}
	for id := range deleted {
		delete(s.installments, id)
	}
	for _, d := range cs.EffectiveDeltas() {
		c := s.customers[d.AccountID]
		c.ID = d.AccountID
		c.CustomerID = d.CustomerID
		c.StoreID = d.StoreID
		c.TotalOutstanding = c.TotalOutstanding.Add(d.Outstanding)
		c.UpdatedAt = s.now()
		s.customers[d.AccountID] = c
	}
	return nil
}

// checkSequences enforces one active installment per (order, sequence).
func (s *Store) checkSequences(orderID string, next map[string]entities.Installment, deleted map[string]bool) error {
	seen := map[int]string{}
	visit := func(it entities.Installment) error {
		if it.OrderID != orderID || it.Status == entities.InstallmentCancelled {
			return nil
		}
		if other, dup := seen[it.Sequence]; dup && other != it.ID {
			return entities.ConcurrentModificationError("order %s already has an active installment #%d", orderID, it.Sequence)
		}
		seen[it.Sequence] = it.ID
		return nil
	}
	for id, it := range s.installments {
		if deleted[id] {
			continue
		}
		if _, replaced := next[id]; replaced {
			continue
		}
		if err := visit(it); err != nil {
			return err
		}
	}
	for _, it := range next {
		if err := visit(it); err != nil {
			return err
		}
	}
	return nil
}

type OrderRepository struct{ s *Store }

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return cloneOrder(o), nil
}

type InstallmentRepository struct{ s *Store }

var _ interfaces.IInstallmentRepository = (*InstallmentRepository)(nil)

func (r *InstallmentRepository) GetByID(_ context.Context, id string) (entities.Installment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.installments[id], nil
}

func (r *InstallmentRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.Installment, error) {
	return r.list(func(it entities.Installment) bool { return it.OrderID == orderID }), nil
}

func (r *InstallmentRepository) ListByCustomerID(_ context.Context, customerID string) ([]entities.Installment, error) {
	return r.list(func(it entities.Installment) bool { return it.CustomerID == customerID }), nil
}

func (r *InstallmentRepository) list(keep func(entities.Installment) bool) []entities.Installment {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Installment, 0)
	for _, it := range r.s.installments {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].OrderID != out[b].OrderID {
			return out[a].OrderID < out[b].OrderID
		}
		if out[a].Sequence != out[b].Sequence {
			return out[a].Sequence < out[b].Sequence
		}
		return out[a].ID < out[b].ID
	})
	return out
}

type CustomerRepository struct{ s *Store }

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) GetByID(_ context.Context, accountID string) (entities.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.customers[accountID], nil
}

func (r *CustomerRepository) Block(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.customers[c.ID]
	if ok && stored.Blocked {
		return stored, nil
	}
	stored.ID = c.ID
	stored.CustomerID = c.CustomerID
	stored.StoreID = c.StoreID
	stored.Blocked = true
	stored.BlockReason = c.BlockReason
	stored.BlockDate = c.BlockDate
	stored.UpdatedAt = r.s.now()
	r.s.customers[c.ID] = stored
	return stored, nil
}

func (r *CustomerRepository) Unblock(_ context.Context, accountID string) (entities.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.customers[accountID]
	if !ok {
		return entities.Customer{}, nil
	}
	stored.Blocked = false
	stored.BlockReason = ""
	stored.BlockDate = nil
	stored.UpdatedAt = r.s.now()
	r.s.customers[accountID] = stored
	return stored, nil
}

func (r *CustomerRepository) SetTotalOverdue(_ context.Context, accountID, customerID, storeID string, expected, total entities.Money) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := r.s.customers[accountID]
	if !c.TotalOverdue.Equal(expected) {
		return entities.ConcurrentModificationError("overdue total of account %s changed since it was read", accountID)
	}
	c.ID = accountID
	c.CustomerID = customerID
	c.StoreID = storeID
	c.TotalOverdue = total
	c.UpdatedAt = r.s.now()
	r.s.customers[accountID] = c
	return nil
}

func (r *CustomerRepository) ListWithOutstanding(_ context.Context) ([]entities.Customer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Customer, 0)
	for _, c := range r.s.customers {
		if c.TotalOutstanding.IsPositive() {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func cloneOrder(o entities.Order) entities.Order {
	o.Items = append([]entities.LineItem(nil), o.Items...)
	return o
}
