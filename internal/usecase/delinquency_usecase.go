package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"portal_pedidos/internal/domain/entities"

	"go.uber.org/zap"
)

// IDelinquencyUseCase blocks customer accounts holding overdue installments.
//
// Requested behavior:
//   - Evaluate is safe to call any number of times; it never unblocks.
//   - A store id scopes the check to that store's installments and account.
//   - Unblock is an explicit administrative action.

type IDelinquencyUseCase interface {
	Evaluate(ctx context.Context, customerID, storeID string) (entities.DelinquencyReport, error)
	Unblock(ctx context.Context, customerID, storeID string) (entities.Customer, error)
	Sweep(ctx context.Context) (SweepResult, error)
}

// SweepResult summarizes a batch evaluation.
type SweepResult struct {
	Evaluated int `json:"evaluated"`
	Blocked   int `json:"blocked"`
	Failed    int `json:"failed"`
}

type DelinquencyUseCase struct {
	core *LedgerCore
}

var _ IDelinquencyUseCase = (*DelinquencyUseCase)(nil)

func NewDelinquencyUseCase(core *LedgerCore) *DelinquencyUseCase {
	return &DelinquencyUseCase{core: core}
}

// overdueWriteAttempts bounds how often Evaluate re-reads an account whose
// overdue total moved under it.
const overdueWriteAttempts = 3

func (u *DelinquencyUseCase) Evaluate(ctx context.Context, customerID, storeID string) (entities.DelinquencyReport, error) {
	customerID = strings.TrimSpace(customerID)
	storeID = strings.TrimSpace(storeID)
	if customerID == "" {
		return entities.DelinquencyReport{}, entities.ValidationError("customer_id is required")
	}
	var err error
	for attempt := 1; attempt <= overdueWriteAttempts; attempt++ {
		var report entities.DelinquencyReport
		report, err = u.evaluate(ctx, customerID, storeID)
		if !errors.Is(err, entities.ErrConcurrentModification) {
			return report, err
		}
		u.core.logger.Debug("[delinquency][usecase] overdue total moved, re-reading",
			zap.String("account_id", entities.AccountID(customerID, storeID)), zap.Int("attempt", attempt))
	}
	return entities.DelinquencyReport{}, err
}

// evaluate reads the account before scanning, so the snapshot it writes is
// conditional on the total it started from.
func (u *DelinquencyUseCase) evaluate(ctx context.Context, customerID, storeID string) (entities.DelinquencyReport, error) {
	today := u.core.today()
	account := entities.AccountID(customerID, storeID)

	current, err := u.core.customers.GetByID(ctx, account)
	if err != nil {
		return entities.DelinquencyReport{}, err
	}
	read := current.TotalOverdue

	overdue, outstanding, err := u.scan(ctx, customerID, storeID)
	if err != nil {
		return entities.DelinquencyReport{}, err
	}
	totalOverdue := entities.Zero
	for _, it := range overdue {
		totalOverdue = totalOverdue.Add(it.Amount)
	}

	if len(overdue) > 0 && !current.Blocked {
		blockDate := today
		current, err = u.core.customers.Block(ctx, entities.Customer{
			ID:          account,
			CustomerID:  customerID,
			StoreID:     storeID,
			Blocked:     true,
			BlockReason: entities.BlockReason(overdue),
			BlockDate:   &blockDate,
			UpdatedAt:   u.core.now(),
		})
		if err != nil {
			return entities.DelinquencyReport{}, err
		}
		u.core.logger.Info("[delinquency][usecase] account blocked",
			zap.String("account_id", account),
			zap.Int("overdue_installments", len(overdue)),
			zap.String("total_overdue", totalOverdue.StringFixed(2)))
		u.core.notify.dispatch([]notification{{
			customerID: customerID,
			event:      EventCustomerBlocked,
			payload: map[string]any{
				"store_id":      storeID,
				"reason":        current.BlockReason,
				"total_overdue": totalOverdue.StringFixed(2),
			},
		}})
	}

	if current.ID == "" || !read.Equal(totalOverdue) {
		if err := u.core.customers.SetTotalOverdue(ctx, account, customerID, storeID, read, totalOverdue); err != nil {
			return entities.DelinquencyReport{}, err
		}
	}

	return entities.DelinquencyReport{
		CustomerID:          customerID,
		StoreID:             storeID,
		Blocked:             current.Blocked,
		BlockReason:         current.BlockReason,
		BlockDate:           current.BlockDate,
		OverdueInstallments: overdue,
		TotalOverdue:        totalOverdue,
		TotalOutstanding:    outstanding,
	}, nil
}

func (u *DelinquencyUseCase) Unblock(ctx context.Context, customerID, storeID string) (entities.Customer, error) {
	customerID = strings.TrimSpace(customerID)
	storeID = strings.TrimSpace(storeID)
	if customerID == "" {
		return entities.Customer{}, entities.ValidationError("customer_id is required")
	}
	overdue, _, err := u.scan(ctx, customerID, storeID)
	if err != nil {
		return entities.Customer{}, err
	}
	if len(overdue) > 0 {
		return entities.Customer{}, entities.ValidationError("customer %s still has %d overdue installment(s)", customerID, len(overdue))
	}
	account := entities.AccountID(customerID, storeID)
	c, err := u.core.customers.Unblock(ctx, account)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == "" {
		return entities.Customer{}, entities.NotFoundError("customer account %s not found", account)
	}
	u.core.logger.Info("[delinquency][usecase] account unblocked", zap.String("account_id", account))
	u.core.notify.dispatch([]notification{{customerID: customerID, event: EventCustomerUnblocked, payload: map[string]any{"store_id": storeID}}})
	return c, nil
}

// Sweep evaluates every account that still has outstanding installments.
func (u *DelinquencyUseCase) Sweep(ctx context.Context) (SweepResult, error) {
	accounts, err := u.core.customers.ListWithOutstanding(ctx)
	if err != nil {
		return SweepResult{}, err
	}
	var res SweepResult
	var errs []error
	for _, acc := range accounts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		report, err := u.Evaluate(ctx, acc.CustomerID, acc.StoreID)
		res.Evaluated++
		if err != nil {
			res.Failed++
			errs = append(errs, err)
			u.core.logger.Warn("[delinquency][usecase] sweep evaluate failed", zap.String("account_id", acc.ID), zap.Error(err))
			continue
		}
		if report.Blocked {
			res.Blocked++
		}
	}
	u.core.logger.Info("[delinquency][usecase] sweep done",
		zap.Int("evaluated", res.Evaluated), zap.Int("blocked", res.Blocked), zap.Int("failed", res.Failed))
	return res, errors.Join(errs...)
}

// scan returns the overdue installments (oldest first) and the outstanding amount in scope.
func (u *DelinquencyUseCase) scan(ctx context.Context, customerID, storeID string) ([]entities.Installment, entities.Money, error) {
	items, err := u.core.installments.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, entities.Zero, err
	}
	today := u.core.today()
	overdue := make([]entities.Installment, 0)
	outstanding := entities.Zero
	for _, it := range items {
		if storeID != "" && it.StoreID != storeID {
			continue
		}
		if it.Open() {
			outstanding = outstanding.Add(it.Amount)
		}
		if it.Overdue(today) {
			overdue = append(overdue, it)
		}
	}
	sort.SliceStable(overdue, func(a, b int) bool { return overdue[a].DueDate.Before(overdue[b].DueDate) })
	return overdue, outstanding, nil
}
