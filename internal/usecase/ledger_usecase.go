package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrBoletoGatewayNotConfigured = errors.New("boleto gateway not configured")

// ILedgerUseCase manages the installments (títulos) of an order.
//
// Requested behavior:
//   - Replace the open installments of an order atomically, keeping paid ones.
//   - Move single installments between pending, under review and paid.
//   - Every change adjusts the customer totals and re-settles the order in the same commit.

type ILedgerUseCase interface {
	Materialize(ctx context.Context, orderID string, schedule []entities.Installment) ([]entities.Installment, error)
	MarkInstallmentPaid(ctx context.Context, installmentID string, paymentDate time.Time) (entities.Installment, error)
	MarkInstallmentPending(ctx context.Context, installmentID string) (entities.Installment, error)
	MarkUnderReview(ctx context.Context, installmentID, proofRef string) (entities.Installment, error)
	GetInstallment(ctx context.Context, installmentID string) (entities.Installment, error)
	AllInstallmentsPaid(ctx context.Context, orderID string) (bool, error)
	Totals(ctx context.Context, orderID string) (entities.LedgerTotals, error)
	IssueBoleto(ctx context.Context, installmentID string, payer interfaces.BoletoPayer) (entities.Installment, error)
}

type LedgerUseCase struct {
	core *LedgerCore
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(core *LedgerCore) *LedgerUseCase {
	return &LedgerUseCase{core: core}
}

func (u *LedgerUseCase) Materialize(ctx context.Context, orderID string, schedule []entities.Installment) ([]entities.Installment, error) {
	changed := false
	s, err := u.core.withOrder(ctx, orderID, func(s *orderSession) error {
		ok, err := s.materialize(schedule)
		if err != nil {
			return err
		}
		changed = ok
		if ok {
			s.emit(EventInstallmentsUpdated, map[string]any{"count": s.ledger.ActiveCount()})
		}
		return nil
	})
	if err != nil {
		u.core.logger.Info("[ledger][usecase] materialize rejected", zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}
	u.core.logger.Info("[ledger][usecase] materialize done",
		zap.String("order_id", orderID), zap.Bool("changed", changed), zap.Int("count", s.ledger.ActiveCount()))
	return s.ledger.Active(), nil
}

func (u *LedgerUseCase) MarkInstallmentPaid(ctx context.Context, installmentID string, paymentDate time.Time) (entities.Installment, error) {
	_, it, err := u.core.withInstallment(ctx, installmentID, func(s *orderSession, it entities.Installment) error {
		if s.order.Frozen() {
			return entities.InvalidTransitionError("order %s is cancelled", s.order.ID)
		}
		if err := it.MarkPaid(paymentDate); err != nil {
			return err
		}
		s.put(it)
		s.emit(EventInstallmentPaid, installmentPayload(it))
		return nil
	})
	if err != nil {
		return entities.Installment{}, err
	}
	u.core.logger.Info("[ledger][usecase] installment paid", zap.String("installment_id", it.ID), zap.String("order_id", it.OrderID))
	return it, nil
}

func (u *LedgerUseCase) MarkInstallmentPending(ctx context.Context, installmentID string) (entities.Installment, error) {
	_, it, err := u.core.withInstallment(ctx, installmentID, func(s *orderSession, it entities.Installment) error {
		if s.order.Frozen() {
			return entities.InvalidTransitionError("order %s is cancelled", s.order.ID)
		}
		if err := it.MarkPending(); err != nil {
			return err
		}
		if it.Proof.Status == entities.ProofSubmitted || it.Proof.Status == entities.ProofApproved {
			it.Proof.Status = entities.ProofNone
			it.Proof.Approved = false
		}
		s.put(it)
		s.emit(EventInstallmentReopened, installmentPayload(it))
		return nil
	})
	if err != nil {
		return entities.Installment{}, err
	}
	u.core.logger.Info("[ledger][usecase] installment reopened", zap.String("installment_id", it.ID), zap.String("order_id", it.OrderID))
	return it, nil
}

// MarkUnderReview attaches a proof of payment claimed today.
func (u *LedgerUseCase) MarkUnderReview(ctx context.Context, installmentID, proofRef string) (entities.Installment, error) {
	return submitProof(ctx, u.core, installmentID, proofRef, time.Time{})
}

func (u *LedgerUseCase) GetInstallment(ctx context.Context, installmentID string) (entities.Installment, error) {
	installmentID = strings.TrimSpace(installmentID)
	if installmentID == "" {
		return entities.Installment{}, entities.ValidationError("installment_id is required")
	}
	it, err := u.core.installments.GetByID(ctx, installmentID)
	if err != nil {
		return entities.Installment{}, err
	}
	if it.ID == "" {
		return entities.Installment{}, entities.NotFoundError("installment %s not found", installmentID)
	}
	return it, nil
}

func (u *LedgerUseCase) AllInstallmentsPaid(ctx context.Context, orderID string) (bool, error) {
	order, ledger, err := u.core.snapshot(ctx, orderID)
	if err != nil {
		return false, err
	}
	return order.AllPaid(ledger), nil
}

func (u *LedgerUseCase) Totals(ctx context.Context, orderID string) (entities.LedgerTotals, error) {
	_, ledger, err := u.core.snapshot(ctx, orderID)
	if err != nil {
		return entities.LedgerTotals{}, err
	}
	return ledger.Totals(u.core.today()), nil
}

// IssueBoleto asks the payment provider for a bank slip of an open installment.
// An installment keeps the first boleto issued for it, and the provider dedupes by
// installment, so a retry after a lost commit does not draw a second slip.
func (u *LedgerUseCase) IssueBoleto(ctx context.Context, installmentID string, payer interfaces.BoletoPayer) (entities.Installment, error) {
	if u.core.boletos == nil {
		return entities.Installment{}, ErrBoletoGatewayNotConfigured
	}
	_, it, err := u.core.withInstallment(ctx, installmentID, func(s *orderSession, it entities.Installment) error {
		if s.order.Frozen() {
			return entities.InvalidTransitionError("order %s is cancelled", s.order.ID)
		}
		if it.Status != entities.InstallmentPending {
			return entities.InvalidTransitionError("installment %s is %s, boletos are issued for pending installments", it.ID, it.Status)
		}
		if it.Boleto.ExternalID != "" {
			return nil
		}
		doc, err := u.core.boletos.IssueBoleto(ctx, interfaces.BoletoRequest{
			InstallmentID: it.ID,
			OrderID:       it.OrderID,
			CustomerID:    it.CustomerID,
			Payer:         trimPayer(payer),
			Description:   fmt.Sprintf("Pedido %s parcela %d/%d", it.OrderID, it.Sequence, it.TotalCount),
			Amount:        it.Amount,
			DueDate:       it.DueDate,
		})
		if err != nil {
			return err
		}
		if doc.IssuedAt == nil {
			issued := s.now
			doc.IssuedAt = &issued
		}
		it.Boleto = doc
		s.put(it)
		s.emit(EventBoletoIssued, installmentPayload(it))
		return nil
	})
	if err != nil {
		u.core.logger.Warn("[ledger][usecase] boleto issue failed", zap.String("installment_id", installmentID), zap.Error(err))
		return entities.Installment{}, err
	}
	return it, nil
}

func trimPayer(p interfaces.BoletoPayer) interfaces.BoletoPayer {
	return interfaces.BoletoPayer{
		Email:          strings.TrimSpace(p.Email),
		FirstName:      strings.TrimSpace(p.FirstName),
		LastName:       strings.TrimSpace(p.LastName),
		DocumentType:   strings.ToUpper(strings.TrimSpace(p.DocumentType)),
		DocumentNumber: strings.TrimSpace(p.DocumentNumber),
	}
}

func installmentPayload(it entities.Installment) map[string]any {
	return map[string]any{
		"installment_id": it.ID,
		"sequence":       it.Sequence,
		"total_count":    it.TotalCount,
		"amount":         it.Amount.StringFixed(2),
		"due_date":       entities.FormatDate(it.DueDate),
		"status":         string(it.Status),
	}
}
