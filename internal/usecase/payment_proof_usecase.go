package usecase

import (
	"context"
	"time"

	"portal_pedidos/internal/domain/entities"

	"go.uber.org/zap"
)

// IPaymentProofUseCase drives the proof-of-payment workflow of an installment:
// none -> submitted -> approved (paid) | rejected (back to pending).

type IPaymentProofUseCase interface {
	Submit(ctx context.Context, installmentID, proofRef string, claimedDate time.Time) (entities.Installment, error)
	Approve(ctx context.Context, installmentID string, confirmedDate time.Time) (entities.Installment, error)
	Reject(ctx context.Context, installmentID, reason string) (entities.Installment, error)
}

type PaymentProofUseCase struct {
	core *LedgerCore
}

var _ IPaymentProofUseCase = (*PaymentProofUseCase)(nil)

func NewPaymentProofUseCase(core *LedgerCore) *PaymentProofUseCase {
	return &PaymentProofUseCase{core: core}
}

// Submit attaches the reference of a document already stored elsewhere.
// A zero claimedDate means the customer paid today.
func (u *PaymentProofUseCase) Submit(ctx context.Context, installmentID, proofRef string, claimedDate time.Time) (entities.Installment, error) {
	return submitProof(ctx, u.core, installmentID, proofRef, claimedDate)
}

func (u *PaymentProofUseCase) Approve(ctx context.Context, installmentID string, confirmedDate time.Time) (entities.Installment, error) {
	_, it, err := u.core.withInstallment(ctx, installmentID, func(s *orderSession, it entities.Installment) error {
		if err := it.ApproveProof(confirmedDate); err != nil {
			return err
		}
		s.put(it)
		s.emit(EventProofApproved, installmentPayload(it))
		return nil
	})
	if err != nil {
		u.core.logger.Info("[proof][usecase] approve rejected", zap.String("installment_id", installmentID), zap.Error(err))
		return entities.Installment{}, err
	}
	u.core.logger.Info("[proof][usecase] approved",
		zap.String("installment_id", it.ID),
		zap.String("order_id", it.OrderID),
		zap.String("paid_at", entities.FormatDate(*it.PaidAt)))
	return it, nil
}

// Reject refuses a submitted proof or reverses an approved one. Either way the
// installment is pending again and the order is re-settled.
func (u *PaymentProofUseCase) Reject(ctx context.Context, installmentID, reason string) (entities.Installment, error) {
	_, it, err := u.core.withInstallment(ctx, installmentID, func(s *orderSession, it entities.Installment) error {
		if s.order.Frozen() {
			return entities.InvalidTransitionError("order %s is cancelled", s.order.ID)
		}
		if err := it.RejectProof(reason); err != nil {
			return err
		}
		s.put(it)
		payload := installmentPayload(it)
		payload["reason"] = it.Proof.RejectionReason
		s.emit(EventProofRejected, payload)
		return nil
	})
	if err != nil {
		u.core.logger.Info("[proof][usecase] reject refused", zap.String("installment_id", installmentID), zap.Error(err))
		return entities.Installment{}, err
	}
	u.core.logger.Info("[proof][usecase] rejected", zap.String("installment_id", it.ID), zap.String("order_id", it.OrderID))
	return it, nil
}

func submitProof(ctx context.Context, core *LedgerCore, installmentID, proofRef string, claimedDate time.Time) (entities.Installment, error) {
	_, it, err := core.withInstallment(ctx, installmentID, func(s *orderSession, it entities.Installment) error {
		if s.order.Frozen() {
			return entities.InvalidTransitionError("order %s is cancelled", s.order.ID)
		}
		claimed := claimedDate
		if claimed.IsZero() {
			claimed = s.today
		}
		if err := it.SubmitProof(proofRef, claimed, s.now); err != nil {
			return err
		}
		s.put(it)
		s.emit(EventProofSubmitted, installmentPayload(it))
		return nil
	})
	if err != nil {
		core.logger.Info("[proof][usecase] submit refused", zap.String("installment_id", installmentID), zap.Error(err))
		return entities.Installment{}, err
	}
	core.logger.Info("[proof][usecase] submitted", zap.String("installment_id", it.ID), zap.String("order_id", it.OrderID))
	return it, nil
}
