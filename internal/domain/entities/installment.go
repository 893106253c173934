package entities

import (
	"net/url"
	"strings"
	"time"
)

// InstallmentStatus is the payment state of one parcela.
type InstallmentStatus string

const (
	InstallmentPending     InstallmentStatus = "pending"
	InstallmentUnderReview InstallmentStatus = "under_review"
	InstallmentPaid        InstallmentStatus = "paid"
	InstallmentCancelled   InstallmentStatus = "cancelled"
)

func ParseInstallmentStatus(s string) (InstallmentStatus, error) {
	switch st := InstallmentStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case InstallmentPending, InstallmentUnderReview, InstallmentPaid, InstallmentCancelled:
		return st, nil
	}
	return "", ValidationError("unknown installment status %q", s)
}

// ProofStatus is the proof-of-payment sub-state of an installment.
type ProofStatus string

const (
	ProofNone      ProofStatus = "none"
	ProofSubmitted ProofStatus = "submitted"
	ProofApproved  ProofStatus = "approved"
	ProofRejected  ProofStatus = "rejected"
)

// PaymentProof is the comprovante uploaded by the buyer. Only the reference is kept;
// the document itself lives in external storage.
type PaymentProof struct {
	Status          ProofStatus `json:"status"`
	URL             string      `json:"url,omitempty"`
	SubmittedAt     *time.Time  `json:"submitted_at,omitempty"`
	ClaimedDate     *time.Time  `json:"claimed_date,omitempty"`
	Analyzed        bool        `json:"analyzed"`
	Approved        bool        `json:"approved"`
	RejectionReason string      `json:"rejection_reason,omitempty"`
}

// Boleto is the bank slip issued for an installment.
type Boleto struct {
	URL        string     `json:"url,omitempty"`
	Barcode    string     `json:"barcode,omitempty"`
	ExternalID string     `json:"external_id,omitempty"`
	IssuedAt   *time.Time `json:"issued_at,omitempty"`
}

// Installment is a receivable (título) of an order.
//
// Storage model:
//   - PK: id
//   - GSI order_id-index: order_id
//   - GSI customer_id-index: customer_id
//
// Once paid, Amount, DueDate and Sequence never change; TotalCount may be renumbered.
type Installment struct {
	ID         string            `json:"id"`
	OrderID    string            `json:"order_id"`
	CustomerID string            `json:"customer_id"`
	StoreID    string            `json:"store_id,omitempty"`
	Sequence   int               `json:"sequence"`
	TotalCount int               `json:"total_count"`
	Amount     Money             `json:"amount"`
	DueDate    time.Time         `json:"due_date"`
	Status     InstallmentStatus `json:"status"`
	PaidAt     *time.Time        `json:"paid_at,omitempty"`
	Proof      PaymentProof      `json:"proof"`
	Boleto     Boleto            `json:"boleto"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// AccountID is the customer account the installment is charged to.
func (i Installment) AccountID() string {
	return AccountID(i.CustomerID, i.StoreID)
}

// Open reports whether the installment still represents debt.
func (i Installment) Open() bool {
	return i.Status == InstallmentPending || i.Status == InstallmentUnderReview
}

// Overdue reports whether the installment is pending past its due date.
func (i Installment) Overdue(today time.Time) bool {
	return i.Status == InstallmentPending && !i.DueDate.IsZero() && DateOnly(i.DueDate).Before(DateOnly(today))
}

// Exposure is the installment contribution to the customer's outstanding total.
func (i Installment) Exposure() Money {
	if !i.Open() {
		return Zero
	}
	return i.Amount
}

// SameSchedule compares the fields a schedule regeneration may touch.
func (i Installment) SameSchedule(other Installment) bool {
	return i.ID == other.ID &&
		i.Sequence == other.Sequence &&
		i.TotalCount == other.TotalCount &&
		i.Amount.Equal(other.Amount) &&
		DateOnly(i.DueDate).Equal(DateOnly(other.DueDate)) &&
		i.Status == other.Status
}

// MarkPaid settles the installment on the given date.
func (i *Installment) MarkPaid(date time.Time) error {
	if date.IsZero() {
		return ValidationError("payment date is required")
	}
	switch i.Status {
	case InstallmentPending, InstallmentUnderReview:
	default:
		return InvalidTransitionError("installment %s cannot be paid from %s", i.ID, i.Status)
	}
	d := DateOnly(date)
	i.Status = InstallmentPaid
	i.PaidAt = &d
	return nil
}

// MarkPending reverts a paid or under-review installment.
func (i *Installment) MarkPending() error {
	switch i.Status {
	case InstallmentPaid, InstallmentUnderReview:
	default:
		return InvalidTransitionError("installment %s cannot return to pending from %s", i.ID, i.Status)
	}
	i.Status = InstallmentPending
	i.PaidAt = nil
	return nil
}

// Cancel voids an open installment when its order is cancelled. Paid ones stay paid.
func (i *Installment) Cancel() error {
	if !i.Open() {
		return InvalidTransitionError("installment %s cannot be cancelled from %s", i.ID, i.Status)
	}
	i.Status = InstallmentCancelled
	return nil
}

// SubmitProof attaches a proof of payment and puts the installment under review.
// Re-submission after a rejection is allowed while the installment is pending.
func (i *Installment) SubmitProof(proofRef string, claimedDate, now time.Time) error {
	if i.Status != InstallmentPending {
		return InvalidTransitionError("installment %s must be %s to receive a proof, got %s", i.ID, InstallmentPending, i.Status)
	}
	ref, err := ValidateProofRef(proofRef)
	if err != nil {
		return err
	}
	if claimedDate.IsZero() {
		return ValidationError("claimed payment date is required")
	}
	claimed := DateOnly(claimedDate)
	i.Proof = PaymentProof{
		Status:      ProofSubmitted,
		URL:         ref,
		SubmittedAt: &now,
		ClaimedDate: &claimed,
	}
	i.Status = InstallmentUnderReview
	return nil
}

// ApproveProof accepts the submitted proof; the operator confirms the real payment date.
func (i *Installment) ApproveProof(confirmedDate time.Time) error {
	if i.Proof.Status != ProofSubmitted {
		return InvalidTransitionError("installment %s has no proof awaiting review", i.ID)
	}
	if confirmedDate.IsZero() {
		return ValidationError("confirmed payment date is required")
	}
	if err := i.MarkPaid(confirmedDate); err != nil {
		return err
	}
	i.Proof.Status = ProofApproved
	i.Proof.Analyzed = true
	i.Proof.Approved = true
	i.Proof.RejectionReason = ""
	return nil
}

// RejectProof refuses a submitted proof, or reverses a previously approved one.
func (i *Installment) RejectProof(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ValidationError("rejection reason is required")
	}
	switch i.Proof.Status {
	case ProofSubmitted, ProofApproved:
	default:
		return InvalidTransitionError("installment %s has no proof to reject", i.ID)
	}
	if i.Status != InstallmentPending {
		if err := i.MarkPending(); err != nil {
			return err
		}
	}
	i.Proof.Status = ProofRejected
	i.Proof.URL = ""
	i.Proof.Analyzed = true
	i.Proof.Approved = false
	i.Proof.RejectionReason = reason
	return nil
}

// ValidateProofRef checks that the reference returned by document storage is an absolute http(s) URL.
func ValidateProofRef(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ValidationError("proof reference is required")
	}
	u, err := url.Parse(ref)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", ValidationError("proof reference must be an http(s) url")
	}
	return ref, nil
}
