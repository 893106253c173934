package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var orderColumns = []string{
	"id", "buyer_id", "supplier_id", "store_id", "items",
	"valor_total", "valor_frete_fob", "valor_final", "freight_type", "freight_included_in_installments", "freight_charge_mode",
	"status", "payment_status", "payment_method", "original_payment_method",
	"invoice_ref", "transportadora", "tracking_code", "cancel_reason",
	"invoice_receipt_at", "boleto_receipt_at", "goods_receipt_at", "delivered_at", "cancelled_at",
	"version", "created_at", "updated_at",
}

var installmentColumns = []string{
	"id", "order_id", "customer_id", "store_id", "sequence_number", "total_count", "amount", "due_date", "status", "paid_at",
	"proof_status", "proof_url", "proof_submitted_at", "proof_claimed_date", "proof_analyzed", "proof_approved", "proof_rejection_reason",
	"boleto_url", "boleto_barcode", "boleto_external_id", "boleto_issued_at",
	"created_at", "updated_at",
}

var customerColumns = []string{
	"id", "customer_id", "store_id", "blocked", "block_reason", "block_date", "total_overdue", "total_outstanding", "updated_at",
}

// Store is the PostgreSQL implementation of the ledger ports.
// A changeset is written in one transaction; the order row is updated only
// while its version still matches.
type Store struct {
	db  *DB
	now func() time.Time
}

var _ interfaces.ITransactor = (*Store)(nil)

func NewStore(db *DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Orders() *OrderRepository             { return &OrderRepository{db: s.db} }
func (s *Store) Installments() *InstallmentRepository { return &InstallmentRepository{db: s.db} }
func (s *Store) Customers() *CustomerRepository       { return &CustomerRepository{db: s.db, now: s.now} }

func (s *Store) Commit(ctx context.Context, cs entities.Changeset) error {
	qb := s.db.QueryBuilder
	err := pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		if cs.NewOrder {
			sql, args, err := insertOrderSQL(qb, cs.Order)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		} else {
			sql, args, err := updateOrderSQL(qb, cs.Order, cs.ExpectedVersion)
			if err != nil {
				return err
			}
			tag, err := tx.Exec(ctx, sql, args...)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				return entities.ConcurrentModificationError("order %s changed since version %d", cs.Order.ID, cs.ExpectedVersion)
			}
		}

		if len(cs.Deletes) > 0 {
			sql, args, err := deleteInstallmentsSQL(qb, cs.Deletes)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}
		if len(cs.Upserts) > 0 {
			sql, args, err := upsertInstallmentsSQL(qb, cs.Upserts)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}

		now := s.now().UTC()
		for _, d := range cs.EffectiveDeltas() {
			sql, args, err := applyDeltaSQL(qb, d, now)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}
		return nil
	})
	return mapCommitError(cs, err)
}

func mapCommitError(cs entities.Changeset, err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return entities.ConcurrentModificationError("order %s already exists", cs.Order.ID)
		case pgerrcode.ExclusionViolation:
			return entities.ConcurrentModificationError("order %s has two active installments with the same sequence", cs.Order.ID)
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return entities.ConcurrentModificationError("order %s: %s", cs.Order.ID, pgErr.Message)
		}
		return fmt.Errorf("commit order %s: %w", cs.Order.ID, err)
	}
	return err
}

func orderValues(o entities.Order) []any {
	items := o.Items
	if items == nil {
		items = []entities.LineItem{}
	}
	return []any{
		o.ID, o.BuyerID, o.SupplierID, o.StoreID, items,
		o.GoodsTotal, o.FreightAmount, o.PayableTotal, string(o.FreightType), o.FreightIncluded, string(o.FreightChargeMode),
		string(o.Status), string(o.PaymentStatus), o.PaymentMethod, o.OriginalPaymentMethod,
		o.InvoiceRef, o.Carrier, o.TrackingCode, o.CancelReason,
		o.InvoiceReceiptAt, o.BoletoReceiptAt, o.GoodsReceiptAt, o.DeliveredAt, o.CancelledAt,
		o.Version, o.CreatedAt, o.UpdatedAt,
	}
}

func insertOrderSQL(qb *sq.StatementBuilderType, o entities.Order) (string, []any, error) {
	return qb.Insert("orders").Columns(orderColumns...).Values(orderValues(o)...).ToSql()
}

func updateOrderSQL(qb *sq.StatementBuilderType, o entities.Order, expected int64) (string, []any, error) {
	values := orderValues(o)
	set := make(map[string]any, len(orderColumns)-1)
	for i, col := range orderColumns {
		if col == "id" || col == "created_at" {
			continue
		}
		set[col] = values[i]
	}
	return qb.Update("orders").
		SetMap(set).
		Where(sq.Eq{"id": o.ID, "version": expected}).
		ToSql()
}

func deleteInstallmentsSQL(qb *sq.StatementBuilderType, items []entities.Installment) (string, []any, error) {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return qb.Delete("installments").Where(sq.Eq{"id": ids}).ToSql()
}

func upsertInstallmentsSQL(qb *sq.StatementBuilderType, items []entities.Installment) (string, []any, error) {
	stmt := qb.Insert("installments").Columns(installmentColumns...)
	for _, it := range items {
		stmt = stmt.Values(
			it.ID, it.OrderID, it.CustomerID, it.StoreID, it.Sequence, it.TotalCount, it.Amount, it.DueDate, string(it.Status), it.PaidAt,
			string(it.Proof.Status), it.Proof.URL, it.Proof.SubmittedAt, it.Proof.ClaimedDate, it.Proof.Analyzed, it.Proof.Approved, it.Proof.RejectionReason,
			it.Boleto.URL, it.Boleto.Barcode, it.Boleto.ExternalID, it.Boleto.IssuedAt,
			it.CreatedAt, it.UpdatedAt,
		)
	}
	suffix := "ON CONFLICT (id) DO UPDATE SET "
	first := true
	for _, col := range installmentColumns {
		if col == "id" || col == "created_at" {
			continue
		}
		if !first {
			suffix += ", "
		}
		suffix += col + " = EXCLUDED." + col
		first = false
	}
	return stmt.Suffix(suffix).ToSql()
}

func applyDeltaSQL(qb *sq.StatementBuilderType, d entities.CustomerDelta, now time.Time) (string, []any, error) {
	return qb.Insert("customers").
		Columns("id", "customer_id", "store_id", "total_outstanding", "updated_at").
		Values(d.AccountID, d.CustomerID, d.StoreID, d.Outstanding, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"total_outstanding = customers.total_outstanding + EXCLUDED.total_outstanding, " +
			"updated_at = EXCLUDED.updated_at").
		ToSql()
}

type OrderRepository struct {
	db *DB
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	sql, args, err := r.db.QueryBuilder.Select(orderColumns...).From("orders").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return entities.Order{}, err
	}

	var (
		o                       entities.Order
		freightType, chargeMode string
		status, paymentStatus   string
	)
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&o.ID, &o.BuyerID, &o.SupplierID, &o.StoreID, &o.Items,
		&o.GoodsTotal, &o.FreightAmount, &o.PayableTotal, &freightType, &o.FreightIncluded, &chargeMode,
		&status, &paymentStatus, &o.PaymentMethod, &o.OriginalPaymentMethod,
		&o.InvoiceRef, &o.Carrier, &o.TrackingCode, &o.CancelReason,
		&o.InvoiceReceiptAt, &o.BoletoReceiptAt, &o.GoodsReceiptAt, &o.DeliveredAt, &o.CancelledAt,
		&o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	o.FreightType = entities.FreightType(freightType)
	o.FreightChargeMode = entities.ChargeMode(chargeMode)
	o.Status = entities.OrderStatus(status)
	o.PaymentStatus = entities.PaymentStatus(paymentStatus)
	return o, nil
}

type InstallmentRepository struct {
	db *DB
}

var _ interfaces.IInstallmentRepository = (*InstallmentRepository)(nil)

func (r *InstallmentRepository) GetByID(ctx context.Context, id string) (entities.Installment, error) {
	items, err := r.list(ctx, sq.Eq{"id": id}, "id")
	if err != nil || len(items) == 0 {
		return entities.Installment{}, err
	}
	return items[0], nil
}

func (r *InstallmentRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.Installment, error) {
	return r.list(ctx, sq.Eq{"order_id": orderID}, "sequence_number", "id")
}

func (r *InstallmentRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Installment, error) {
	return r.list(ctx, sq.Eq{"customer_id": customerID}, "due_date", "id")
}

func (r *InstallmentRepository) list(ctx context.Context, where sq.Eq, orderBy ...string) ([]entities.Installment, error) {
	sql, args, err := r.db.QueryBuilder.Select(installmentColumns...).From("installments").Where(where).OrderBy(orderBy...).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Installment, 0)
	for rows.Next() {
		var (
			it                  entities.Installment
			status, proofStatus string
		)
		err := rows.Scan(
			&it.ID, &it.OrderID, &it.CustomerID, &it.StoreID, &it.Sequence, &it.TotalCount, &it.Amount, &it.DueDate, &status, &it.PaidAt,
			&proofStatus, &it.Proof.URL, &it.Proof.SubmittedAt, &it.Proof.ClaimedDate, &it.Proof.Analyzed, &it.Proof.Approved, &it.Proof.RejectionReason,
			&it.Boleto.URL, &it.Boleto.Barcode, &it.Boleto.ExternalID, &it.Boleto.IssuedAt,
			&it.CreatedAt, &it.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		it.Status = entities.InstallmentStatus(status)
		it.Proof.Status = entities.ProofStatus(proofStatus)
		it.DueDate = entities.DateOnly(it.DueDate)
		list = append(list, it)
	}
	return list, rows.Err()
}

type CustomerRepository struct {
	db  *DB
	now func() time.Time
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func (r *CustomerRepository) GetByID(ctx context.Context, accountID string) (entities.Customer, error) {
	sql, args, err := r.db.QueryBuilder.Select(customerColumns...).From("customers").Where(sq.Eq{"id": accountID}).ToSql()
	if err != nil {
		return entities.Customer{}, err
	}
	return r.scanOne(ctx, sql, args)
}

// Block inserts or flags the account unless it is already blocked; in that
// case the stored account is returned unchanged.
func (r *CustomerRepository) Block(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	sql, args, err := r.db.QueryBuilder.Insert("customers").
		Columns("id", "customer_id", "store_id", "blocked", "block_reason", "block_date", "updated_at").
		Values(c.ID, c.CustomerID, c.StoreID, true, c.BlockReason, c.BlockDate, r.now().UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"blocked = TRUE, block_reason = EXCLUDED.block_reason, block_date = EXCLUDED.block_date, updated_at = EXCLUDED.updated_at " +
			"WHERE customers.blocked = FALSE RETURNING " + strings.Join(customerColumns, ", ")).
		ToSql()
	if err != nil {
		return entities.Customer{}, err
	}

	out, err := r.scanOne(ctx, sql, args)
	if err != nil || out.ID != "" {
		return out, err
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CustomerRepository) Unblock(ctx context.Context, accountID string) (entities.Customer, error) {
	sql, args, err := r.db.QueryBuilder.Update("customers").
		Set("blocked", false).
		Set("block_reason", "").
		Set("block_date", nil).
		Set("updated_at", r.now().UTC()).
		Where(sq.Eq{"id": accountID}).
		Suffix("RETURNING " + strings.Join(customerColumns, ", ")).
		ToSql()
	if err != nil {
		return entities.Customer{}, err
	}
	return r.scanOne(ctx, sql, args)
}

func (r *CustomerRepository) SetTotalOverdue(ctx context.Context, accountID, customerID, storeID string, expected, total entities.Money) error {
	sql, args, err := setTotalOverdueSQL(r.db.QueryBuilder, accountID, customerID, storeID, expected, total, r.now().UTC())
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return entities.ConcurrentModificationError("overdue total of account %s changed since it was read", accountID)
	}
	return nil
}

// A fresh row starts at zero overdue, so expected zero also covers the insert.
func setTotalOverdueSQL(qb *sq.StatementBuilderType, accountID, customerID, storeID string, expected, total entities.Money, now time.Time) (string, []any, error) {
	return qb.Insert("customers").
		Columns("id", "customer_id", "store_id", "total_overdue", "updated_at").
		Values(accountID, customerID, storeID, total, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET total_overdue = EXCLUDED.total_overdue, updated_at = EXCLUDED.updated_at "+
			"WHERE customers.total_overdue = ?", expected).
		ToSql()
}

func (r *CustomerRepository) ListWithOutstanding(ctx context.Context) ([]entities.Customer, error) {
	sql, args, err := r.db.QueryBuilder.Select(customerColumns...).From("customers").
		Where(sq.Gt{"total_outstanding": 0}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]entities.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepository) scanOne(ctx context.Context, sql string, args []any) (entities.Customer, error) {
	c, err := scanCustomer(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Customer{}, nil
		}
		return entities.Customer{}, err
	}
	return c, nil
}

func scanCustomer(row pgx.Row) (entities.Customer, error) {
	var c entities.Customer
	err := row.Scan(&c.ID, &c.CustomerID, &c.StoreID, &c.Blocked, &c.BlockReason, &c.BlockDate, &c.TotalOverdue, &c.TotalOutstanding, &c.UpdatedAt)
	return c, err
}
