package postgres

import (
	"errors"
	"strings"
	"testing"
	"time"

	"portal_pedidos/internal/domain/entities"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderSQL_ChecksVersion(t *testing.T) {
	sql, args, err := updateOrderSQL(queryBuilder(), entities.Order{ID: "o1", Version: 5}, 4)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sql, "UPDATE orders SET "))
	assert.Contains(t, sql, "WHERE id = $")
	assert.Contains(t, sql, "AND version = $")
	assert.NotContains(t, sql, "created_at =")
	assert.Equal(t, "o1", args[len(args)-2])
	assert.Equal(t, int64(4), args[len(args)-1])
}

func TestUpsertInstallmentsSQL(t *testing.T) {
	items := []entities.Installment{
		{ID: "i1", OrderID: "o1", Sequence: 1, Amount: entities.MustMoney("10"), DueDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "i2", OrderID: "o1", Sequence: 2, Amount: entities.MustMoney("10"), DueDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	sql, args, err := upsertInstallmentsSQL(queryBuilder(), items)
	require.NoError(t, err)

	assert.Len(t, args, 2*len(installmentColumns))
	assert.Contains(t, sql, "ON CONFLICT (id) DO UPDATE SET order_id = EXCLUDED.order_id")
	assert.Contains(t, sql, "sequence_number = EXCLUDED.sequence_number")
	assert.NotContains(t, sql, "created_at = EXCLUDED.created_at")
}

func TestApplyDeltaSQL_Increments(t *testing.T) {
	d := entities.CustomerDelta{AccountID: "c1#s1", CustomerID: "c1", StoreID: "s1", Outstanding: entities.MustMoney("-50")}
	sql, args, err := applyDeltaSQL(queryBuilder(), d, time.Now())
	require.NoError(t, err)

	assert.Contains(t, sql, "total_outstanding = customers.total_outstanding + EXCLUDED.total_outstanding")
	assert.NotContains(t, sql, "total_overdue")
	assert.Equal(t, "c1#s1", args[0])
}

func TestSetTotalOverdueSQL_ConditionalOnRead(t *testing.T) {
	sql, args, err := setTotalOverdueSQL(queryBuilder(), "c1", "c1", "", entities.MustMoney("300"), entities.MustMoney("600"), time.Now())
	require.NoError(t, err)

	assert.Contains(t, sql, "total_overdue = EXCLUDED.total_overdue")
	assert.True(t, strings.HasSuffix(sql, "WHERE customers.total_overdue = $6"), sql)
	assert.Equal(t, "300.00", args[len(args)-1].(entities.Money).StringFixed(2))
}

func TestDeleteInstallmentsSQL(t *testing.T) {
	sql, args, err := deleteInstallmentsSQL(queryBuilder(), []entities.Installment{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM installments WHERE id IN ($1,$2)", sql)
	assert.Equal(t, []any{"a", "b"}, args)
}

func TestMapCommitError(t *testing.T) {
	cs := entities.Changeset{Order: entities.Order{ID: "o1"}, ExpectedVersion: 2}

	for _, code := range []string{pgerrcode.UniqueViolation, pgerrcode.ExclusionViolation, pgerrcode.SerializationFailure} {
		err := mapCommitError(cs, &pgconn.PgError{Code: code})
		assert.True(t, errors.Is(err, entities.ErrConcurrentModification), "code %s", code)
	}

	stale := entities.ConcurrentModificationError("stale")
	assert.Same(t, stale, mapCommitError(cs, stale))

	other := mapCommitError(cs, &pgconn.PgError{Code: pgerrcode.NotNullViolation})
	assert.False(t, errors.Is(other, entities.ErrConcurrentModification))
	assert.Nil(t, mapCommitError(cs, nil))
}
