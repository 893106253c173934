package freight

import (
	"errors"
	"testing"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixed(ms []entities.Money) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.StringFixed(2)
	}
	return out
}

func TestPayableTotal(t *testing.T) {
	goods, fr := entities.MustMoney("900"), entities.MustMoney("90")
	assert.Equal(t, "990.00", PayableTotal(goods, fr, entities.FreightTypeFOB, true).StringFixed(2))
	assert.Equal(t, "900.00", PayableTotal(goods, fr, entities.FreightTypeFOB, false).StringFixed(2))
	assert.Equal(t, "900.00", PayableTotal(goods, fr, entities.FreightTypeCIF, true).StringFixed(2))
}

func TestApplyToSchedule(t *testing.T) {
	goods, fr := entities.MustMoney("900"), entities.MustMoney("90")

	t.Run("diluted spreads the freight evenly", func(t *testing.T) {
		diluted, err := ApplyToSchedule(goods, fr, entities.ChargeModeDiluted, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"330.00", "330.00", "330.00"}, fixed(diluted))
	})

	t.Run("first installment takes only the freight, 390/300/300 instead of 420/330/330, so the sum stays 990", func(t *testing.T) {
		first, err := ApplyToSchedule(goods, fr, entities.ChargeModeFirstInstallment, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"390.00", "300.00", "300.00"}, fixed(first))
		assert.True(t, entities.SumMoney(first...).Equal(entities.MustMoney("990")))
	})

	t.Run("invalid count or mode", func(t *testing.T) {
		_, err := ApplyToSchedule(goods, fr, entities.ChargeModeDiluted, 0)
		assert.True(t, errors.Is(err, entities.ErrInvalidSchedule))

		_, err = ApplyToSchedule(goods, fr, entities.ChargeMode("weekly"), 2)
		assert.True(t, errors.Is(err, entities.ErrValidation))
	})
}

func TestPlanFor(t *testing.T) {
	o := entities.Order{GoodsTotal: entities.MustMoney("900")}
	require.NoError(t, o.ApplyFreight(entities.MustMoney("90"), entities.FreightTypeFOB, true, entities.ChargeModeFirstInstallment))

	due := []time.Time{
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}

	p := PlanFor(o, nil, 3, due)
	assert.Equal(t, "990.00", p.Total.StringFixed(2))
	assert.Equal(t, "90.00", p.FrontLoad.StringFixed(2))

	items, err := schedule.GeneratePlan(p)
	require.NoError(t, err)
	require.NoError(t, items[0].MarkPaid(due[0]))

	p = PlanFor(o, items, 2, due[:2])
	assert.True(t, p.FrontLoad.IsZero(), "freight already collected with installment #1")
	got, err := schedule.RedistributePlan(items, p)
	require.NoError(t, err)
	assert.Equal(t, "390.00", got[0].Amount.StringFixed(2))
	assert.Equal(t, "600.00", got[1].Amount.StringFixed(2))
}

func TestValidate(t *testing.T) {
	o := entities.Order{FreightType: entities.FreightTypeFOB, FreightIncluded: true}
	assert.True(t, errors.Is(Validate(o), entities.ErrValidation))

	o.FreightAmount = entities.MustMoney("10")
	assert.NoError(t, Validate(o))

	o.FreightAmount = entities.MustMoney("-1")
	assert.True(t, errors.Is(Validate(o), entities.ErrValidation))
}
