package commands

import (
	"context"
	"testing"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplication_MemoryStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("TIMEZONE", "America/Sao_Paulo")

	app, err := newApplication(context.Background())
	require.NoError(t, err)
	defer app.Close()

	order, err := app.orders.CreateOrder(context.Background(), usecase.CreateOrderInput{
		BuyerID:    "c1",
		SupplierID: "s1",
		Items:      []entities.LineItem{{ProductID: "p1", Quantity: 2, UnitPrice: entities.MustMoney("50")}},
	})
	require.NoError(t, err)

	view, err := app.orders.GetOrder(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderStatusNew, view.Order.Status)
	assert.True(t, view.Order.GoodsTotal.Equal(entities.MustMoney("100")))
}

func TestNewApplication_UnknownStorage(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := newApplication(context.Background())
	assert.Error(t, err)
}

func TestRunMigrate_RequiresPostgres(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")

	err := runMigrate(migrateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "sweep-delinquency", "migrate"} {
		assert.True(t, names[want], want)
	}
}
