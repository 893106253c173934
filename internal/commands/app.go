package commands

import (
	"context"
	"fmt"

	"portal_pedidos/internal/adapter/persistence/memory"
	"portal_pedidos/internal/adapter/persistence/postgres"
	"portal_pedidos/internal/adapter/persistence/repository"
	"portal_pedidos/internal/infrastructure/config"
	"portal_pedidos/internal/infrastructure/database"
	"portal_pedidos/internal/infrastructure/logger"
	"portal_pedidos/internal/infrastructure/notifications"
	"portal_pedidos/internal/infrastructure/payments"
	"portal_pedidos/internal/usecase"
	"portal_pedidos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// storage is the set of ports a storage driver provides to the ledger core.
type storage struct {
	orders       interfaces.IOrderRepository
	installments interfaces.IInstallmentRepository
	customers    interfaces.ICustomerRepository
	tx           interfaces.ITransactor
	close        func()
}

type application struct {
	cfg          *config.Config
	log          *zap.Logger
	core         *usecase.LedgerCore
	orders       *usecase.OrderUseCase
	ledger       *usecase.LedgerUseCase
	proofs       *usecase.PaymentProofUseCase
	delinquency  *usecase.DelinquencyUseCase
	closeStorage func()
}

func loadConfig() (*config.Config, *zap.Logger, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.NewLogger(cfg.App)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, log, nil
}

func newApplication(ctx context.Context) (*application, error) {
	cfg, log, err := loadConfig()
	if err != nil {
		return nil, err
	}

	st, err := openStorage(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	loc, err := cfg.App.Location()
	if err != nil {
		st.close()
		return nil, err
	}

	core := usecase.NewLedgerCore(usecase.Deps{
		Orders:       st.orders,
		Installments: st.installments,
		Customers:    st.customers,
		Transactor:   st.tx,
		Notifier:     notifications.NewLogNotifier(log),
		Boletos:      openBoletoGateway(cfg, log),
		Logger:       log,
		Location:     loc,
	})
	delinquency := usecase.NewDelinquencyUseCase(core)

	return &application{
		cfg:          cfg,
		log:          log,
		core:         core,
		orders:       usecase.NewOrderUseCase(core, delinquency),
		ledger:       usecase.NewLedgerUseCase(core),
		proofs:       usecase.NewPaymentProofUseCase(core),
		delinquency:  delinquency,
		closeStorage: st.close,
	}, nil
}

// Close waits for pending notifications and releases the storage driver.
func (a *application) Close() {
	a.core.Wait()
	a.closeStorage()
	_ = a.log.Sync()
}

func openStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage, error) {
	switch cfg.Storage.Driver {
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return storage{}, err
		}
		tables := repository.Tables{
			Orders:       cfg.DynamoDB.OrdersTable,
			Installments: cfg.DynamoDB.InstallmentsTable,
			Customers:    cfg.DynamoDB.CustomersTable,
		}
		log.Info("[storage][dynamodb] ready",
			zap.String("region", cfg.DynamoDB.Region),
			zap.String("orders_table", tables.Orders),
		)
		return storage{
			orders:       repository.NewOrderDynamoRepository(ddb, tables),
			installments: repository.NewInstallmentDynamoRepository(ddb, tables),
			customers:    repository.NewCustomerDynamoRepository(ddb, tables),
			tx:           repository.NewDynamoTransactor(ddb, tables),
			close:        func() {},
		}, nil

	case config.StoragePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Database, log)
		if err != nil {
			return storage{}, err
		}
		store := postgres.NewStore(db)
		return storage{
			orders:       store.Orders(),
			installments: store.Installments(),
			customers:    store.Customers(),
			tx:           store,
			close:        db.Close,
		}, nil

	case config.StorageMemory:
		log.Warn("[storage][memory] data is kept in process memory only")
		store := memory.NewStore()
		return storage{
			orders:       store.Orders(),
			installments: store.Installments(),
			customers:    store.Customers(),
			tx:           store,
			close:        func() {},
		}, nil
	}
	return storage{}, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// openBoletoGateway returns nil when Mercado Pago is not configured; boleto issuance then fails
// while the rest of the ledger keeps working.
func openBoletoGateway(cfg *config.Config, log *zap.Logger) interfaces.IBoletoGateway {
	gw, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken:   cfg.Payments.MercadoPagoAccessToken,
		Mock:          cfg.Payments.Mock,
		DaysTolerance: cfg.Payments.BoletoDaysTolerance,
	}, log)
	if err != nil {
		log.Warn("[payment][gateway] Mercado Pago gateway not configured", zap.Error(err))
		return nil
	}
	return gw
}
