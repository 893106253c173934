package config

import (
	"fmt"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v6"
)

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	App      *App
	HTTP     *HTTP
	Storage  *Storage
	DynamoDB *DynamoDB
	Database *Database
	Payments *Payments
}

type App struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	Mode     string `env:"APP_MODE" envDefault:"DEV"`
	Timezone string `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
}

// Location resolves the timezone used to decide which installments are overdue.
func (a App) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", a.Timezone, err)
	}
	return loc, nil
}

type HTTP struct {
	Address string `env:"HTTP_ADDRESS" envDefault:":8080"`
}

type Storage struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`
}

type DynamoDB struct {
	Region            string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID       string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey   string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint          string `env:"DYNAMODB_ENDPOINT"`
	OrdersTable       string `env:"ORDERS_TABLE" envDefault:"orders"`
	InstallmentsTable string `env:"INSTALLMENTS_TABLE" envDefault:"installments"`
	CustomersTable    string `env:"CUSTOMERS_TABLE" envDefault:"customers"`
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type Payments struct {
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	Mock                   bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
	BoletoDaysTolerance    int    `env:"BOLETO_DAYS_TOLERANCE" envDefault:"3"`
}

func NewConfig() (*Config, error) {
	var (
		app      App
		http     HTTP
		storage  Storage
		dynamo   DynamoDB
		db       Database
		payments Payments
	)

	if err := env.Parse(&app); err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}
	if err := env.Parse(&http); err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	if err := env.Parse(&storage); err != nil {
		return nil, fmt.Errorf("error parsing storage config: %w", err)
	}
	if err := env.Parse(&dynamo); err != nil {
		return nil, fmt.Errorf("error parsing dynamodb config: %w", err)
	}
	if err := env.Parse(&db); err != nil {
		return nil, fmt.Errorf("error parsing database config: %w", err)
	}
	if err := env.Parse(&payments); err != nil {
		return nil, fmt.Errorf("error parsing payments config: %w", err)
	}

	cfg := Config{
		App:      &app,
		HTTP:     &http,
		Storage:  &storage,
		DynamoDB: &dynamo,
		Database: &db,
		Payments: &payments,
	}
	return &cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	case StoragePostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DATABASE_URI is required for the %s storage driver", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Payments.BoletoDaysTolerance < 0 {
		return fmt.Errorf("BOLETO_DAYS_TOLERANCE cannot be negative")
	}
	if _, err := c.App.Location(); err != nil {
		return err
	}
	return nil
}
