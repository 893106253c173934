package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const boletoPaymentMethod = "bolbradesco"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// Boletos already issued for an installment are found by external_reference.
type paymentClient interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
	Search(ctx context.Context, request payment.SearchRequest) (*payment.SearchResponse, error)
}

// MercadoPagoGateway issues boletos as Mercado Pago payments.
type MercadoPagoGateway struct {
	client        paymentClient
	mockMode      bool
	daysTolerance int
	log           *zap.Logger
	now           func() time.Time
}

var _ interfaces.IBoletoGateway = (*MercadoPagoGateway)(nil)

type Options struct {
	AccessToken   string
	Mock          bool
	DaysTolerance int
}

func NewMercadoPagoGateway(opts Options, log *zap.Logger) (*MercadoPagoGateway, error) {
	log = log.Named("payments")
	g := &MercadoPagoGateway{daysTolerance: opts.DaysTolerance, log: log, now: time.Now}

	if opts.Mock {
		log.Info("[payment][gateway] mock mode enabled")
		g.mockMode = true
		return g, nil
	}

	if opts.AccessToken == "" {
		log.Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(opts.AccessToken)
	if err != nil {
		log.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("[payment][gateway] Mercado Pago client initialized")

	g.client = payment.NewClient(cfg)
	return g, nil
}

// boletoPayload mirrors the Mercado Pago payment request fields used for a boleto.
type boletoPayload struct {
	TransactionAmount float64     `json:"transaction_amount"`
	Description       string      `json:"description"`
	PaymentMethodID   string      `json:"payment_method_id"`
	ExternalReference string      `json:"external_reference"`
	DateOfExpiration  time.Time   `json:"date_of_expiration"`
	Payer             payerObject `json:"payer"`
}

type payerObject struct {
	Email          string               `json:"email"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name,omitempty"`
	Identification identificationObject `json:"identification"`
}

type identificationObject struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

type boletoResponse struct {
	ID                 int64  `json:"id"`
	Status             string `json:"status"`
	TransactionDetails struct {
		ExternalResourceURL string `json:"external_resource_url"`
		DigitableLine       string `json:"digitable_line"`
	} `json:"transaction_details"`
	Barcode struct {
		Content string `json:"content"`
	} `json:"barcode"`
}

func (g *MercadoPagoGateway) IssueBoleto(ctx context.Context, req interfaces.BoletoRequest) (entities.Boleto, error) {
	if g == nil {
		return entities.Boleto{}, ErrMercadoPagoGatewayNotConfigured
	}
	now := g.now().UTC()

	if g.mockMode {
		id := strconv.FormatInt(now.UnixNano(), 10)
		g.log.Info("[payment][gateway] mock boleto issued",
			zap.String("installment_id", req.InstallmentID),
			zap.String("provider_payment_id", id),
		)
		return entities.Boleto{
			URL:        "https://www.mercadopago.com.br/payments/" + id + "/ticket",
			Barcode:    mockBarcode(req),
			ExternalID: id,
			IssuedAt:   &now,
		}, nil
	}
	if g.client == nil {
		return entities.Boleto{}, ErrMercadoPagoGatewayNotConfigured
	}

	if err := validatePayer(req.Payer); err != nil {
		return entities.Boleto{}, err
	}

	issued, found, err := g.findIssued(ctx, req)
	if err != nil {
		g.log.Error("[payment][gateway] sdk search failed", zap.String("installment_id", req.InstallmentID), zap.Error(err))
		return entities.Boleto{}, err
	}
	if found {
		g.log.Info("[payment][gateway] boleto already issued",
			zap.String("installment_id", req.InstallmentID),
			zap.Int64("provider_payment_id", issued.ID),
		)
		return issued.boleto(now), nil
	}

	amount, _ := req.Amount.Float64()
	body, err := json.Marshal(boletoPayload{
		TransactionAmount: amount,
		Description:       req.Description,
		PaymentMethodID:   boletoPaymentMethod,
		ExternalReference: req.InstallmentID,
		DateOfExpiration:  g.expiration(req.DueDate),
		Payer: payerObject{
			Email:     req.Payer.Email,
			FirstName: req.Payer.FirstName,
			LastName:  req.Payer.LastName,
			Identification: identificationObject{
				Type:   req.Payer.DocumentType,
				Number: req.Payer.DocumentNumber,
			},
		},
	})
	if err != nil {
		return entities.Boleto{}, err
	}

	var sdkReq payment.Request
	if err := json.Unmarshal(body, &sdkReq); err != nil {
		g.log.Error("[payment][gateway] payload unmarshal failed", zap.Error(err))
		return entities.Boleto{}, err
	}

	g.log.Info("[payment][gateway] create boleto start", zap.String("installment_id", req.InstallmentID))
	resp, err := g.client.Create(ctx, sdkReq)
	if err != nil {
		g.log.Error("[payment][gateway] sdk create failed", zap.String("installment_id", req.InstallmentID), zap.Error(err))
		return entities.Boleto{}, err
	}

	out, err := decodeBoleto(resp)
	if err != nil {
		return entities.Boleto{}, err
	}
	g.log.Info("[payment][gateway] create boleto success",
		zap.Int64("provider_payment_id", out.ID),
		zap.String("provider_status", out.Status),
	)
	return out.boleto(now), nil
}

// findIssued looks for a live boleto already created for the installment with the
// same amount, so a retried command reuses it.
func (g *MercadoPagoGateway) findIssued(ctx context.Context, req interfaces.BoletoRequest) (boletoResponse, bool, error) {
	res, err := g.client.Search(ctx, payment.SearchRequest{
		Limit:   20,
		Filters: map[string]string{"external_reference": req.InstallmentID},
	})
	if err != nil {
		return boletoResponse{}, false, err
	}
	if res == nil {
		return boletoResponse{}, false, nil
	}
	want := entities.Cents(req.Amount)
	for i := range res.Results {
		p := res.Results[i]
		if p.ExternalReference != req.InstallmentID || p.PaymentMethodID != boletoPaymentMethod {
			continue
		}
		if p.Status != "pending" && p.Status != "in_process" {
			continue
		}
		if !entities.Cents(decimal.NewFromFloat(p.TransactionAmount)).Equal(want) {
			continue
		}
		out, err := decodeBoleto(&p)
		if err != nil {
			return boletoResponse{}, false, err
		}
		return out, true, nil
	}
	return boletoResponse{}, false, nil
}

func decodeBoleto(resp *payment.Response) (boletoResponse, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return boletoResponse{}, err
	}
	var out boletoResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return boletoResponse{}, err
	}
	return out, nil
}

func (r boletoResponse) boleto(issuedAt time.Time) entities.Boleto {
	barcode := r.Barcode.Content
	if barcode == "" {
		barcode = r.TransactionDetails.DigitableLine
	}
	return entities.Boleto{
		URL:        r.TransactionDetails.ExternalResourceURL,
		Barcode:    barcode,
		ExternalID: strconv.FormatInt(r.ID, 10),
		IssuedAt:   &issuedAt,
	}
}

// validatePayer checks what a bolbradesco payment needs from the payer.
func validatePayer(p interfaces.BoletoPayer) error {
	switch {
	case p.Email == "":
		return entities.ValidationError("payer email is required to issue a boleto")
	case p.FirstName == "":
		return entities.ValidationError("payer first name is required to issue a boleto")
	case p.DocumentType != "CPF" && p.DocumentType != "CNPJ":
		return entities.ValidationError("payer document type must be CPF or CNPJ, got %q", p.DocumentType)
	case p.DocumentNumber == "":
		return entities.ValidationError("payer document number is required to issue a boleto")
	}
	return nil
}

// expiration is the last instant the boleto can be paid: the due date plus the tolerance days.
func (g *MercadoPagoGateway) expiration(due time.Time) time.Time {
	d := entities.DateOnly(due).AddDate(0, 0, g.daysTolerance)
	return d.Add(24*time.Hour - time.Second)
}

func mockBarcode(req interfaces.BoletoRequest) string {
	cents := entities.Cents(req.Amount).Shift(2).IntPart()
	return fmt.Sprintf("23790.00009 %s %010d", entities.DateOnly(req.DueDate).Format("20060102"), cents)
}
