package handlers

import (
	"errors"
	"net/http"

	"portal_pedidos/internal/domain/entities"
	"portal_pedidos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPayload     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errValidation         = pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Invalid request", http.StatusBadRequest)
	errInvalidSchedule    = pkg.NewDomainErrorSimple("INVALID_SCHEDULE", "Invalid installment schedule", http.StatusBadRequest)
	errOverpaidSchedule   = pkg.NewDomainErrorSimple("OVERPAID_SCHEDULE", "Paid installments exceed the payable total", http.StatusUnprocessableEntity)
	errNotFound           = pkg.NewDomainErrorSimple("NOT_FOUND", "Resource not found", http.StatusNotFound)
	errInvalidTransition  = pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Transition not allowed", http.StatusConflict)
	errConcurrentModified = pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "The order was modified concurrently, retry", http.StatusConflict)
	errCustomerBlocked    = pkg.NewDomainErrorSimple("CUSTOMER_BLOCKED", "Customer blocked for delinquency", http.StatusForbidden)
)

func mapLedgerError(err error) *pkg.AppError {
	var base *pkg.AppError
	switch {
	case errors.Is(err, entities.ErrValidation):
		base = errValidation
	case errors.Is(err, entities.ErrInvalidSchedule):
		base = errInvalidSchedule
	case errors.Is(err, entities.ErrOverpaidSchedule):
		base = errOverpaidSchedule
	case errors.Is(err, entities.ErrNotFound):
		base = errNotFound
	case errors.Is(err, entities.ErrInvalidTransition):
		base = errInvalidTransition
	case errors.Is(err, entities.ErrConcurrentModification):
		base = errConcurrentModified
	case errors.Is(err, entities.ErrCustomerBlocked):
		base = errCustomerBlocked
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	var ruleErr *entities.RuleError
	if errors.As(err, &ruleErr) && ruleErr.Details != "" {
		return base.WithMessage(ruleErr.Details)
	}
	return base
}

// abortWithError writes the mapped error; server errors are logged with the cause.
func abortWithError(c *gin.Context, log *zap.Logger, action string, err error) {
	appErr := mapLedgerError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(action+" failed", zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		log.Debug(action+" rejected", zap.String("code", appErr.Code), zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func badPayload(c *gin.Context, err error) {
	appErr := errInvalidPayload
	if err != nil {
		appErr = errInvalidPayload.WithMessage(err.Error())
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
