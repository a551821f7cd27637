package handlers

import (
	"errors"
	"log"

	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/helper/utils"
	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAccountNumber),
		errors.Is(err, domain.ErrInvalidIfscSuffix),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidReceiver),
		errors.Is(err, domain.ErrNoBankSelected),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrInvalidSignup),
		errors.Is(err, domain.ErrInvalidPin),
		errors.Is(err, domain.ErrPinNotSet):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrConsentRequired):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrUnknownBank):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrPinLocked):
		return fiber.StatusLocked
	case errors.Is(err, domain.ErrDuplicateUser):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrNoSession),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrIncorrectPin):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err with its mapped status. Unmapped errors are logged
// and hidden from the client.
func respondError(ctx *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("%s %s: %v", ctx.Method(), ctx.Path(), err)
		return utils.ResponseError(ctx, status, "internal server error")
	}
	return utils.ResponseError(ctx, status, err.Error())
}
