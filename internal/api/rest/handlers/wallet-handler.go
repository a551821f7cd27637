package handlers

import (
	"errors"

	"github.com/Gayatri-ch/UniPay/internal/api/rest/middleware"
	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/dto"
	"github.com/Gayatri-ch/UniPay/internal/helper"
	"github.com/Gayatri-ch/UniPay/internal/helper/utils"
	"github.com/Gayatri-ch/UniPay/internal/services"
	"github.com/gofiber/fiber/v2"
)

const currency = "USD"

type WalletHandler struct {
	svc services.WalletService
}

func NewWalletHandler(svc services.WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

func (h *WalletHandler) SetupRoutes(r fiber.Router) {
	wallet := r.Group("/wallet")
	wallet.Get("/", h.Balance)
	wallet.Post("/pay", h.Pay)
	wallet.Get("/history", h.History)
	wallet.Get("/rewards", h.Rewards)
	wallet.Get("/summary", h.Summary)
}

func (h *WalletHandler) Balance(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Wallet", dto.WalletResponse{
		Balance:  h.svc.Balance(s).StringFixed(2),
		Currency: currency,
	})
}

func (h *WalletHandler) Pay(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}

	var requestBody dto.PaymentRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		if errors.Is(err, domain.ErrInvalidAmount) {
			return respondError(ctx, err)
		}
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if errs := helper.ValidateStruct(requestBody); errs != nil {
		return utils.ValidationError(ctx, errs)
	}

	tx, err := h.svc.Pay(s, requestBody.Receiver, string(requestBody.Amount))
	if err != nil {
		return respondError(ctx, err)
	}
	if tx.Status == domain.TransactionFailed {
		return utils.ResponseErrorData(ctx, fiber.StatusConflict, domain.ErrInsufficientBalance.Error(), tx)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Payment successful", tx)
}

func (h *WalletHandler) History(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Transactions", h.svc.History(s))
}

func (h *WalletHandler) Rewards(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Rewards", h.svc.Rewards(s))
}

func (h *WalletHandler) Summary(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Spending summary", h.svc.Summary(s))
}
