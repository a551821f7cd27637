package handlers

import (
	"github.com/Gayatri-ch/UniPay/internal/api/rest/middleware"
	"github.com/Gayatri-ch/UniPay/internal/domain"
	"github.com/Gayatri-ch/UniPay/internal/dto"
	"github.com/Gayatri-ch/UniPay/internal/helper"
	"github.com/Gayatri-ch/UniPay/internal/helper/utils"
	"github.com/Gayatri-ch/UniPay/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LinkHandler struct {
	svc services.LinkService
}

func NewLinkHandler(svc services.LinkService) *LinkHandler {
	return &LinkHandler{svc: svc}
}

func (h *LinkHandler) SetupRoutes(r fiber.Router) {
	r.Get("/banks", h.Banks)

	// Consent
	r.Get("/consent", h.ConsentStatus)
	r.Post("/consent", h.GrantConsent)

	// Linking
	link := r.Group("/link")
	link.Post("/select", h.SelectBank)
	link.Post("/suffix", h.SuffixInput)
	link.Post("/submit", h.Submit)
	link.Get("/accounts", h.Accounts)
}

func (h *LinkHandler) Banks(ctx *fiber.Ctx) error {
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Banks", h.svc.Banks())
}

func (h *LinkHandler) ConsentStatus(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}
	granted, err := h.svc.ConsentStatus(s)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Consent status", dto.ConsentResponse{Granted: granted})
}

func (h *LinkHandler) GrantConsent(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}
	if err := h.svc.GrantConsent(s); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Consent granted", dto.ConsentResponse{Granted: true})
}

func (h *LinkHandler) SelectBank(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}

	var requestBody dto.SelectBankRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if errs := helper.ValidateStruct(requestBody); errs != nil {
		return utils.ValidationError(ctx, errs)
	}

	bank, err := h.svc.SelectBank(s, requestBody.BankCode)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Bank selected", bank)
}

func (h *LinkHandler) SuffixInput(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}

	var requestBody dto.SuffixInputRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	suggestion, err := h.svc.SuffixInput(s, requestBody.IFSCSuffix)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Suggestion", suggestion)
}

func (h *LinkHandler) Submit(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}

	var requestBody dto.SubmitLinkRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	account, err := h.svc.Submit(s, domain.LinkRequest{
		AccountNumber: requestBody.AccountNumber,
		IFSCSuffix:    requestBody.IFSCSuffix,
		ConsentGiven:  requestBody.ConsentGiven,
	})
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "Bank account linked", account)
}

func (h *LinkHandler) Accounts(ctx *fiber.Ctx) error {
	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}
	accounts, err := h.svc.Accounts(s)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Linked accounts", accounts)
}
