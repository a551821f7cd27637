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

type UserHandler struct {
	svc services.UserService
}

func NewUserHandler(svc services.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// SetupRoutes registers the public auth routes and the PIN routes on the
// protected group.
func (h *UserHandler) SetupRoutes(app *fiber.App, protected fiber.Router) {
	// Auth
	app.Post("/signup", h.Signup)
	app.Post("/login", h.Login)

	// PIN
	protected.Post("/pin", h.SetPIN)
	protected.Post("/pin/verify", h.VerifyPIN)
	protected.Post("/logout", h.Logout)
}

func (h *UserHandler) Signup(ctx *fiber.Ctx) error {
	var requestBody dto.UserSignup

	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if errs := helper.ValidateStruct(requestBody); errs != nil {
		return utils.ValidationError(ctx, errs)
	}

	user, err := h.svc.Signup(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, "Signup successful", fiber.Map{
		"unique_id": user.UniqueID,
	})
}

func (h *UserHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "unique id and password are required")
	}
	if errs := helper.ValidateStruct(requestBody); errs != nil {
		return utils.ValidationError(ctx, errs)
	}

	res, err := h.svc.Login(requestBody)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Login successful", res)
}

func (h *UserHandler) Logout(ctx *fiber.Ctx) error {
	uniqueID, _ := middleware.CurrentUniqueID(ctx)
	h.svc.Logout(uniqueID)
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Logged out", nil)
}

func (h *UserHandler) SetPIN(ctx *fiber.Ctx) error {
	var requestBody dto.PinRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if errs := helper.ValidateStruct(requestBody); errs != nil {
		return utils.ValidationError(ctx, errs)
	}

	uniqueID, _ := middleware.CurrentUniqueID(ctx)
	if err := h.svc.SetPIN(uniqueID, requestBody.Pin); err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "PIN set successfully", nil)
}

func (h *UserHandler) VerifyPIN(ctx *fiber.Ctx) error {
	var requestBody dto.PinRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}
	if errs := helper.ValidateStruct(requestBody); errs != nil {
		return utils.ValidationError(ctx, errs)
	}

	s, ok := middleware.CurrentSession(ctx)
	if !ok {
		return respondError(ctx, domain.ErrNoSession)
	}
	balance, err := h.svc.VerifyPIN(s, requestBody.Pin)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "PIN verified", dto.WalletResponse{
		Balance:  balance.StringFixed(2),
		Currency: currency,
	})
}
