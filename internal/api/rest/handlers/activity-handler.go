package handlers

import (
	"github.com/Gayatri-ch/UniPay/internal/api/rest/middleware"
	"github.com/Gayatri-ch/UniPay/internal/helper/utils"
	"github.com/Gayatri-ch/UniPay/internal/repository"
	"github.com/gofiber/fiber/v2"
)

const maxActivity = 100

// ActivityHandler serves the audit trail written by the notifier.
type ActivityHandler struct {
	repo repository.AuditRepository
}

func NewActivityHandler(repo repository.AuditRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

func (h *ActivityHandler) SetupRoutes(r fiber.Router) {
	r.Get("/activity", h.List)
}

func (h *ActivityHandler) List(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)
	if limit <= 0 || limit > maxActivity {
		limit = maxActivity
	}

	uniqueID, _ := middleware.CurrentUniqueID(ctx)
	entries, err := h.repo.ListByActor(uniqueID, limit)
	if err != nil {
		return respondError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, "Activity", entries)
}
