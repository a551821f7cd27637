package middleware

import (
	"strings"

	"github.com/Gayatri-ch/UniPay/internal/helper"
	"github.com/Gayatri-ch/UniPay/internal/helper/utils"
	"github.com/Gayatri-ch/UniPay/internal/services"
	"github.com/gofiber/fiber/v2"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}

		ctx.Locals("uniqueID", user.UniqueID)
		return ctx.Next()
	}
}

// SessionRequired loads the live session of the authenticated user. A valid
// token without a session (server restart, logout) is unauthorized.
func SessionRequired(sessions *services.SessionManager) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		uniqueID, ok := CurrentUniqueID(ctx)
		if !ok {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}

		s, err := sessions.Get(uniqueID)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}

		ctx.Locals("session", s)
		return ctx.Next()
	}
}

func CurrentSession(ctx *fiber.Ctx) (*services.Session, bool) {
	s, ok := ctx.Locals("session").(*services.Session)
	return s, ok && s != nil
}

func CurrentUniqueID(ctx *fiber.Ctx) (string, bool) {
	uniqueID, ok := ctx.Locals("uniqueID").(string)
	return uniqueID, ok && uniqueID != ""
}
