package utils

import "github.com/gofiber/fiber/v2"

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
	})
}

// ResponseErrorData is ResponseError with a payload, e.g. a failed transaction.
func ResponseErrorData(ctx *fiber.Ctx, status int, msg string, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": msg,
		"data":    data,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, msg string, data interface{}) error {
	body := fiber.Map{"success": true, "message": msg}
	if data != nil {
		body["data"] = data
	}
	return ctx.Status(status).JSON(body)
}

func ValidationError(ctx *fiber.Ctx, errs map[string]string) error {
	return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed!",
		"data":    errs,
	})
}
