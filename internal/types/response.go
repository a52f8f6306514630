package types

import "github.com/gofiber/fiber/v2"

// Response is the envelope every JSON body follows: a machine-readable
// status, a human-readable message, and the optional payload.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success writes a 200 envelope with the given message and payload.
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Status:  fiber.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Failure writes an error envelope with the given status code. Data is always
// null on failures; callers must not leak partial payloads.
func Failure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
	})
}
