package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wisley56/Apontamento-de-Horas/session"
	"github.com/Wisley56/Apontamento-de-Horas/utils"
)

// RequireSession resolves the :id route parameter to a live ledger session
// and stores it in the request locals for the controllers.
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ledger, ok := session.Default.Get(c.Params("id"))
		if !ok {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Sessão não encontrada ou expirada",
				Error:   "session_not_found",
			})
		}
		c.Locals("ledger", ledger)
		return c.Next()
	}
}
