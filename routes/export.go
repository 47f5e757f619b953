package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wisley56/Apontamento-de-Horas/controllers"
)

// SetupExportRoutes configures the spreadsheet export route
func SetupExportRoutes(app *fiber.App) {
	app.Post("/api/export", controllers.ExportReport)
}
