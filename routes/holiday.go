package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wisley56/Apontamento-de-Horas/controllers"
)

// SetupHolidayRoutes configures the state list and holiday lookup routes
func SetupHolidayRoutes(app *fiber.App) {
	app.Get("/api/states", controllers.GetAllStates)
	app.Get("/api/holidays/:year/:state", controllers.GetHolidays)
}
