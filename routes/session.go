package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wisley56/Apontamento-de-Horas/controllers"
	"github.com/Wisley56/Apontamento-de-Horas/middleware"
)

// SetupSessionRoutes configures all ledger session related routes
func SetupSessionRoutes(app *fiber.App) {
	sessions := app.Group("/api/sessions")
	sessions.Post("/", controllers.CreateSession)
	sessions.Get("/:id", middleware.RequireSession(), controllers.GetSession)
	sessions.Delete("/:id", middleware.RequireSession(), controllers.DeleteSession)
	sessions.Post("/:id/days/:index/intervals", middleware.RequireSession(), controllers.AddInterval)
	sessions.Delete("/:id/days/:index/intervals", middleware.RequireSession(), controllers.RemoveLastInterval)
	sessions.Patch("/:id/days/:index/intervals/:pos", middleware.RequireSession(), controllers.SetIntervalField)
	sessions.Post("/:id/exceptions", middleware.RequireSession(), controllers.AddException)
	sessions.Delete("/:id/exceptions/:index", middleware.RequireSession(), controllers.RemoveException)
	sessions.Post("/:id/analyze", middleware.RequireSession(), controllers.AnalyzeSession)
	sessions.Patch("/:id/report/:index/status", middleware.RequireSession(), controllers.SetReportStatus)
}
