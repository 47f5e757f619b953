package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Wisley56/Apontamento-de-Horas/cron"
	"github.com/Wisley56/Apontamento-de-Horas/db"
	"github.com/Wisley56/Apontamento-de-Horas/redis"
	"github.com/Wisley56/Apontamento-de-Horas/routes"
	"github.com/Wisley56/Apontamento-de-Horas/session"
)

func main() {
	db.Init()
	db.Migrate()
	redis.InitRedis()

	if v := os.Getenv("SESSION_TTL_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			session.Default.SetTTL(time.Duration(minutes) * time.Minute)
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "Sistema de Apontamento de Horas",
	})

	app.Use(recoverer.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupHolidayRoutes(app)
	routes.SetupSessionRoutes(app)
	routes.SetupExportRoutes(app)

	// Serve the static frontend when it is bundled alongside the binary
	if _, err := os.Stat("./frontend"); err == nil {
		app.Static("/", "./frontend")
	}

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
