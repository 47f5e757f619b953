package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Wisley56/Apontamento-de-Horas/db"
	"github.com/Wisley56/Apontamento-de-Horas/models"
	"github.com/Wisley56/Apontamento-de-Horas/utils"
)

// GetAllStates retrieves the Brazilian states that populate the region selector
func GetAllStates(c *fiber.Ctx) error {
	var states []models.State
	if err := db.DB.Order("code").Find(&states).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Falha ao buscar estados",
			Error:   err.Error(),
		})
	}
	return c.JSON(states)
}
