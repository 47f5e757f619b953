package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Wisley56/Apontamento-de-Horas/db"
	"github.com/Wisley56/Apontamento-de-Horas/holidays"
	"github.com/Wisley56/Apontamento-de-Horas/models"
	"github.com/Wisley56/Apontamento-de-Horas/redis"
	"github.com/Wisley56/Apontamento-de-Horas/utils"
)

const holidayCacheTTL = 24 * time.Hour

// LoadHolidays resolves the holiday map for a year and state through the
// cache chain: Redis, then the Postgres table, then the computed calendar.
// Unknown UFs fall back to SP before any tier is consulted, so the cache key
// is always canonical.
func LoadHolidays(year int, uf string) (map[string]string, error) {
	uf = strings.ToUpper(strings.TrimSpace(uf))
	if !holidays.IsValidUF(uf) {
		uf = holidays.DefaultState
	}
	key := fmt.Sprintf("holidays:%d:%s", year, uf)

	if redis.Client != nil {
		if cached, err := redis.Client.Get(redis.Ctx, key).Result(); err == nil {
			var holidayMap map[string]string
			if err := json.Unmarshal([]byte(cached), &holidayMap); err == nil {
				return holidayMap, nil
			}
		}
	}

	holidayMap := make(map[string]string)
	var rows []models.Holiday
	if db.DB != nil {
		if err := db.DB.Where("year = ? AND state = ?", year, uf).Find(&rows).Error; err != nil {
			return nil, err
		}
	}
	if len(rows) > 0 {
		for _, row := range rows {
			holidayMap[row.Date] = row.Name
		}
	} else {
		holidayMap = holidays.ForYear(year, uf)
		if db.DB != nil {
			rows = rows[:0]
			for date, name := range holidayMap {
				rows = append(rows, models.Holiday{Year: year, State: uf, Date: date, Name: name})
			}
			if len(rows) > 0 {
				if err := db.DB.Create(&rows).Error; err != nil {
					// A failed write-through only costs the cache, not the response
					log.Printf("Error caching holidays for %d/%s: %v", year, uf, err)
				}
			}
		}
	}

	if redis.Client != nil {
		if payload, err := json.Marshal(holidayMap); err == nil {
			redis.Client.Set(redis.Ctx, key, payload, holidayCacheTTL)
		}
	}
	return holidayMap, nil
}

// GetHolidays godoc
// @Summary List holidays for a year and state
// @Description Lists national and state holidays, keyed by dd/mm/yyyy date
// @Tags holidays
// @Produce json
// @Param year path int true "Year"
// @Param state path string true "State code (UF)"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/holidays/{year}/{state} [get]
func GetHolidays(c *fiber.Ctx) error {
	year, err := c.ParamsInt("year")
	if err != nil || year <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Ano inválido",
			Error:   "invalid_year",
		})
	}
	holidayMap, err := LoadHolidays(year, c.Params("state"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Falha ao buscar feriados",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"holidays": holidayMap})
}
