package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Wisley56/Apontamento-de-Horas/models"
	"github.com/Wisley56/Apontamento-de-Horas/session"
	"github.com/Wisley56/Apontamento-de-Horas/utils"
)

type createSessionRequest struct {
	SelectionType string `json:"selection_type"`
	StartDate     string `json:"start_date"` // dd/mm/yyyy
	EndDate       string `json:"end_date"`   // dd/mm/yyyy
	State         string `json:"state"`
	Confirm       bool   `json:"confirm"`
}

type setIntervalFieldRequest struct {
	Field string `json:"field"` // "entry" or "exit"
	Value string `json:"value"` // "HH:MM" or empty
}

type addExceptionRequest struct {
	Date string               `json:"date"` // dd/mm/yyyy
	Kind models.ExceptionKind `json:"kind"`
}

type setStatusRequest struct {
	Status models.DayStatus `json:"status"`
}

// currentLedger reads the ledger injected by middleware.RequireSession.
func currentLedger(c *fiber.Ctx) *session.Ledger {
	ledger, _ := c.Locals("ledger").(*session.Ledger)
	return ledger
}

func sessionNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
		Message: "Sessão não encontrada ou expirada",
		Error:   "session_not_found",
	})
}

func ledgerError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	kind := "validation_error"
	switch {
	case errors.Is(err, session.ErrDayIndex),
		errors.Is(err, session.ErrRowIndex),
		errors.Is(err, session.ErrExceptionIndex):
		status = fiber.StatusNotFound
		kind = "not_found"
	}
	return c.Status(status).JSON(utils.ErrorResponse{
		Message: err.Error(),
		Error:   kind,
	})
}

// CreateSession godoc
// @Summary Open a ledger session
// @Description Generates one day per calendar date in the selected range
// @Tags sessions
// @Accept json
// @Produce json
// @Success 201 {object} session.Ledger
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} map[string]interface{}
// @Router /api/sessions [post]
func CreateSession(c *fiber.Ctx) error {
	req := new(createSessionRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Falha ao ler o corpo da requisição",
			Error:   err.Error(),
		})
	}

	ledger, err := session.New(session.Params{
		SelectionType: req.SelectionType,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		State:         req.State,
		Confirm:       req.Confirm,
	})
	if err != nil {
		var confirmErr *session.ConfirmationRequiredError
		if errors.As(err, &confirmErr) {
			// The date is a holiday or weekend; the caller must resubmit
			// with confirm=true or drop it.
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"confirmation_required": true,
				"reason":                confirmErr.Reason,
			})
		}
		return ledgerError(c, err)
	}

	session.Default.Put(ledger)
	return c.Status(fiber.StatusCreated).JSON(ledger)
}

// GetSession returns the current ledger state
func GetSession(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	return c.JSON(ledger)
}

// DeleteSession ends the session
func DeleteSession(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	session.Default.Delete(ledger.ID)
	return c.SendStatus(fiber.StatusNoContent)
}

// AddInterval appends an empty interval row to a day
func AddInterval(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return ledgerError(c, session.ErrDayIndex)
	}
	day, err := ledger.AddInterval(index)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(day)
}

// RemoveLastInterval drops a day's last interval row (no-op at the floor)
func RemoveLastInterval(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return ledgerError(c, session.ErrDayIndex)
	}
	day, err := ledger.RemoveLastInterval(index)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(day)
}

// SetIntervalField writes one entry/exit field and returns the recomputed day
func SetIntervalField(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return ledgerError(c, session.ErrDayIndex)
	}
	pos, err := c.ParamsInt("pos")
	if err != nil {
		return ledgerError(c, session.ErrDayIndex)
	}
	req := new(setIntervalFieldRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Falha ao ler o corpo da requisição",
			Error:   err.Error(),
		})
	}
	day, err := ledger.SetIntervalField(index, pos, req.Field, req.Value)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(day)
}

// AddException registers a non-workable override for a date
func AddException(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	req := new(addExceptionRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Falha ao ler o corpo da requisição",
			Error:   err.Error(),
		})
	}
	if err := ledger.AddException(req.Date, req.Kind); err != nil {
		return ledgerError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ledger.ExceptionList())
}

// RemoveException removes an exception by position
func RemoveException(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return ledgerError(c, session.ErrExceptionIndex)
	}
	if err := ledger.RemoveException(index); err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(ledger.ExceptionList())
}

// AnalyzeSession rebuilds the report from the current day state
func AnalyzeSession(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	return c.JSON(ledger.Analyze())
}

// SetReportStatus patches one report row's reviewer status
func SetReportStatus(c *fiber.Ctx) error {
	ledger := currentLedger(c)
	if ledger == nil {
		return sessionNotFound(c)
	}
	index, err := c.ParamsInt("index")
	if err != nil {
		return ledgerError(c, session.ErrRowIndex)
	}
	req := new(setStatusRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Falha ao ler o corpo da requisição",
			Error:   err.Error(),
		})
	}
	row, err := ledger.SetStatus(index, req.Status)
	if err != nil {
		return ledgerError(c, err)
	}
	return c.JSON(row)
}
