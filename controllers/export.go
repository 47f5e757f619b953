package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/Wisley56/Apontamento-de-Horas/models"
	"github.com/Wisley56/Apontamento-de-Horas/utils"
)

type exportRequest struct {
	Days []models.ReportRow `json:"days"`
}

const exportSheet = "Apontamento de Horas"

var exportHeaders = []string{"Data", "Dia", "Tempo Trabalhado", "Valor Decimal", "Tipo", "Status"}
var exportWidths = []float64{12, 12, 18, 15, 20, 18}

// Row fills per status
var statusFills = map[string]string{
	string(models.StatusOK):        "C6EFCE",
	string(models.StatusDivergent): "FFC7CE",
	models.StatusIgnored:           "DDEBF7",
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}

// ExportReport godoc
// @Summary Export the analysis result as a spreadsheet
// @Description Builds an xlsx workbook from the report rows and streams it as a download
// @Tags export
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/export [post]
func ExportReport(c *fiber.Ctx) error {
	req := new(exportRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Falha ao ler o corpo da requisição",
			Error:   err.Error(),
		})
	}
	if len(req.Days) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Nenhum dado para exportar",
			Error:   "validation_error",
		})
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", exportSheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E79"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return exportFailure(c, err)
	}
	plainStyle, err := f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return exportFailure(c, err)
	}
	rowStyles := make(map[string]int, len(statusFills))
	for status, fill := range statusFills {
		style, err := f.NewStyle(&excelize.Style{
			Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{fill}},
			Border: thinBorder(),
		})
		if err != nil {
			return exportFailure(c, err)
		}
		rowStyles[status] = style
	}

	for col, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}
	f.SetCellStyle(exportSheet, "A1", "F1", headerStyle)

	for i, day := range req.Days {
		rowNum := i + 2
		values := []string{day.Date, day.DayOfWeek, day.WorkedTime, day.ExportValue, day.DayType, day.StatusLabel}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(exportSheet, cell, value)
		}

		style := plainStyle
		if s, ok := rowStyles[day.Status]; ok {
			style = s
		}
		first, _ := excelize.CoordinatesToCellName(1, rowNum)
		last, _ := excelize.CoordinatesToCellName(len(values), rowNum)
		f.SetCellStyle(exportSheet, first, last, style)
	}

	for i, width := range exportWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(exportSheet, col, col, width)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return exportFailure(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=apontamento_resultado.xlsx`)
	return c.Send(buf.Bytes())
}

func exportFailure(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
		Message: "Falha ao exportar arquivo",
		Error:   err.Error(),
	})
}
