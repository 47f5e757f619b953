package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/Wisley56/Apontamento-de-Horas/models"
)

func exportApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/export", ExportReport)
	return app
}

func TestExportReportBuildsWorkbook(t *testing.T) {
	app := exportApp()

	payload, err := json.Marshal(fiber.Map{"days": []models.ReportRow{
		{
			Date:        "02/01/2024",
			DayOfWeek:   "Terça",
			WorkedTime:  "08:00",
			ExportValue: "8.00",
			Status:      "ok",
			StatusLabel: "Confere",
		},
		{
			Date:        "06/01/2024",
			DayOfWeek:   "Sábado",
			WorkedTime:  models.SentinelValue,
			ExportValue: models.SentinelValue,
			DayType:     "Final de Semana",
			Status:      models.StatusIgnored,
			StatusLabel: "Ignorado (Final de Semana)",
			IsIgnored:   true,
		},
	}})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", "/api/export", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	if cd := resp.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(cd, "apontamento_resultado.xlsx") {
		t.Errorf("content disposition: %q", cd)
	}

	f, err := excelize.OpenReader(resp.Body)
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	defer f.Close()

	cells := map[string]string{
		"A1": "Data",
		"F1": "Status",
		"A2": "02/01/2024",
		"D2": "8.00",
		"E3": "Final de Semana",
		"F3": "Ignorado (Final de Semana)",
	}
	for cell, want := range cells {
		got, err := f.GetCellValue(exportSheet, cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("%s = %q, want %q", cell, got, want)
		}
	}
}

func TestExportReportRejectsEmptyPayload(t *testing.T) {
	app := exportApp()

	req := httptest.NewRequest("POST", "/api/export", strings.NewReader(`{"days":[]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("got status %d, want 400", resp.StatusCode)
	}
}
