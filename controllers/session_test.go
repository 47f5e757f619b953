package controllers

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/Wisley56/Apontamento-de-Horas/middleware"
)

// sessionApp registers the session routes the way routes/session.go does,
// without importing it (that would close an import cycle in tests).
func sessionApp() *fiber.App {
	app := fiber.New()
	sessions := app.Group("/api/sessions")
	sessions.Post("/", CreateSession)
	sessions.Get("/:id", middleware.RequireSession(), GetSession)
	sessions.Delete("/:id", middleware.RequireSession(), DeleteSession)
	sessions.Post("/:id/days/:index/intervals", middleware.RequireSession(), AddInterval)
	sessions.Delete("/:id/days/:index/intervals", middleware.RequireSession(), RemoveLastInterval)
	sessions.Patch("/:id/days/:index/intervals/:pos", middleware.RequireSession(), SetIntervalField)
	sessions.Post("/:id/exceptions", middleware.RequireSession(), AddException)
	sessions.Delete("/:id/exceptions/:index", middleware.RequireSession(), RemoveException)
	sessions.Post("/:id/analyze", middleware.RequireSession(), AnalyzeSession)
	sessions.Patch("/:id/report/:index/status", middleware.RequireSession(), SetReportStatus)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string, want int, out interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	if resp.StatusCode != want {
		t.Fatalf("%s %s: got status %d, want %d", method, target, resp.StatusCode, want)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, target, err)
		}
	}
}

type ledgerBody struct {
	ID   string `json:"id"`
	Days []struct {
		DateDisplay string  `json:"date_display"`
		IsWeekend   bool    `json:"is_weekend"`
		IsHoliday   bool    `json:"is_holiday"`
		TotalHours  float64 `json:"total_hours"`
	} `json:"days"`
}

type reportBody struct {
	Days []struct {
		Status      string `json:"status"`
		StatusLabel string `json:"status_label"`
		WorkedTime  string `json:"worked_time"`
		ExportValue string `json:"export_value"`
		IsIgnored   bool   `json:"is_ignored"`
	} `json:"days"`
	Summary struct {
		TotalDays        int     `json:"total_days"`
		WorkdaysAnalyzed int     `json:"workdays_analyzed"`
		DaysIgnored      int     `json:"days_ignored"`
		TotalWorkedHours float64 `json:"total_worked_hours"`
	} `json:"summary"`
}

func TestSessionWorkflow(t *testing.T) {
	app := sessionApp()

	var ledger ledgerBody
	doJSON(t, app, "POST", "/api/sessions/",
		`{"selection_type":"period","start_date":"01/01/2024","end_date":"07/01/2024","state":"SP"}`,
		fiber.StatusCreated, &ledger)

	if len(ledger.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(ledger.Days))
	}
	if !ledger.Days[0].IsHoliday || !ledger.Days[5].IsWeekend || !ledger.Days[6].IsWeekend {
		t.Fatalf("day flags wrong: %+v", ledger.Days)
	}

	// Fill the four workable days (02/01 .. 05/01)
	for index := 1; index <= 4; index++ {
		base := fmt.Sprintf("/api/sessions/%s/days/%d/intervals", ledger.ID, index)
		var day struct {
			TotalHours float64 `json:"total_hours"`
		}
		doJSON(t, app, "PATCH", base+"/0", `{"field":"entry","value":"08:00"}`, fiber.StatusOK, nil)
		doJSON(t, app, "PATCH", base+"/0", `{"field":"exit","value":"12:00"}`, fiber.StatusOK, nil)
		doJSON(t, app, "PATCH", base+"/1", `{"field":"entry","value":"13:00"}`, fiber.StatusOK, nil)
		doJSON(t, app, "PATCH", base+"/1", `{"field":"exit","value":"17:00"}`, fiber.StatusOK, &day)
		if day.TotalHours != 8 {
			t.Fatalf("day %d: got %v hours, want 8", index, day.TotalHours)
		}
	}

	var report reportBody
	doJSON(t, app, "POST", "/api/sessions/"+ledger.ID+"/analyze", "", fiber.StatusOK, &report)
	s := report.Summary
	if s.TotalDays != 7 || s.WorkdaysAnalyzed != 4 || s.DaysIgnored != 3 || s.TotalWorkedHours != 32 {
		t.Fatalf("summary: %+v", s)
	}
	if report.Days[1].WorkedTime != "08:00" || report.Days[1].ExportValue != "8.00" {
		t.Fatalf("row formats: %+v", report.Days[1])
	}

	// Patch a workable row's status
	var row struct {
		Status      string `json:"status"`
		StatusLabel string `json:"status_label"`
	}
	doJSON(t, app, "PATCH", "/api/sessions/"+ledger.ID+"/report/1/status",
		`{"status":"ok"}`, fiber.StatusOK, &row)
	if row.Status != "ok" || row.StatusLabel != "Confere" {
		t.Fatalf("row after patch: %+v", row)
	}

	// An ignored row keeps its status
	doJSON(t, app, "PATCH", "/api/sessions/"+ledger.ID+"/report/0/status",
		`{"status":"ok"}`, fiber.StatusOK, &row)
	if row.Status != "ignorado" {
		t.Fatalf("ignored row changed: %+v", row)
	}

	doJSON(t, app, "DELETE", "/api/sessions/"+ledger.ID, "", fiber.StatusNoContent, nil)
	doJSON(t, app, "GET", "/api/sessions/"+ledger.ID, "", fiber.StatusNotFound, nil)
}

func TestSessionValidationErrors(t *testing.T) {
	app := sessionApp()

	doJSON(t, app, "POST", "/api/sessions/",
		`{"selection_type":"period","start_date":"02/01/2024","end_date":"01/01/2024","state":"SP"}`,
		fiber.StatusBadRequest, nil)
	doJSON(t, app, "POST", "/api/sessions/",
		`{"selection_type":"period","start_date":"01/01/2024","end_date":"02/01/2024"}`,
		fiber.StatusBadRequest, nil)
	doJSON(t, app, "GET", "/api/sessions/nope", "", fiber.StatusNotFound, nil)
}

func TestSingleDateConfirmationOverHTTP(t *testing.T) {
	app := sessionApp()

	var gate struct {
		ConfirmationRequired bool   `json:"confirmation_required"`
		Reason               string `json:"reason"`
	}
	doJSON(t, app, "POST", "/api/sessions/",
		`{"selection_type":"single","start_date":"06/01/2024","state":"SP"}`,
		fiber.StatusConflict, &gate)
	if !gate.ConfirmationRequired || !strings.Contains(gate.Reason, "Final de Semana") {
		t.Fatalf("gate: %+v", gate)
	}

	var ledger ledgerBody
	doJSON(t, app, "POST", "/api/sessions/",
		`{"selection_type":"single","start_date":"06/01/2024","state":"SP","confirm":true}`,
		fiber.StatusCreated, &ledger)
	if len(ledger.Days) != 1 || !ledger.Days[0].IsWeekend {
		t.Fatalf("confirmed ledger: %+v", ledger.Days)
	}
}

func TestExceptionEndpoints(t *testing.T) {
	app := sessionApp()

	var ledger ledgerBody
	doJSON(t, app, "POST", "/api/sessions/",
		`{"selection_type":"period","start_date":"01/01/2024","end_date":"07/01/2024","state":"SP"}`,
		fiber.StatusCreated, &ledger)

	doJSON(t, app, "POST", "/api/sessions/"+ledger.ID+"/exceptions",
		`{"date":"03/01/2024","kind":"ferias"}`, fiber.StatusCreated, nil)
	doJSON(t, app, "POST", "/api/sessions/"+ledger.ID+"/exceptions",
		`{"date":"03/01/2024","kind":"atestado"}`, fiber.StatusBadRequest, nil)

	var report reportBody
	doJSON(t, app, "POST", "/api/sessions/"+ledger.ID+"/analyze", "", fiber.StatusOK, &report)
	if report.Summary.DaysIgnored != 4 || report.Summary.WorkdaysAnalyzed != 3 {
		t.Fatalf("summary with exception: %+v", report.Summary)
	}

	doJSON(t, app, "DELETE", "/api/sessions/"+ledger.ID+"/exceptions/0", "", fiber.StatusOK, nil)
	doJSON(t, app, "POST", "/api/sessions/"+ledger.ID+"/analyze", "", fiber.StatusOK, &report)
	if report.Summary.DaysIgnored != 3 {
		t.Fatalf("summary after removal: %+v", report.Summary)
	}
}
