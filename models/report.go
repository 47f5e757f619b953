package models

type ReasonKind string

const (
	ReasonWeekend   ReasonKind = "final_semana"
	ReasonHoliday   ReasonKind = "feriado"
	ReasonException ReasonKind = "excecao"
)

// Reason says why a day was ignored by the analysis. Name carries the holiday
// name or the exception kind label; it is empty for weekends.
type Reason struct {
	Kind ReasonKind `json:"kind"`
	Name string     `json:"name,omitempty"`
}

// Label renders the reason for display and export.
func (r Reason) Label() string {
	switch r.Kind {
	case ReasonWeekend:
		return "Final de Semana"
	case ReasonHoliday:
		return "Feriado (" + r.Name + ")"
	case ReasonException:
		return r.Name
	}
	return ""
}

// SentinelValue fills worked-time and export columns on ignored rows.
const SentinelValue = "----"

// ReportRow is one materialized line of the analysis result. DayIndex ties
// the row back to the ledger day it was derived from.
type ReportRow struct {
	DayIndex    int     `json:"-"`
	Date        string  `json:"date"`
	DayOfWeek   string  `json:"day_of_week"`
	WorkedTime  string  `json:"worked_time"`
	ExportValue string  `json:"export_value"`
	Hours       float64 `json:"hours"`
	DayType     string  `json:"day_type,omitempty"`
	Reason      *Reason `json:"reason,omitempty"`
	Status      string  `json:"status"`
	StatusLabel string  `json:"status_label"`
	IsIgnored   bool    `json:"is_ignored"`
}

// StatusLabelFor maps a workable day status to its display label.
func StatusLabelFor(status DayStatus) string {
	switch status {
	case StatusOK:
		return "Confere"
	case StatusDivergent:
		return "Divergente"
	default:
		return "Pendente"
	}
}

type Summary struct {
	TotalDays          int     `json:"total_days"`
	WorkdaysAnalyzed   int     `json:"workdays_analyzed"`
	DaysIgnored        int     `json:"days_ignored"`
	TotalWorkedHours   float64 `json:"total_worked_hours"`
	TotalWorkedDisplay string  `json:"total_worked_display"`
}

// Report is the derived snapshot produced by analyze. It has no identity of
// its own and is rebuilt wholesale on every analysis.
type Report struct {
	Days    []*ReportRow `json:"days"`
	Summary Summary      `json:"summary"`
}

// Clone returns a detached copy that shares no mutable state with r.
func (r *ReportRow) Clone() *ReportRow {
	out := *r
	if r.Reason != nil {
		reason := *r.Reason
		out.Reason = &reason
	}
	return &out
}

// Clone returns a detached copy of the report and all of its rows.
func (r *Report) Clone() *Report {
	out := &Report{
		Days:    make([]*ReportRow, len(r.Days)),
		Summary: r.Summary,
	}
	for i, row := range r.Days {
		out.Days[i] = row.Clone()
	}
	return out
}
