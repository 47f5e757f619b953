// Package session owns the in-memory day ledgers: one per user session,
// holding the generated days, the declared exceptions and the materialized
// analysis report.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Wisley56/Apontamento-de-Horas/holidays"
	"github.com/Wisley56/Apontamento-de-Horas/models"
	"github.com/Wisley56/Apontamento-de-Horas/utils"
)

// Selection modes for a ledger session.
const (
	SelectionPeriod = "period"
	SelectionSingle = "single"
)

// Validation failures, surfaced by the controllers as 400 responses. The
// messages double as the user-visible notification text.
var (
	ErrInvalidSelection     = errors.New("tipo de seleção inválido")
	ErrMissingDates         = errors.New("preencha as datas obrigatórias")
	ErrInvalidDate          = errors.New("data inválida")
	ErrEndBeforeStart       = errors.New("data final não pode ser menor que a inicial")
	ErrMissingState         = errors.New("selecione o estado")
	ErrEmptyExceptionDate   = errors.New("selecione uma data")
	ErrDuplicateException   = errors.New("esta data já foi adicionada")
	ErrInvalidExceptionKind = errors.New("tipo de exceção inválido")
	ErrNoReport             = errors.New("gere a análise primeiro")
	ErrInvalidStatus        = errors.New("status inválido")
	ErrDayIndex             = errors.New("dia inexistente")
	ErrRowIndex             = errors.New("linha inexistente")
	ErrExceptionIndex       = errors.New("exceção inexistente")
)

// ConfirmationRequiredError gates single-date entry on non-working days: the
// caller must resubmit with Confirm set, otherwise no ledger is created.
type ConfirmationRequiredError struct {
	Reason string
}

func (e *ConfirmationRequiredError) Error() string {
	return fmt.Sprintf("confirmação necessária: %s", e.Reason)
}

// Params is the user input that opens a session. Dates use dd/mm/yyyy.
type Params struct {
	SelectionType string
	StartDate     string
	EndDate       string
	State         string
	Confirm       bool
}

// Ledger is the session state. All access goes through its methods, which
// serialize under mu: mutations run one at a time, and every value handed out
// (including the JSON view) is a detached copy taken under the lock.
type Ledger struct {
	mu sync.Mutex

	ID            string
	SelectionType string
	State         string
	Holidays      map[string]string
	Days          []*models.Day
	Exceptions    []models.Exception
	Report        *models.Report
	CreatedAt     time.Time
}

// ledgerView is the wire shape of a ledger snapshot.
type ledgerView struct {
	ID            string             `json:"id"`
	SelectionType string             `json:"selection_type"`
	State         string             `json:"state"`
	Holidays      map[string]string  `json:"holidays"`
	Days          []*models.Day      `json:"days"`
	Exceptions    []models.Exception `json:"exceptions"`
	Report        *models.Report     `json:"report,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// MarshalJSON serializes a snapshot taken under the lock, so encoding never
// races a concurrent mutation on the same session.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	l.mu.Lock()
	view := ledgerView{
		ID:            l.ID,
		SelectionType: l.SelectionType,
		State:         l.State,
		Holidays:      l.Holidays,
		Days:          make([]*models.Day, len(l.Days)),
		Exceptions:    append([]models.Exception(nil), l.Exceptions...),
		CreatedAt:     l.CreatedAt,
	}
	for i, day := range l.Days {
		view.Days[i] = day.Clone()
	}
	if l.Report != nil {
		view.Report = l.Report.Clone()
	}
	l.mu.Unlock()
	return json.Marshal(view)
}

// New validates the params, resolves the holiday calendar and generates one
// Day per calendar date in [start, end], ascending.
func New(p Params) (*Ledger, error) {
	switch p.SelectionType {
	case SelectionPeriod, SelectionSingle:
	default:
		return nil, ErrInvalidSelection
	}

	uf := strings.ToUpper(strings.TrimSpace(p.State))
	if uf == "" {
		return nil, ErrMissingState
	}

	if strings.TrimSpace(p.StartDate) == "" {
		return nil, ErrMissingDates
	}
	start, err := utils.ParseDateBR(p.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	end := start
	if p.SelectionType == SelectionPeriod {
		if strings.TrimSpace(p.EndDate) == "" {
			return nil, ErrMissingDates
		}
		end, err = utils.ParseDateBR(p.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		if end.Before(start) {
			return nil, ErrEndBeforeStart
		}
	}

	holidayMap := holidays.ForPeriod(start, end, uf)

	// Single-date mode gates holidays and weekends behind an explicit
	// confirmation; a declined date leaves no trace.
	if p.SelectionType == SelectionSingle && !p.Confirm {
		if reason, nonWorkable := nonWorkableReason(start, holidayMap); nonWorkable {
			return nil, &ConfirmationRequiredError{Reason: reason}
		}
	}

	ledger := &Ledger{
		ID:            utils.GenerateSessionID(),
		SelectionType: p.SelectionType,
		State:         uf,
		Holidays:      holidayMap,
		Exceptions:    []models.Exception{},
		CreatedAt:     time.Now(),
	}
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		ledger.Days = append(ledger.Days, models.NewDay(date, holidayMap))
	}
	return ledger, nil
}

func nonWorkableReason(date time.Time, holidayMap map[string]string) (string, bool) {
	if name, ok := holidayMap[utils.FormatDateBR(date)]; ok {
		return "Feriado: " + name, true
	}
	if utils.IsWeekend(date) {
		return utils.WeekdayName(date) + " (Final de Semana)", true
	}
	return "", false
}

// Day returns a copy of the day at index.
func (l *Ledger) Day(index int) (*models.Day, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	day, err := l.dayLocked(index)
	if err != nil {
		return nil, err
	}
	return day.Clone(), nil
}

func (l *Ledger) dayLocked(index int) (*models.Day, error) {
	if index < 0 || index >= len(l.Days) {
		return nil, ErrDayIndex
	}
	return l.Days[index], nil
}

// AddInterval appends an empty interval row to the day at index.
func (l *Ledger) AddInterval(index int) (*models.Day, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	day, err := l.dayLocked(index)
	if err != nil {
		return nil, err
	}
	day.AddInterval()
	return day.Clone(), nil
}

// RemoveLastInterval removes the day's last interval row, holding the floor
// of two rows as a silent no-op.
func (l *Ledger) RemoveLastInterval(index int) (*models.Day, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	day, err := l.dayLocked(index)
	if err != nil {
		return nil, err
	}
	day.RemoveLastInterval()
	return day.Clone(), nil
}

// SetIntervalField writes the entry or exit of one interval and recomputes
// the day's total.
func (l *Ledger) SetIntervalField(index, pos int, field, value string) (*models.Day, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	day, err := l.dayLocked(index)
	if err != nil {
		return nil, err
	}
	if err := day.SetIntervalField(pos, field, value); err != nil {
		return nil, err
	}
	return day.Clone(), nil
}

// AddException registers a non-workable override for a date. At most one
// exception exists per date; duplicates are rejected and the set is left
// unchanged. Already-generated days are reclassified in place.
func (l *Ledger) AddException(date string, kind models.ExceptionKind) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	date = strings.TrimSpace(date)
	if date == "" {
		return ErrEmptyExceptionDate
	}
	if _, err := utils.ParseDateBR(date); err != nil {
		return ErrInvalidDate
	}
	if !kind.Valid() {
		return ErrInvalidExceptionKind
	}
	for _, exc := range l.Exceptions {
		if exc.Date == date {
			return ErrDuplicateException
		}
	}

	l.Exceptions = append(l.Exceptions, models.Exception{Date: date, Kind: kind})
	l.reclassifyLocked()
	return nil
}

// ExceptionList returns a copy of the current exception set.
func (l *Ledger) ExceptionList() []models.Exception {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Exception(nil), l.Exceptions...)
}

// RemoveException removes by position and reclassifies the day list.
func (l *Ledger) RemoveException(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if index < 0 || index >= len(l.Exceptions) {
		return ErrExceptionIndex
	}
	l.Exceptions = append(l.Exceptions[:index], l.Exceptions[index+1:]...)
	l.reclassifyLocked()
	return nil
}

func (l *Ledger) reclassifyLocked() {
	byDate := make(map[string]models.ExceptionKind, len(l.Exceptions))
	for _, exc := range l.Exceptions {
		byDate[exc.Date] = exc.Kind
	}
	for _, day := range l.Days {
		day.ExceptionKind = byDate[day.DateDisplay]
	}
}

// classify resolves the ignore reason for a day. The precedence is fixed:
// weekend, then holiday, then exception.
func classify(day *models.Day) *models.Reason {
	if day.IsWeekend {
		return &models.Reason{Kind: models.ReasonWeekend}
	}
	if day.IsHoliday {
		return &models.Reason{Kind: models.ReasonHoliday, Name: day.HolidayName}
	}
	if day.ExceptionKind != "" {
		return &models.Reason{Kind: models.ReasonException, Name: day.ExceptionKind.Label()}
	}
	return nil
}

// Analyze partitions the days into ignored and workable rows and rebuilds the
// report wholesale, replacing any previous one.
func (l *Ledger) Analyze() *models.Report {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.reclassifyLocked()

	report := &models.Report{Days: make([]*models.ReportRow, 0, len(l.Days))}
	summary := &report.Summary
	summary.TotalDays = len(l.Days)

	for i, day := range l.Days {
		if reason := classify(day); reason != nil {
			report.Days = append(report.Days, &models.ReportRow{
				DayIndex:    i,
				Date:        day.DateDisplay,
				DayOfWeek:   day.DayName,
				WorkedTime:  models.SentinelValue,
				ExportValue: models.SentinelValue,
				DayType:     reason.Label(),
				Reason:      reason,
				Status:      models.StatusIgnored,
				StatusLabel: "Ignorado (" + reason.Label() + ")",
				IsIgnored:   true,
			})
			summary.DaysIgnored++
			continue
		}

		report.Days = append(report.Days, &models.ReportRow{
			DayIndex:    i,
			Date:        day.DateDisplay,
			DayOfWeek:   day.DayName,
			WorkedTime:  utils.FormatTotalHours(day.TotalHours),
			ExportValue: utils.FormatExportHours(day.TotalHours),
			Hours:       day.TotalHours,
			Status:      string(day.Status),
			StatusLabel: models.StatusLabelFor(day.Status),
		})
		summary.WorkdaysAnalyzed++
		summary.TotalWorkedHours += day.TotalHours
	}

	summary.TotalWorkedDisplay = utils.FormatExportHours(summary.TotalWorkedHours) + "h"
	l.Report = report
	return report.Clone()
}

// SetStatus applies the reviewer's judgment to a report row and mirrors it on
// the live day so the two never diverge. Any workable status may reach any
// other; ignored rows are left untouched.
func (l *Ledger) SetStatus(rowIndex int, status models.DayStatus) (*models.ReportRow, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.Report == nil {
		return nil, ErrNoReport
	}
	if rowIndex < 0 || rowIndex >= len(l.Report.Days) {
		return nil, ErrRowIndex
	}
	row := l.Report.Days[rowIndex]
	if row.IsIgnored {
		return row.Clone(), nil
	}

	switch status {
	case models.StatusPending, models.StatusOK, models.StatusDivergent:
	default:
		return nil, ErrInvalidStatus
	}

	if row.DayIndex >= 0 && row.DayIndex < len(l.Days) {
		l.Days[row.DayIndex].Status = status
	}
	row.Status = string(status)
	row.StatusLabel = models.StatusLabelFor(status)
	return row.Clone(), nil
}
