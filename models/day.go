package models

import (
	"fmt"
	"time"

	"github.com/Wisley56/Apontamento-de-Horas/utils"
)

type DayStatus string

const (
	StatusPending   DayStatus = "pending"
	StatusOK        DayStatus = "ok"
	StatusDivergent DayStatus = "divergent"
)

// StatusIgnored marks report rows for non-workable days. It is not a
// DayStatus: a Day never holds it, only materialized report rows do.
const StatusIgnored = "ignorado"

// MinIntervals is the floor of interval rows a day always keeps.
const MinIntervals = 2

// WorkInterval is one clock-in/clock-out pair, both in "HH:MM" or empty.
type WorkInterval struct {
	Entry string `json:"entry"`
	Exit  string `json:"exit"`
}

// Minutes returns the interval's contribution to the daily total. A pair only
// counts when both fields are set and exit is strictly after entry on the same
// nominal day; anything else (including overnight pairs) counts as zero.
func (w WorkInterval) Minutes() int {
	if w.Entry == "" || w.Exit == "" {
		return 0
	}
	start, err := utils.TimeToMinutes(w.Entry)
	if err != nil {
		return 0
	}
	end, err := utils.TimeToMinutes(w.Exit)
	if err != nil {
		return 0
	}
	if end <= start {
		return 0
	}
	return end - start
}

// Day is one calendar date of the ledger with its work intervals.
type Day struct {
	Date          time.Time      `json:"-"`
	DateISO       string         `json:"date"`
	DateDisplay   string         `json:"date_display"`
	DayName       string         `json:"day_name"`
	IsWeekend     bool           `json:"is_weekend"`
	IsHoliday     bool           `json:"is_holiday"`
	HolidayName   string         `json:"holiday_name,omitempty"`
	ExceptionKind ExceptionKind  `json:"exception_kind,omitempty"`
	Intervals     []WorkInterval `json:"intervals"`
	TotalHours    float64        `json:"total_hours"`
	Status        DayStatus      `json:"status"`
}

// NewDay builds a pending day for a calendar date, flagged against the
// supplied holiday map (dd/mm/yyyy keys).
func NewDay(date time.Time, holidays map[string]string) *Day {
	display := utils.FormatDateBR(date)
	day := &Day{
		Date:        date,
		DateISO:     date.Format(utils.ISODate),
		DateDisplay: display,
		DayName:     utils.WeekdayName(date),
		IsWeekend:   utils.IsWeekend(date),
		Intervals:   make([]WorkInterval, MinIntervals),
		Status:      StatusPending,
	}
	if name, ok := holidays[display]; ok {
		day.IsHoliday = true
		day.HolidayName = name
	}
	return day
}

// AddInterval appends one empty entry/exit pair.
func (d *Day) AddInterval() {
	d.Intervals = append(d.Intervals, WorkInterval{})
}

// RemoveLastInterval drops the last pair, but never below the floor of two
// rows. Below the floor it is a silent no-op.
func (d *Day) RemoveLastInterval() {
	if len(d.Intervals) <= MinIntervals {
		return
	}
	d.Intervals = d.Intervals[:len(d.Intervals)-1]
	d.RecomputeTotal()
}

// SetIntervalField mutates one side of an interval and recomputes the total.
func (d *Day) SetIntervalField(index int, field, value string) error {
	if index < 0 || index >= len(d.Intervals) {
		return fmt.Errorf("intervalo %d inexistente", index)
	}
	switch field {
	case "entry":
		d.Intervals[index].Entry = value
	case "exit":
		d.Intervals[index].Exit = value
	default:
		return fmt.Errorf("campo de intervalo inválido: %q", field)
	}
	d.RecomputeTotal()
	return nil
}

// RecomputeTotal derives TotalHours from the intervals. Runs after every
// interval mutation.
func (d *Day) RecomputeTotal() {
	total := 0
	for _, interval := range d.Intervals {
		total += interval.Minutes()
	}
	d.TotalHours = float64(total) / 60
}

// NonWorkable reports whether the day is excluded from hour totals.
func (d *Day) NonWorkable() bool {
	return d.IsWeekend || d.IsHoliday || d.ExceptionKind != ""
}

// Clone returns a detached copy that shares no mutable state with d.
func (d *Day) Clone() *Day {
	out := *d
	out.Intervals = append([]WorkInterval(nil), d.Intervals...)
	return &out
}
