package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Date layouts: ISODate for internal arithmetic, BRDate for everything that
// crosses the API boundary.
const (
	ISODate = "2006-01-02"
	BRDate  = "02/01/2006"
)

var weekdayNames = [7]string{"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado"}

// WeekdayName returns the Portuguese weekday name for a date.
func WeekdayName(t time.Time) string {
	return weekdayNames[int(t.Weekday())]
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// FormatDateBR converts a date to the dd/mm/yyyy wire format.
func FormatDateBR(t time.Time) string {
	return t.Format(BRDate)
}

// ParseDateBR parses a dd/mm/yyyy date.
func ParseDateBR(s string) (time.Time, error) {
	return time.Parse(BRDate, strings.TrimSpace(s))
}

// TimeToMinutes converts "HH:MM" to minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if hours < 0 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return hours*60 + minutes, nil
}

// FormatTotalHours renders decimal hours as HH:MM for the on-screen total.
// A zero total renders as the empty placeholder.
func FormatTotalHours(hours float64) string {
	if hours == 0 {
		return "--:--"
	}
	h := int(hours)
	m := int(math.Round((hours - float64(h)) * 60))
	// Rounding the residual can carry into a full hour
	if m >= 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FormatExportHours renders decimal hours with two decimal places for
// spreadsheet ingestion. Never use this for the on-screen HH:MM total.
func FormatExportHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', 2, 64)
}
