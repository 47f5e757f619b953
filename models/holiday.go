package models

import "gorm.io/gorm"

// Holiday is one computed holiday, cached per year and state so the calendar
// is only derived once per (year, UF) pair.
type Holiday struct {
	gorm.Model `json:"-"`
	Year       int    `json:"year" gorm:"index:idx_holiday_scope"`
	State      string `json:"state" gorm:"size:2;index:idx_holiday_scope"`
	Date       string `json:"date"` // dd/mm/yyyy
	Name       string `json:"name"`
}
