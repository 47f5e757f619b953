package models

// State is one Brazilian federative unit, seeded at migration time.
type State struct {
	Code string `json:"code" gorm:"primaryKey;size:2"`
	Name string `json:"name"`
}
