package models

type ExceptionKind string

const (
	KindVacation       ExceptionKind = "ferias"
	KindMedicalLeave   ExceptionKind = "atestado"
	KindLeaveOfAbsence ExceptionKind = "afastamento"
	KindCompTimeBank   ExceptionKind = "banco"
	KindManualHoliday  ExceptionKind = "feriado_manual"
)

var exceptionLabels = map[ExceptionKind]string{
	KindVacation:       "Férias",
	KindMedicalLeave:   "Atestado",
	KindLeaveOfAbsence: "Afastamento",
	KindCompTimeBank:   "Banco de Horas",
	KindManualHoliday:  "Feriado Manual",
}

// Label returns the Portuguese display name of the kind.
func (k ExceptionKind) Label() string {
	if label, ok := exceptionLabels[k]; ok {
		return label
	}
	return string(k)
}

func (k ExceptionKind) Valid() bool {
	_, ok := exceptionLabels[k]
	return ok
}

// Exception is a user-declared override marking an otherwise workable date as
// excluded. At most one exception exists per date, regardless of kind.
type Exception struct {
	Date string        `json:"date"` // dd/mm/yyyy
	Kind ExceptionKind `json:"kind"`
}
