// Package holidays computes the Brazilian holiday calendar: fixed national
// dates, the movable feasts derived from the Gregorian Easter, and one table
// of state holidays per federative unit.
package holidays

import (
	"time"

	"github.com/Wisley56/Apontamento-de-Horas/utils"
)

// DefaultState is the fallback when an unknown UF is requested.
const DefaultState = "SP"

// StateNames maps every federative unit to its display name. It backs both
// UF validation and the states seed in db/migrate.go.
var StateNames = map[string]string{
	"AC": "Acre", "AL": "Alagoas", "AP": "Amapá", "AM": "Amazonas",
	"BA": "Bahia", "CE": "Ceará", "DF": "Distrito Federal", "ES": "Espírito Santo",
	"GO": "Goiás", "MA": "Maranhão", "MT": "Mato Grosso", "MS": "Mato Grosso do Sul",
	"MG": "Minas Gerais", "PA": "Pará", "PB": "Paraíba", "PR": "Paraná",
	"PE": "Pernambuco", "PI": "Piauí", "RJ": "Rio de Janeiro", "RN": "Rio Grande do Norte",
	"RS": "Rio Grande do Sul", "RO": "Rondônia", "RR": "Roraima", "SC": "Santa Catarina",
	"SP": "São Paulo", "SE": "Sergipe", "TO": "Tocantins",
}

// IsValidUF reports whether the code names a federative unit.
func IsValidUF(uf string) bool {
	_, ok := StateNames[uf]
	return ok
}

type fixedHoliday struct {
	Day   int
	Month time.Month
	Name  string
}

var national = []fixedHoliday{
	{1, time.January, "Confraternização Universal"},
	{21, time.April, "Tiradentes"},
	{1, time.May, "Dia do Trabalhador"},
	{7, time.September, "Independência do Brasil"},
	{12, time.October, "Nossa Senhora Aparecida"},
	{2, time.November, "Finados"},
	{15, time.November, "Proclamação da República"},
	{25, time.December, "Natal"},
}

var stateHolidays = map[string][]fixedHoliday{
	"AC": {{23, time.January, "Dia do Evangélico"}, {15, time.June, "Aniversário do Acre"}},
	"AL": {{24, time.June, "São João"}, {16, time.September, "Emancipação Política de Alagoas"}},
	"AP": {{19, time.March, "Dia de São José"}, {13, time.September, "Criação do Território Federal"}},
	"AM": {{5, time.September, "Elevação do Amazonas à Categoria de Província"}},
	"BA": {{2, time.July, "Independência da Bahia"}},
	"CE": {{25, time.March, "Data Magna do Ceará"}},
	"DF": {{21, time.April, "Fundação de Brasília"}, {30, time.November, "Dia do Evangélico"}},
	"ES": {{23, time.May, "Colonização do Solo Espírito-Santense"}},
	"GO": {{26, time.July, "Fundação da Cidade de Goiás"}},
	"MA": {{28, time.July, "Adesão do Maranhão à Independência do Brasil"}},
	"MT": {{20, time.November, "Consciência Negra"}},
	"MS": {{11, time.October, "Criação do Estado"}},
	"MG": {{21, time.April, "Data Magna de Minas Gerais"}},
	"PA": {{15, time.August, "Adesão do Grão-Pará à Independência do Brasil"}},
	"PB": {{5, time.August, "Fundação do Estado da Paraíba"}},
	"PR": {{19, time.December, "Emancipação do Paraná"}},
	"PE": {{6, time.March, "Revolução Pernambucana"}},
	"PI": {{19, time.October, "Dia do Piauí"}},
	"RJ": {{23, time.April, "Dia de São Jorge"}, {20, time.November, "Consciência Negra"}},
	"RN": {{3, time.October, "Mártires de Cunhaú e Uruaçu"}},
	"RS": {{20, time.September, "Revolução Farroupilha"}},
	"RO": {{4, time.January, "Criação do Estado de Rondônia"}},
	"RR": {{5, time.October, "Criação do Estado de Roraima"}},
	"SC": {{11, time.August, "Criação da Capitania de Santa Catarina"}},
	"SP": {{9, time.July, "Revolução Constitucionalista"}},
	"SE": {{8, time.July, "Emancipação Política de Sergipe"}},
	"TO": {{8, time.September, "Nossa Senhora da Natividade"}, {5, time.October, "Criação do Estado do Tocantins"}},
}

// Easter returns the Gregorian Easter Sunday (Meeus/Jones/Butcher algorithm).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// ForYear returns every holiday of a year for a state, keyed dd/mm/yyyy.
// Unknown UFs fall back to São Paulo, mirroring the original behavior.
func ForYear(year int, uf string) map[string]string {
	if !IsValidUF(uf) {
		uf = DefaultState
	}

	result := make(map[string]string)
	add := func(t time.Time, name string) {
		result[utils.FormatDateBR(t)] = name
	}

	for _, h := range national {
		add(time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC), h.Name)
	}
	// National since Lei 14.759/2023
	if year >= 2024 {
		add(time.Date(year, time.November, 20, 0, 0, 0, 0, time.UTC), "Dia Nacional de Zumbi e da Consciência Negra")
	}

	easter := Easter(year)
	add(easter.AddDate(0, 0, -47), "Carnaval")
	add(easter.AddDate(0, 0, -2), "Sexta-feira Santa")
	add(easter.AddDate(0, 0, 60), "Corpus Christi")

	for _, h := range stateHolidays[uf] {
		add(time.Date(year, h.Month, h.Day, 0, 0, 0, 0, time.UTC), h.Name)
	}

	return result
}

// ForPeriod returns the holidays falling inside [start, end] inclusive.
func ForPeriod(start, end time.Time, uf string) map[string]string {
	result := make(map[string]string)
	for year := start.Year(); year <= end.Year(); year++ {
		for date, name := range ForYear(year, uf) {
			t, err := utils.ParseDateBR(date)
			if err != nil {
				continue
			}
			if !t.Before(start) && !t.After(end) {
				result[date] = name
			}
		}
	}
	return result
}
