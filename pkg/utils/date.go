package utils

import (
	"math"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// StartOfDay zera o horário mantendo o fuso da data
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// CivilDate retorna a meia-noite do dia em que o instante cai no fuso informado
func CivilDate(date time.Time, location *time.Location) time.Time {
	return StartOfDay(date.In(location))
}

// DaysBetween retorna a diferença em dias inteiros entre as datas (to - from), ignorando o horário.
// As duas pontas são lidas no mesmo fuso. O arredondamento absorve a hora a mais ou a menos
// das trocas de horário de verão.
func DaysBetween(from, to time.Time, location *time.Location) int {
	from = CivilDate(from, location)
	to = CivilDate(to, location)

	return int(math.Round(to.Sub(from).Hours() / 24))
}

func GetFirstDayOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// MonthKey formata o mês no padrão yyyy-mm usado nas séries
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}
