package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "mesmo dia com horários diferentes",
			from:     time.Date(2024, 3, 10, 23, 59, 0, 0, loc),
			to:       time.Date(2024, 3, 10, 0, 1, 0, 0, loc),
			expected: 0,
		},
		{
			name:     "um dia depois mesmo com menos de 24h",
			from:     time.Date(2024, 3, 10, 22, 0, 0, 0, loc),
			to:       time.Date(2024, 3, 11, 1, 0, 0, 0, loc),
			expected: 1,
		},
		{
			name:     "data anterior é negativa",
			from:     time.Date(2024, 3, 10, 0, 0, 0, 0, loc),
			to:       time.Date(2024, 3, 5, 12, 0, 0, 0, loc),
			expected: -5,
		},
		{
			name:     "virada de mês",
			from:     time.Date(2024, 1, 31, 0, 0, 0, 0, loc),
			to:       time.Date(2024, 3, 1, 0, 0, 0, 0, loc),
			expected: 30,
		},
		{
			name:     "fim em UTC que ainda é o mesmo dia no fuso de referência",
			from:     time.Date(2024, 3, 10, 22, 0, 0, 0, loc),
			to:       time.Date(2024, 3, 11, 0, 30, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "início em UTC que ainda é o dia anterior no fuso de referência",
			from:     time.Date(2024, 3, 11, 0, 30, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 11, 8, 0, 0, 0, loc),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysBetween(tt.from, tt.to, loc))
		})
	}
}

func TestDaysBetweenIgnoresArgumentZones(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	from := time.Date(2024, 3, 10, 20, 0, 0, 0, loc)
	to := time.Date(2024, 3, 11, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysBetween(from, to, loc))
	assert.Equal(t, 0, DaysBetween(to, from, loc))
	assert.Equal(t, 1, DaysBetween(from, to, time.UTC))
}

func TestCivilDate(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	date := CivilDate(time.Date(2024, 5, 11, 2, 0, 0, 0, time.UTC), loc)

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, loc), date)
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-05-17")
	assert.NoError(t, err)
	assert.Equal(t, 17, date.Day())

	empty, err := ParseDate("")
	assert.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("17/05/2024")
	assert.Error(t, err)
}
