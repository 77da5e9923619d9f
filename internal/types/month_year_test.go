package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthYear_Valid(t *testing.T) {
	m, err := ParseMonthYear("Marzo 2020")
	require.NoError(t, err)
	assert.Equal(t, MonthYear{Month: 2, Year: 2020}, m)
	assert.Equal(t, "Marzo 2020", m.String())
}

func TestParseMonthYear_CaseInsensitive(t *testing.T) {
	m, err := ParseMonthYear("  diciembre   1999 ")
	require.NoError(t, err)
	assert.Equal(t, 11, m.Month)
	assert.Equal(t, 1999, m.Year)
	assert.Equal(t, "Diciembre 1999", m.String())
}

func TestParseMonthYear_Invalid(t *testing.T) {
	for _, token := range []string{"", "Marzo", "March 2020", "Marzo veinte", "Marzo 2020 extra", "Enero -1"} {
		_, err := ParseMonthYear(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestCanonicalMonthYear(t *testing.T) {
	assert.Equal(t, "Marzo 2020", CanonicalMonthYear("marzo 2020"))
	assert.Equal(t, "Septiembre 2019", CanonicalMonthYear("  SEPTIEMBRE 2019 "))
	assert.Equal(t, "", CanonicalMonthYear("   "))
	assert.Equal(t, "13/2020", CanonicalMonthYear(" 13/2020"))
}

func TestMonthYear_Compare(t *testing.T) {
	mar2020 := MonthYear{Month: 2, Year: 2020}
	jan2019 := MonthYear{Month: 0, Year: 2019}
	dec2020 := MonthYear{Month: 11, Year: 2020}

	assert.True(t, jan2019.Before(mar2020))
	assert.True(t, dec2020.After(mar2020))
	assert.Equal(t, 0, mar2020.Compare(MonthYear{Month: 2, Year: 2020}))
	assert.False(t, mar2020.Before(mar2020))
}

func TestMonthYear_Time(t *testing.T) {
	m := MonthYear{Month: 1, Year: 2024}
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), m.Time(time.UTC))
	assert.Equal(t, m, MonthYearOf(time.Date(2024, time.February, 29, 23, 0, 0, 0, time.UTC)))
}
