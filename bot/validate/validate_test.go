package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTime(t *testing.T) {
	valid := []string{"00:00", "9:30", "09:30", "20:00", "23:59"}
	for _, s := range valid {
		assert.Truef(t, Time(s), "%q should be a valid time", s)
	}

	invalid := []string{"24:00", "12:60", "12", "12:5", "1200", "ab:cd", ""}
	for _, s := range invalid {
		assert.Falsef(t, Time(s), "%q should be rejected", s)
	}
}

func TestDate(t *testing.T) {
	valid := []string{"01/01/2025", "13/10/2025", "31/12/1999"}
	for _, s := range valid {
		assert.Truef(t, Date(s), "%q should be a valid date", s)
	}

	// Day and month ranges only; 31/02 is syntactically fine.
	assert.True(t, Date("31/02/2025"))

	invalid := []string{"32/01/2025", "00/01/2025", "01/13/2025", "01/00/2025", "1/1/2025", "2025/01/01", ""}
	for _, s := range invalid {
		assert.Falsef(t, Date(s), "%q should be rejected", s)
	}
}

func TestColor(t *testing.T) {
	valid := []string{"#fff", "#FFF", "#0099ff", "#FF0000", "#AbCdEf"}
	for _, s := range valid {
		assert.Truef(t, Color(s), "%q should be a valid color", s)
	}

	invalid := []string{"0099ff", "#0099f", "#0099ffa", "#ggg", "#ffff", ""}
	for _, s := range invalid {
		assert.Falsef(t, Color(s), "%q should be rejected", s)
	}
}

func TestDateOrder(t *testing.T) {
	assert.True(t, DateOrder("13/10/2025", "13/10/2025"))
	assert.True(t, DateOrder("13/10/2025", "14/10/2025"))
	assert.True(t, DateOrder("31/12/2024", "01/01/2025"))

	assert.False(t, DateOrder("14/10/2025", "13/10/2025"))
	assert.False(t, DateOrder("01/01/2026", "31/12/2025"))
}

func TestParseDate_RollsOverLooseDays(t *testing.T) {
	// 31/02 passed the syntax check, so ordering treats it as early March.
	d := ParseDate("31/02/2025")
	assert.Equal(t, "2025-03-03", d.Format("2006-01-02"))
}
