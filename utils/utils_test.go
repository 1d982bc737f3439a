package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageURL(t *testing.T) {
	assert.Equal(t,
		"https://discord.com/channels/g1/c1/m1",
		MessageURL("g1", "c1", "m1"))
}

func TestParseHexColor(t *testing.T) {
	assert.Equal(t, 0x0099ff, ParseHexColor("#0099ff"))
	assert.Equal(t, 0xff0000, ParseHexColor("#FF0000"))
	assert.Equal(t, 0xffffff, ParseHexColor("#fff"))
	assert.Equal(t, 0xaabbcc, ParseHexColor("#abc"))
	assert.Equal(t, 0, ParseHexColor("#000"))
}

func TestFormatLead(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45 minutes"},
		{60, "1 hour"},
		{90, "1 hour 30 minutes"},
		{1, "1 minute"},
		{61, "1 hour 1 minute"},
		{120, "2 hours"},
		{150, "2 hours 30 minutes"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, FormatLead(tt.minutes), "%d minutes", tt.minutes)
	}
}
