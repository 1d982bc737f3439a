package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func MessageURL(guildId, channelId, messageId string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildId, channelId, messageId)
}

// ParseHexColor converts a validated "#RGB" or "#RRGGBB" string to the
// integer color Discord embeds expect.
func ParseHexColor(s string) int {
	s = strings.TrimPrefix(s, "#")

	if len(s) == 3 {
		expanded := make([]byte, 6)
		for i := 0; i < 3; i++ {
			expanded[2*i] = s[i]
			expanded[2*i+1] = s[i]
		}
		s = string(expanded)
	}

	color, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0
	}
	return int(color)
}

// FormatLead phrases a lead time in minutes the way event embeds show it,
// e.g. 90 -> "1 hour 30 minutes". Zero terms are omitted entirely.
func FormatLead(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	var parts []string
	if hours > 0 {
		if hours == 1 {
			parts = append(parts, "1 hour")
		} else {
			parts = append(parts, fmt.Sprintf("%d hours", hours))
		}
	}
	if mins > 0 {
		if mins == 1 {
			parts = append(parts, "1 minute")
		} else {
			parts = append(parts, fmt.Sprintf("%d minutes", mins))
		}
	}
	return strings.Join(parts, " ")
}
