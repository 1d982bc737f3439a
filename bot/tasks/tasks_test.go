package tasks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rollcall/bot/attendance"
)

func TestStartMoment(t *testing.T) {
	record := &attendance.Record{
		StartDate: "13/10/2025",
		StartTime: "20:30",
	}

	assert.Equal(t,
		time.Date(2025, time.October, 13, 20, 30, 0, 0, time.UTC),
		startMoment(record))
}

func TestReminderCheck_SkipsUnconfiguredAndNotified(t *testing.T) {
	st := attendance.NewStore()
	st.Put(&attendance.Record{
		GuildId:   "guild-1",
		MessageId: "m1",
		StartDate: "13/10/2099",
		StartTime: "20:00",
		// No notification lead configured.
	})
	st.Put(&attendance.Record{
		GuildId:          "guild-1",
		MessageId:        "m2",
		StartDate:        "13/10/2099",
		StartTime:        "20:00",
		NotificationTime: 30,
		// Not due for decades.
	})

	// A nil session is fine here: no record reaches the send step.
	ReminderCheck(st, nil)()

	assert.True(t, st.MarkNotified("guild-1", "m2"), "far-future event must not have been marked notified")
}
