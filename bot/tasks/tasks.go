package tasks

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"rollcall/bot/attendance"
	"rollcall/bot/validate"
)

// ReminderCheck sweeps the attendance store for events whose notification
// lead has elapsed and posts one reminder to the event's channel. Runs on a
// minute tick; MarkNotified keeps a reminder from firing twice.
func ReminderCheck(events *attendance.Store, s *discordgo.Session) func() {
	return func() {
		now := time.Now().UTC()

		for _, record := range events.All() {
			if record.NotificationTime == 0 || record.Notified {
				continue
			}

			start := startMoment(record)
			notifyAt := start.Add(-time.Duration(record.NotificationTime) * time.Minute)

			if now.Before(notifyAt) || now.After(start) {
				continue
			}

			if !events.MarkNotified(record.GuildId, record.MessageId) {
				continue
			}

			mentions := make([]string, len(record.Accepted))
			for i, userId := range record.Accepted {
				mentions[i] = fmt.Sprintf("<@%s>", userId)
			}

			content := fmt.Sprintf("⏰ Reminder: **%s** starts at %s!", record.Title, record.StartTime)
			if len(mentions) > 0 {
				content += " " + strings.Join(mentions, " ")
			}

			_, err := s.ChannelMessageSend(record.ChannelId, content)

			if err != nil {
				log.Printf("Could not send reminder for event %v: %v", record.MessageId, err)
			}
		}
	}
}

// startMoment combines the record's validated date and time strings into the
// event's start, in UTC.
func startMoment(record *attendance.Record) time.Time {
	day := validate.ParseDate(record.StartDate)

	parts := strings.Split(record.StartTime, ":")
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}
