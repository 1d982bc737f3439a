package events

import (
	"log"

	"github.com/bwmarrin/discordgo"

	"rollcall/bot/attendance"
	"rollcall/bot/render"
	"rollcall/utils"
)

func ReactionAddEventHandler(events *attendance.Store) func(s *discordgo.Session, e *discordgo.MessageReactionAdd) {
	return func(s *discordgo.Session, e *discordgo.MessageReactionAdd) {
		handleReactionChange(s, events, e.MessageReaction, true)
	}
}

func ReactionRemoveEventHandler(events *attendance.Store) func(s *discordgo.Session, e *discordgo.MessageReactionRemove) {
	return func(s *discordgo.Session, e *discordgo.MessageReactionRemove) {
		handleReactionChange(s, events, e.MessageReaction, false)
	}
}

// handleReactionChange folds one reaction change into the attendance store
// and re-renders the event message. Reactions on untracked messages and the
// bot's own seed reactions are ignored. If the edit fails the store keeps
// the applied change; the next reaction re-renders from it.
func handleReactionChange(s *discordgo.Session, events *attendance.Store, r *discordgo.MessageReaction, added bool) {
	if r.UserID == s.State.User.ID {
		return
	}

	kind := attendance.KindFromEmoji(r.Emoji.Name)

	record, ok := events.Apply(r.GuildID, r.MessageID, r.UserID, kind, added)
	if !ok {
		return // Not an event message
	}

	embed := render.EventEmbed(record, &render.SessionFetcher{Session: s})

	_, err := s.ChannelMessageEditEmbed(r.ChannelID, r.MessageID, embed)
	if err != nil {
		log.Printf("Error updating event %v: %v", utils.MessageURL(r.GuildID, r.ChannelID, r.MessageID), err)
	}
}

// MessageDeleteEventHandler drops the attendance record when its message is
// deleted by any means, not only through the delete button. Role-list
// descriptors are intentionally left in place; stale ones are skipped at
// update time.
func MessageDeleteEventHandler(events *attendance.Store) func(s *discordgo.Session, e *discordgo.MessageDelete) {
	return func(s *discordgo.Session, e *discordgo.MessageDelete) {
		events.Delete(e.GuildID, e.ID)
	}
}
