package render

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"rollcall/bot/attendance"
	"rollcall/bot/rolewatch"
	"rollcall/utils"
)

// MemberNamer resolves a user to the name shown in attendance rosters.
type MemberNamer interface {
	MemberDisplayName(guildId, userId string) (string, error)
}

// RoleDirectory resolves roles and their current membership. Membership is
// always fetched live so role lists can never drift from the guild.
type RoleDirectory interface {
	RoleName(guildId, roleId string) (string, error)
	RoleMembers(guildId, roleId string) ([]string, error)
}

// EventEmbed builds the embed for an event message from its current
// attendance. A member that cannot be resolved is shown as a raw mention
// instead of failing the whole embed.
func EventEmbed(r *attendance.Record, names MemberNamer) *discordgo.MessageEmbed {
	var b strings.Builder

	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", r.Description)
	}

	b.WriteString("**Time**\n")
	if r.StartDate == r.EndDate {
		fmt.Fprintf(&b, "%s at %s - %s\n\n", r.StartDate, r.StartTime, r.EndTime)
	} else {
		fmt.Fprintf(&b, "%s at %s - %s at %s\n\n", r.StartDate, r.StartTime, r.EndDate, r.EndTime)
	}

	if r.NotificationTime > 0 {
		fmt.Fprintf(&b, "⏰ Notification: %s before event\n\n", utils.FormatLead(r.NotificationTime))
	}

	writeRoster(&b, fmt.Sprintf("%s **Accepted (%d)**", attendance.EmojiAccept, len(r.Accepted)), r.GuildId, r.Accepted, names)
	b.WriteString("\n")
	writeRoster(&b, fmt.Sprintf("%s **Declined (%d)**", attendance.EmojiDecline, len(r.Declined)), r.GuildId, r.Declined, names)
	b.WriteString("\n")
	writeRoster(&b, fmt.Sprintf("%s **Tentative (%d)**", attendance.EmojiTentative, len(r.Tentative)), r.GuildId, r.Tentative, names)

	return &discordgo.MessageEmbed{
		Title:       r.Title,
		Color:       r.Color,
		Description: b.String(),
	}
}

func writeRoster(b *strings.Builder, heading, guildId string, userIds []string, names MemberNamer) {
	fmt.Fprintf(b, "%s\n", heading)

	for _, userId := range userIds {
		name, err := names.MemberDisplayName(guildId, userId)
		if err != nil {
			fmt.Fprintf(b, "<@%s>\n", userId)
			continue
		}
		fmt.Fprintf(b, "%s\n", name)
	}
}

// RoleListEmbed builds the embed for a role-list message, fetching each
// role's membership live. A role that cannot be resolved is logged and
// skipped; the remaining roles still render.
func RoleListEmbed(d *rolewatch.Descriptor, dir RoleDirectory) *discordgo.MessageEmbed {
	var b strings.Builder

	for _, roleId := range d.RoleIds {
		name, err := dir.RoleName(d.GuildId, roleId)
		if err != nil {
			log.Printf("Could not resolve role %v in %v: %v", roleId, d.GuildId, err)
			continue
		}

		fmt.Fprintf(&b, "**%s**\n", name)

		members, err := dir.RoleMembers(d.GuildId, roleId)
		if err != nil {
			log.Printf("Could not fetch members of role %v in %v: %v", roleId, d.GuildId, err)
			members = nil
		}

		if len(members) > 0 {
			for _, userId := range members {
				fmt.Fprintf(&b, "<@%s>\n", userId)
			}
		} else {
			b.WriteString("*No members*\n")
		}
		b.WriteString("\n")
	}

	description := b.String()
	if description == "" {
		description = "No roles configured."
	}

	return &discordgo.MessageEmbed{
		Title:       d.Title,
		Color:       d.Color,
		Description: description,
	}
}
