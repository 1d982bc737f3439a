package render

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// SessionFetcher backs the render interfaces with a live discordgo session,
// preferring gateway state over REST where it is populated.
type SessionFetcher struct {
	Session *discordgo.Session
}

func (f *SessionFetcher) MemberDisplayName(guildId, userId string) (string, error) {
	member, err := f.Session.GuildMember(guildId, userId)
	if err != nil {
		return "", err
	}
	if member.Nick != "" {
		return member.Nick, nil
	}
	return member.User.Username, nil
}

func (f *SessionFetcher) RoleName(guildId, roleId string) (string, error) {
	if role, err := f.Session.State.Role(guildId, roleId); err == nil {
		return role.Name, nil
	}

	roles, err := f.Session.GuildRoles(guildId)
	if err != nil {
		return "", err
	}
	for _, role := range roles {
		if role.ID == roleId {
			return role.Name, nil
		}
	}
	return "", fmt.Errorf("role %s not found in guild %s", roleId, guildId)
}

func (f *SessionFetcher) RoleMembers(guildId, roleId string) ([]string, error) {
	members, err := f.guildMembers(guildId)
	if err != nil {
		return nil, err
	}

	var userIds []string
	for _, member := range members {
		for _, id := range member.Roles {
			if id == roleId {
				userIds = append(userIds, member.User.ID)
				break
			}
		}
	}
	return userIds, nil
}

func (f *SessionFetcher) guildMembers(guildId string) ([]*discordgo.Member, error) {
	if guild, err := f.Session.State.Guild(guildId); err == nil && len(guild.Members) > 0 {
		return guild.Members, nil
	}
	return f.Session.GuildMembers(guildId, "", 1000)
}
