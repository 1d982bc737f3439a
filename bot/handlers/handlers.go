package handlers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"gorm.io/gorm"

	"rollcall/bot/attendance"
	"rollcall/bot/models"
	"rollcall/bot/render"
	"rollcall/bot/responses"
	"rollcall/bot/rolewatch"
	"rollcall/bot/validate"
	"rollcall/utils"
)

const defaultColor = "#0099ff"

func InteractionCreateHandler(db *gorm.DB, events *attendance.Store, watches *rolewatch.Store) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	var commandHandlers = map[string]CommandHandler{
		"event-create":     eventCreateCommandHandler(db, events),
		"role-list-create": roleListCreateCommandHandler(db, watches),
		"updaterole":       updateRoleCommandHandler(watches),
		"config":           configCommandHandler(db),
	}

	buttonHandler := eventButtonHandler(events)

	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			// If command handler exists
			if commandHandler, ok := commandHandlers[i.ApplicationCommandData().Name]; ok {
				// Call with session and interaction
				commandHandler(s, i)
			}
		case discordgo.InteractionMessageComponent:
			buttonHandler(s, i)
		}
	}
}

type CommandHandler = func(s *discordgo.Session, i *discordgo.InteractionCreate)

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}

// guildDefaults returns the stored guild config, or a zero config when the
// guild is unconfigured or the lookup fails.
func guildDefaults(db *gorm.DB, guildId string) models.GuildConfig {
	var guildConfig = models.GuildConfig{}

	result := db.Where(&models.GuildConfig{GuildId: guildId}).First(&guildConfig)

	if result.Error != nil {
		return models.GuildConfig{}
	}
	return guildConfig
}

func eventCreateCommandHandler(db *gorm.DB, events *attendance.Store) CommandHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		options := optionMap(i.ApplicationCommandData().Options)
		defaults := guildDefaults(db, i.GuildID)

		title := options["title"].StringValue()
		startTime := options["start-time"].StringValue()
		endTime := options["end-time"].StringValue()
		startDate := options["start-date"].StringValue()

		description := ""
		if option, ok := options["description"]; ok {
			description = option.StringValue()
		}

		endDate := startDate
		if option, ok := options["end-date"]; ok {
			endDate = option.StringValue()
		}

		notificationTime := 0
		if option, ok := options["notification-time"]; ok {
			notificationTime = int(option.IntValue())
		}

		channelId := i.ChannelID
		if defaults.EventsChannelId != "" {
			channelId = defaults.EventsChannelId
		}
		if option, ok := options["channel"]; ok {
			channelId = option.ChannelValue(s).ID
		}

		color := defaultColor
		if defaults.DefaultColor != "" {
			color = defaults.DefaultColor
		}
		if option, ok := options["color"]; ok {
			color = option.StringValue()
		}

		// Reject bad input before anything is stored or posted.
		if !validate.Time(startTime) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Invalid start time format! Use HH:MM (e.g., 20:00)"))
			return
		}
		if !validate.Time(endTime) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Invalid end time format! Use HH:MM (e.g., 22:00)"))
			return
		}
		if !validate.Date(startDate) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Invalid start date format! Use DD/MM/YYYY (e.g., 13/10/2025)"))
			return
		}
		if !validate.Date(endDate) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Invalid end date format! Use DD/MM/YYYY (e.g., 13/10/2025)"))
			return
		}
		if !validate.Color(color) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Invalid color format! Please use hex format (e.g., #ff0000)"))
			return
		}
		if !validate.DateOrder(startDate, endDate) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Start date cannot be after end date!"))
			return
		}

		record := &attendance.Record{
			GuildId:          i.GuildID,
			ChannelId:        channelId,
			Title:            title,
			Description:      description,
			StartTime:        startTime,
			EndTime:          endTime,
			StartDate:        startDate,
			EndDate:          endDate,
			NotificationTime: notificationTime,
			Color:            utils.ParseHexColor(color),
		}

		embed := render.EventEmbed(record, &render.SessionFetcher{Session: s})

		adminRow := discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					CustomID: fmt.Sprintf("event_edit_%d", time.Now().UnixMilli()),
					Label:    "Edit",
					Style:    discordgo.SecondaryButton,
					Emoji:    discordgo.ComponentEmoji{Name: "✏️"},
				},
				discordgo.Button{
					CustomID: fmt.Sprintf("event_delete_%d", time.Now().UnixMilli()),
					Label:    "Delete",
					Style:    discordgo.DangerButton,
					Emoji:    discordgo.ComponentEmoji{Name: "🗑️"},
				},
			},
		}

		message, err := s.ChannelMessageSendComplex(channelId, &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: []discordgo.MessageComponent{adminRow},
		})

		if err != nil {
			log.Printf("Error creating event in %v: %v", channelId, err)
			s.InteractionRespond(i.Interaction, responses.Ephemeral("There was an error creating the event. Please make sure I have permission to send messages and add reactions in the target channel."))
			return
		}

		for _, emoji := range []string{attendance.EmojiAccept, attendance.EmojiDecline, attendance.EmojiTentative} {
			if err := s.MessageReactionAdd(channelId, message.ID, emoji); err != nil {
				log.Printf("Could not add reaction %v to %v: %v", emoji, message.ID, err)
			}
		}

		record.MessageId = message.ID
		events.Put(record)

		s.InteractionRespond(i.Interaction, responses.Ephemeral(fmt.Sprintf("Event \"%s\" created successfully in <#%s>!", title, channelId)))
	}
}

func roleListCreateCommandHandler(db *gorm.DB, watches *rolewatch.Store) CommandHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		options := optionMap(i.ApplicationCommandData().Options)
		defaults := guildDefaults(db, i.GuildID)

		title := options["title"].StringValue()

		channelId := i.ChannelID
		if option, ok := options["channel"]; ok {
			channelId = option.ChannelValue(s).ID
		}

		color := defaultColor
		if defaults.DefaultColor != "" {
			color = defaults.DefaultColor
		}
		if option, ok := options["color"]; ok {
			color = option.StringValue()
		}

		var roleIds []string
		for n := 1; n <= 5; n++ {
			if option, ok := options[fmt.Sprintf("role%d", n)]; ok {
				roleIds = append(roleIds, option.RoleValue(s, i.GuildID).ID)
			}
		}

		if len(roleIds) == 0 {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("You must specify at least one role!"))
			return
		}

		if !validate.Color(color) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Invalid color format! Please use hex format (e.g., #ff0000)"))
			return
		}

		descriptor := &rolewatch.Descriptor{
			GuildId:   i.GuildID,
			ChannelId: channelId,
			Title:     title,
			RoleIds:   roleIds,
			Color:     utils.ParseHexColor(color),
		}

		embed := render.RoleListEmbed(descriptor, &render.SessionFetcher{Session: s})

		message, err := s.ChannelMessageSendEmbed(channelId, embed)

		if err != nil {
			log.Printf("Error creating role list embed in %v: %v", channelId, err)
			s.InteractionRespond(i.Interaction, responses.Ephemeral("There was an error creating the embed. Please make sure I have permission to send messages in the target channel."))
			return
		}

		descriptor.MessageId = message.ID
		watches.Put(descriptor)

		s.InteractionRespond(i.Interaction, responses.Ephemeral(fmt.Sprintf("Role list embed created successfully in <#%s>!", channelId)))
	}
}

func updateRoleCommandHandler(watches *rolewatch.Store) CommandHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		options := optionMap(i.ApplicationCommandData().Options)

		targetUser := options["user"].UserValue(s)
		role := options["role"].RoleValue(s, i.GuildID)

		if i.Member.Permissions&(discordgo.PermissionManageRoles|discordgo.PermissionAdministrator) == 0 {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("You do not have permission to manage roles!"))
			return
		}

		guild, err := s.State.Guild(i.GuildID)
		if err != nil {
			guild, err = s.Guild(i.GuildID)
			if err != nil {
				log.Printf("Could not fetch guild %v: %v", i.GuildID, err)
				s.InteractionRespond(i.Interaction, responses.GenericErrorResponse)
				return
			}
		}

		botMember, err := s.GuildMember(i.GuildID, s.State.User.ID)
		if err != nil {
			log.Printf("Could not fetch own member in %v: %v", i.GuildID, err)
			s.InteractionRespond(i.Interaction, responses.GenericErrorResponse)
			return
		}

		if !canManageRoles(guild.Roles, botMember) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("I do not have permission to manage roles!"))
			return
		}

		if role.Position >= highestRolePosition(guild.Roles, botMember) {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("I cannot manage this role as it is higher than or equal to my highest role!"))
			return
		}

		if role.Position >= highestRolePosition(guild.Roles, i.Member) && guild.OwnerID != i.Member.User.ID {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("You cannot manage this role as it is higher than or equal to your highest role!"))
			return
		}

		member, err := s.GuildMember(i.GuildID, targetUser.ID)
		if err != nil {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Could not find that user in this server!"))
			return
		}

		hadRole := false
		for _, id := range member.Roles {
			if id == role.ID {
				hadRole = true
				break
			}
		}

		if hadRole {
			err = s.GuildMemberRoleRemove(i.GuildID, targetUser.ID, role.ID)
		} else {
			err = s.GuildMemberRoleAdd(i.GuildID, targetUser.ID, role.ID)
		}

		if err != nil {
			log.Printf("Error managing role %v for %v: %v", role.ID, targetUser.ID, err)
			s.InteractionRespond(i.Interaction, responses.Ephemeral("There was an error managing the role. Please check my permissions and try again."))
			return
		}

		RefreshRoleLists(s, watches, i.GuildID, role.ID)

		if hadRole {
			s.InteractionRespond(i.Interaction, responses.Ephemeral(fmt.Sprintf("Successfully removed the **%s** role from <@%s>!", role.Name, targetUser.ID)))
		} else {
			s.InteractionRespond(i.Interaction, responses.Ephemeral(fmt.Sprintf("Successfully added the **%s** role to <@%s>!", role.Name, targetUser.ID)))
		}
	}
}

// RefreshRoleLists re-renders every role list in the guild that displays the
// changed role. A list whose message can no longer be edited is logged and
// skipped; the rest still update.
func RefreshRoleLists(s *discordgo.Session, watches *rolewatch.Store, guildId, roleId string) {
	refreshRoleLists(s, &render.SessionFetcher{Session: s}, watches, guildId, roleId)
}

type embedEditor interface {
	ChannelMessageEditEmbed(channelId, messageId string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

func refreshRoleLists(editor embedEditor, dir render.RoleDirectory, watches *rolewatch.Store, guildId, roleId string) {
	for _, descriptor := range watches.Affected(guildId, roleId) {
		embed := render.RoleListEmbed(descriptor, dir)

		_, err := editor.ChannelMessageEditEmbed(descriptor.ChannelId, descriptor.MessageId, embed)
		if err != nil {
			log.Printf("Error updating role list %v: %v", utils.MessageURL(descriptor.GuildId, descriptor.ChannelId, descriptor.MessageId), err)
		}
	}
}

// highestRolePosition is the position of the member's highest role, 0 when
// the member only has @everyone.
func highestRolePosition(roles []*discordgo.Role, member *discordgo.Member) int {
	highest := 0
	for _, role := range roles {
		for _, id := range member.Roles {
			if id == role.ID && role.Position > highest {
				highest = role.Position
			}
		}
	}
	return highest
}

func canManageRoles(roles []*discordgo.Role, member *discordgo.Member) bool {
	for _, role := range roles {
		for _, id := range member.Roles {
			if id == role.ID && role.Permissions&(discordgo.PermissionManageRoles|discordgo.PermissionAdministrator) != 0 {
				return true
			}
		}
	}
	return false
}

func eventButtonHandler(events *attendance.Store) CommandHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		customId := i.MessageComponentData().CustomID

		if !strings.HasPrefix(customId, "event_edit_") && !strings.HasPrefix(customId, "event_delete_") {
			return
		}

		if i.Member.Permissions&(discordgo.PermissionManageEvents|discordgo.PermissionAdministrator) == 0 {
			s.InteractionRespond(i.Interaction, responses.Ephemeral("You do not have permission to manage events!"))
			return
		}

		if strings.HasPrefix(customId, "event_delete_") {
			if err := s.ChannelMessageDelete(i.ChannelID, i.Message.ID); err != nil {
				log.Printf("Error deleting event message %v: %v", i.Message.ID, err)
				s.InteractionRespond(i.Interaction, responses.Ephemeral("Error deleting event!"))
				return
			}

			events.Delete(i.GuildID, i.Message.ID)
			s.InteractionRespond(i.Interaction, responses.Ephemeral("Event deleted successfully!"))
			return
		}

		s.InteractionRespond(i.Interaction, responses.Ephemeral("Event editing is not yet implemented. Please create a new event."))
	}
}

func configCommandHandler(db *gorm.DB) CommandHandler {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		options := i.ApplicationCommandData().Options

		switch options[0].Name {
		case "list":
			var config = models.GuildConfig{GuildId: i.GuildID}

			result := db.Where(&config).FirstOrCreate(&config)

			switch {
			case result.Error != nil:
				log.Print(result.Error)
				s.InteractionRespond(i.Interaction, responses.GenericErrorResponse)

			default:
				s.InteractionRespond(i.Interaction, responses.Ephemeral(fmt.Sprintf("Configuration for %s:\n\nDefault color: %s\nEvents channel: %s", i.GuildID, config.DefaultColor, config.EventsChannelId)))
			}
		case "set":
			var newGuildConfig = models.GuildConfig{GuildId: i.GuildID}

			subCommandOptions := options[0].Options
			subSubCommandOptionMap := optionMap(subCommandOptions[0].Options)

			switch subCommandOptions[0].Name {

			case "default_color":
				color := subSubCommandOptionMap["color"].StringValue()
				if !validate.Color(color) {
					s.InteractionRespond(i.Interaction, responses.Ephemeral("Invalid color format! Please use hex format (e.g., #ff0000)"))
					return
				}

				newGuildConfig.DefaultColor = color
			case "events_channel_id":
				newGuildConfig.EventsChannelId = subSubCommandOptionMap["channel"].ChannelValue(s).ID
			}

			result := db.Model(&models.GuildConfig{}).Where(&models.GuildConfig{GuildId: i.GuildID}).Updates(&newGuildConfig)

			switch {
			case result.Error != nil:
				log.Print(result.Error)
				s.InteractionRespond(i.Interaction, responses.GenericErrorResponse)

			default:
				s.InteractionRespond(i.Interaction, responses.Ephemeral("Successfully updated config!"))
			}

		}
	}
}
