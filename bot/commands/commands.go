package commands

import "github.com/bwmarrin/discordgo"

var noDM = false
var configPermission int64 = discordgo.PermissionAdministrator
var Commands = []*discordgo.ApplicationCommand{
	&eventCreateCommand,
	&roleListCreateCommand,
	&updateRoleCommand,
	&configCommand,
}

var notificationMin float64 = 1
var notificationMax float64 = 10080 // one week

var eventCreateCommand = discordgo.ApplicationCommand{
	Name:         "event-create",
	Description:  "Create an event with reaction-based attendance",
	DMPermission: &noDM,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title",
			Description: "The title of the event",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "start-time",
			Description: "Start time (HH:MM format, e.g., 20:00)",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "end-time",
			Description: "End time (HH:MM format, e.g., 22:00)",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "start-date",
			Description: "Start date (DD/MM/YYYY format, e.g., 13/10/2025)",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "description",
			Description: "Event description",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "end-date",
			Description: "End date (DD/MM/YYYY format, e.g., 13/10/2025)",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "notification-time",
			Description: "Pre-event notification time in minutes",
			Required:    false,
			MinValue:    &notificationMin,
			MaxValue:    notificationMax,
		},
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Channel to send the event to",
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			Required:     false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "color",
			Description: "Embed color (hex code, e.g., #ff0000)",
			Required:    false,
		},
	},
}

var roleListCreateCommand = discordgo.ApplicationCommand{
	Name:         "role-list-create",
	Description:  "Create a role list embed",
	DMPermission: &noDM,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "title",
			Description: "The title of the embed",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role1",
			Description: "First role to add",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role2",
			Description: "Second role to add",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role3",
			Description: "Third role to add",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role4",
			Description: "Fourth role to add",
			Required:    false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role5",
			Description: "Fifth role to add",
			Required:    false,
		},
		{
			Type:         discordgo.ApplicationCommandOptionChannel,
			Name:         "channel",
			Description:  "Channel to send the embed to",
			ChannelTypes: []discordgo.ChannelType{discordgo.ChannelTypeGuildText},
			Required:     false,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "color",
			Description: "Embed color (hex code, e.g., #ff0000)",
			Required:    false,
		},
	},
}

var updateRoleCommand = discordgo.ApplicationCommand{
	Name:         "updaterole",
	Description:  "Toggle a role for a user and update all relevant embeds",
	DMPermission: &noDM,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to toggle the role for",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "role",
			Description: "The role to toggle",
			Required:    true,
		},
	},
}

var configCommand = discordgo.ApplicationCommand{
	Name:                     "config",
	Description:              "Various commands related to configuration",
	DMPermission:             &noDM,
	DefaultMemberPermissions: &configPermission,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "list",
			Description: "Lists available config options with their current values",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
			Name:        "set",
			Description: "Updates config with provided values",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "default_color",
					Description: "Set default embed color",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "color",
							Description: "New default color (hex code, e.g., #ff0000)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "events_channel_id",
					Description: "Set Events Channel ID",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionChannel,
							Name:        "channel",
							Description: "New events channel",
							Required:    true,
						},
					},
				},
			},
		},
	},
}
