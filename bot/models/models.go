package models

import "gorm.io/gorm"

type GuildConfig struct {
	gorm.Model
	GuildId         string
	DefaultColor    string
	EventsChannelId string
}
