package responses

import "github.com/bwmarrin/discordgo"

var GenericErrorResponse = &discordgo.InteractionResponse{
	Type: discordgo.InteractionResponseChannelMessageWithSource,
	Data: &discordgo.InteractionResponseData{
		Content: "An unknown error occurred, please try again.",
		Flags:   discordgo.MessageFlagsEphemeral,
	},
}

// Ephemeral wraps a plain text reply that only the invoking user sees.
func Ephemeral(content string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
