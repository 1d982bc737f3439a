package responses

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestEphemeral(t *testing.T) {
	response := Ephemeral("only you can see this")

	assert.Equal(t, discordgo.InteractionResponseChannelMessageWithSource, response.Type)
	assert.Equal(t, "only you can see this", response.Data.Content)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, response.Data.Flags)
}

func TestGenericErrorResponseIsEphemeral(t *testing.T) {
	assert.Equal(t, discordgo.MessageFlagsEphemeral, GenericErrorResponse.Data.Flags)
}
