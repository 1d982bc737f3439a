package handlers

import (
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/bot/rolewatch"
)

type fakeEditor struct {
	edited  []string
	failFor string
}

func (f *fakeEditor) ChannelMessageEditEmbed(channelId, messageId string, embed *discordgo.MessageEmbed) (*discordgo.Message, error) {
	if messageId == f.failFor {
		return nil, errors.New("unknown message")
	}
	f.edited = append(f.edited, messageId)
	return &discordgo.Message{ID: messageId}, nil
}

type fakeDirectory struct{}

func (fakeDirectory) RoleName(guildId, roleId string) (string, error) {
	return "Tanks", nil
}

func (fakeDirectory) RoleMembers(guildId, roleId string) ([]string, error) {
	return []string{"U1"}, nil
}

func TestRefreshRoleLists_EditsEveryAffectedList(t *testing.T) {
	watches := rolewatch.NewStore()
	watches.Put(&rolewatch.Descriptor{GuildId: "guild-1", ChannelId: "c1", MessageId: "m1", RoleIds: []string{"role-1"}})
	watches.Put(&rolewatch.Descriptor{GuildId: "guild-1", ChannelId: "c1", MessageId: "m2", RoleIds: []string{"role-1", "role-2"}})
	watches.Put(&rolewatch.Descriptor{GuildId: "guild-1", ChannelId: "c1", MessageId: "m3", RoleIds: []string{"role-2"}})

	editor := &fakeEditor{}
	refreshRoleLists(editor, fakeDirectory{}, watches, "guild-1", "role-1")

	assert.ElementsMatch(t, []string{"m1", "m2"}, editor.edited)
}

func TestRefreshRoleLists_FailedEditDoesNotStopOthers(t *testing.T) {
	watches := rolewatch.NewStore()
	watches.Put(&rolewatch.Descriptor{GuildId: "guild-1", ChannelId: "c1", MessageId: "m1", RoleIds: []string{"role-1"}})
	watches.Put(&rolewatch.Descriptor{GuildId: "guild-1", ChannelId: "c1", MessageId: "m2", RoleIds: []string{"role-1"}})

	// m1's message is gone; the other list must still be refreshed.
	editor := &fakeEditor{failFor: "m1"}
	refreshRoleLists(editor, fakeDirectory{}, watches, "guild-1", "role-1")

	require.Len(t, editor.edited, 1)
	assert.Equal(t, "m2", editor.edited[0])
}

func TestRefreshRoleLists_NoAffectedLists(t *testing.T) {
	watches := rolewatch.NewStore()
	watches.Put(&rolewatch.Descriptor{GuildId: "guild-1", ChannelId: "c1", MessageId: "m1", RoleIds: []string{"role-1"}})

	editor := &fakeEditor{}
	refreshRoleLists(editor, fakeDirectory{}, watches, "guild-1", "role-9")

	assert.Empty(t, editor.edited)
}
