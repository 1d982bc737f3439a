package rolewatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptor_Tracks(t *testing.T) {
	d := &Descriptor{RoleIds: []string{"role-1", "role-2"}}

	assert.True(t, d.Tracks("role-1"))
	assert.True(t, d.Tracks("role-2"))
	assert.False(t, d.Tracks("role-3"))
}

func TestAffected_FiltersByGuildAndRole(t *testing.T) {
	st := NewStore()
	st.Put(&Descriptor{GuildId: "guild-1", MessageId: "m1", RoleIds: []string{"role-1"}})
	st.Put(&Descriptor{GuildId: "guild-1", MessageId: "m2", RoleIds: []string{"role-2", "role-1"}})
	st.Put(&Descriptor{GuildId: "guild-1", MessageId: "m3", RoleIds: []string{"role-3"}})
	st.Put(&Descriptor{GuildId: "guild-2", MessageId: "m4", RoleIds: []string{"role-1"}})

	affected := st.Affected("guild-1", "role-1")

	require.Len(t, affected, 2, "both lists tracking the role must be refreshed")
	messageIds := []string{affected[0].MessageId, affected[1].MessageId}
	assert.ElementsMatch(t, []string{"m1", "m2"}, messageIds)
}

func TestAffected_UnwatchedRole(t *testing.T) {
	st := NewStore()
	st.Put(&Descriptor{GuildId: "guild-1", MessageId: "m1", RoleIds: []string{"role-1"}})

	assert.Empty(t, st.Affected("guild-1", "role-9"))
	assert.Empty(t, st.Affected("guild-9", "role-1"))
}

func TestPut_CopiesRoleIds(t *testing.T) {
	st := NewStore()
	roleIds := []string{"role-1"}
	st.Put(&Descriptor{GuildId: "guild-1", MessageId: "m1", RoleIds: roleIds})

	roleIds[0] = "tampered"

	affected := st.Affected("guild-1", "role-1")
	require.Len(t, affected, 1)
	assert.Equal(t, []string{"role-1"}, affected[0].RoleIds)
}

func TestAffected_ReturnsCopies(t *testing.T) {
	st := NewStore()
	st.Put(&Descriptor{GuildId: "guild-1", MessageId: "m1", RoleIds: []string{"role-1", "role-2"}})

	affected := st.Affected("guild-1", "role-1")
	require.Len(t, affected, 1)
	affected[0].RoleIds[0] = "tampered"

	fresh := st.Affected("guild-1", "role-1")
	require.Len(t, fresh, 1)
	assert.Equal(t, []string{"role-1", "role-2"}, fresh[0].RoleIds)
}

func TestPut_DeclaredRoleOrderPreserved(t *testing.T) {
	st := NewStore()
	st.Put(&Descriptor{GuildId: "guild-1", MessageId: "m1", RoleIds: []string{"c", "a", "b"}})

	affected := st.Affected("guild-1", "a")
	require.Len(t, affected, 1)
	assert.Equal(t, []string{"c", "a", "b"}, affected[0].RoleIds)
}
