package rolewatch

import "sync"

// Descriptor ties a posted role-list message to the roles it displays. Role
// order is the order given at creation and drives rendering order.
// Descriptors are read-only after creation; membership is fetched live on
// every render, never cached here.
type Descriptor struct {
	GuildId   string
	ChannelId string
	MessageId string
	Title     string
	RoleIds   []string
	Color     int
}

// Tracks reports whether the descriptor displays the given role.
func (d *Descriptor) Tracks(roleId string) bool {
	for _, id := range d.RoleIds {
		if id == roleId {
			return true
		}
	}
	return false
}

type key struct {
	guildId   string
	messageId string
}

// Store holds every posted role list for the lifetime of the process. There
// is no deletion path; a descriptor whose message was removed is skipped at
// update time.
type Store struct {
	mu          sync.Mutex
	descriptors map[key]*Descriptor
}

func NewStore() *Store {
	return &Store{descriptors: make(map[key]*Descriptor)}
}

func (st *Store) Put(d *Descriptor) {
	st.mu.Lock()
	defer st.mu.Unlock()

	c := *d
	c.RoleIds = append([]string(nil), d.RoleIds...)
	st.descriptors[key{guildId: d.GuildId, messageId: d.MessageId}] = &c
}

// Affected returns the descriptors in the guild that display the given role,
// one per role-list message that needs a re-render. Order is unspecified.
func (st *Store) Affected(guildId, roleId string) []*Descriptor {
	st.mu.Lock()
	defer st.mu.Unlock()

	var affected []*Descriptor
	for _, d := range st.descriptors {
		if d.GuildId != guildId {
			continue
		}
		if d.Tracks(roleId) {
			c := *d
			c.RoleIds = append([]string(nil), d.RoleIds...)
			affected = append(affected, &c)
		}
	}
	return affected
}
