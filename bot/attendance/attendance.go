package attendance

import "sync"

// Reaction emojis recognized on event messages.
const (
	EmojiAccept    = "✅"
	EmojiDecline   = "❌"
	EmojiTentative = "❕"
)

type ReactionKind int

const (
	KindOther ReactionKind = iota
	KindAccept
	KindDecline
	KindTentative
)

// KindFromEmoji maps an emoji name to a reaction kind. Anything that is not
// one of the three tracked emojis maps to KindOther.
func KindFromEmoji(name string) ReactionKind {
	switch name {
	case EmojiAccept:
		return KindAccept
	case EmojiDecline:
		return KindDecline
	case EmojiTentative:
		return KindTentative
	default:
		return KindOther
	}
}

type Key struct {
	GuildId   string
	MessageId string
}

// Record holds one event and its attendance. The three membership slices are
// pairwise disjoint and keep users in the order they reacted.
type Record struct {
	GuildId          string
	ChannelId        string
	MessageId        string
	Title            string
	Description      string
	StartTime        string
	EndTime          string
	StartDate        string
	EndDate          string
	NotificationTime int // minutes before start, 0 = none
	Color            int
	Notified         bool

	Accepted  []string
	Declined  []string
	Tentative []string
}

func (r *Record) clone() *Record {
	c := *r
	c.Accepted = append([]string(nil), r.Accepted...)
	c.Declined = append([]string(nil), r.Declined...)
	c.Tentative = append([]string(nil), r.Tentative...)
	return &c
}

func remove(ids []string, userId string) []string {
	for i, id := range ids {
		if id == userId {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

// Store tracks events by (guild, message). Handlers for different messages
// may run concurrently, so every access takes the lock.
type Store struct {
	mu      sync.Mutex
	records map[Key]*Record
}

func NewStore() *Store {
	return &Store{records: make(map[Key]*Record)}
}

func (st *Store) Put(r *Record) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.records[Key{GuildId: r.GuildId, MessageId: r.MessageId}] = r.clone()
}

func (st *Store) Get(guildId, messageId string) (*Record, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	r, ok := st.records[Key{GuildId: guildId, MessageId: messageId}]
	if !ok {
		return nil, false
	}
	return r.clone(), true
}

func (st *Store) Delete(guildId, messageId string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.records, Key{GuildId: guildId, MessageId: messageId})
}

// Apply folds one reaction change into the record for the given message. The
// user is first removed from all three lists, then re-added to the matching
// list when a tracked emoji was added. A change to an untracked emoji still
// clears the user from all lists. Returns a copy of the updated record, or
// ok=false when the message is not a tracked event.
func (st *Store) Apply(guildId, messageId, userId string, kind ReactionKind, added bool) (*Record, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	r, ok := st.records[Key{GuildId: guildId, MessageId: messageId}]
	if !ok {
		return nil, false
	}

	r.Accepted = remove(r.Accepted, userId)
	r.Declined = remove(r.Declined, userId)
	r.Tentative = remove(r.Tentative, userId)

	if added {
		switch kind {
		case KindAccept:
			r.Accepted = append(r.Accepted, userId)
		case KindDecline:
			r.Declined = append(r.Declined, userId)
		case KindTentative:
			r.Tentative = append(r.Tentative, userId)
		}
	}

	return r.clone(), true
}

// MarkNotified flips the reminder flag so a reminder fires at most once.
// Returns false if the record no longer exists or was already notified.
func (st *Store) MarkNotified(guildId, messageId string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	r, ok := st.records[Key{GuildId: guildId, MessageId: messageId}]
	if !ok || r.Notified {
		return false
	}
	r.Notified = true
	return true
}

// All returns copies of every record, for the reminder sweep.
func (st *Store) All() []*Record {
	st.mu.Lock()
	defer st.mu.Unlock()

	records := make([]*Record, 0, len(st.records))
	for _, r := range st.records {
		records = append(records, r.clone())
	}
	return records
}
