// Package roster holds the entry screen's list state: an ordered, append-only
// list of entries plus one pending draft.
//
// State is the only writer of that data. Views read it through Entries/Draft
// and learn about changes through Subscribe; they never touch the slice.
package roster

import (
	"strings"

	"roster-cli/internal/model"
)

type ChangeKind int

const (
	ChangeDraft ChangeKind = iota
	ChangeCommit
)

// Change describes a mutation that has already been applied.
type Change struct {
	Kind ChangeKind
	// Len is the list length after the mutation.
	Len int
}

type State struct {
	entries []model.Entry
	draft   model.Entry

	subs   map[int]func(Change)
	nextID int
}

// New returns a state whose list starts as a copy of seed and whose draft is empty.
func New(seed []model.Entry) *State {
	entries := make([]model.Entry, len(seed))
	copy(entries, seed)
	return &State{entries: entries}
}

// NewSeeded is New(model.SeedEntries()).
func NewSeeded() *State {
	return New(model.SeedEntries())
}

// UpdateDraft replaces the draft's name. Any text is accepted.
func (s *State) UpdateDraft(text string) {
	s.draft = model.Entry{Name: text}
	s.notify(ChangeDraft)
}

// CommitDraft appends a copy of the draft and resets it, unless the draft's
// name is blank after trimming, in which case nothing happens.
//
// The result reports whether the list grew; a false return is not an error.
func (s *State) CommitDraft() bool {
	if strings.TrimSpace(s.draft.Name) == "" {
		return false
	}
	s.entries = append(s.entries, s.draft)
	s.draft = model.Entry{}
	s.notify(ChangeCommit)
	return true
}

// Snapshot renders the list as text for hand-off to the result screen, e.g.
// "[Entry(name=Tanu), Entry(name=Tina)]".
//
// Names are not escaped, so the text cannot be parsed back into entries.
func (s *State) Snapshot() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (s *State) Entries() []model.Entry {
	out := make([]model.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

func (s *State) Draft() model.Entry { return s.draft }

func (s *State) Len() int { return len(s.entries) }

// Subscribe registers fn to run after every mutation. Calls happen
// synchronously on the mutating goroutine. The returned func unsubscribes.
func (s *State) Subscribe(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	if s.subs == nil {
		s.subs = map[int]func(Change){}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *State) notify(kind ChangeKind) {
	if len(s.subs) == 0 {
		return
	}
	ch := Change{Kind: kind, Len: len(s.entries)}
	// Deliver in registration order so observers see a stable sequence.
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fn(ch)
		}
	}
}
