package model

// Entry is one named item in the roster (a person's name).
//
// Entries are plain values: two entries are the same entry when their names
// are equal, and the list only ever stores copies.
type Entry struct {
	Name string `json:"name"`
}

func (e Entry) String() string {
	return "Entry(name=" + e.Name + ")"
}

// SeedEntries returns the sample entries every fresh entry screen starts with.
func SeedEntries() []Entry {
	return []Entry{
		{Name: "Tanu"},
		{Name: "Tina"},
		{Name: "Tono"},
	}
}

// EntriesFromNames builds entries in the given order. Names are kept as-is.
func EntriesFromNames(names []string) []Entry {
	out := make([]Entry, 0, len(names))
	for _, n := range names {
		out = append(out, Entry{Name: n})
	}
	return out
}
