package nav

// StackEntry is one screen on the navigation stack along with the route it
// was opened with.
type StackEntry struct {
	Screen Screen
	Route  Route
}

// Stack is the navigation history, bottom first.
type Stack struct {
	entries []StackEntry
}

func (s *Stack) Push(e StackEntry) {
	s.entries = append(s.entries, e)
}

// Pop removes and returns the top entry. Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	e := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &e
}

// Peek returns the top entry without removing it, or nil.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

func (s *Stack) Len() int { return len(s.entries) }

func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }
